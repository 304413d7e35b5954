package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blackforge-sec/rulesfinder/fragment"
	"github.com/blackforge-sec/rulesfinder/rules"
)

func buildIndex(t *testing.T, cleartexts ...string) fragment.Index {
	t.Helper()
	idx := make(fragment.Index)
	for id, c := range cleartexts {
		fragment.ProcessLine(idx, uint64(id), []byte(c), 3)
	}
	return idx
}

func TestWorkerLogicMatchesReverseRule(t *testing.T) {
	wordlist := [][]byte{[]byte("ABC"), []byte("DEF"), []byte("ABCDEF"), []byte("hal9000")}
	cleartexts := []string{"ABC12", "DEF12", "ABCDE", "CBA", "0009lah"}
	idx := buildIndex(t, cleartexts...)

	base := rules.Seq{rules.C(rules.CommandRule{Kind: rules.CmdReverse})}
	hits := WorkerLogic(base, wordlist, idx, 1)

	hs, ok := hits[base.String()]
	if !ok {
		t.Fatalf("expected a hit set for the bare Reverse rule, got %v", hits)
	}
	assert.Equal(t, map[uint64]struct{}{3: {}, 4: {}}, hs.IDs,
		`expected ids 3 ("CBA") and 4 ("0009lah") to be hit`)
}

func TestWorkerLogicDropsBelowCutoff(t *testing.T) {
	wordlist := [][]byte{[]byte("ABC")}
	idx := buildIndex(t, "ABC12")

	base := rules.Seq{}
	hits := WorkerLogic(base, wordlist, idx, 2)
	if len(hits) != 0 {
		t.Fatalf("expected no hit sets to survive cutoff=2 with a single hit, got %v", hits)
	}
}

func TestExtendRuleUsesCheapOpsForSingleBytes(t *testing.T) {
	base := rules.Seq{}
	extended := extendRule(base, []byte("x"), []byte("y"))
	if len(extended) != 2 {
		t.Fatalf("len(extended) = %d, want 2", len(extended))
	}
	if extended[0].Cmd.Kind != rules.CmdPrefix || extended[0].Cmd.Lit != 'x' {
		t.Errorf("expected a Prefix('x') op, got %+v", extended[0])
	}
	if extended[1].Cmd.Kind != rules.CmdAppend || extended[1].Cmd.Lit != 'y' {
		t.Errorf("expected an Append('y') op, got %+v", extended[1])
	}
}

func TestExtendRuleUsesInsertStringForMultiByteFraming(t *testing.T) {
	base := rules.Seq{}
	extended := extendRule(base, []byte("pre"), []byte("post"))
	if len(extended) != 2 {
		t.Fatalf("len(extended) = %d, want 2", len(extended))
	}
	if extended[0].Cmd.Kind != rules.CmdInsertString || extended[0].Cmd.N.Kind != rules.NumVal {
		t.Errorf("expected InsertString at position 0 as the prefix op, got %+v", extended[0])
	}
	if extended[1].Cmd.Kind != rules.CmdInsertString || extended[1].Cmd.N.Kind != rules.NumInfinite {
		t.Errorf("expected InsertString at Infinite as the suffix op, got %+v", extended[1])
	}
}
