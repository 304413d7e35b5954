package engine

import (
	"testing"

	"github.com/blackforge-sec/rulesfinder/rules"
)

func hitSet(seq rules.Seq, ids ...uint64) *HitSet {
	set := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &HitSet{Seq: seq, IDs: set}
}

func TestGreedyCoverPicksLargestThenShrinksRemainder(t *testing.T) {
	ruleA := rules.Seq{rules.C(rules.CommandRule{Kind: rules.CmdToLower})}
	ruleB := rules.Seq{rules.C(rules.CommandRule{Kind: rules.CmdToUpper})}

	hits := map[string]*HitSet{
		"a": hitSet(ruleA, 1, 2, 3, 4),
		"b": hitSet(ruleB, 3, 4, 5),
	}

	emitted := GreedyCover(hits, 1)
	if len(emitted) != 2 {
		t.Fatalf("len(emitted) = %d, want 2: %+v", len(emitted), emitted)
	}
	if emitted[0].Seq.String() != ruleA.String() || emitted[0].Count != 4 {
		t.Errorf("first winner = %+v, want ruleA with count 4", emitted[0])
	}
	if emitted[1].Seq.String() != ruleB.String() || emitted[1].Count != 1 {
		t.Errorf("second winner = %+v, want ruleB with marginal count 1 (5 only)", emitted[1])
	}
	if emitted[1].Cumulative != 5 {
		t.Errorf("cumulative after second winner = %d, want 5", emitted[1].Cumulative)
	}
}

func TestGreedyCoverStopsBelowCutoff(t *testing.T) {
	ruleA := rules.Seq{rules.C(rules.CommandRule{Kind: rules.CmdToLower})}
	hits := map[string]*HitSet{"a": hitSet(ruleA, 1)}

	emitted := GreedyCover(hits, 2)
	if len(emitted) != 0 {
		t.Fatalf("expected no winners below cutoff, got %+v", emitted)
	}
}

func TestSubSetComputesSortedDifference(t *testing.T) {
	got := subSet([]uint64{1, 2, 3, 4}, []uint64{2, 4})
	want := []uint64{1, 3}
	if len(got) != len(want) {
		t.Fatalf("subSet = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("subSet = %v, want %v", got, want)
		}
	}
}

func TestShorterRulesPrefersShorterSerialization(t *testing.T) {
	short := rules.Seq{rules.C(rules.CommandRule{Kind: rules.CmdToLower})}
	long := rules.Seq{
		rules.C(rules.CommandRule{Kind: rules.CmdToLower}),
		rules.C(rules.CommandRule{Kind: rules.CmdToUpper}),
	}
	if !shorterRules(short, long) {
		t.Error("expected the single-op rule to be considered shorter")
	}
	if shorterRules(long, short) {
		t.Error("shorterRules should not be symmetric when lengths differ")
	}
}
