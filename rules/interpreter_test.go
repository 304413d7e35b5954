package rules

import "testing"

func mutStr(t *testing.T, word string, seq Seq) (string, bool) {
	t.Helper()
	out, ok := Mutate([]byte(word), seq)
	return string(out), ok
}

func TestMutateDupWordNTimes(t *testing.T) {
	got, ok := mutStr(t, "P@ss", Seq{C(CommandRule{Kind: CmdDupWordNTimes, N: Val(2)})})
	if !ok || got != "P@ssP@ssP@ss" {
		t.Fatalf("got %q, %v", got, ok)
	}
}

func TestMutateMemorizeSwap(t *testing.T) {
	seq := Seq{
		C(CommandRule{Kind: CmdMemorize}),
		C(CommandRule{Kind: CmdSwap, N: Val(0), N2: WordLastCharPos}),
	}
	got, ok := mutStr(t, "P@sS", seq)
	if !ok || got != "S@sP" {
		t.Fatalf("got %q, %v", got, ok)
	}
}

func TestMutateMemoryRoundtrip(t *testing.T) {
	seq := Seq{
		C(CommandRule{Kind: CmdToUpper}),
		C(CommandRule{Kind: CmdMemorize}),
		C(CommandRule{Kind: CmdToLower}),
		C(CommandRule{Kind: CmdAppendMemory}),
	}
	got, ok := mutStr(t, "P@ss", seq)
	if !ok || got != "p@ssP@SS" {
		t.Fatalf("got %q, %v", got, ok)
	}
}

func TestMutateEmptyWordRejects(t *testing.T) {
	_, ok := Mutate([]byte{}, Seq{C(CommandRule{Kind: CmdToLower})})
	if ok {
		t.Fatal("expected reject on empty word")
	}
}

func TestMutateRejectHaltsSequence(t *testing.T) {
	seq := Seq{
		R(RejectRule{Kind: RejUnlessWordLengthMoreThan, N: Val(3)}),
		C(CommandRule{Kind: CmdToUpper}),
	}
	_, ok := Mutate([]byte("short"), seq)
	if ok {
		t.Fatal("expected reject for a short word")
	}
}

func TestMutateAppendPrefix(t *testing.T) {
	seq := Seq{
		C(CommandRule{Kind: CmdPrefix, Lit: '^'}),
		C(CommandRule{Kind: CmdAppend, Lit: '$'}),
	}
	got, ok := mutStr(t, "word", seq)
	if !ok || got != "^word$" {
		t.Fatalf("got %q, %v", got, ok)
	}
}

func TestMutateInsertStringAtEnd(t *testing.T) {
	seq := Seq{
		C(CommandRule{Kind: CmdInsertString, N: Infinite, Str: []byte("123")}),
	}
	got, ok := mutStr(t, "pass", seq)
	if !ok || got != "pass123" {
		t.Fatalf("got %q, %v", got, ok)
	}
}

func TestMutateDeleteAtRejectsOutOfRange(t *testing.T) {
	_, ok := Mutate([]byte("ab"), Seq{C(CommandRule{Kind: CmdDeleteAt, N: Val(5)})})
	if ok {
		t.Fatal("expected reject for out-of-range position")
	}
}
