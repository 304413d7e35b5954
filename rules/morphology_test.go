package rules

import "testing"

func TestPluralize(t *testing.T) {
	cases := map[string]string{
		"fox":  "foxes",
		"july": "julies",
		"loaf": "loaves",
		"cat":  "cats",
		"boy":  "boys",
	}
	for in, want := range cases {
		got, ok := mutStr(t, in, Seq{C(CommandRule{Kind: CmdPluralize})})
		if !ok || got != want {
			t.Errorf("Pluralize(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
}

func TestPluralizeRejectsShortWord(t *testing.T) {
	_, ok := Mutate([]byte("a"), Seq{C(CommandRule{Kind: CmdPluralize})})
	if ok {
		t.Fatal("expected reject for a one-byte word")
	}
}

func TestPastTense(t *testing.T) {
	cases := map[string]string{
		"walk": "walked",
		"hope": "hoped",
		"cry":  "cried",
		"stop": "stopped",
	}
	for in, want := range cases {
		got, ok := mutStr(t, in, Seq{C(CommandRule{Kind: CmdPastTense})})
		if !ok || got != want {
			t.Errorf("PastTense(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
}

func TestGenitive(t *testing.T) {
	cases := map[string]string{
		"walk": "walking",
		"cry":  "crying",
		"stop": "stopping",
	}
	for in, want := range cases {
		got, ok := mutStr(t, in, Seq{C(CommandRule{Kind: CmdGenitive})})
		if !ok || got != want {
			t.Errorf("Genitive(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
}
