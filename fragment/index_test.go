package fragment

import "testing"

func TestProcessLineInsertsEveryFragment(t *testing.T) {
	idx := make(Index)
	inserted := ProcessLine(idx, 0, []byte("ABCDEF"), 3)

	// substrings of length >= 3 out of a 6-byte line: lengths 3,4,5,6 at
	// start positions 0..(6-len), i.e. 4+3+2+1 = 10 total.
	if inserted != 10 {
		t.Fatalf("inserted = %d, want 10", inserted)
	}

	hits, ok := idx["ABC"]
	if !ok || len(hits) != 1 {
		t.Fatalf("expected exactly one hit for %q, got %v", "ABC", hits)
	}
	if string(hits[0].Prefix) != "" || string(hits[0].Suffix) != "DEF" || hits[0].ID != 0 {
		t.Errorf("unexpected hit framing: %+v", hits[0])
	}

	hits, ok = idx["DEF"]
	if !ok || len(hits) != 1 {
		t.Fatalf("expected exactly one hit for %q, got %v", "DEF", hits)
	}
	if string(hits[0].Prefix) != "ABC" || string(hits[0].Suffix) != "" {
		t.Errorf("unexpected hit framing: %+v", hits[0])
	}

	hits, ok = idx["ABCDEF"]
	if !ok || len(hits) != 1 || string(hits[0].Prefix) != "" || string(hits[0].Suffix) != "" {
		t.Errorf("unexpected full-line hit: %v", hits)
	}
}

func TestProcessLineSkipsShorterThanMinsize(t *testing.T) {
	idx := make(Index)
	inserted := ProcessLine(idx, 0, []byte("AB"), 3)
	if inserted != 0 {
		t.Fatalf("inserted = %d, want 0 for a line shorter than minsize", inserted)
	}
}

func TestExpectedInsertionsMatchesProcessLine(t *testing.T) {
	idx := make(Index)
	inserted := ProcessLine(idx, 0, []byte("hal9000"), 3)
	if want := expectedInsertions(len("hal9000"), 3); inserted != want {
		t.Fatalf("inserted = %d, expectedInsertions = %d", inserted, want)
	}
}
