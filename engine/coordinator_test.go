package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name string, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	var content string
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestRunProducesAtLeastOneWinningRule(t *testing.T) {
	wordlistPath := writeFixture(t, "wordlist.txt", "hunter")
	cleartextsPath := writeFixture(t, "cleartexts.txt", "HUNTER", "hunterX")

	opts := Options{
		WordlistPath:   wordlistPath,
		CleartextsPath: cleartextsPath,
		Cutoff:         1,
		MinSize:        3,
		Threads:        2,
	}

	result, err := Run(context.Background(), opts, nil, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Emitted) == 0 {
		t.Fatal("expected at least one emitted rule for a trivially crackable corpus")
	}
	for i := 1; i < len(result.Emitted); i++ {
		if result.Emitted[i].Cumulative < result.Emitted[i-1].Cumulative {
			t.Errorf("cumulative count should be non-decreasing: %+v", result.Emitted)
		}
	}
}

func TestRunSurfacesWordlistReadError(t *testing.T) {
	opts := Options{
		WordlistPath:   filepath.Join(t.TempDir(), "does-not-exist.txt"),
		CleartextsPath: writeFixture(t, "cleartexts.txt", "HUNTER"),
		Cutoff:         1,
		MinSize:        3,
		Threads:        2,
	}
	if _, err := Run(context.Background(), opts, nil, nil); err == nil {
		t.Fatal("expected Run to surface an error for a missing wordlist file")
	}
}
