package fragment

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLines(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cleartexts.txt")
	var content string
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestProcessSkipsShortAndKnownLines(t *testing.T) {
	path := writeLines(t, "ab", "password1", "password1", "hunter2x")
	known := map[string]struct{}{"hunter2x": {}}

	idx, byID, err := Process(path, 4, known, false, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	// "ab" is too short, "hunter2x" is known, so only the two
	// "password1" lines should be retained, each with its own id.
	if len(byID) != 2 {
		t.Fatalf("len(byID) = %d, want 2: %v", len(byID), byID)
	}
	for _, line := range byID {
		if string(line) != "password1" {
			t.Errorf("unexpected retained line %q", line)
		}
	}
	if _, ok := idx["pass"]; !ok {
		t.Error(`expected the "pass" fragment to be indexed`)
	}
}

func TestProcessReportsProgress(t *testing.T) {
	path := writeLines(t, "password1", "password2")
	rec := &recordingProgress{}

	if _, _, err := Process(path, 4, nil, true, rec); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if rec.total != 2 {
		t.Errorf("SetTotal got %d, want 2", rec.total)
	}
	if !rec.finished {
		t.Error("expected Finish to be called")
	}
}

type recordingProgress struct {
	total    int64
	finished bool
}

func (r *recordingProgress) SetTotal(total int64) { r.total = total }
func (r *recordingProgress) SetMessage(string)    {}
func (r *recordingProgress) SetPosition(int64)    {}
func (r *recordingProgress) Finish()              { r.finished = true }
