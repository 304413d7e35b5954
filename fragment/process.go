package fragment

import (
	"bufio"
	"fmt"
	"os"

	"github.com/blackforge-sec/rulesfinder/internal/corpus"
)

// Progress receives coarse-grained progress updates while the index is
// built. SetMessage/SetPosition are called at a lossy cadence (every 2,000
// records); implementations must tolerate being skipped under
// contention. A nil Progress is valid and simply means no reporting.
type Progress interface {
	SetTotal(total int64)
	SetMessage(msg string)
	SetPosition(pos int64)
	Finish()
}

// Process reads the cleartext file at path, skips any line shorter than
// minsize or present in known, assigns dense ids in file order, and
// builds the fragment index over the retained lines. preallocate hints
// the index's initial capacity from the expected substring count; it
// must never change the result, only the allocator's work.
func Process(path string, minsize int, known map[string]struct{}, preallocate bool, progress Progress) (Index, map[uint64][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening cleartexts file: %w", err)
	}
	defer f.Close()

	byID := make(map[uint64][]byte)
	expectedSize := 0
	var nextID uint64

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanLines)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := append([]byte(nil), scanner.Bytes()...)
		if len(line) < minsize {
			continue
		}
		if _, ok := known[string(line)]; ok {
			continue
		}
		byID[nextID] = line
		expectedSize += expectedInsertions(len(line), minsize)
		nextID++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, corpus.NewLineError(path, lineNo+1, "reading cleartexts file: %v", err)
	}

	var idx Index
	if preallocate {
		idx = make(Index, expectedSize*7/10)
	} else {
		idx = make(Index)
	}

	if progress != nil {
		progress.SetTotal(int64(len(byID)))
	}
	inserted := 0
	i := int64(0)
	for id, line := range byID {
		inserted += ProcessLine(idx, id, line, minsize)
		i++
		if progress != nil && i%2000 == 0 {
			progress.SetMessage(fmt.Sprintf("%d", inserted))
			progress.SetPosition(i)
		}
	}
	if progress != nil {
		progress.Finish()
	}

	return idx, byID, nil
}
