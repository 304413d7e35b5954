package engine

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/blackforge-sec/rulesfinder/fragment"
	"github.com/blackforge-sec/rulesfinder/internal/corpus"
	"github.com/blackforge-sec/rulesfinder/rules"
)

// RulesProgress receives coarse progress updates as candidate rule
// batches are retired by the worker pool. Same shape as fragment.Progress
// (a distinct interface because the two phases report different units).
type RulesProgress interface {
	SetTotal(total int64)
	SetMessage(msg string)
	SetPosition(pos int64)
	Finish()
}

// Options configures one coordinator run.
type Options struct {
	WordlistPath   string
	CleartextsPath string
	Cutoff         int
	MinSize        int
	Threads        int
	Hashcat        bool
	Preallocate    bool
}

// Result is the coordinator's output: the greedy-cover emission order.
type Result struct {
	Emitted []EmittedRule
}

// Run builds the wordlist and fragment index, fans the filtered
// candidate rule space out to a bounded worker pool, merges the
// returned hit sets, and performs greedy set cover over the result.
// A failed worker cancels the remaining pool and the run returns its
// error; there is no partial-result recovery.
func Run(ctx context.Context, opts Options, fragProgress fragment.Progress, rulesProgress RulesProgress) (*Result, error) {
	wordlist, err := readWordlist(opts.WordlistPath)
	if err != nil {
		return nil, fmt.Errorf("reading wordlist: %w", err)
	}

	known := make(map[string]struct{}, len(wordlist))
	for _, w := range wordlist {
		known[string(w)] = struct{}{}
	}

	idx, _, err := fragment.Process(opts.CleartextsPath, opts.MinSize, known, opts.Preallocate, fragProgress)
	if err != nil {
		return nil, err
	}

	candidates := rules.FilterDialect(rules.Genmutate(), opts.Hashcat)

	threads := opts.Threads
	if threads < 1 {
		threads = 1
	}

	ruleCh := make(chan rules.Seq, 128)
	hitCh := make(chan map[string]*HitSet, 128)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case seq, ok := <-ruleCh:
					if !ok {
						return nil
					}
					hitCh <- WorkerLogic(seq, wordlist, idx, opts.Cutoff)
				}
			}
		})
	}
	g.Go(func() error {
		defer close(ruleCh)
		for _, seq := range candidates {
			select {
			case ruleCh <- seq:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	go func() {
		_ = g.Wait()
		close(hitCh)
	}()

	merged := make(map[string]*HitSet)
	if rulesProgress != nil {
		rulesProgress.SetTotal(int64(len(candidates)))
	}
	retained, i := 0, int64(0)
	for batch := range hitCh {
		retained += len(batch)
		for k, v := range batch {
			merged[k] = v
		}
		i++
		if rulesProgress != nil {
			rulesProgress.SetMessage(fmt.Sprintf("%d", retained))
			rulesProgress.SetPosition(i)
		}
	}
	if rulesProgress != nil {
		rulesProgress.Finish()
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("worker pool: %w", err)
	}

	return &Result{Emitted: GreedyCover(merged, opts.Cutoff)}, nil
}

// readWordlist loads every LF-delimited line of path into memory. Lines
// may contain embedded NULs; no trailing newline is required.
func readWordlist(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanLines)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		lines = append(lines, append([]byte(nil), scanner.Bytes()...))
	}
	if err := scanner.Err(); err != nil {
		return nil, corpus.NewLineError(path, lineNo+1, "%v", err)
	}
	return lines, nil
}
