// Package engine implements the parallel coverage search: for each
// candidate base rule, mutate every training word, probe the fragment
// index for hits, extend the rule with the framing that produced each
// hit, and finally run greedy set-cover over the merged results.
package engine

import (
	"sort"

	"github.com/blackforge-sec/rulesfinder/fragment"
	"github.com/blackforge-sec/rulesfinder/rules"
)

// HitSet pairs an extended rule sequence with the cleartext ids it was
// observed to reach.
type HitSet struct {
	Seq rules.Seq
	IDs map[uint64]struct{}
}

// WorkerLogic mutates every word in wordlist with base, probes idx for
// each surviving mutation, and accumulates hit sets keyed by the
// canonical text of the extended rule. Entries whose cardinality never
// reaches cutoff are dropped before returning.
func WorkerLogic(base rules.Seq, wordlist [][]byte, idx fragment.Index, cutoff int) map[string]*HitSet {
	hits := make(map[string]*HitSet)
	for _, word := range wordlist {
		mutated, ok := rules.Mutate(word, base)
		if !ok {
			continue
		}
		matches, ok := idx[string(mutated)]
		if !ok {
			continue
		}
		for _, m := range matches {
			extended := extendRule(base, m.Prefix, m.Suffix)
			key := extended.String()
			hs, ok := hits[key]
			if !ok {
				hs = &HitSet{Seq: extended, IDs: make(map[uint64]struct{})}
				hits[key] = hs
			}
			hs.IDs[m.ID] = struct{}{}
		}
	}
	for k, hs := range hits {
		if len(hs.IDs) < cutoff {
			delete(hits, k)
		}
	}
	return hits
}

// extendRule appends up to two opcodes to base: a prefix-insert derived
// from the fragment's surrounding prefix, and a suffix-insert derived
// from its surrounding suffix. Single-byte framing uses the cheaper
// Prefix/Append opcodes; longer framing uses InsertString at position 0
// or Infinite.
func extendRule(base rules.Seq, prefix, suffix []byte) rules.Seq {
	var extra []rules.Rule
	switch {
	case len(prefix) == 1:
		extra = append(extra, rules.C(rules.CommandRule{Kind: rules.CmdPrefix, Lit: prefix[0]}))
	case len(prefix) > 1:
		extra = append(extra, rules.C(rules.CommandRule{Kind: rules.CmdInsertString, N: rules.Val(0), Str: prefix}))
	}
	switch {
	case len(suffix) == 1:
		extra = append(extra, rules.C(rules.CommandRule{Kind: rules.CmdAppend, Lit: suffix[0]}))
	case len(suffix) > 1:
		extra = append(extra, rules.C(rules.CommandRule{Kind: rules.CmdInsertString, N: rules.Infinite, Str: suffix}))
	}
	return base.Extended(extra...)
}

// sortedIDs returns the set's members as an ascending slice, the shape
// the greedy-cover subtraction works over.
func sortedIDs(ids map[uint64]struct{}) []uint64 {
	out := make([]uint64, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
