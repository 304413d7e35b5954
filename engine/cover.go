package engine

import "github.com/blackforge-sec/rulesfinder/rules"

// EmittedRule is one line of final output: the winning rule, the number
// of cleartext ids it covered this round, and the running total.
type EmittedRule struct {
	Seq        rules.Seq
	Count      int
	Cumulative int
}

type coverEntry struct {
	seq rules.Seq
	ids []uint64
}

// GreedyCover repeatedly picks the surviving rule with the largest
// marginal coverage (after subtracting the previous winner's set) until
// the best remaining coverage falls below cutoff. Ties break toward the
// rule with the shorter John-dialect serialization, then the
// lexicographically smaller opcode sequence (see shorterRules), so the
// emission order is reproducible
// regardless of worker scheduling.
func GreedyCover(hits map[string]*HitSet, cutoff int) []EmittedRule {
	entries := make(map[string]*coverEntry, len(hits))
	for k, hs := range hits {
		ids := sortedIDs(hs.IDs)
		if len(ids) < cutoff {
			continue
		}
		entries[k] = &coverEntry{seq: hs.Seq, ids: ids}
	}

	var lastSet []uint64
	var emitted []EmittedRule
	totalCracked := 0

	for len(entries) > 0 {
		var bestKey string
		var bestSeq rules.Seq
		var bestSet []uint64
		bestCount := 0
		var toRemove []string

		for k, e := range entries {
			if len(e.ids) < cutoff {
				toRemove = append(toRemove, k)
				continue
			}
			e.ids = subSet(e.ids, lastSet)
			if len(e.ids) < cutoff {
				toRemove = append(toRemove, k)
				continue
			}
			cur := len(e.ids)
			if cur > bestCount || (bestCount > 0 && cur == bestCount && shorterRules(e.seq, bestSeq)) {
				bestCount = cur
				bestSeq = e.seq
				bestSet = e.ids
				bestKey = k
			}
		}
		for _, k := range toRemove {
			delete(entries, k)
		}
		if bestKey != "" {
			delete(entries, bestKey)
		}
		lastSet = bestSet
		if bestCount == 0 {
			break
		}
		totalCracked += bestCount
		emitted = append(emitted, EmittedRule{Seq: bestSeq, Count: bestCount, Cumulative: totalCracked})
	}
	return emitted
}

// subSet returns a \ b, both ascending-sorted id slices.
func subSet(a, b []uint64) []uint64 {
	out := make([]uint64, 0, len(a))
	i, j := 0, 0
	for i < len(a) {
		if j >= len(b) {
			out = append(out, a[i])
			i++
			continue
		}
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			j++
		}
	}
	return out
}

// shorterRules breaks ties by the length of the rule's John-dialect
// serialization (falling back to Hashcat, then the raw Go
// representation, if that dialect cannot express it), then by the
// opcode sequence itself (Seq.String(), which encodes every Rule's
// Tag/Kind/operands in program order) so the comparison stays stable
// across dialects instead of depending on which dialect happened to
// serialize shortest.
func shorterRules(a, b rules.Seq) bool {
	sa, sb := dialectSortKey(a), dialectSortKey(b)
	if len(sa) != len(sb) {
		return len(sa) < len(sb)
	}
	return a.String() < b.String()
}

func dialectSortKey(seq rules.Seq) string {
	if s, ok := rules.ShowRules(seq, false); ok {
		return s
	}
	if s, ok := rules.ShowRules(seq, true); ok {
		return s
	}
	return seq.String()
}
