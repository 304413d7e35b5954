package rules

// leetSub pairs a letter with its customary digit substitute.
type leetSub struct {
	letter byte
	digit  byte
}

var leetSubs = []leetSub{
	{'a', '4'}, {'e', '3'}, {'i', '1'}, {'o', '0'}, {'s', '5'},
	{'A', '4'}, {'E', '3'}, {'I', '1'}, {'O', '0'}, {'S', '5'},
}

// positionals are the Numerical values genmutate fans single- and
// two-operand positional opcodes over.
var positionals = []Numerical{
	Val(0), Val(1), Val(2), Val(3), Val(4),
	Val(5), Val(6), Val(7), Val(8), Val(9),
	WordLen, WordLastCharPos,
}

// Genmutate returns the finite, deterministic candidate rule space this
// run searches: the base case/structure/morphology set, leet
// substitutions, bounded prefixes of rotate/delete repetition, per-letter
// and per-digit purges, and the single- and two-operand positional
// opcode cross product.
func Genmutate() []Seq {
	var out []Seq

	basecmds := []CommandRule{
		{Kind: CmdNoop},
		{Kind: CmdToLower},
		{Kind: CmdToUpper},
		{Kind: CmdCapitalize},
		{Kind: CmdToggleAll},
		{Kind: CmdShiftAll},
		{Kind: CmdLowerVowelsUpperConsonants},
		{Kind: CmdShiftAllKeyboardRight},
		{Kind: CmdShiftAllKeyboardLeft},
		{Kind: CmdReverse},
		{Kind: CmdDuplicate},
		{Kind: CmdReflect},
		{Kind: CmdPluralize},
		{Kind: CmdPastTense},
		{Kind: CmdGenitive},
		{Kind: CmdDupeAllChar},
		{Kind: CmdDupWordNTimes, N: Val(3)},
		{Kind: CmdDupWordNTimes, N: Val(4)},
		{Kind: CmdTitleCase, CS: OneOf(CharClass{Kind: CCPunctuation})},
		{Kind: CmdTitleCase, CS: OneOf(CharClass{Kind: CCWhitespace})},
	}
	for _, cmd := range basecmds {
		out = append(out, Seq{C(cmd)})
	}

	var combined Seq
	for _, ls := range leetSubs {
		seq := Seq{C(CommandRule{Kind: CmdReplaceAll, CS: OneOf(Single(ls.letter)), Lit: ls.digit})}
		out = append(out, seq)
		combined = append(combined, seq...)
	}
	out = append(out, combined)

	rl, rr, df, dl := Seq{}, Seq{}, Seq{}, Seq{}
	for i := 0; i < 4; i++ {
		rl = rl.Extended(C(CommandRule{Kind: CmdRotLeft}))
		rr = rr.Extended(C(CommandRule{Kind: CmdRotRight}))
		df = df.Extended(C(CommandRule{Kind: CmdDeleteFirst}))
		dl = dl.Extended(C(CommandRule{Kind: CmdDeleteLast}))
		out = append(out, rl.Clone(), rr.Clone(), df.Clone(), dl.Clone())
	}

	for letter := byte('a'); letter <= 'z'; letter++ {
		out = append(out, Seq{C(CommandRule{Kind: CmdPurgeAll, CS: OneOf(Single(letter))})})
	}
	for letter := byte('A'); letter <= 'Z'; letter++ {
		out = append(out, Seq{C(CommandRule{Kind: CmdPurgeAll, CS: OneOf(Single(letter))})})
	}
	for digit := byte('0'); digit <= '9'; digit++ {
		out = append(out, Seq{C(CommandRule{Kind: CmdPurgeAll, CS: OneOf(Single(digit))})})
	}

	for _, n := range positionals {
		out = append(out,
			Seq{C(CommandRule{Kind: CmdToggleCase, N: n})},
			Seq{C(CommandRule{Kind: CmdToggleShift, N: n})},
			Seq{C(CommandRule{Kind: CmdTruncate, N: n})},
			Seq{C(CommandRule{Kind: CmdDeleteAt, N: n})},
			Seq{C(CommandRule{Kind: CmdIncrement, N: n})},
			Seq{C(CommandRule{Kind: CmdDecrement, N: n})},
			Seq{C(CommandRule{Kind: CmdBitshiftRight, N: n})},
			Seq{C(CommandRule{Kind: CmdBitshiftLeft, N: n})},
			Seq{C(CommandRule{Kind: CmdDupeFirstChar, N: n})},
			Seq{C(CommandRule{Kind: CmdDupeLastChar, N: n})},
			Seq{C(CommandRule{Kind: CmdReplaceWithNext, N: n})},
			Seq{C(CommandRule{Kind: CmdReplaceWithPrior, N: n})},
			Seq{C(CommandRule{Kind: CmdDupFirstString, N: n})},
			Seq{C(CommandRule{Kind: CmdDupLastString, N: n})},
		)
		for _, m := range positionals {
			out = append(out,
				Seq{C(CommandRule{Kind: CmdExtract, N: n, N2: m})},
				Seq{C(CommandRule{Kind: CmdSwap, N: n, N2: m})},
				Seq{C(CommandRule{Kind: CmdOmitRange, N: n, N2: m})},
			)
		}
	}

	return out
}

// FilterDialect keeps only the candidate sequences fully representable
// in the requested dialect.
func FilterDialect(seqs []Seq, hashcat bool) []Seq {
	pred := JohnRule
	if hashcat {
		pred = HashcatRule
	}
	out := make([]Seq, 0, len(seqs))
	for _, seq := range seqs {
		ok := true
		for _, r := range seq {
			if !pred(r) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, seq)
		}
	}
	return out
}
