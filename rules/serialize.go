package rules

import (
	"fmt"
	"strings"
)

// separatorCandidates is the fixed alphabet ShowString picks a quoting
// delimiter from. The first candidate absent from the literal's bytes
// wins, so the common case (no quote character in the literal) always
// emits a plain double-quoted string.
var separatorCandidates = []byte{'"', '\'', '`', '|', '~', '^', '!', '/'}

// ShowNum renders a Numerical operand in John/Hashcat rule syntax.
// Val renders as a single base36-ish digit; note the boundary is ">10"
// rather than ">=10", carried over unchanged from the reference encoder.
func ShowNum(n Numerical) string {
	switch n.Kind {
	case NumVal:
		if n.Lit > 10 {
			return string(rune(n.Lit - 10 + 'A'))
		}
		return string(rune(n.Lit + '0'))
	case NumMinLen:
		return "#"
	case NumMinLenMinus1:
		return "@"
	case NumMinLenPlus1:
		return "$"
	case NumMaxLen:
		return "*"
	case NumMaxLenMinus1:
		return "-"
	case NumMaxLenPlus1:
		return "+"
	case NumSavedLen:
		return n.Var.String()
	case NumWordLen:
		return "l"
	case NumWordLastCharPos:
		return "m"
	case NumLastFound:
		return "p"
	case NumInfinite:
		return "z"
	}
	return "?"
}

// ShowChar renders a literal byte: alphanumerics print as themselves,
// everything else as a lowercase \xHH escape.
func ShowChar(c byte) string {
	if (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
		return string(rune(c))
	}
	return fmt.Sprintf("\\x%02x", c)
}

// ShowString renders a byte-string literal, choosing a delimiter from
// separatorCandidates that does not collide with any byte in s.
func ShowString(s []byte) string {
	sep := byte('"')
	for _, cand := range separatorCandidates {
		if !containsByte(s, cand) {
			sep = cand
			break
		}
	}
	var b strings.Builder
	b.WriteByte(sep)
	b.Write(s)
	b.WriteByte(sep)
	return b.String()
}

func containsByte(s []byte, c byte) bool {
	for _, x := range s {
		if x == c {
			return true
		}
	}
	return false
}

// ShowCC renders a CharClass, independent of negation.
func ShowCC(c CharClass) string {
	switch c.Kind {
	case CCVowels:
		return "?v"
	case CCConsonants:
		return "?c"
	case CCWhitespace:
		return "?w"
	case CCPunctuation:
		return "?p"
	case CCSymbols:
		return "?s"
	case CCLower:
		return "?l"
	case CCUpper:
		return "?u"
	case CCDigits:
		return "?d"
	case CCLetters:
		return "?l"
	case CCAlphaNum:
		return "?x"
	case CCControl:
		return "?o"
	case CCAll:
		return "?z"
	case CCBit8:
		return "?b"
	case CCSingle:
		return ShowChar(c.Char)
	}
	return "?"
}

// ShowCS renders a CharSelector: a leading "!" negates.
func ShowCS(cs CharSelector) string {
	if cs.Negate {
		return "!" + ShowCC(cs.Class)
	}
	return ShowCC(cs.Class)
}

// ShowReject renders a RejectRule.
func ShowReject(rj RejectRule) string {
	switch rj.Kind {
	case RejNoop:
		return "-:"
	case RejUnlessCaseSensitive:
		return "-c"
	case RejUnless8Bits:
		return "-8"
	case RejUnlessSplit:
		return "-s"
	case RejUnlessWordPairs:
		return "-p"
	case RejUnlessUTF8:
		return "-u"
	case RejIfUTF8:
		return "-U"
	case RejUnlessSupportedLengthOrLonger:
		return "->" + ShowNum(rj.N)
	case RejUnlessSupportedLengthOrShorter:
		return "-<" + ShowNum(rj.N)
	case RejUnlessWordLengthLessThan:
		return "<" + ShowNum(rj.N)
	case RejUnlessWordLengthMoreThan:
		return ">" + ShowNum(rj.N)
	case RejUnlessWordLengthIs:
		return "_" + ShowNum(rj.N)
	case RejUnlessValidAfterAdding:
		return "a" + ShowNum(rj.N)
	case RejUnlessValidAfterRemoving:
		return "b" + ShowNum(rj.N)
	case RejIfContain:
		return "!" + ShowCS(rj.CS)
	case RejUnlessContain:
		return "/" + ShowCS(rj.CS)
	case RejUnlessCharAt:
		return "=" + ShowNum(rj.N) + ShowCS(rj.CS)
	case RejUnlessFirstChar:
		return "(" + ShowCS(rj.CS)
	case RejUnlessLastChar:
		return ")" + ShowCS(rj.CS)
	case RejUnlessAtLeastNTimes:
		return "%" + ShowNum(rj.N) + ShowCS(rj.CS)
	case RejUnlessValidUTF8:
		return "U"
	case RejTheWordUnlessDifferent:
		return "Q"
	}
	return "-:"
}

// ShowCommand renders a CommandRule for the given dialect. ok is false
// only for the rules that have no representation in that dialect:
// Swap/BitshiftLeft/BitshiftRight with a non-literal operand in Hashcat
// mode, and InsertString at a position other than 0 or Infinite in
// Hashcat mode (decomposed into prefix/append chains in those two cases).
func ShowCommand(cmd CommandRule, hashcat bool) (string, bool) {
	switch cmd.Kind {
	case CmdNoop:
		return ":", true
	case CmdToLower:
		return "l", true
	case CmdToUpper:
		return "u", true
	case CmdCapitalize:
		return "c", true
	case CmdInvertCapitalize:
		return "C", true
	case CmdToggleAll:
		return "t", true
	case CmdShiftAll:
		return "S", true
	case CmdLowerVowelsUpperConsonants:
		return "V", true
	case CmdShiftAllKeyboardRight:
		return "R", true
	case CmdShiftAllKeyboardLeft:
		return "L", true
	case CmdToggleCase:
		return "T" + ShowNum(cmd.N), true
	case CmdToggleShift:
		return "W" + ShowNum(cmd.N), true
	case CmdReverse:
		return "r", true
	case CmdDuplicate:
		return "d", true
	case CmdReflect:
		return "f", true
	case CmdRotLeft:
		return "{", true
	case CmdRotRight:
		return "}", true
	case CmdAppend:
		return "$" + ShowChar(cmd.Lit), true
	case CmdPrefix:
		return "^" + ShowChar(cmd.Lit), true
	case CmdInsertString:
		return showInsertString(cmd.N, cmd.Str, hashcat)
	case CmdTruncate:
		return "'" + ShowNum(cmd.N), true
	case CmdPluralize:
		return "p", true
	case CmdPastTense:
		return "P", true
	case CmdGenitive:
		return "I", true
	case CmdDeleteFirst:
		return "[", true
	case CmdDeleteLast:
		return "]", true
	case CmdDeleteAt:
		return "D" + ShowNum(cmd.N), true
	case CmdExtract:
		return "x" + ShowNum(cmd.N) + ShowNum(cmd.N2), true
	case CmdInsertChar:
		return "i" + ShowNum(cmd.N) + ShowChar(cmd.Lit), true
	case CmdOverstrike:
		return "o" + ShowNum(cmd.N) + ShowChar(cmd.Lit), true
	case CmdMemorize:
		return "M", true
	case CmdExtractInsert:
		return "X" + ShowNum(cmd.N) + ShowNum(cmd.N2) + ShowNum(cmd.N3), true
	case CmdMemoryAssign:
		return "v" + cmd.UV.String() + ShowNum(cmd.N) + ShowNum(cmd.N2), true
	case CmdReplaceAll:
		return "s" + ShowCS(cmd.CS) + ShowChar(cmd.Lit), true
	case CmdPurgeAll:
		return "@" + ShowCS(cmd.CS), true
	case CmdTitleCase:
		return "E" + ShowCS(cmd.CS), true
	case CmdDupWordNTimes:
		return "p" + ShowNum(cmd.N), true
	case CmdBitshiftRight:
		if hashcat && cmd.N.Kind != NumVal {
			return "", false
		}
		return "R" + ShowNum(cmd.N), true
	case CmdBitshiftLeft:
		if hashcat && cmd.N.Kind != NumVal {
			return "", false
		}
		return "L" + ShowNum(cmd.N), true
	case CmdSwapFirstTwo:
		return "k", true
	case CmdSwapLastTwo:
		return "K", true
	case CmdSwap:
		if hashcat && (cmd.N.Kind != NumVal || cmd.N2.Kind != NumVal) {
			return "", false
		}
		return "*" + ShowNum(cmd.N) + ShowNum(cmd.N2), true
	case CmdIncrement:
		return "+" + ShowNum(cmd.N), true
	case CmdDecrement:
		return "-" + ShowNum(cmd.N), true
	case CmdAppendMemory:
		return "4", true
	case CmdPrependMemory:
		return "6", true
	case CmdOmitRange:
		return "O" + ShowNum(cmd.N) + ShowNum(cmd.N2), true
	case CmdDupeFirstChar:
		return "z" + ShowNum(cmd.N), true
	case CmdDupeLastChar:
		return "Z" + ShowNum(cmd.N), true
	case CmdReplaceWithNext:
		return "." + ShowNum(cmd.N), true
	case CmdReplaceWithPrior:
		return "," + ShowNum(cmd.N), true
	case CmdDupFirstString:
		return "y" + ShowNum(cmd.N), true
	case CmdDupLastString:
		return "Y" + ShowNum(cmd.N), true
	case CmdDupeAllChar:
		return "q", true
	}
	return "", false
}

// showInsertString renders InsertString(n, s). In John syntax it is
// always "A" + pos + string. In Hashcat syntax only position 0 and
// Infinite have a standard encoding: position 0 decomposes into a
// reversed chain of single-byte Prefix ops, Infinite into a chain of
// Append ops; any other position has no Hashcat form.
func showInsertString(n Numerical, s []byte, hashcat bool) (string, bool) {
	if !hashcat {
		return "A" + ShowNum(n) + ShowString(s), true
	}
	switch n.Kind {
	case NumVal:
		if n.Lit != 0 {
			return "", false
		}
		var b strings.Builder
		for i := len(s) - 1; i >= 0; i-- {
			b.WriteByte('^')
			b.WriteString(ShowChar(s[i]))
		}
		return b.String(), true
	case NumInfinite:
		var b strings.Builder
		for _, c := range s {
			b.WriteByte('$')
			b.WriteString(ShowChar(c))
		}
		return b.String(), true
	}
	return "", false
}

// ShowRule renders a single Rule (Reject or Command) for the given
// dialect. ok mirrors ShowCommand's representability result; Reject
// rules are always representable.
func ShowRule(rule Rule, hashcat bool) (string, bool) {
	if rule.Tag == TagReject {
		return ShowReject(rule.Rej), true
	}
	return ShowCommand(rule.Cmd, hashcat)
}

// ShowRules renders a whole sequence. ok is false if any member rule is
// not representable in the requested dialect.
func ShowRules(seq Seq, hashcat bool) (string, bool) {
	var b strings.Builder
	for _, rule := range seq {
		text, ok := ShowRule(rule, hashcat)
		if !ok {
			return "", false
		}
		b.WriteString(text)
	}
	return b.String(), true
}

// JohnRule reports whether a single rule is representable in the
// John-the-Ripper dialect. Every opcode this engine models has a JtR
// encoding; only ShowCommand's Hashcat-only gate ever returns false.
func JohnRule(rule Rule) bool {
	_, ok := ShowRule(rule, false)
	return ok
}

// HashcatRule reports whether a single rule is representable in the
// Hashcat dialect.
func HashcatRule(rule Rule) bool {
	_, ok := ShowRule(rule, true)
	return ok
}
