// Package rules implements the rule domain-specific virtual machine shared
// by the John the Ripper and Hashcat mangling-rule dialects: the opcode
// model, the interpreter that applies an opcode sequence to a byte string,
// the candidate-rule generator, and the dialect serializers.
package rules

import "fmt"

// UserVar names one of the eleven user-assignable length slots a rule
// program can save a length into via MemoryAssign and later recall with
// SavedLen. MemoryAssign itself always rejects (see CommandKind docs), so
// in practice userlen never gets populated, but the slot names still have
// to parse/print for both dialects.
type UserVar int

const (
	UVA UserVar = iota
	UVB
	UVC
	UVD
	UVE
	UVF
	UVG
	UVH
	UVI
	UVJ
	UVK
)

var userVarText = [...]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}

func (u UserVar) String() string {
	if int(u) < 0 || int(u) >= len(userVarText) {
		return "?"
	}
	return userVarText[u]
}

// NumericalKind tags the variant carried by a Numerical operand.
type NumericalKind int

const (
	NumVal NumericalKind = iota
	NumMinLen
	NumMinLenMinus1
	NumMinLenPlus1
	NumMaxLen
	NumMaxLenMinus1
	NumMaxLenPlus1
	NumSavedLen
	NumWordLen
	NumWordLastCharPos
	NumLastFound
	NumInfinite
)

// Numerical is a position-or-count operand. Only one of Lit/Var is
// meaningful, selected by Kind: Lit for NumVal, Var for NumSavedLen.
type Numerical struct {
	Kind NumericalKind
	Lit  byte
	Var  UserVar
}

// Val builds a literal numerical operand, 0..=9 by convention though the
// representation allows any byte.
func Val(n byte) Numerical { return Numerical{Kind: NumVal, Lit: n} }

// SavedLen recalls a length previously stashed into a user variable slot.
func SavedLen(v UserVar) Numerical { return Numerical{Kind: NumSavedLen, Var: v} }

var (
	MinLen          = Numerical{Kind: NumMinLen}
	MinLenMinus1    = Numerical{Kind: NumMinLenMinus1}
	MinLenPlus1     = Numerical{Kind: NumMinLenPlus1}
	MaxLen          = Numerical{Kind: NumMaxLen}
	MaxLenMinus1    = Numerical{Kind: NumMaxLenMinus1}
	MaxLenPlus1     = Numerical{Kind: NumMaxLenPlus1}
	WordLen         = Numerical{Kind: NumWordLen}
	WordLastCharPos = Numerical{Kind: NumWordLastCharPos}
	LastFound       = Numerical{Kind: NumLastFound}
	Infinite        = Numerical{Kind: NumInfinite}
)

// CharClassKind selects one of the built-in character classes, or a
// single literal byte class (CCSingle).
type CharClassKind int

const (
	CCVowels CharClassKind = iota
	CCConsonants
	CCWhitespace
	CCPunctuation
	CCSymbols
	CCLower
	CCUpper
	CCDigits
	CCLetters
	CCAlphaNum
	CCControl
	CCAll
	CCBit8
	CCSingle
)

// CharClass is a byte classifier; Char is only meaningful for CCSingle.
type CharClass struct {
	Kind CharClassKind
	Char byte
}

// Single builds a class that matches exactly one literal byte.
func Single(c byte) CharClass { return CharClass{Kind: CCSingle, Char: c} }

// CharSelector wraps a CharClass with an optional negation ("none of").
type CharSelector struct {
	Negate bool
	Class  CharClass
}

// OneOf selects bytes that belong to the given class.
func OneOf(c CharClass) CharSelector { return CharSelector{Class: c} }

// NoneOf selects bytes that do not belong to the given class.
func NoneOf(c CharClass) CharSelector { return CharSelector{Negate: true, Class: c} }

// RejectKind tags the variant carried by a RejectRule.
type RejectKind int

const (
	RejNoop RejectKind = iota
	RejUnlessCaseSensitive
	RejUnless8Bits
	RejUnlessSplit
	RejUnlessWordPairs
	RejUnlessUTF8
	RejIfUTF8
	RejUnlessSupportedLengthOrLonger  // Numerical
	RejUnlessSupportedLengthOrShorter // Numerical
	RejUnlessWordLengthLessThan       // Numerical
	RejUnlessWordLengthMoreThan       // Numerical
	RejUnlessWordLengthIs             // Numerical
	RejUnlessValidAfterAdding         // Numerical
	RejUnlessValidAfterRemoving       // Numerical
	RejIfContain                      // CharSelector
	RejUnlessContain                  // CharSelector
	RejUnlessCharAt                   // Numerical, CharSelector
	RejUnlessFirstChar                // CharSelector
	RejUnlessLastChar                 // CharSelector
	RejUnlessAtLeastNTimes            // Numerical, CharSelector
	RejUnlessValidUTF8
	RejTheWordUnlessDifferent
)

// RejectRule is a predicate opcode: when it fires, mutation halts with
// "rejected". Fields beyond Kind are only populated as documented above.
type RejectRule struct {
	Kind RejectKind
	N    Numerical
	CS   CharSelector
}

// CommandKind tags the variant carried by a CommandRule.
type CommandKind int

const (
	CmdNoop CommandKind = iota
	CmdToLower
	CmdToUpper
	CmdCapitalize
	CmdInvertCapitalize
	CmdToggleAll
	CmdShiftAll
	CmdLowerVowelsUpperConsonants
	CmdShiftAllKeyboardRight
	CmdShiftAllKeyboardLeft
	CmdToggleCase // N
	CmdToggleShift
	CmdReverse
	CmdDuplicate
	CmdReflect
	CmdRotLeft
	CmdRotRight
	CmdAppend // Lit
	CmdPrefix
	CmdInsertString // N, Str
	CmdTruncate     // N
	CmdPluralize
	CmdPastTense
	CmdGenitive
	CmdDeleteFirst
	CmdDeleteLast
	CmdDeleteAt        // N
	CmdExtract         // N, N2
	CmdInsertChar      // N, Lit
	CmdOverstrike      // N, Lit
	CmdMemorize
	CmdExtractInsert   // N, N2, N3
	CmdMemoryAssign    // UserVar, N, N2 (always rejects)
	CmdReplaceAll      // CS, Lit
	CmdPurgeAll        // CS
	CmdTitleCase       // CS
	CmdDupWordNTimes   // N
	CmdBitshiftRight   // N
	CmdBitshiftLeft    // N
	CmdSwapFirstTwo
	CmdSwapLastTwo
	CmdSwap            // N, N2
	CmdIncrement       // N
	CmdDecrement       // N
	CmdAppendMemory
	CmdPrependMemory
	CmdOmitRange       // N, N2
	CmdDupeFirstChar   // N
	CmdDupeLastChar    // N
	CmdReplaceWithNext // N
	CmdReplaceWithPrior // N
	CmdDupFirstString  // N
	CmdDupLastString   // N
	CmdDupeAllChar
)

// CommandRule is a mutation opcode. Field meaning depends on Kind; see the
// comments next to each CommandKind constant above.
type CommandRule struct {
	Kind CommandKind
	N    Numerical
	N2   Numerical
	N3   Numerical
	Lit  byte
	Str  []byte
	CS   CharSelector
	UV   UserVar
}

// RuleTag distinguishes a Reject predicate from a Command mutation.
type RuleTag int

const (
	TagCommand RuleTag = iota
	TagReject
)

// Rule is either a Reject predicate or a Command mutation. Exactly one of
// Cmd/Rej is meaningful, selected by Tag.
type Rule struct {
	Tag RuleTag
	Cmd CommandRule
	Rej RejectRule
}

// C wraps a CommandRule as a Rule.
func C(cmd CommandRule) Rule { return Rule{Tag: TagCommand, Cmd: cmd} }

// R wraps a RejectRule as a Rule.
func R(rej RejectRule) Rule { return Rule{Tag: TagReject, Rej: rej} }

// Seq is an ordered rule program: the unit mutate/show/generate operate on.
type Seq []Rule

// Clone returns an independent copy of the sequence, safe to extend.
func (s Seq) Clone() Seq {
	out := make(Seq, len(s))
	copy(out, s)
	return out
}

// Extended returns a new sequence with extra appended, never mutating s.
func (s Seq) Extended(extra ...Rule) Seq {
	out := make(Seq, 0, len(s)+len(extra))
	out = append(out, s...)
	out = append(out, extra...)
	return out
}

func (s Seq) String() string {
	return fmt.Sprintf("%v", []Rule(s))
}
