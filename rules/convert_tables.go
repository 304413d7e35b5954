package rules

// Five 256-byte permutation tables, process-wide read-only, built once
// from the same fixed source/destination strings John the Ripper ships
// with. A table entry of 0 means "leave the byte unchanged" -- every
// source string below carefully avoids mapping any byte to NUL.
const (
	convSource = "`1234567890-=\\qwertyuiop[]asdfghjkl;'zxcvbnm,./~!@#$%^&*()_+|QWERTYUIOP{}ASDFGHJKL:\"ZXCVBNM<>?"
	convShift  = "~!@#$%^&*()_+|QWERTYUIOP{}ASDFGHJKL:\"ZXCVBNM<>?`1234567890-=\\qwertyuiop[]asdfghjkl;'zxcvbnm,./"
	convInvert = "`1234567890-=\\QWERTYUIOP[]ASDFGHJKL;'ZXCVBNM,./~!@#$%^&*()_+|qwertyuiop{}asdfghjkl:\"zxcvbnm<>?"
	convVowels = "`1234567890-=\\QWeRTYuioP[]aSDFGHJKL;'ZXCVBNM,./~!@#$%^&*()_+|QWeRTYuioP{}aSDFGHJKL:\"ZXCVBNM<>?"
	convRight  = "1234567890-=\\\\wertyuiop[]]sdfghjkl;''xcvbnm,./\\!@#$%^&*()_+||WERTYUIOP{}}SDFGHJKL:\"\"XCVBNM<>?|"
	convLeft   = "``1234567890-=qqwertyuiop[aasdfghjkl;zzxcvbnm,.~~!@#$%^&*()_+QQWERTYUIOP{AASDFGHJKL:ZZXCVBNM<>"
)

// Converts bundles the five permutation tables used by the case/shape
// opcode family.
type Converts struct {
	Shift  [256]byte
	Invert [256]byte
	Left   [256]byte
	Right  [256]byte
	Vowels [256]byte
}

func buildTable(src, dst string) [256]byte {
	var out [256]byte
	s, d := []byte(src), []byte(dst)
	if len(s) != len(d) {
		panic("rules: convert table source/destination length mismatch")
	}
	for i, sc := range s {
		out[sc] = d[i]
	}
	return out
}

// CONVS is the process-wide, read-only set of conversion tables. It is
// initialized once at package load and never mutated afterward, so it is
// safe to share across worker goroutines without synchronization.
var CONVS = Converts{
	Shift:  buildTable(convSource, convShift),
	Invert: buildTable(convSource, convInvert),
	Left:   buildTable(convSource, convLeft),
	Right:  buildTable(convSource, convRight),
	Vowels: buildTable(convSource, convVowels),
}

var (
	charsVowels      = []byte("aeiouAEIOU")
	charsConsonants  = []byte("bcdfghjklmnpqrstvwxyzBCDFGHJKLMNPQRSTVWXYZ")
	charsWhitespace  = []byte(" \t")
	charsPunctuation = []byte(".,:;'\"?!`")
	charsSpecials    = []byte("$%^&*()-_+=|\\<>[]{}#@/~")
	charsControl     = []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10, 0x11,
		0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F, 0x7F, 0x84,
		0x85, 0x88, 0x8D, 0x8E, 0x8F, 0x90, 0x96, 0x97, 0x98, 0x9A, 0x9B, 0x9C, 0x9D, 0x9E, 0x9F,
	}
)

func runConv(cur []byte, tbl [256]byte) {
	for i, c := range cur {
		if x := tbl[c]; x != 0 {
			cur[i] = x
		}
	}
}

func toggleOne(tbl [256]byte, c *byte) {
	if x := tbl[*c]; x != 0 {
		*c = x
	}
}
