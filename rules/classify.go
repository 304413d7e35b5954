package rules

import "bytes"

func checkClass(c byte, cl CharClass) bool {
	switch cl.Kind {
	case CCVowels:
		return bytes.IndexByte(charsVowels, c) >= 0
	case CCConsonants:
		return bytes.IndexByte(charsConsonants, c) >= 0
	case CCWhitespace:
		return bytes.IndexByte(charsWhitespace, c) >= 0
	case CCPunctuation:
		return bytes.IndexByte(charsPunctuation, c) >= 0
	case CCSymbols:
		return bytes.IndexByte(charsSpecials, c) >= 0
	case CCLower:
		return c >= 'a' && c <= 'z'
	case CCUpper:
		return c >= 'A' && c <= 'Z'
	case CCDigits:
		return c >= '0' && c <= '9'
	case CCLetters:
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	case CCAlphaNum:
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
	case CCControl:
		return bytes.IndexByte(charsControl, c) >= 0
	case CCAll:
		return true
	case CCBit8:
		return c > 127
	case CCSingle:
		return c == cl.Char
	default:
		return false
	}
}

func inClass(c byte, sel CharSelector) bool {
	hit := checkClass(c, sel.Class)
	if sel.Negate {
		return !hit
	}
	return hit
}
