package rules

// Mutate applies an ordered rule sequence to word and returns the
// resulting byte string, or ok=false if any rule in the sequence
// rejected the word. Every transformation is byte-oriented; non-ASCII
// bytes pass through untouched except where a conversion table maps
// them explicitly (it never does -- CONVS only maps the printable ASCII
// range, so bytes like the 0xC3 0xA9 pair in a UTF-8 "é" are untouched).
func Mutate(word []byte, seq Seq) ([]byte, bool) {
	env := newEnv(word)
	cur := make([]byte, len(word))
	copy(cur, word)

	for _, rule := range seq {
		if len(cur) == 0 {
			return nil, false
		}
		curlen := len(cur)

		if rule.Tag == TagReject {
			if mustReject(rule.Rej, cur, env) {
				return nil, false
			}
			continue
		}

		next, ok := applyCommand(cur, curlen, env, rule.Cmd)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func applyCommand(cur []byte, curlen int, env *Env, cmd CommandRule) ([]byte, bool) {
	switch cmd.Kind {
	case CmdNoop:
		return cur, true
	case CmdToLower, CmdToUpper, CmdCapitalize, CmdInvertCapitalize,
		CmdToggleAll, CmdShiftAll, CmdLowerVowelsUpperConsonants,
		CmdShiftAllKeyboardRight, CmdShiftAllKeyboardLeft,
		CmdToggleCase, CmdToggleShift:
		return applyCase(cur, env, cmd)
	case CmdReverse, CmdDuplicate, CmdReflect, CmdRotLeft, CmdRotRight,
		CmdSwapFirstTwo, CmdSwapLastTwo, CmdSwap, CmdDupWordNTimes,
		CmdDupeAllChar, CmdDupeFirstChar, CmdDupeLastChar,
		CmdDupFirstString, CmdDupLastString:
		return applyStructure(cur, curlen, env, cmd)
	case CmdAppend, CmdPrefix, CmdInsertString, CmdTruncate,
		CmdDeleteFirst, CmdDeleteLast, CmdDeleteAt, CmdExtract,
		CmdInsertChar, CmdOverstrike, CmdOmitRange:
		return applyInsertDelete(cur, curlen, env, cmd)
	case CmdReplaceAll, CmdPurgeAll, CmdTitleCase:
		return applyClassOp(cur, env, cmd)
	case CmdMemorize, CmdAppendMemory, CmdPrependMemory, CmdExtractInsert,
		CmdMemoryAssign:
		return applyMemory(cur, env, cmd)
	case CmdIncrement, CmdDecrement, CmdBitshiftLeft, CmdBitshiftRight,
		CmdReplaceWithNext, CmdReplaceWithPrior:
		return applyArithmetic(cur, curlen, env, cmd)
	case CmdPluralize, CmdPastTense, CmdGenitive:
		return applyMorphology(cur, curlen, env, cmd)
	default:
		return cur, true
	}
}
