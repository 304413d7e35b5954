package rules

// applyStructure handles opcodes that reshape the buffer by reordering,
// duplicating or swapping bytes rather than replacing them.
func applyStructure(cur []byte, curlen int, env *Env, cmd CommandRule) ([]byte, bool) {
	switch cmd.Kind {
	case CmdReverse:
		reverseBytes(cur)
		return cur, true

	case CmdDuplicate:
		return append(cur, cur...), true

	case CmdReflect:
		rev := make([]byte, curlen)
		copy(rev, cur)
		reverseBytes(rev)
		return append(cur, rev...), true

	case CmdRotLeft:
		if curlen == 0 {
			return cur, true
		}
		out := make([]byte, curlen)
		copy(out, cur[1:])
		out[curlen-1] = cur[0]
		return out, true

	case CmdRotRight:
		if curlen == 0 {
			return cur, true
		}
		out := make([]byte, curlen)
		out[0] = cur[curlen-1]
		copy(out[1:], cur[:curlen-1])
		return out, true

	case CmdSwapFirstTwo:
		if curlen < 2 {
			return nil, false
		}
		cur[0], cur[1] = cur[1], cur[0]
		return cur, true

	case CmdSwapLastTwo:
		if curlen < 2 {
			return nil, false
		}
		last := cur[curlen-1]
		prev := cur[curlen-2]
		cur[curlen-2] = last
		cur[curlen-1] = prev
		return cur, true

	case CmdSwap:
		p1 := int(evalLength(cmd.N, env))
		p2 := int(evalLength(cmd.N2, env))
		if curlen <= p1 || curlen <= p2 {
			return nil, false
		}
		cur[p1], cur[p2] = cur[p2], cur[p1]
		return cur, true

	case CmdDupWordNTimes:
		n := int(evalLength(cmd.N, env))
		initial := make([]byte, curlen)
		copy(initial, cur)
		out := make([]byte, curlen, curlen*(n+1))
		copy(out, cur)
		for i := 0; i < n; i++ {
			out = append(out, initial...)
		}
		return out, true

	case CmdDupeAllChar:
		out := make([]byte, 0, curlen*2)
		for _, c := range cur {
			out = append(out, c, c)
		}
		return out, true

	case CmdDupeFirstChar:
		if curlen == 0 {
			return nil, false
		}
		n := int(evalLength(cmd.N, env))
		out := make([]byte, 0, n+curlen)
		for i := 0; i < n; i++ {
			out = append(out, cur[0])
		}
		out = append(out, cur...)
		return out, true

	case CmdDupeLastChar:
		if curlen == 0 {
			return nil, false
		}
		n := int(evalLength(cmd.N, env))
		last := cur[curlen-1]
		out := make([]byte, curlen, curlen+n)
		copy(out, cur)
		for i := 0; i < n; i++ {
			out = append(out, last)
		}
		return out, true

	case CmdDupFirstString:
		n := int(evalLength(cmd.N, env))
		if n >= curlen {
			return nil, false
		}
		out := make([]byte, 0, curlen+n)
		out = append(out, cur[:n]...)
		out = append(out, cur...)
		return out, true

	case CmdDupLastString:
		n := int(evalLength(cmd.N, env))
		if curlen < n {
			return nil, false
		}
		idx := curlen - n
		out := make([]byte, curlen, curlen+n)
		copy(out, cur)
		out = append(out, cur[idx:]...)
		return out, true
	}
	return cur, true
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
