package timing

import "sort"

// blockMatch describes a run of identical tokens: a[aStart:aStart+size] equals
// b[bStart:bStart+size].
type blockMatch struct {
	aStart int
	bStart int
	size   int
}

type opTag uint8

const (
	opEqual opTag = iota
	opReplace
	opDelete
	opInsert
)

// opcode describes how a[i1:i2] maps onto b[j1:j2].
type opcode struct {
	tag opTag
	i1  int
	i2  int
	j1  int
	j2  int
}

// longestMatch finds the longest contiguous run of tokens shared by
// a[aLow:aHigh] and b[bLow:bHigh]. Of equally long runs it prefers the one
// starting earliest in a, then earliest in b, matching the behavior of
// classic sequence-diff implementations so results are deterministic.
func longestMatch(a, b []string, aLow, aHigh, bLow, bHigh int) blockMatch {
	positions := make(map[string][]int, bHigh-bLow)
	for j := bLow; j < bHigh; j++ {
		positions[b[j]] = append(positions[b[j]], j)
	}

	best := blockMatch{aStart: aLow, bStart: bLow}
	runs := make(map[int]int)
	for i := aLow; i < aHigh; i++ {
		next := make(map[int]int)
		for _, j := range positions[a[i]] {
			length := runs[j-1] + 1
			next[j] = length
			if length > best.size {
				best = blockMatch{aStart: i - length + 1, bStart: j - length + 1, size: length}
			}
		}
		runs = next
	}
	return best
}

// matchingBlocks returns all maximal shared runs between a and b in order,
// found by recursively splitting around the longest match. Adjacent blocks
// are merged.
func matchingBlocks(a, b []string) []blockMatch {
	type span struct{ aLow, aHigh, bLow, bHigh int }
	queue := []span{{0, len(a), 0, len(b)}}
	var found []blockMatch

	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		m := longestMatch(a, b, s.aLow, s.aHigh, s.bLow, s.bHigh)
		if m.size == 0 {
			continue
		}
		found = append(found, m)
		if s.aLow < m.aStart && s.bLow < m.bStart {
			queue = append(queue, span{s.aLow, m.aStart, s.bLow, m.bStart})
		}
		if m.aStart+m.size < s.aHigh && m.bStart+m.size < s.bHigh {
			queue = append(queue, span{m.aStart + m.size, s.aHigh, m.bStart + m.size, s.bHigh})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].aStart != found[j].aStart {
			return found[i].aStart < found[j].aStart
		}
		return found[i].bStart < found[j].bStart
	})

	merged := make([]blockMatch, 0, len(found)+1)
	for _, m := range found {
		if n := len(merged); n > 0 {
			last := &merged[n-1]
			if last.aStart+last.size == m.aStart && last.bStart+last.size == m.bStart {
				last.size += m.size
				continue
			}
		}
		merged = append(merged, m)
	}
	// Sentinel terminator simplifies opcode construction.
	merged = append(merged, blockMatch{aStart: len(a), bStart: len(b)})
	return merged
}

// opcodes expresses the difference between a and b as an ordered list of
// equal/replace/delete/insert spans covering both sequences end to end.
func opcodes(a, b []string) []opcode {
	var ops []opcode
	i, j := 0, 0
	for _, m := range matchingBlocks(a, b) {
		switch {
		case i < m.aStart && j < m.bStart:
			ops = append(ops, opcode{opReplace, i, m.aStart, j, m.bStart})
		case i < m.aStart:
			ops = append(ops, opcode{opDelete, i, m.aStart, j, j})
		case j < m.bStart:
			ops = append(ops, opcode{opInsert, i, i, j, m.bStart})
		}
		if m.size > 0 {
			ops = append(ops, opcode{opEqual, m.aStart, m.aStart + m.size, m.bStart, m.bStart + m.size})
		}
		i = m.aStart + m.size
		j = m.bStart + m.size
	}
	return ops
}
