package diff

import "sort"

// Tag classifies how a contiguous left range relates to a contiguous
// right range.
type Tag byte

const (
	TagEqual   Tag = 'e'
	TagDelete  Tag = 'd'
	TagInsert  Tag = 'i'
	TagReplace Tag = 'r'
)

func (t Tag) String() string {
	switch t {
	case TagEqual:
		return "equal"
	case TagDelete:
		return "delete"
	case TagInsert:
		return "insert"
	case TagReplace:
		return "replace"
	}
	return "unknown"
}

// Opcode describes how left[I1:I2] relates to right[J1:J2]. Consecutive
// opcodes are contiguous: the I2/J2 of one equal the I1/J1 of the next,
// and together they cover both sequences completely.
type Opcode struct {
	Tag            Tag
	I1, I2, J1, J2 int
}

type block struct {
	a, b, size int
}

// matcher finds the longest contiguous matching blocks between two
// sequences, in the Ratcliff/Obershelp style: locate the longest common
// block, then treat the windows before and after it the same way. Ties
// between equally long blocks go to the match starting earliest in a,
// then earliest in b. This does not produce minimal edit scripts; it
// produces diffs that read well.
type matcher[T comparable] struct {
	a, b []T
	b2j  map[T][]int
}

// newMatcher indexes b for matching. When autoJunk is set and b has 200
// or more elements, elements accounting for more than 1% of b are
// dropped from the index, which keeps the inner loop from degenerating
// on sequences dominated by a few repeated values (blank lines, mostly).
func newMatcher[T comparable](a, b []T, autoJunk bool) *matcher[T] {
	m := &matcher[T]{a: a, b: b}
	b2j := make(map[T][]int, len(b))
	for i, v := range b {
		b2j[v] = append(b2j[v], i)
	}
	if autoJunk && len(b) >= 200 {
		ntest := len(b)/100 + 1
		for v, indices := range b2j {
			if len(indices) > ntest {
				delete(b2j, v)
			}
		}
	}
	m.b2j = b2j
	return m
}

// findLongestMatch returns the longest block common to a[alo:ahi] and
// b[blo:bhi]. Of all maximal blocks it returns the one starting earliest
// in a, and of those, earliest in b. A zero-size block means no element
// is shared.
func (m *matcher[T]) findLongestMatch(alo, ahi, blo, bhi int) block {
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j] is the length of the longest match ending with a[i-1]
	// and b[j].
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		newj2len := map[int]int{}
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	// Elements pruned from the index (popular ones) can still extend
	// the best match on either side.
	for besti > alo && bestj > blo && m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi &&
		m.a[besti+bestsize] == m.b[bestj+bestsize] {
		bestsize++
	}

	return block{a: besti, b: bestj, size: bestsize}
}

// matchingBlocks returns all matched blocks in order, terminated by a
// zero-size sentinel at (len(a), len(b)). The windows around each found
// block are processed from an explicit worklist rather than by
// recursion, so pathological inputs cannot grow the call stack; blocks
// are position-sorted afterwards, which restores the order the
// recursive formulation would emit.
func (m *matcher[T]) matchingBlocks() []block {
	type window struct {
		alo, ahi, blo, bhi int
	}
	work := []window{{0, len(m.a), 0, len(m.b)}}
	var found []block
	for len(work) > 0 {
		w := work[len(work)-1]
		work = work[:len(work)-1]
		bl := m.findLongestMatch(w.alo, w.ahi, w.blo, w.bhi)
		if bl.size == 0 {
			continue
		}
		found = append(found, bl)
		if w.alo < bl.a && w.blo < bl.b {
			work = append(work, window{w.alo, bl.a, w.blo, bl.b})
		}
		if bl.a+bl.size < w.ahi && bl.b+bl.size < w.bhi {
			work = append(work, window{bl.a + bl.size, w.ahi, bl.b + bl.size, w.bhi})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].a < found[j].a })

	// Collapse adjacent blocks so equal runs are maximal.
	merged := make([]block, 0, len(found)+1)
	var cur block
	for _, bl := range found {
		if cur.size > 0 && cur.a+cur.size == bl.a && cur.b+cur.size == bl.b {
			cur.size += bl.size
			continue
		}
		if cur.size > 0 {
			merged = append(merged, cur)
		}
		cur = bl
	}
	if cur.size > 0 {
		merged = append(merged, cur)
	}
	merged = append(merged, block{a: len(m.a), b: len(m.b)})
	return merged
}

// opcodes turns the matched blocks into a contiguous opcode partition of
// both sequences.
func (m *matcher[T]) opcodes() []Opcode {
	blocks := m.matchingBlocks()
	ops := make([]Opcode, 0, len(blocks)*2)
	i, j := 0, 0
	for _, bl := range blocks {
		var tag Tag
		switch {
		case i < bl.a && j < bl.b:
			tag = TagReplace
		case i < bl.a:
			tag = TagDelete
		case j < bl.b:
			tag = TagInsert
		}
		if tag != 0 {
			ops = append(ops, Opcode{Tag: tag, I1: i, I2: bl.a, J1: j, J2: bl.b})
		}
		i, j = bl.a+bl.size, bl.b+bl.size
		if bl.size > 0 {
			ops = append(ops, Opcode{Tag: TagEqual, I1: bl.a, I2: i, J1: bl.b, J2: j})
		}
	}
	return ops
}

// Opcodes computes the opcode partition of a and b. Two empty sequences
// produce no opcodes.
func Opcodes[T comparable](a, b []T) []Opcode {
	return newMatcher(a, b, true).opcodes()
}
