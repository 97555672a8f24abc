package diff

// Span is a contiguous substring of one line, marked changed or
// unchanged. Concatenating a side's span texts reproduces that side's
// line exactly.
type Span struct {
	Text      string
	Highlight bool
}

// InlineDiff computes character-level highlight spans for a pair of
// lines, both already classified as replaced. Matching runs become
// unhighlighted spans on both sides; left-only runs highlight on the
// left, right-only runs on the right, and replaced runs on whichever
// side has text there. Matching is over runes so multi-byte characters
// never split.
func InlineDiff(left, right string) ([]Span, []Span) {
	lr := []rune(left)
	rr := []rune(right)
	// No popular-element pruning at char level: a single display line
	// is short enough that pruning only degrades the highlights.
	ops := newMatcher(lr, rr, false).opcodes()
	var leftSpans, rightSpans []Span
	for _, op := range ops {
		lt := string(lr[op.I1:op.I2])
		rt := string(rr[op.J1:op.J2])
		switch op.Tag {
		case TagEqual:
			leftSpans = append(leftSpans, Span{Text: lt})
			rightSpans = append(rightSpans, Span{Text: rt})
		case TagDelete:
			leftSpans = append(leftSpans, Span{Text: lt, Highlight: true})
		case TagInsert:
			rightSpans = append(rightSpans, Span{Text: rt, Highlight: true})
		case TagReplace:
			if lt != "" {
				leftSpans = append(leftSpans, Span{Text: lt, Highlight: true})
			}
			if rt != "" {
				rightSpans = append(rightSpans, Span{Text: rt, Highlight: true})
			}
		}
	}
	return leftSpans, rightSpans
}
