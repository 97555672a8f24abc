package diff

// Status is the per-side change classification of an aligned row.
type Status int

const (
	StatusEqual Status = iota
	StatusAdded
	StatusRemoved
	StatusReplaced
)

func (s Status) String() string {
	switch s {
	case StatusEqual:
		return "equal"
	case StatusAdded:
		return "added"
	case StatusRemoved:
		return "removed"
	case StatusReplaced:
		return "replaced"
	}
	return "unknown"
}

// Row pairs a left-side line with a right-side line for rendering. A
// side with no corresponding line carries empty text, StatusEqual, and
// its Missing flag set; the flag is what distinguishes a padding
// placeholder from a genuinely blank line.
type Row struct {
	Left         string
	Right        string
	LeftStatus   Status
	RightStatus  Status
	LeftMissing  bool
	RightMissing bool
}

// Align expands an opcode stream into aligned rows. Replace opcodes are
// refined one level first; line pairs inside a nested replace are
// matched positionally, with the longer side's surplus becoming
// one-sided rows. Rows come out in document order and there are at
// least max(len(left), len(right)) of them.
func Align(ops []Opcode, left, right []string) []Row {
	rows := make([]Row, 0, len(left)+len(right))
	for _, op := range ops {
		switch op.Tag {
		case TagEqual:
			rows = appendEqual(rows, op, left, right)
		case TagDelete:
			rows = appendDeleted(rows, op, left)
		case TagInsert:
			rows = appendInserted(rows, op, right)
		case TagReplace:
			for _, sub := range Refine(op, left, right) {
				switch sub.Tag {
				case TagEqual:
					rows = appendEqual(rows, sub, left, right)
				case TagDelete:
					rows = appendDeleted(rows, sub, left)
				case TagInsert:
					rows = appendInserted(rows, sub, right)
				case TagReplace:
					rows = appendPaired(rows, sub, left, right)
				}
			}
		}
	}
	return rows
}

func appendEqual(rows []Row, op Opcode, left, right []string) []Row {
	for k := 0; k < op.I2-op.I1; k++ {
		rows = append(rows, Row{
			Left:  left[op.I1+k],
			Right: right[op.J1+k],
		})
	}
	return rows
}

func appendDeleted(rows []Row, op Opcode, left []string) []Row {
	for k := op.I1; k < op.I2; k++ {
		rows = append(rows, Row{
			Left:         left[k],
			LeftStatus:   StatusRemoved,
			RightMissing: true,
		})
	}
	return rows
}

func appendInserted(rows []Row, op Opcode, right []string) []Row {
	for k := op.J1; k < op.J2; k++ {
		rows = append(rows, Row{
			Right:       right[k],
			RightStatus: StatusAdded,
			LeftMissing: true,
		})
	}
	return rows
}

// appendPaired handles a nested replace: lines are paired by offset up
// to the longer span. Classification follows the text, not the offset:
// a pair where one side is blank renders as a pure add or remove, which
// reads better than flagging a blank line as replaced.
func appendPaired(rows []Row, op Opcode, left, right []string) []Row {
	ln, rn := op.I2-op.I1, op.J2-op.J1
	count := ln
	if rn > count {
		count = rn
	}
	for k := 0; k < count; k++ {
		var row Row
		if k < ln {
			row.Left = left[op.I1+k]
		} else {
			row.LeftMissing = true
		}
		if k < rn {
			row.Right = right[op.J1+k]
		} else {
			row.RightMissing = true
		}
		switch {
		case row.Left != "" && row.Right != "":
			row.LeftStatus = StatusReplaced
			row.RightStatus = StatusReplaced
		case row.Left != "":
			row.LeftStatus = StatusRemoved
		case row.Right != "":
			row.RightStatus = StatusAdded
		}
		rows = append(rows, row)
	}
	return rows
}
