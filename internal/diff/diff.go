// Package diff aligns two text files line by line and classifies every
// aligned row as equal, added, removed, or replaced. Matching is the
// longest-common-block recursion difflib popularized, not Myers
// edit-distance: it is fast and its output reads well, but it makes no
// minimality guarantee. Replaced row pairs can be refined further into
// character-level highlight spans with InlineDiff.
//
// A computation is pure and self-contained: it owns its inputs, shares
// no state, and either returns a complete row sequence or an error,
// never a partial result. That makes Compute safe to run on a worker
// goroutine while the caller stays responsive.
package diff

import (
	"fmt"
	"strings"
)

// Result is the complete outcome of one comparison.
type Result struct {
	Rows []Row
}

// Compute splits both texts into lines, aligns them, and returns the
// aligned rows. Either side being empty yields ErrEmptyInput. A
// detected internal inconsistency yields an error wrapping ErrInvariant
// and no rows.
func Compute(leftText, rightText string) (*Result, error) {
	if leftText == "" || rightText == "" {
		return nil, ErrEmptyInput
	}
	left := SplitLines(leftText)
	right := SplitLines(rightText)

	ops := Opcodes(left, right)
	if err := checkOpcodes(ops, len(left), len(right)); err != nil {
		return nil, err
	}

	rows := Align(ops, left, right)
	minRows := len(left)
	if len(right) > minRows {
		minRows = len(right)
	}
	if len(rows) < minRows {
		return nil, fmt.Errorf("aligned %d rows for %d/%d lines: %w",
			len(rows), len(left), len(right), ErrInvariant)
	}
	return &Result{Rows: rows}, nil
}

// SplitLines splits on \n, \r\n, and bare \r. A trailing line break
// does not produce a final empty line, matching splitlines semantics,
// so line counts do not depend on whether the file ends in a newline.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := make([]string, 0, strings.Count(s, "\n")+1)
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// checkOpcodes verifies the opcode stream partitions [0,lenA) and
// [0,lenB) contiguously with sane tags.
func checkOpcodes(ops []Opcode, lenA, lenB int) error {
	if len(ops) == 0 {
		if lenA != 0 || lenB != 0 {
			return fmt.Errorf("no opcodes for %d/%d lines: %w", lenA, lenB, ErrInvariant)
		}
		return nil
	}
	i, j := 0, 0
	for _, op := range ops {
		if op.I1 != i || op.J1 != j {
			return fmt.Errorf("opcode gap at (%d,%d), expected (%d,%d): %w",
				op.I1, op.J1, i, j, ErrInvariant)
		}
		if op.I2 < op.I1 || op.J2 < op.J1 {
			return fmt.Errorf("opcode %s has negative span: %w", op.Tag, ErrInvariant)
		}
		switch op.Tag {
		case TagEqual:
			if op.I2-op.I1 != op.J2-op.J1 {
				return fmt.Errorf("equal opcode with uneven spans: %w", ErrInvariant)
			}
		case TagDelete:
			if op.J1 != op.J2 {
				return fmt.Errorf("delete opcode consumes right lines: %w", ErrInvariant)
			}
		case TagInsert:
			if op.I1 != op.I2 {
				return fmt.Errorf("insert opcode consumes left lines: %w", ErrInvariant)
			}
		}
		i, j = op.I2, op.J2
	}
	if i != lenA || j != lenB {
		return fmt.Errorf("opcodes cover (%d,%d) of (%d,%d): %w", i, j, lenA, lenB, ErrInvariant)
	}
	return nil
}
