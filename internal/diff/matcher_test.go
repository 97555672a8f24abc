package diff

import (
	"fmt"
	"testing"
)

func TestOpcodes_ReplaceInMiddle(t *testing.T) {
	left := []string{"a", "b", "c"}
	right := []string{"a", "x", "c"}

	ops := Opcodes(left, right)
	want := []Opcode{
		{TagEqual, 0, 1, 0, 1},
		{TagReplace, 1, 2, 1, 2},
		{TagEqual, 2, 3, 2, 3},
	}
	if len(ops) != len(want) {
		t.Fatalf("got %d opcodes, want %d: %v", len(ops), len(want), ops)
	}
	for i, op := range ops {
		if op != want[i] {
			t.Fatalf("opcode %d: got %v, want %v", i, op, want[i])
		}
	}
}

func TestOpcodes_EmptyInputs(t *testing.T) {
	if ops := Opcodes[string](nil, nil); len(ops) != 0 {
		t.Fatalf("expected no opcodes for empty inputs, got %v", ops)
	}
	ops := Opcodes(nil, []string{"x"})
	if len(ops) != 1 || ops[0].Tag != TagInsert {
		t.Fatalf("expected single insert, got %v", ops)
	}
	ops = Opcodes([]string{"x", "y"}, nil)
	if len(ops) != 1 || ops[0].Tag != TagDelete || ops[0].I2 != 2 {
		t.Fatalf("expected single delete of two lines, got %v", ops)
	}
}

func TestOpcodes_LeftmostTieBreak(t *testing.T) {
	// Both "x" occurrences in the left sequence are maximal matches for
	// the single right "x"; the earliest left start must win.
	ops := Opcodes([]string{"x", "a", "x"}, []string{"x"})
	want := []Opcode{
		{TagEqual, 0, 1, 0, 1},
		{TagDelete, 1, 3, 1, 1},
	}
	if len(ops) != len(want) {
		t.Fatalf("got %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("opcode %d: got %v, want %v", i, ops[i], want[i])
		}
	}
}

func TestOpcodes_TopmostTieBreakOnRight(t *testing.T) {
	// One left "x", two right candidates: the earliest right start wins.
	ops := Opcodes([]string{"x"}, []string{"x", "a", "x"})
	want := []Opcode{
		{TagEqual, 0, 1, 0, 1},
		{TagInsert, 1, 1, 1, 3},
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("opcode %d: got %v, want %v", i, ops[i], want[i])
		}
	}
}

func TestOpcodes_CoverageInvariant(t *testing.T) {
	cases := [][2][]string{
		{{"a", "b", "c"}, {"a", "x", "c"}},
		{{"a", "b"}, {"a"}},
		{nil, {"x"}},
		{{"one"}, {"one"}},
		{{"a", "b", "c", "d"}, {"d", "c", "b", "a"}},
		{{"", "", "x"}, {"x", "", ""}},
		{{"p", "q"}, {"r", "s", "t"}},
	}
	for i, c := range cases {
		ops := Opcodes(c[0], c[1])
		if err := checkOpcodes(ops, len(c[0]), len(c[1])); err != nil {
			t.Fatalf("case %d: %v (opcodes %v)", i, err, ops)
		}
		// Equal runs must be maximal: no two adjacent opcodes share a tag.
		for j := 1; j < len(ops); j++ {
			if ops[j].Tag == ops[j-1].Tag {
				t.Fatalf("case %d: adjacent %s opcodes at %d", i, ops[j].Tag, j)
			}
		}
	}
}

func TestOpcodes_LargeDisjointTerminates(t *testing.T) {
	// Fully disjoint sequences exercise the worklist path with zero
	// matches per window.
	var left, right []string
	for i := 0; i < 500; i++ {
		left = append(left, fmt.Sprintf("l%d", i))
		right = append(right, fmt.Sprintf("r%d", i))
	}
	ops := Opcodes(left, right)
	if len(ops) != 1 || ops[0].Tag != TagReplace {
		t.Fatalf("expected one replace opcode, got %v", ops)
	}
}

func TestRefine_OffsetsIntoParentSpace(t *testing.T) {
	// A replace block as the top-level matcher would hand it over when
	// popular-element pruning kept "b" out of the top-level index.
	left := []string{"h", "a", "b", "c", "t"}
	right := []string{"h", "x", "b", "y", "t"}
	rep := Opcode{TagReplace, 1, 4, 1, 4}
	sub := Refine(rep, left, right)
	want := []Opcode{
		{TagReplace, 1, 2, 1, 2},
		{TagEqual, 2, 3, 2, 3},
		{TagReplace, 3, 4, 3, 4},
	}
	if len(sub) != len(want) {
		t.Fatalf("got %v, want %v", sub, want)
	}
	for i := range want {
		if sub[i] != want[i] {
			t.Fatalf("sub-opcode %d: got %v, want %v", i, sub[i], want[i])
		}
	}
}
