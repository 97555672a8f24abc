// Package stats counts line agreement by position, without any
// alignment: line i on the left is compared to line i on the right.
// This intentionally differs from the diff engine's row statuses: a
// single inserted line shifts everything below it and shows up here as
// many "different position" lines, which is what this view reports.
package stats

// Stats summarizes a positional comparison.
type Stats struct {
	LeftLines       int
	RightLines      int
	Same            int
	Different       int
	PositionShifted int
}

// Compare zips the two line slices index by index, padding the shorter
// side with empty strings. Equal pairs count as Same, pairs with text
// on both sides as Different, pairs where only one side has text as
// PositionShifted.
func Compare(left, right []string) Stats {
	s := Stats{LeftLines: len(left), RightLines: len(right)}
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		switch {
		case l == r:
			s.Same++
		case l != "" && r != "":
			s.Different++
		default:
			s.PositionShifted++
		}
	}
	return s
}
