package stats

import "testing"

func TestCompare(t *testing.T) {
	cases := []struct {
		name  string
		left  []string
		right []string
		want  Stats
	}{
		{
			name:  "identical",
			left:  []string{"a", "b"},
			right: []string{"a", "b"},
			want:  Stats{LeftLines: 2, RightLines: 2, Same: 2},
		},
		{
			name:  "one changed",
			left:  []string{"a", "b"},
			right: []string{"a", "x"},
			want:  Stats{LeftLines: 2, RightLines: 2, Same: 1, Different: 1},
		},
		{
			name:  "right longer",
			left:  []string{"a"},
			right: []string{"a", "b", "c"},
			want:  Stats{LeftLines: 1, RightLines: 3, Same: 1, PositionShifted: 2},
		},
		{
			name: "insert shifts everything below",
			left: []string{"a", "b", "c"},
			// One line inserted at the top: positionally nothing matches.
			right: []string{"new", "a", "b", "c"},
			want:  Stats{LeftLines: 3, RightLines: 4, Different: 3, PositionShifted: 1},
		},
		{
			name: "empty both",
			want: Stats{},
		},
	}
	for _, c := range cases {
		if got := Compare(c.left, c.right); got != c.want {
			t.Errorf("%s: got %+v, want %+v", c.name, got, c.want)
		}
	}
}
