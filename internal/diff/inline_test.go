package diff

import (
	"strings"
	"testing"
)

func joinSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestInlineDiff_SuffixChange(t *testing.T) {
	left, right := InlineDiff("foobar", "foobaz")

	wantLeft := []Span{{Text: "fooba"}, {Text: "r", Highlight: true}}
	wantRight := []Span{{Text: "fooba"}, {Text: "z", Highlight: true}}
	if len(left) != 2 || left[0] != wantLeft[0] || left[1] != wantLeft[1] {
		t.Fatalf("left spans: %+v", left)
	}
	if len(right) != 2 || right[0] != wantRight[0] || right[1] != wantRight[1] {
		t.Fatalf("right spans: %+v", right)
	}
}

func TestInlineDiff_RoundTrip(t *testing.T) {
	cases := [][2]string{
		{"foobar", "foobaz"},
		{"same", "same"},
		{"abc", "xyz"},
		{"", ""},
		{"nonempty", ""},
		{"", "nonempty"},
		{"héllo wörld", "hello world"},
		{"日本語テキスト", "日本語のテキスト"},
		{"a", "aaaa"},
	}
	for i, c := range cases {
		left, right := InlineDiff(c[0], c[1])
		if got := joinSpans(left); got != c[0] {
			t.Fatalf("case %d: left round-trip %q != %q", i, got, c[0])
		}
		if got := joinSpans(right); got != c[1] {
			t.Fatalf("case %d: right round-trip %q != %q", i, got, c[1])
		}
	}
}

func TestInlineDiff_NoCommonCharacters(t *testing.T) {
	left, right := InlineDiff("abc", "xyz")
	if len(left) != 1 || !left[0].Highlight || left[0].Text != "abc" {
		t.Fatalf("left spans: %+v", left)
	}
	if len(right) != 1 || !right[0].Highlight || right[0].Text != "xyz" {
		t.Fatalf("right spans: %+v", right)
	}
}

func TestInlineDiff_EqualLinesProduceNoHighlights(t *testing.T) {
	left, right := InlineDiff("identical", "identical")
	for _, s := range left {
		if s.Highlight {
			t.Fatalf("unexpected highlight on left: %+v", left)
		}
	}
	for _, s := range right {
		if s.Highlight {
			t.Fatalf("unexpected highlight on right: %+v", right)
		}
	}
}
