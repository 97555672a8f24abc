package cli

import (
	"strings"
	"testing"

	"github.com/interpretive-systems/filediff/internal/diff"
)

func TestRenderPlainRows_MarkersAndAlignment(t *testing.T) {
	result, err := diff.Compute("keep\nold line\ngone\n", "keep\nnew line\n")
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	lines := renderPlainRows(result.Rows, 41)
	if len(lines) != 3 {
		t.Fatalf("expected 3 output lines, got %d: %q", len(lines), lines)
	}
	for i, line := range lines {
		if got := len([]rune(line)); got != 41 {
			t.Fatalf("line %d width = %d, want 41: %q", i, got, line)
		}
		if !strings.Contains(line, "│") {
			t.Fatalf("line %d missing divider: %q", i, line)
		}
	}

	if !strings.HasPrefix(lines[0], "  keep") {
		t.Fatalf("equal row should have blank marker: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "~ old line") {
		t.Fatalf("replaced row should carry ~ marker: %q", lines[1])
	}
	if !strings.Contains(lines[1], "~ new line") {
		t.Fatalf("replaced row right side should carry ~ marker: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "- gone") {
		t.Fatalf("deleted row should carry - marker: %q", lines[2])
	}
	right := strings.SplitN(lines[2], "│", 2)[1]
	if strings.TrimSpace(right) != "" {
		t.Fatalf("deleted row right side should be blank: %q", right)
	}
}

func TestRenderPlainRows_AddedMarker(t *testing.T) {
	result, err := diff.Compute("a\n", "a\nb\n")
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	lines := renderPlainRows(result.Rows, 41)
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "+ b") {
		t.Fatalf("inserted row should carry + marker: %q", lines[1])
	}
	left := strings.SplitN(lines[1], "│", 2)[0]
	if strings.TrimSpace(left) != "" {
		t.Fatalf("inserted row left side should be blank: %q", left)
	}
}

func TestRenderHexColumns_UnevenSides(t *testing.T) {
	left := []string{"00000000  AA", "00000010  BB"}
	right := []string{"00000000  AA"}
	lines := renderHexColumns(left, right, 61)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "00000010") {
		t.Fatalf("expected second left dump line: %q", lines[1])
	}
	rightCell := strings.SplitN(lines[1], "│", 2)[1]
	if strings.TrimSpace(rightCell) != "" {
		t.Fatalf("short side should pad with blanks: %q", rightCell)
	}
}
