package hexdump

import (
	"strings"
	"testing"
)

func TestDump_Format(t *testing.T) {
	lines := Dump([]byte("Hello\x00World"))
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	if !strings.HasPrefix(line, "00000000  ") {
		t.Fatalf("offset prefix missing: %q", line)
	}
	if !strings.Contains(line, "48 65 6C 6C 6F 00 57 6F 72 6C 64") {
		t.Fatalf("hex bytes missing: %q", line)
	}
	if !strings.HasSuffix(line, "Hello.World") {
		t.Fatalf("ascii gutter wrong: %q", line)
	}
}

func TestDump_OffsetsAndAlignment(t *testing.T) {
	data := make([]byte, 40)
	lines := Dump(data)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[1], "00000010  ") {
		t.Fatalf("second line offset: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "00000020  ") {
		t.Fatalf("third line offset: %q", lines[2])
	}
	// Short final line still aligns the ASCII gutter.
	idx := strings.LastIndex(lines[2], "  ")
	if idx != len("00000020")+2+47 {
		t.Fatalf("ascii gutter misaligned on short line: %q", lines[2])
	}
}

func TestDump_Truncation(t *testing.T) {
	data := make([]byte, MaxBytes+bytesPerLine)
	lines := Dump(data)
	if lines[len(lines)-1] != "[... truncated]" {
		t.Fatalf("missing truncation marker: %q", lines[len(lines)-1])
	}
	if len(lines) != MaxBytes/bytesPerLine+1 {
		t.Fatalf("got %d lines", len(lines))
	}
}

func TestDump_Empty(t *testing.T) {
	if lines := Dump(nil); len(lines) != 0 {
		t.Fatalf("expected no lines, got %v", lines)
	}
}
