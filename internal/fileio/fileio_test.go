package fileio

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoad_UTF8(t *testing.T) {
	path := writeTemp(t, "a.txt", []byte("one\ntwo\n"))
	doc, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Binary {
		t.Fatalf("text file flagged binary")
	}
	if doc.Text != "one\ntwo\n" {
		t.Fatalf("text: %q", doc.Text)
	}
	s := doc.Summary
	if s.LineCount != 2 || s.CharCount != 8 || s.Encoding != "utf-8" {
		t.Fatalf("summary: %+v", s)
	}
}

func TestLoad_UTF16LEWithBOM(t *testing.T) {
	// "hi\n" in UTF-16LE with BOM.
	data := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00, '\n', 0x00}
	path := writeTemp(t, "b.txt", data)
	doc, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Binary {
		t.Fatalf("BOM'd UTF-16 flagged binary")
	}
	if doc.Text != "hi\n" {
		t.Fatalf("text: %q", doc.Text)
	}
	if doc.Summary.Encoding != "utf-16le" {
		t.Fatalf("encoding label: %q", doc.Summary.Encoding)
	}
}

func TestLoad_Latin1Fallback(t *testing.T) {
	// 0xE9 is é in Latin-1 and invalid standalone UTF-8.
	path := writeTemp(t, "c.txt", []byte{'c', 'a', 'f', 0xE9, '\n'})
	doc, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Text != "café\n" {
		t.Fatalf("text: %q", doc.Text)
	}
	if doc.Summary.Encoding != "latin-1" {
		t.Fatalf("encoding label: %q", doc.Summary.Encoding)
	}
	if doc.Summary.CharCount != 5 {
		t.Fatalf("char count: %d", doc.Summary.CharCount)
	}
}

func TestLoad_BinaryProbe(t *testing.T) {
	path := writeTemp(t, "d.bin", []byte{'M', 'Z', 0x00, 0x01, 0x02})
	doc, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !doc.Binary {
		t.Fatalf("NUL-bearing file not flagged binary")
	}
	if doc.Summary.Encoding != "binary" {
		t.Fatalf("encoding label: %q", doc.Summary.Encoding)
	}
}

func TestLoad_ForceBinary(t *testing.T) {
	path := writeTemp(t, "e.txt", []byte("plain text"))
	doc, err := Load(path, Options{ForceBinary: true})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !doc.Binary || doc.Text != "" {
		t.Fatalf("ForceBinary ignored: %+v", doc)
	}
}

func TestLoad_EncodingOverride(t *testing.T) {
	path := writeTemp(t, "f.txt", []byte{'a', 0xE9})
	doc, err := Load(path, Options{Encoding: "latin-1"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Text != "aé" || doc.Summary.Encoding != "latin-1" {
		t.Fatalf("doc: %+v", doc)
	}
}

func TestLoad_UnknownEncoding(t *testing.T) {
	path := writeTemp(t, "g.txt", []byte("x"))
	if _, err := Load(path, Options{Encoding: "klingon"}); err == nil {
		t.Fatalf("expected error for unknown encoding")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt"), Options{}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_TrailingNewlineLineCount(t *testing.T) {
	with := writeTemp(t, "h1.txt", []byte("a\nb\n"))
	without := writeTemp(t, "h2.txt", []byte("a\nb"))
	d1, err := Load(with, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	d2, err := Load(without, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d1.Summary.LineCount != 2 || d2.Summary.LineCount != 2 {
		t.Fatalf("line counts: %d vs %d", d1.Summary.LineCount, d2.Summary.LineCount)
	}
}
