// Package fileio loads one side of a comparison: raw bytes, decoded
// text, and the line/char/encoding summary the status bar shows. The
// diff engine never touches files; it receives already-decoded text
// from here.
package fileio

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/interpretive-systems/filediff/internal/diff"
)

const (
	// MaxTextFileSize is the largest file decoded as text; anything
	// bigger falls through to binary mode.
	MaxTextFileSize = 10 * 1024 * 1024

	binaryProbeSize = 8192
)

// Options controls how a file is loaded.
type Options struct {
	// Encoding forces a decoder by name ("utf-8", "utf-16le", "latin-1",
	// ...). Empty means detect.
	Encoding string
	// ForceBinary skips decoding entirely.
	ForceBinary bool
}

// Summary is the per-side line in the status bar.
type Summary struct {
	LineCount int
	CharCount int
	Encoding  string
}

// Document is one loaded side.
type Document struct {
	Path    string
	Raw     []byte
	Text    string
	Summary Summary
	Binary  bool
}

// Load reads and decodes the file at path. Oversized files, files with
// NUL bytes near the start, and ForceBinary all yield a Document with
// Binary set and no decoded text.
func Load(path string, opts Options) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file: %s", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	// A UTF-16/32 BOM means NUL bytes are expected; only NUL-probe
	// undeclared content.
	_, _, hasBOM := sniffBOM(raw)
	probeBinary := opts.Encoding == "" && !hasBOM && looksBinary(raw)

	doc := &Document{Path: path, Raw: raw}
	if opts.ForceBinary || int64(len(raw)) > MaxTextFileSize || probeBinary {
		doc.Binary = true
		doc.Summary.Encoding = "binary"
		return doc, nil
	}

	text, label, err := Decode(raw, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	doc.Text = text
	doc.Summary = Summary{
		LineCount: len(diff.SplitLines(text)),
		CharCount: utf8.RuneCountInString(text),
		Encoding:  label,
	}
	return doc, nil
}

// Decode converts raw bytes to a UTF-8 string. With an empty name it
// sniffs a BOM, then accepts valid UTF-8, then falls back to Latin-1
// (which cannot fail). With a name it uses that decoder and reports an
// error for bytes the decoder rejects.
func Decode(raw []byte, name string) (text, label string, err error) {
	if name != "" {
		enc, canonical, err := lookupEncoding(name)
		if err != nil {
			return "", "", err
		}
		out, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			return "", "", fmt.Errorf("decode as %s: %w", canonical, err)
		}
		return string(out), canonical, nil
	}

	if enc, canonical, ok := sniffBOM(raw); ok {
		out, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			return "", "", fmt.Errorf("decode as %s: %w", canonical, err)
		}
		return string(out), canonical, nil
	}
	if utf8.Valid(raw) {
		return string(raw), "utf-8", nil
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", "", fmt.Errorf("decode as latin-1: %w", err)
	}
	return string(out), "latin-1", nil
}

func sniffBOM(raw []byte) (encoding.Encoding, string, bool) {
	switch {
	case bytes.HasPrefix(raw, []byte{0x00, 0x00, 0xFE, 0xFF}):
		return utf32.UTF32(utf32.BigEndian, utf32.UseBOM), "utf-32be", true
	case bytes.HasPrefix(raw, []byte{0xFF, 0xFE, 0x00, 0x00}):
		return utf32.UTF32(utf32.LittleEndian, utf32.UseBOM), "utf-32le", true
	case bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}):
		return unicode.UTF8BOM, "utf-8", true
	case bytes.HasPrefix(raw, []byte{0xFE, 0xFF}):
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), "utf-16be", true
	case bytes.HasPrefix(raw, []byte{0xFF, 0xFE}):
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), "utf-16le", true
	}
	return nil, "", false
}

func lookupEncoding(name string) (encoding.Encoding, string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return unicode.UTF8, "utf-8", nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1, "latin-1", nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, "windows-1252", nil
	case "ascii":
		// ASCII is a UTF-8 subset; decode as UTF-8.
		return unicode.UTF8, "ascii", nil
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), "utf-16", nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), "utf-16le", nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), "utf-16be", nil
	case "utf-32", "utf32":
		return utf32.UTF32(utf32.LittleEndian, utf32.UseBOM), "utf-32", nil
	case "utf-32le":
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), "utf-32le", nil
	case "utf-32be":
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), "utf-32be", nil
	}
	return nil, "", fmt.Errorf("unknown encoding %q", name)
}

// looksBinary reports whether the leading bytes contain a NUL, the
// usual quick probe for non-text content.
func looksBinary(raw []byte) bool {
	probe := raw
	if len(probe) > binaryProbeSize {
		probe = probe[:binaryProbeSize]
	}
	return bytes.IndexByte(probe, 0x00) >= 0
}
