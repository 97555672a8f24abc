// Package hexdump renders binary content as the classic
// offset/hex/ASCII listing shown when a side is in binary mode.
package hexdump

import (
	"fmt"
	"strings"
)

const (
	// MaxBytes caps how much of a file is dumped.
	MaxBytes = 1 * 1024 * 1024

	bytesPerLine = 16
)

// Dump formats data as lines of "OFFSET  HEX  ASCII". Output is capped
// at MaxBytes with a trailing truncation marker.
func Dump(data []byte) []string {
	n := len(data)
	truncated := n > MaxBytes
	if truncated {
		n = MaxBytes
	}

	lines := make([]string, 0, n/bytesPerLine+2)
	for off := 0; off < n; off += bytesPerLine {
		end := off + bytesPerLine
		if end > n {
			end = n
		}
		chunk := data[off:end]

		var hexPart strings.Builder
		var asciiPart strings.Builder
		for i, b := range chunk {
			if i > 0 {
				hexPart.WriteByte(' ')
			}
			fmt.Fprintf(&hexPart, "%02X", b)
			if b >= 0x20 && b < 0x7F {
				asciiPart.WriteByte(b)
			} else {
				asciiPart.WriteByte('.')
			}
		}
		lines = append(lines, fmt.Sprintf("%08X  %-47s  %s", off, hexPart.String(), asciiPart.String()))
	}
	if truncated {
		lines = append(lines, "[... truncated]")
	}
	return lines
}
