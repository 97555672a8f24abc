package search

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	// Normal match: black on bright white.
	matchStartSeq = "\x1b[30;107m"
	// Current match: black on yellow.
	currentMatchStartSeq = "\x1b[30;43m"
	matchEndSeq          = "\x1b[0m"
)

// highlightLine wraps each query occurrence in emphasis codes. It works
// on the stripped line: a matched line trades its diff coloring for the
// search emphasis, which keeps matches visible regardless of the
// underlying row style.
func highlightLine(line, query string, current bool) string {
	plain := ansi.Strip(line)
	start := matchStartSeq
	if current {
		start = currentMatchStartSeq
	}

	var b strings.Builder
	from := 0
	for {
		idx := foldIndex(plain, query, from)
		if idx < 0 {
			b.WriteString(plain[from:])
			break
		}
		b.WriteString(plain[from:idx])
		b.WriteString(start)
		b.WriteString(plain[idx : idx+len(query)])
		b.WriteString(matchEndSeq)
		from = idx + len(query)
	}
	return b.String()
}

// foldIndex finds the first case-insensitive occurrence of sub in s at
// or after from, comparing equal-length byte windows.
func foldIndex(s, sub string, from int) int {
	if sub == "" {
		return -1
	}
	for i := from; i+len(sub) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}
