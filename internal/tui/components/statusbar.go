package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/interpretive-systems/filediff/internal/fileio"
)

// StatusBar shows the per-side file summaries and transient status
// text at the bottom of the screen.
type StatusBar struct {
	left      fileio.Summary
	right     fileio.Summary
	hasLeft   bool
	hasRight  bool
	status    string
	keyBuffer string
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetSummary records one side's summary.
func (s *StatusBar) SetSummary(side Side, sum fileio.Summary) {
	if side == SideLeft {
		s.left = sum
		s.hasLeft = true
	} else {
		s.right = sum
		s.hasRight = true
	}
}

// SetStatus sets transient status text (errors, progress); empty clears.
func (s *StatusBar) SetStatus(msg string) {
	s.status = msg
}

// SetKeyBuffer updates the pending-count display.
func (s *StatusBar) SetKeyBuffer(buf string) {
	s.keyBuffer = buf
}

// Render renders the status bar: left summary, right summary, and the
// status or help hint on the right edge.
func (s *StatusBar) Render(width int) string {
	half := width / 2
	leftCell := summaryText(s.left, s.hasLeft)
	rightCell := summaryText(s.right, s.hasRight)

	hint := "h: help"
	if s.keyBuffer != "" {
		hint = s.keyBuffer
	}
	if s.status != "" {
		hint = s.status
	}
	hintStyled := lipgloss.NewStyle().Faint(true).Render(hint)
	hintW := lipgloss.Width(hintStyled)
	if hintW >= width {
		return ansi.Truncate(hintStyled, width, "…")
	}

	avail := width - hintW - 1
	leftW := avail / 2
	rightW := avail - leftW
	if leftW > half {
		leftW = half
	}
	body := fit(leftCell, leftW) + fit(rightCell, rightW)
	if lipgloss.Width(body) < avail {
		body += strings.Repeat(" ", avail-lipgloss.Width(body))
	}
	return body + " " + hintStyled
}

func summaryText(sum fileio.Summary, loaded bool) string {
	if !loaded {
		return lipgloss.NewStyle().Faint(true).
			Render("Line count: 0 | Char count: 0 | Encoding: None")
	}
	return fmt.Sprintf("Line count: %d | Char count: %d | Encoding: %s",
		sum.LineCount, sum.CharCount, sum.Encoding)
}

func fit(s string, w int) string {
	sw := lipgloss.Width(s)
	if sw > w {
		return ansi.Truncate(s, w, "…")
	}
	return s + strings.Repeat(" ", w-sw)
}
