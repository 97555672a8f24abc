package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/filediff/internal/diff"
	"github.com/interpretive-systems/filediff/internal/theme"
	tuiansi "github.com/interpretive-systems/filediff/internal/tui/ansi"
)

// Side selects one column of the comparison.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

type spanPair struct {
	left, right []diff.Span
}

// DiffPane renders aligned rows (or hex dumps in binary mode) as two
// columns inside a single viewport, so both sides scroll in lockstep.
type DiffPane struct {
	rows     []diff.Row
	hexLeft  []string
	hexRight []string
	binary   bool

	viewport viewport.Model
	xOffset  int
	wrap     bool
	curTheme theme.Theme

	// Inline spans are computed per replaced row on first render and
	// reused until the rows change.
	spanCache map[int]spanPair
	content   []string
}

// NewDiffPane creates a diff pane with the given theme.
func NewDiffPane(curTheme theme.Theme) *DiffPane {
	return &DiffPane{curTheme: curTheme}
}

// SetRows switches the pane to text mode with a fresh row set.
func (d *DiffPane) SetRows(rows []diff.Row) {
	d.rows = rows
	d.binary = false
	d.spanCache = make(map[int]spanPair)
}

// ClearRows drops any computed diff, leaving the loading placeholder.
func (d *DiffPane) ClearRows() {
	d.rows = nil
	d.binary = false
	d.spanCache = nil
}

// SetHexDumps switches the pane to binary mode.
func (d *DiffPane) SetHexDumps(left, right []string) {
	d.hexLeft = left
	d.hexRight = right
	d.binary = true
	d.rows = nil
	d.spanCache = nil
}

// Binary reports whether the pane is in binary mode.
func (d *DiffPane) Binary() bool {
	return d.binary
}

// SetSize updates the viewport dimensions.
func (d *DiffPane) SetSize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height
}

// Wrap reports whether long lines wrap.
func (d *DiffPane) Wrap() bool {
	return d.wrap
}

// SetWrap toggles line wrapping; wrapping resets horizontal scroll.
func (d *DiffPane) SetWrap(wrap bool) {
	d.wrap = wrap
	if wrap {
		d.xOffset = 0
	}
}

// ScrollLeft scrolls the columns left by delta.
func (d *DiffPane) ScrollLeft(delta int) {
	if d.wrap {
		return
	}
	d.xOffset -= delta
	if d.xOffset < 0 {
		d.xOffset = 0
	}
}

// ScrollRight scrolls the columns right by delta.
func (d *DiffPane) ScrollRight(delta int) {
	if d.wrap {
		return
	}
	d.xOffset += delta
}

// ScrollHome resets horizontal scroll.
func (d *DiffPane) ScrollHome() {
	d.xOffset = 0
}

// RenderContent generates the full two-column content for the given
// width.
func (d *DiffPane) RenderContent(width int) []string {
	if d.binary {
		d.content = d.renderHex(width)
		return d.content
	}
	if d.rows == nil {
		d.content = []string{"Loading…"}
		return d.content
	}
	d.content = d.renderRows(width)
	return d.content
}

// SetContent updates the viewport from rendered (possibly search
// highlighted) lines.
func (d *DiffPane) SetContent(lines []string) {
	d.content = lines
	d.viewport.SetContent(strings.Join(lines, "\n"))
}

// Content returns the last rendered lines.
func (d *DiffPane) Content() []string {
	return d.content
}

// View returns the viewport view.
func (d *DiffPane) View() string {
	return d.viewport.View()
}

// Viewport exposes the underlying viewport for scrolling.
func (d *DiffPane) Viewport() *viewport.Model {
	return &d.viewport
}

func (d *DiffPane) renderHex(width int) []string {
	colsW := (width - 1) / 2
	if colsW < 10 {
		colsW = 10
	}
	mid := d.curTheme.DividerText("│")
	n := len(d.hexLeft)
	if len(d.hexRight) > n {
		n = len(d.hexRight)
	}
	if n == 0 {
		return []string{lipgloss.NewStyle().Faint(true).Render("(both sides empty)")}
	}
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(d.hexLeft) {
			l = d.hexLeft[i]
		}
		if i < len(d.hexRight) {
			r = d.hexRight[i]
		}
		l = tuiansi.SliceHorizontal(l, d.xOffset, colsW)
		r = tuiansi.SliceHorizontal(r, d.xOffset, colsW)
		lines = append(lines, tuiansi.PadExact(l, colsW)+mid+tuiansi.PadExact(r, colsW))
	}
	return lines
}

func (d *DiffPane) renderRows(width int) []string {
	colsW := (width - 1) / 2
	if colsW < 10 {
		colsW = 10
	}
	mid := d.curTheme.DividerText("│")
	lines := make([]string, 0, len(d.rows))

	for i, r := range d.rows {
		if d.wrap {
			lLines := d.renderCellWrap(r, i, SideLeft, colsW)
			rLines := d.renderCellWrap(r, i, SideRight, colsW)
			n := len(lLines)
			if len(rLines) > n {
				n = len(rLines)
			}
			for k := 0; k < n; k++ {
				var l, rr string
				if k < len(lLines) {
					l = lLines[k]
				} else {
					l = strings.Repeat(" ", colsW)
				}
				if k < len(rLines) {
					rr = rLines[k]
				} else {
					rr = strings.Repeat(" ", colsW)
				}
				lines = append(lines, l+mid+rr)
			}
			continue
		}
		l := tuiansi.PadExact(d.renderCell(r, i, SideLeft, colsW), colsW)
		rr := tuiansi.PadExact(d.renderCell(r, i, SideRight, colsW), colsW)
		lines = append(lines, l+mid+rr)
	}
	return lines
}

// renderCell renders one side of a row: a one-column gutter symbol, a
// space, and the styled line body clipped to the cell.
func (d *DiffPane) renderCell(r diff.Row, idx int, side Side, width int) string {
	marker, content := d.styleSide(r, idx, side)
	if width <= 2 {
		return tuiansi.SliceHorizontal(marker+" ", 0, width)
	}
	body := tuiansi.SliceHorizontal(content, d.xOffset, width-2)
	return marker + " " + body
}

func (d *DiffPane) renderCellWrap(r diff.Row, idx int, side Side, width int) []string {
	marker, content := d.styleSide(r, idx, side)
	if width <= 2 {
		return []string{tuiansi.SliceHorizontal(marker+" ", 0, width)}
	}
	bodyW := width - 2
	wrapped := tuiansi.WrapLine(content, bodyW)
	out := make([]string, 0, len(wrapped))
	for _, p := range wrapped {
		out = append(out, marker+" "+tuiansi.PadExact(p, bodyW))
	}
	return out
}

func (d *DiffPane) styleSide(r diff.Row, idx int, side Side) (marker, content string) {
	marker = " "
	var text string
	var status diff.Status
	var missing bool
	if side == SideLeft {
		text, status, missing = r.Left, r.LeftStatus, r.LeftMissing
	} else {
		text, status, missing = r.Right, r.RightStatus, r.RightMissing
	}
	if missing {
		return marker, ""
	}
	switch status {
	case diff.StatusAdded:
		marker = d.curTheme.AddText(theme.SymbolAdded)
		content = d.curTheme.AddText(text)
	case diff.StatusRemoved:
		marker = d.curTheme.DelText(theme.SymbolRemoved)
		content = d.curTheme.DelText(text)
	case diff.StatusReplaced:
		marker = d.curTheme.ReplaceText(theme.SymbolReplaced)
		content = d.renderReplacedSide(r, idx, side)
	default:
		content = text
	}
	return marker, content
}

// renderReplacedSide paints a replaced line from its inline spans so
// only the changed runs get the highlight background.
func (d *DiffPane) renderReplacedSide(r diff.Row, idx int, side Side) string {
	if r.LeftStatus != diff.StatusReplaced || r.RightStatus != diff.StatusReplaced ||
		r.Left == "" || r.Right == "" {
		if side == SideLeft {
			return d.curTheme.ReplaceText(r.Left)
		}
		return d.curTheme.ReplaceText(r.Right)
	}

	pair, ok := d.spanCache[idx]
	if !ok {
		pair.left, pair.right = diff.InlineDiff(r.Left, r.Right)
		d.spanCache[idx] = pair
	}
	spans := pair.left
	if side == SideRight {
		spans = pair.right
	}
	var b strings.Builder
	for _, s := range spans {
		if s.Highlight {
			b.WriteString(d.curTheme.InlineText(s.Text))
		} else {
			b.WriteString(d.curTheme.ReplaceText(s.Text))
		}
	}
	return b.String()
}
