package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/filediff/internal/diff"
	"github.com/interpretive-systems/filediff/internal/hexdump"
	"github.com/interpretive-systems/filediff/internal/stats"
	"github.com/interpretive-systems/filediff/internal/tui/components"
)

// Program is the Bubble Tea model for the comparison view.
type Program struct {
	state      *State
	layout     *Layout
	keyHandler *KeyHandler
}

// NewProgram creates the model for a left/right comparison.
func NewProgram(cfg Config) Program {
	return Program{
		state:      NewState(cfg),
		layout:     NewLayout(),
		keyHandler: NewKeyHandler(),
	}
}

// Run instantiates and runs the Bubble Tea program.
func Run(cfg Config) error {
	p := tea.NewProgram(NewProgram(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func (m Program) Init() tea.Cmd {
	s := m.state
	return tea.Batch(
		loadFile(components.SideLeft, s.LeftPath, s.Options),
		loadFile(components.SideRight, s.RightPath, s.Options),
	)
}

func (m Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := m.state
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.Width = msg.Width
		s.Height = msg.Height
		m.layout.SetSize(msg.Width, msg.Height)
		m.recalcViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case fileMsg:
		if msg.err != nil {
			s.StatusBar.SetStatus(fmt.Sprintf("load error: %v", msg.err))
			return m, nil
		}
		if msg.side == components.SideLeft {
			s.Left = msg.doc
		} else {
			s.Right = msg.doc
		}
		s.StatusBar.SetSummary(msg.side, msg.doc.Summary)
		return m, m.maybeCompare()

	case diffMsg:
		if msg.gen != s.DiffGen {
			// Superseded computation; a newer one is in flight.
			return m, nil
		}
		s.Computing = false
		if msg.err != nil {
			s.StatusBar.SetStatus(fmt.Sprintf("diff error: %v", msg.err))
			s.DiffPane.ClearRows()
			m.recalcViewport()
			return m, nil
		}
		s.StatusBar.SetStatus("")
		s.DiffPane.SetRows(msg.result.Rows)
		m.recalcViewport()
		return m, nil
	}
	return m, nil
}

func (m Program) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.state

	if s.SearchEngine.IsActive() {
		cmd := s.SearchEngine.HandleKey(msg)
		m.applySearchHighlight()
		m.scrollToCurrentMatch()
		return m, cmd
	}

	if s.ShowHelp {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "h", "esc":
			s.ShowHelp = false
			m.recalcViewport()
		}
		return m, nil
	}
	if s.ShowStats {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "v", "esc":
			s.ShowStats = false
			m.recalcViewport()
		}
		return m, nil
	}

	action, count := m.keyHandler.Handle(msg)
	s.StatusBar.SetKeyBuffer(m.keyHandler.KeyBuffer())
	vp := s.DiffPane.Viewport()

	switch action {
	case ActionQuit:
		return m, tea.Quit
	case ActionToggleHelp:
		s.ShowHelp = true
		m.recalcViewport()
	case ActionToggleStats:
		s.ShowStats = true
		m.recalcViewport()
	case ActionToggleWrap:
		s.DiffPane.SetWrap(!s.DiffPane.Wrap())
		m.recalcViewport()
	case ActionToggleBinary:
		s.BinaryView = !s.BinaryView
		return m, m.maybeCompare()
	case ActionReload:
		s.Left, s.Right = nil, nil
		s.DiffPane.ClearRows()
		s.StatusBar.SetStatus("")
		m.recalcViewport()
		return m, tea.Batch(
			loadFile(components.SideLeft, s.LeftPath, s.Options),
			loadFile(components.SideRight, s.RightPath, s.Options),
		)
	case ActionOpenSearch:
		s.SearchEngine.Activate()
		m.recalcViewport()
	case ActionSearchNext:
		s.SearchEngine.Next()
		m.applySearchHighlight()
		m.scrollToCurrentMatch()
	case ActionSearchPrevious:
		s.SearchEngine.Previous()
		m.applySearchHighlight()
		m.scrollToCurrentMatch()
	case ActionScrollLeft:
		s.DiffPane.ScrollLeft(4 * count)
		m.recalcViewport()
	case ActionScrollRight:
		s.DiffPane.ScrollRight(4 * count)
		m.recalcViewport()
	case ActionScrollHome:
		s.DiffPane.ScrollHome()
		m.recalcViewport()
	case ActionLineDown:
		vp.LineDown(count)
	case ActionLineUp:
		vp.LineUp(count)
	case ActionPageDown:
		vp.ViewDown()
	case ActionPageUp:
		vp.ViewUp()
	case ActionHalfPageDown:
		vp.HalfViewDown()
	case ActionHalfPageUp:
		vp.HalfViewUp()
	case ActionGoToTop:
		vp.GotoTop()
	case ActionGoToBottom:
		vp.GotoBottom()
	}
	return m, nil
}

// maybeCompare starts a comparison once both sides are loaded, or
// switches to hex dumps when either side is binary.
func (m Program) maybeCompare() tea.Cmd {
	s := m.state
	if s.Left == nil || s.Right == nil {
		return nil
	}
	if s.BinaryView || s.Left.Binary || s.Right.Binary {
		s.DiffPane.SetHexDumps(hexdump.Dump(s.Left.Raw), hexdump.Dump(s.Right.Raw))
		s.Computing = false
		m.recalcViewport()
		return nil
	}
	s.DiffGen++
	s.Computing = true
	m.recalcViewport()
	return computeDiff(s.DiffGen, s.Left.Text, s.Right.Text)
}

func (m Program) View() string {
	s := m.state
	if s.Width == 0 || s.Height == 0 {
		return "Loading..."
	}

	topLeft := "FileDiff"
	if s.Computing {
		topLeft += " (comparing…)"
	}
	topRight := s.Theme.MetaText(fmt.Sprintf("%s ⇄ %s", s.LeftPath, s.RightPath))
	if s.DiffPane.Binary() {
		topRight += "  [binary]"
	}

	var overlay []string
	if s.ShowHelp {
		overlay = m.helpOverlayLines(s.Width)
	}
	if s.ShowStats {
		overlay = append(overlay, m.statsOverlayLines(s.Width)...)
	}
	overlay = append(overlay, s.SearchEngine.RenderOverlay(s.Width, s.Theme.DividerColor)...)

	content := strings.Split(s.DiffPane.View(), "\n")
	bottom := s.StatusBar.Render(s.Width)

	return m.layout.RenderFrame(topLeft, topRight, content, overlay, bottom, s.Theme)
}

// recalcViewport resizes the pane and rebuilds its content, applying
// any active search highlights.
func (m Program) recalcViewport() {
	s := m.state
	if s.Width == 0 || s.Height == 0 {
		return
	}
	overlayH := 0
	if s.ShowHelp {
		overlayH += len(m.helpOverlayLines(s.Width))
	}
	if s.ShowStats {
		overlayH += len(m.statsOverlayLines(s.Width))
	}
	overlayH += len(s.SearchEngine.RenderOverlay(s.Width, s.Theme.DividerColor))

	s.DiffPane.SetSize(s.Width, m.layout.ContentHeight(overlayH))
	base := s.DiffPane.RenderContent(s.Width)
	s.SearchEngine.SetContent(base)
	s.DiffPane.SetContent(s.SearchEngine.HighlightedContent())
}

// applySearchHighlight refreshes the highlighted content without
// re-rendering the rows.
func (m Program) applySearchHighlight() {
	s := m.state
	base := s.DiffPane.RenderContent(s.Width)
	s.SearchEngine.SetContent(base)
	s.DiffPane.SetContent(s.SearchEngine.HighlightedContent())
}

// scrollToCurrentMatch centers the viewport on the current match.
func (m Program) scrollToCurrentMatch() {
	s := m.state
	line := s.SearchEngine.CurrentMatchLine()
	if line < 0 {
		return
	}
	vp := s.DiffPane.Viewport()
	target := line - vp.Height/2
	if target < 0 {
		target = 0
	}
	vp.SetYOffset(target)
}

func (m Program) helpOverlayLines(width int) []string {
	title := lipgloss.NewStyle().Bold(true).Render("Help (press 'h' or Esc to close)")
	keys := []string{
		"j/k or arrows   Scroll by line (prefix with a count)",
		"J/K, PgDn/PgUp  Scroll by page / half page",
		"g / G           Top / Bottom",
		"←/→, home       Scroll columns horizontally",
		"w               Toggle line wrap",
		"b               Toggle binary (hex) view",
		"v               View statistics",
		"/, n, N         Search / next / previous",
		"r               Reload both files",
		"q               Quit",
	}
	lines := make([]string, 0, 2+len(keys))
	lines = append(lines, strings.Repeat("─", width))
	lines = append(lines, title)
	lines = append(lines, keys...)
	return lines
}

func (m Program) statsOverlayLines(width int) []string {
	s := m.state
	lines := make([]string, 0, 10)
	lines = append(lines, strings.Repeat("─", width))
	title := lipgloss.NewStyle().Bold(true).Render("Statistics (press 'v' or Esc to close)")
	lines = append(lines, title)
	if s.Left == nil || s.Right == nil {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render("Both files must be loaded"))
		return lines
	}
	if s.Left.Binary || s.Right.Binary {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render("No statistics for binary files"))
		return lines
	}
	st := stats.Compare(diff.SplitLines(s.Left.Text), diff.SplitLines(s.Right.Text))
	lines = append(lines,
		fmt.Sprintf("Total lines left file:         %d", st.LeftLines),
		fmt.Sprintf("Total lines right file:        %d", st.RightLines),
		fmt.Sprintf("Lines same:                    %d", st.Same),
		fmt.Sprintf("Lines different:               %d", st.Different),
		fmt.Sprintf("Lines in different positions:  %d", st.PositionShifted),
		fmt.Sprintf("Character count left file:     %d", s.Left.Summary.CharCount),
		fmt.Sprintf("Character count right file:    %d", s.Right.Summary.CharCount),
	)
	return lines
}
