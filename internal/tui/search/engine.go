// Package search finds and highlights query matches in the rendered
// diff lines.
package search

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Engine manages search state over the currently rendered content.
type Engine struct {
	query   string
	matches []int // line indices with matches
	index   int   // current match index
	input   textinput.Model
	active  bool
	content []string
}

// New creates a new search engine.
func New() *Engine {
	ti := textinput.New()
	ti.Placeholder = "Search diff"
	ti.Prompt = "/ "
	ti.CharLimit = 0
	return &Engine{input: ti}
}

// Activate opens the search input.
func (e *Engine) Activate() {
	e.active = true
	e.input.Focus()
}

// Deactivate closes search. The query and matches survive so n/N keep
// working.
func (e *Engine) Deactivate() {
	e.active = false
	e.input.Blur()
}

// IsActive reports whether the search input owns key events.
func (e *Engine) IsActive() bool {
	return e.active
}

// HandleKey processes key input while search is active.
func (e *Engine) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		e.Deactivate()
		return nil
	case "enter", "down":
		e.Next()
		return nil
	case "up":
		e.Previous()
		return nil
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	e.query = e.input.Value()
	e.recomputeMatches()
	return cmd
}

// SetContent updates the lines to search through.
func (e *Engine) SetContent(lines []string) {
	e.content = lines
	e.recomputeMatches()
}

// Query returns the current search query.
func (e *Engine) Query() string {
	return e.query
}

func (e *Engine) recomputeMatches() {
	if e.query == "" {
		e.matches = nil
		e.index = 0
		return
	}
	lowerQuery := strings.ToLower(e.query)
	matches := make([]int, 0, len(e.content))
	for i, line := range e.content {
		plain := strings.ToLower(ansi.Strip(line))
		if strings.Contains(plain, lowerQuery) {
			matches = append(matches, i)
		}
	}
	e.matches = matches
	if len(matches) > 0 && e.index >= len(matches) {
		e.index = 0
	}
}

// Next advances to the next match.
func (e *Engine) Next() {
	if len(e.matches) == 0 {
		return
	}
	e.index = (e.index + 1) % len(e.matches)
}

// Previous moves to the previous match.
func (e *Engine) Previous() {
	if len(e.matches) == 0 {
		return
	}
	e.index = (e.index - 1 + len(e.matches)) % len(e.matches)
}

// CurrentMatchLine returns the line index of the current match, or -1.
func (e *Engine) CurrentMatchLine() int {
	if len(e.matches) == 0 {
		return -1
	}
	return e.matches[e.index]
}

// MatchCount returns the number of matching lines.
func (e *Engine) MatchCount() int {
	return len(e.matches)
}

// CurrentMatchIndex returns the 1-based index of the current match.
func (e *Engine) CurrentMatchIndex() int {
	if len(e.matches) == 0 {
		return 0
	}
	return e.index + 1
}

// HighlightedContent returns the content with query occurrences
// emphasized on matching lines.
func (e *Engine) HighlightedContent() []string {
	if e.query == "" || len(e.matches) == 0 {
		return e.content
	}
	current := e.CurrentMatchLine()
	matchSet := make(map[int]struct{}, len(e.matches))
	for _, idx := range e.matches {
		matchSet[idx] = struct{}{}
	}
	out := make([]string, len(e.content))
	for i, line := range e.content {
		if _, ok := matchSet[i]; !ok {
			out[i] = line
			continue
		}
		out[i] = highlightLine(line, e.query, i == current)
	}
	return out
}

// InputView returns the text input view.
func (e *Engine) InputView() string {
	return e.input.View()
}
