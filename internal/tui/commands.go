package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/filediff/internal/diff"
	"github.com/interpretive-systems/filediff/internal/fileio"
	"github.com/interpretive-systems/filediff/internal/tui/components"
)

// loadFile loads and decodes one side off the UI goroutine.
func loadFile(side components.Side, path string, opts fileio.Options) tea.Cmd {
	return func() tea.Msg {
		doc, err := fileio.Load(path, opts)
		return fileMsg{side: side, doc: doc, err: err}
	}
}

// computeDiff runs one comparison off the UI goroutine. The engine owns
// its inputs and always returns either a complete row set or an error,
// so the result lands atomically as a single message.
func computeDiff(gen int, leftText, rightText string) tea.Cmd {
	return func() tea.Msg {
		result, err := diff.Compute(leftText, rightText)
		return diffMsg{gen: gen, result: result, err: err}
	}
}
