package tui

import (
	"github.com/interpretive-systems/filediff/internal/diff"
	"github.com/interpretive-systems/filediff/internal/fileio"
	"github.com/interpretive-systems/filediff/internal/tui/components"
)

// fileMsg delivers one loaded side.
type fileMsg struct {
	side components.Side
	doc  *fileio.Document
	err  error
}

// diffMsg delivers one completed comparison. The generation lets stale
// results from superseded computations be discarded.
type diffMsg struct {
	gen    int
	result *diff.Result
	err    error
}
