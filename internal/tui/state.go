package tui

import (
	"github.com/interpretive-systems/filediff/internal/fileio"
	"github.com/interpretive-systems/filediff/internal/theme"
	"github.com/interpretive-systems/filediff/internal/tui/components"
	"github.com/interpretive-systems/filediff/internal/tui/search"
)

// Config carries the CLI arguments into the TUI.
type Config struct {
	LeftPath    string
	RightPath   string
	Encoding    string
	ForceBinary bool
	ThemePath   string
}

// State holds all application state.
type State struct {
	// Inputs
	LeftPath  string
	RightPath string
	Options   fileio.Options

	// Loaded documents
	Left  *fileio.Document
	Right *fileio.Document

	// Diff lifecycle: DiffGen identifies the newest requested
	// computation; results carrying an older generation are dropped.
	DiffGen   int
	Computing bool

	// UI state
	Width      int
	Height     int
	ShowHelp   bool
	ShowStats  bool
	BinaryView bool

	// Components
	DiffPane     *components.DiffPane
	StatusBar    *components.StatusBar
	SearchEngine *search.Engine

	Theme theme.Theme
}

// NewState creates initial application state.
func NewState(cfg Config) *State {
	curTheme := theme.LoadTheme(cfg.ThemePath)
	return &State{
		LeftPath:  cfg.LeftPath,
		RightPath: cfg.RightPath,
		Options: fileio.Options{
			Encoding:    cfg.Encoding,
			ForceBinary: cfg.ForceBinary,
		},
		BinaryView:   cfg.ForceBinary,
		Theme:        curTheme,
		DiffPane:     components.NewDiffPane(curTheme),
		StatusBar:    components.NewStatusBar(),
		SearchEngine: search.New(),
	}
}
