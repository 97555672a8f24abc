// Package theme holds the color palette and gutter symbols used to
// paint aligned rows. A JSON file can override individual colors; unset
// fields keep their defaults.
package theme

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// Gutter symbols, one per row status.
const (
	SymbolAdded    = "+"
	SymbolRemoved  = "–"
	SymbolReplaced = "≈"
)

// Theme defines customizable colors for rendering.
type Theme struct {
	AddColor     string `json:"addColor"`
	DelColor     string `json:"delColor"`
	ReplaceColor string `json:"replaceColor"`
	InlineBg     string `json:"inlineBgColor"`
	MetaColor    string `json:"metaColor"`
	DividerColor string `json:"dividerColor"`
}

// DefaultTheme returns the built-in dark palette.
func DefaultTheme() Theme {
	return Theme{
		AddColor:     "34",
		DelColor:     "196",
		ReplaceColor: "214",
		InlineBg:     "94",
		MetaColor:    "63",
		DividerColor: "240",
	}
}

// DefaultPath is the theme file looked up when --theme is not given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "filediff", "theme.json")
}

// LoadTheme reads a theme file and merges it over the defaults, keeping
// defaults for empty fields. A missing or malformed file yields the
// defaults unchanged.
func LoadTheme(path string) Theme {
	t := DefaultTheme()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return t
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return t
	}
	var u Theme
	if err := json.Unmarshal(b, &u); err != nil {
		return t
	}
	if u.AddColor != "" {
		t.AddColor = u.AddColor
	}
	if u.DelColor != "" {
		t.DelColor = u.DelColor
	}
	if u.ReplaceColor != "" {
		t.ReplaceColor = u.ReplaceColor
	}
	if u.InlineBg != "" {
		t.InlineBg = u.InlineBg
	}
	if u.MetaColor != "" {
		t.MetaColor = u.MetaColor
	}
	if u.DividerColor != "" {
		t.DividerColor = u.DividerColor
	}
	return t
}

func (t Theme) AddText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.AddColor)).Render(s)
}

func (t Theme) DelText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DelColor)).Render(s)
}

func (t Theme) ReplaceText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.ReplaceColor)).Render(s)
}

// InlineText marks the changed run inside a replaced line.
func (t Theme) InlineText(s string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.ReplaceColor)).
		Background(lipgloss.Color(t.InlineBg)).
		Render(s)
}

func (t Theme) MetaText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.MetaColor)).Render(s)
}

func (t Theme) DividerText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DividerColor)).Render(s)
}
