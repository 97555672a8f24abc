package ansi

import (
    "strings"

    "github.com/charmbracelet/x/ansi"
)

// WrapLine wraps a single line to the given width, preserving ANSI codes.
func WrapLine(s string, width int) []string {
    if width <= 0 {
        return []string{""}
    }
    wrapped := ansi.Hardwrap(s, width, false)
    return strings.Split(wrapped, "\n")
}
