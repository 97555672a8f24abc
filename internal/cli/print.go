package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/filediff/internal/diff"
	"github.com/interpretive-systems/filediff/internal/fileio"
	"github.com/interpretive-systems/filediff/internal/hexdump"
)

// newPrintCmd renders the comparison once to stdout, without the TUI.
func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <left> <right>",
		Short: "Print the side-by-side comparison to stdout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := fileio.Options{
				Encoding:    mustGetStringFlag(cmd, "encoding"),
				ForceBinary: mustGetBoolFlag(cmd, "binary"),
			}
			width := mustGetIntFlag(cmd, "width")

			left, err := fileio.Load(args[0], opts)
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}
			right, err := fileio.Load(args[1], opts)
			if err != nil {
				return fmt.Errorf("load %s: %w", args[1], err)
			}

			var lines []string
			if opts.ForceBinary || left.Binary || right.Binary {
				lines = renderHexColumns(hexdump.Dump(left.Raw), hexdump.Dump(right.Raw), width)
			} else {
				result, err := diff.Compute(left.Text, right.Text)
				if err != nil {
					return fmt.Errorf("compare: %w", err)
				}
				lines = renderPlainRows(result.Rows, width)
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().IntP("width", "w", 160, "Total output width in columns")
	return cmd
}

// renderPlainRows renders aligned rows as two unstyled columns with a
// change marker gutter per side.
func renderPlainRows(rows []diff.Row, width int) []string {
	colW := (width - 1) / 2
	if colW < 10 {
		colW = 10
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		l := plainCell(r.Left, r.LeftStatus, r.LeftMissing, colW)
		rr := plainCell(r.Right, r.RightStatus, r.RightMissing, colW)
		lines = append(lines, l+"│"+rr)
	}
	return lines
}

func plainCell(text string, status diff.Status, missing bool, width int) string {
	marker := " "
	if missing {
		text = ""
	} else {
		switch status {
		case diff.StatusAdded:
			marker = "+"
		case diff.StatusRemoved:
			marker = "-"
		case diff.StatusReplaced:
			marker = "~"
		}
	}
	return fitCell(marker+" "+text, width)
}

func renderHexColumns(left, right []string, width int) []string {
	colW := (width - 1) / 2
	if colW < 10 {
		colW = 10
	}
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		lines = append(lines, fitCell(l, colW)+"│"+fitCell(r, colW))
	}
	return lines
}

func fitCell(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func mustGetIntFlag(cmd *cobra.Command, name string) int {
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}
