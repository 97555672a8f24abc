package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/filediff/internal/tui"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "filediff <left> <right>",
		Short: "Side-by-side file comparison TUI",
		Long:  "FileDiff: Compare two files side by side with line alignment and in-line change highlighting.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(configFromFlags(cmd, args))
		},
	}

	root.PersistentFlags().StringP("encoding", "e", "", "Decode both files with this encoding (default: detect)")
	root.PersistentFlags().BoolP("binary", "b", false, "Start in binary (hex) view")
	root.PersistentFlags().StringP("theme", "t", "", "Path to theme JSON (default: user config dir)")

	root.AddCommand(newPrintCmd())

	if err := root.Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func configFromFlags(cmd *cobra.Command, args []string) tui.Config {
	return tui.Config{
		LeftPath:    args[0],
		RightPath:   args[1],
		Encoding:    mustGetStringFlag(cmd, "encoding"),
		ForceBinary: mustGetBoolFlag(cmd, "binary"),
		ThemePath:   mustGetStringFlag(cmd, "theme"),
	}
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}

func mustGetBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}
