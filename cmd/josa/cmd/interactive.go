package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive particle explorer",
	Long: `Launch the interactive TUI. Type a word to see every well-known
particle resolved for it, with the phoneme breakdown of its final
syllable.

This is also what plain 'josa' does.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
