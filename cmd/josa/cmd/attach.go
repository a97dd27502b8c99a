package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f3rmion/josa"
)

var attachCmd = &cobra.Command{
	Use:   "attach <word> <particle>...",
	Short: "Attach one or more particles to a word",
	Long: `Attach particles to a word, resolving each allomorph from the
word's final sound.

Example:
  josa attach 집 은 이 으로
  집은 집이 집으로

  josa attach 나오 은 이 으로
  나오는 나오가 나오로`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAttach,
}

func init() {
	rootCmd.AddCommand(attachCmd)
}

func runAttach(cmd *cobra.Command, args []string) error {
	registry, style, err := setup()
	if err != nil {
		return err
	}

	word := args[0]
	for i, form := range args[1:] {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(registry.Postfix(word, form, josa.WithToleranceStyle(style)))
	}
	fmt.Println()
	return nil
}
