package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format <template> <word>...",
	Short: "Fill a template, attaching particles to interpolated words",
	Long: `Fill a template with words. A placeholder {N} inserts the Nth word;
{N:particle} attaches the particle, resolved for that word.

Example:
  josa format "{0:은} {1:을} 먹었다" 나오 사과
  나오는 사과를 먹었다`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	registry, _, err := setup()
	if err != nil {
		return err
	}

	fmt.Println(registry.Format(args[0], args[1:]...))
	return nil
}
