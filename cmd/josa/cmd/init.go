package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize josa configuration",
	Long: `Create a config.yaml template in your config directory.

The file lets you pick a tolerance style and define extra particles:

  tolerance_style: "(은)는"
  particles:
    - morph1: 이랑
      morph2: 랑`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

const configTemplate = `# josa configuration
#
# tolerance_style picks the bracketed spelling used when a word's final
# sound cannot be determined. Give an index 0-3 or an example form:
#   0: 은(는)   1: (은)는   2: 는(은)   3: (는)은
#tolerance_style: "(은)는"

# Extra particles, merged after the well-known catalog. morph1 follows
# a consonant, morph2 follows a vowel.
#particles:
#  - morph1: 이랑
#    morph2: 랑
`

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()

	path := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit config.yaml to pick a tolerance style or add particles")
	fmt.Println("  2. Run 'josa lookup <word>' to see every particle for a word")
	fmt.Println("  3. Run 'josa' for the interactive explorer")

	return nil
}
