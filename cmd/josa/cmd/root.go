// Package cmd contains all CLI commands for the josa tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/josa"
	"github.com/f3rmion/josa/internal/config"
	"github.com/f3rmion/josa/internal/tui"
)

var (
	cfgFile   string
	styleFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "josa",
	Short: "Korean particle helper - attach the right allomorph to any word",
	Long: `josa resolves which spelling of a Korean particle follows a word.

Many particles change shape depending on whether the word ends in a
consonant or a vowel:

  집 + 이(가) → 집이      (final consonant, so 이)
  나오 + 이(가) → 나오가  (final vowel, so 가)

When the final sound cannot be determined, josa falls back to a
tolerant spelling such as 은(는).

Running 'josa' without arguments launches the interactive TUI.`,
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/josa)")
	rootCmd.PersistentFlags().StringVarP(&styleFlag, "style", "s", "", "tolerance style: an index 0-3 or an example such as '(은)는'")

	viper.BindPFlag("style", rootCmd.PersistentFlags().Lookup("style"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", filepath.Join(home, ".config", "josa"))
	}

	viper.SetEnvPrefix("JOSA")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// setup loads the user config and resolves the registry and tolerance
// style, with the --style flag taking precedence over the config file.
func setup() (*josa.Registry, josa.ToleranceStyle, error) {
	cfg, err := config.LoadDir(getConfigDir())
	if err != nil {
		return nil, 0, err
	}

	registry, err := cfg.Registry()
	if err != nil {
		return nil, 0, err
	}

	if s := viper.GetString("style"); s != "" {
		cfg.ToleranceStyle = s
	}
	style, err := cfg.Style(registry)
	if err != nil {
		return nil, 0, err
	}

	return registry, style, nil
}

// runInteractive launches the TUI.
func runInteractive(cmd *cobra.Command, args []string) error {
	registry, style, err := setup()
	if err != nil {
		return err
	}
	if err := tui.Run(registry, style); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
