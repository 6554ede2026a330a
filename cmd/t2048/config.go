package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagShowDifficulty string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The output can be saved to ~/.t2048/configs/t2048.yaml and edited.

Examples:
  t2048 config
  t2048 config --difficulty hard
  t2048 config --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowDifficulty, "difficulty", "", "Apply a difficulty preset before printing")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, _, err := loadConfig(flagShowDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	enc.Close() //nolint:errcheck
}
