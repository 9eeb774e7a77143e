package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration bricks would play with, as YAML.

Search order: --config path, ~/.bricks/config.yaml, ./configs/bricks.yaml,
then the built-in defaults. Use --default to print the built-in file, a
good starting point for a custom configuration.

Examples:
  bricks config
  bricks config --default > ~/.bricks/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	data, err := config.Marshal(loadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
