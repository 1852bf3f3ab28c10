package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/core-defense/internal/config"
)

var flagConfigWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the built-in configuration as YAML. Edit a copy and pass it with
--config, or save it as ~/.coredefense/configs/coredefense.yaml to make it
the default.

Examples:
  coredefense config > my-core.yaml
  coredefense config --write`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Write to ~/.coredefense/configs/coredefense.yaml")
}

func runConfig(_ *cobra.Command, _ []string) {
	data := config.DefaultYAML()
	if !flagConfigWrite {
		os.Stdout.Write(data)
		return
	}

	path := expandHome(filepath.Join("~", ".coredefense", "configs", "coredefense.yaml"))
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", path)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
