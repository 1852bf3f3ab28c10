// coredefense is a terminal arcade shooter: defend a stationary core
// against escalating waves of enemies.
//
// Usage:
//
//	coredefense              - Start the menu (play, upgrades, scores)
//	coredefense play         - Start a run directly
//	coredefense scores       - Show high scores
//	coredefense shop         - Buy permanent upgrades
//	coredefense catalog      - List tags, relics and synergies
//	coredefense config       - Print the default config
//	coredefense serve        - Start SSH server for remote play
//	coredefense list         - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.coredefense/scores.db)
//	--config <path>       - Custom YAML or TOML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--player <name>       - Profile name (default: $USER)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/core-defense/internal/config"
	"github.com/vovakirdan/core-defense/internal/games/coredefense"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagLogLevel   string
	flagLogFile    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coredefense",
	Short: "Core Defense - hold the core against endless waves",
	Long: `Core Defense is a terminal arcade shooter. Your core sits in the middle
of the field and fires on its own; you aim it, pick upgrades as you level
up, collect relics from chests and trigger the ultimate when it is charged.
Credits earned by every run buy permanent upgrades.

Available commands:
  play     - Start a run directly
  scores   - View high scores
  shop     - Buy permanent upgrades
  catalog  - List tags, relics and synergies
  config   - Print the default config
  serve    - Start SSH server for remote play
  list     - List registered games

Run without a command to open the menu.

Examples:
  coredefense
  coredefense play --difficulty hard
  coredefense shop buy hull
  coredefense serve --ssh :2222`,
	PersistentPreRunE: setup,
	Run:               runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.coredefense/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config (.yaml, .yml or .toml)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagPlayer, "player", "", "Profile name (default: $USER)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.coredefense/coredefense.log", "Log file path")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates global flags, configures logging and hands the config
// path and difficulty to the game package.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if err := setupLogging(flagLogLevel, flagLogFile); err != nil {
		return err
	}

	coredefense.SetConfigPath(flagConfig)
	coredefense.SetDifficultyPreset(flagDifficulty)
	return nil
}
