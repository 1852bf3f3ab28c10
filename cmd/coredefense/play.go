package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/core-defense/internal/games/coredefense"
	"github.com/vovakirdan/core-defense/internal/platform/tui"
	"github.com/vovakirdan/core-defense/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a Core Defense run directly, skipping the menu.

Controls:
  Mouse        - Aim
  A/D, Left/Right - Rotate aim
  Space/E      - Ultimate (when charged)
  1/2/3        - Pick an upgrade on level up
  Enter        - Take a relic
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower ramp
  normal - Defaults from the config
  hard   - Higher starting difficulty
  fixed  - No ramp, difficulty stays at its base

Examples:
  coredefense play
  coredefense play --difficulty hard
  coredefense play --seed 42 --mute
  coredefense play --config ./my-core.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	game, err := registry.Create(coredefense.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	deps, closeDeps := sessionDeps()
	runErr := tui.Run(game, deps, runtimeConfig())
	closeDeps()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runMenu starts the menu-driven session.
func runMenu(_ *cobra.Command, _ []string) {
	deps, closeDeps := sessionDeps()
	runErr := tui.RunSession(deps, runtimeConfig())
	closeDeps()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
