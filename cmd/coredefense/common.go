package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/core-defense/internal/audio"
	"github.com/vovakirdan/core-defense/internal/config"
	"github.com/vovakirdan/core-defense/internal/core"
	"github.com/vovakirdan/core-defense/internal/meta"
	"github.com/vovakirdan/core-defense/internal/platform/tui"
	"github.com/vovakirdan/core-defense/internal/storage"
)

// setupLogging sends the default charm logger to a file. The TUI owns
// stdout, so interactive commands never log to the terminal.
func setupLogging(level, path string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	log.SetDefault(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
		Prefix:          "coredefense",
	}))
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// playerName returns --player, falling back to $USER.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// loadConfig loads the game config, falling back to defaults with a warning.
func loadConfig() config.CoreDefenseConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		return config.DefaultCoreDefenseConfig()
	}
	return cfg
}

// openStore opens the score database. Interactive commands keep going
// without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		log.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	if v, err := store.SchemaVersion(context.Background()); err == nil {
		log.Debug("scores database ready", "path", flagDBPath, "schema", v)
	}
	return store
}

// sessionDeps assembles the collaborators of a local session. The
// returned func releases them.
func sessionDeps() (tui.Deps, func()) {
	cfg := loadConfig()

	audioCfg := cfg.Audio
	if flagMute {
		audioCfg.Enabled = false
	}
	player := audio.NewPlayer(audioCfg)
	if err := player.Init(); err != nil {
		log.Warn("audio disabled", "err", err)
		player = nil
	}

	store := openStore()
	deps := tui.Deps{
		Store:  store,
		Shop:   meta.NewShop(cfg.Shop),
		Audio:  player,
		Player: playerName(),
	}

	return deps, func() {
		player.Close()
		if store != nil {
			store.Close()
		}
	}
}
