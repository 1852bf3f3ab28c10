package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/core-defense/internal/core"
	"github.com/vovakirdan/core-defense/internal/meta"
	"github.com/vovakirdan/core-defense/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the remote play server.
type SSHServerConfig struct {
	Address string

	// HostKeyPath defaults to ~/.coredefense/host_key, generated on first use.
	HostKeyPath string

	DBPath      string
	IdleTimeout time.Duration

	// TickRate applies to every session.
	TickRate int

	// Shop prices meta upgrades for every player.
	Shop *meta.Shop
}

// DefaultSSHServerConfig returns the defaults used by `coredefense serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.coredefense/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves the Core Defense session over SSH. The SSH user name
// selects the meta profile, and all players share one leaderboard.
type SSHServer struct {
	cfg    SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer opens the shared store and prepares the Wish server.
// A missing store only disables persistence.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultSSHServerConfig().TickRate
	}

	s := &SSHServer{
		cfg: cfg,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "coredefense-ssh",
		}),
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		s.logger.Warn("running without a scores database", "path", cfg.DBPath, "err", err)
	} else {
		s.store = store
	}

	keyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		s.closeStore()
		return nil, err
	}

	// Middlewares run last to first: log, require a terminal, then the program.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.trackSessions,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	s.server = server
	return s, nil
}

// resolveHostKey returns the host key path and makes sure its directory exists.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".coredefense", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	// No Audio: sound stays on the server's machine.
	deps := Deps{Store: s.store, Shop: s.cfg.Shop, Player: sess.User()}

	return NewSessionModel(deps, cfg), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

func (s *SSHServer) trackSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		user, remote := sess.User(), sess.RemoteAddr().String()

		s.logger.Info("session started", "user", user, "remote", remote, "active", s.active.Add(1))
		defer func() {
			s.logger.Info("session ended",
				"user", user,
				"remote", remote,
				"duration", time.Since(start).Round(time.Second),
				"active", s.active.Add(-1),
			)
		}()
		next(sess)
	}
}

// ActiveSessions returns the number of connected players.
func (s *SSHServer) ActiveSessions() int64 {
	return s.active.Load()
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("listening", "address", s.cfg.Address, "tick_rate", s.cfg.TickRate)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.ActiveSessions())
	return s.Shutdown()
}

// Shutdown waits up to shutdownGrace for sessions to end, then closes the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}
