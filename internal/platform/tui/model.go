package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/core-defense/internal/audio"
	"github.com/vovakirdan/core-defense/internal/core"
	"github.com/vovakirdan/core-defense/internal/games/coredefense/sim"
	"github.com/vovakirdan/core-defense/internal/meta"
	"github.com/vovakirdan/core-defense/internal/registry"
	"github.com/vovakirdan/core-defense/internal/storage"
)

// Deps are the collaborators shared by every screen of a session.
// Any of them may be nil.
type Deps struct {
	Store  *storage.Store
	Shop   *meta.Shop
	Audio  *audio.Player
	Player string // profile and score owner
}

// bonusSetter is implemented by games that accept meta-progression bonuses.
type bonusSetter interface {
	SetBonuses(sim.StatBonuses)
}

// runReporter is implemented by games that track level and survival time.
type runReporter interface {
	RunStats() (level, seconds int)
}

// loadProfile returns the player's profile, or an empty one when there is
// no store or it fails.
func loadProfile(deps Deps) *meta.Profile {
	if deps.Store == nil {
		return meta.NewProfile(deps.Player)
	}
	p, err := deps.Store.LoadProfile(deps.Player)
	if err != nil {
		log.Warn("could not load profile", "player", deps.Player, "err", err)
		return meta.NewProfile(deps.Player)
	}
	return p
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	profile    *meta.Profile
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	loop       uint64
	embedded   bool // running inside a session; B returns to the menu
	quitting   bool
	backToMenu bool
	recorded   bool // whether the current game over has been recorded
	reward     int
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps,
		profile:    loadProfile(deps),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		loop:       nextLoop(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.resetGame()
	return tickCmd(m.config.TickRate, m.loop)
}

// resetGame applies the profile bonuses and starts a fresh run.
func (m *Model) resetGame() {
	if b, ok := m.game.(bonusSetter); ok && m.deps.Shop != nil {
		b.SetBonuses(m.deps.Shop.Bonuses(m.profile))
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.recorded = false
	m.reward = 0
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.inputFrame.PointTo(msg.X, msg.Y)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "b":
		if m.embedded && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			return m, nil
		}
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the screen buffer. A run that has not yet lasted a
// second is restarted at the new size; a longer one keeps its field.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.gameState.GameOver {
		return m, nil
	}
	if r, ok := m.game.(runReporter); ok {
		if _, secs := r.RunStats(); secs > 0 {
			return m, nil
		}
	}
	m.resetGame()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.resetGame()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, c := range result.Cues {
		m.deps.Audio.Play(c)
	}

	if m.gameState.GameOver && !m.recorded {
		m.recordRun()
		m.recorded = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.loop)
}

// recordRun banks the run reward and stores the score. Storage is best
// effort; failures are logged and play continues.
func (m *Model) recordRun() {
	score := m.gameState.Score
	m.reward = m.profile.Award(float64(score))

	level, secs := 0, 0
	if r, ok := m.game.(runReporter); ok {
		level, secs = r.RunStats()
	}
	log.Info("run recorded", "player", m.deps.Player, "score", score, "level", level, "reward", m.reward)

	if m.deps.Store == nil {
		return
	}
	if score > 0 {
		_, err := m.deps.Store.SaveRun(storage.ScoreEntry{
			GameID:  m.game.ID(),
			Player:  m.deps.Player,
			Score:   score,
			Level:   level,
			Seconds: secs,
		})
		if err != nil {
			log.Warn("could not save score", "err", err)
		}
	}
	if err := m.deps.Store.SaveProfile(m.profile); err != nil {
		log.Warn("could not save profile", "player", m.deps.Player, "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".coredefense", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("could not create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("could not save screenshot", "err", err)
		return
	}
	log.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.Paused && !m.gameState.GameOver {
		m.screen.DrawTextCentered(m.screen.Height()-1, m.keyMapper.HelpLine(), core.ColorGray)
	}
	if m.gameState.GameOver && m.recorded {
		footer := fmt.Sprintf("+%d credits  |  bank %d  |  best %d", m.reward, m.profile.Currency, m.profile.BestScore)
		if m.embedded {
			footer += "  |  B: menu"
		}
		m.screen.DrawTextCentered(m.screen.Height()-1, footer, core.ColorBrightYellow)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	model := NewModel(game, deps, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer aim
	)

	_, err := p.Run()
	return err
}
