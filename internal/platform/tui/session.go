package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/core-defense/internal/core"
	"github.com/vovakirdan/core-defense/internal/games/coredefense"
	"github.com/vovakirdan/core-defense/internal/registry"
)

// screen identifies the active session screen.
type screen int

const (
	screenMenu screen = iota
	screenGame
	screenShop
	screenScores
)

// SessionModel manages the full session flow: menu -> game, shop or
// scores -> menu. It is the top-level model for local and SSH sessions.
type SessionModel struct {
	deps     Deps
	config   core.RuntimeConfig
	active   screen
	menu     MenuModel
	game     *Model
	shop     ShopModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		deps:   deps,
		config: cfg,
		menu:   NewMenuModel(deps, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.active {
	case screenGame:
		return m.updateGame(msg)
	case screenShop:
		return m.updateShop(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case MenuPlay:
		game, err := registry.Create(coredefense.GameID)
		if err != nil {
			log.Error("could not create game", "err", err)
			return m.toMenu()
		}
		m.config.Seed = time.Now().UnixNano()
		gm := NewModel(game, m.deps, m.config)
		gm.embedded = true
		m.game = &gm
		m.active = screenGame
		return m, m.game.Init()

	case MenuShop:
		m.shop = NewShopModel(m.deps, m.config.ScreenW, m.config.ScreenH)
		m.active = screenShop
		return m, m.shop.Init()

	case MenuScores:
		m.scores = NewScoreboardModel(m.deps.Store, m.deps.Player, m.config.ScreenW, m.config.ScreenH)
		m.active = screenScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.game = nil
		return m.toMenu()
	}
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateShop(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.shop.Update(msg)
	if shop, ok := newModel.(ShopModel); ok {
		m.shop = shop
	}

	if m.shop.IsGoingBack() {
		return m.toMenu()
	}
	if m.shop.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsGoingBack() {
		return m.toMenu()
	}
	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// toMenu rebuilds the menu so it shows the latest profile.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.active = screenMenu
	m.menu = NewMenuModel(m.deps, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	case screenShop:
		return m.shop.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(deps Deps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(deps, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
