package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/core-defense/internal/core"
	"github.com/vovakirdan/core-defense/internal/games/coredefense"
)

// MenuChoice identifies a title menu entry.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuShop
	MenuScores
	MenuQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var logoStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))

var menuItems = []MenuItem{
	{MenuPlay, "Defend the core"},
	{MenuShop, "Upgrades"},
	{MenuScores, "High scores"},
	{MenuQuit, "Quit"},
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	deps      Deps
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	credits   int
	best      int
	record    int // best score of any player
	quitting  bool
	selected  MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(deps Deps, cfg core.RuntimeConfig) MenuModel {
	p := loadProfile(deps)
	record := 0
	if deps.Store != nil {
		if r, err := deps.Store.HighScore(coredefense.GameID); err == nil {
			record = r
		}
	}
	return MenuModel{
		items:     menuItems,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		deps:      deps,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		credits:   p.Currency,
		best:      p.BestScore,
		record:    record,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = m.items[m.cursor].Choice
		if m.selected == MenuQuit {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(logoStyle.Render(centerText("C O R E   D E F E N S E", m.width)))
	b.WriteString("\n\n")

	player := m.deps.Player
	if player == "" {
		player = "guest"
	}
	info := fmt.Sprintf("%s  |  credits %d  |  best %d  |  record %d", player, m.credits, m.best, m.record)
	b.WriteString(centerText(info, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or MenuNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
