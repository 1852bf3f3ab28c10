package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/core-defense/internal/meta"
)

// ShopKeyMap holds the shop bindings.
type ShopKeyMap struct {
	navKeys
	Buy key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Buy, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Buy}, {k.Back, k.Quit}}
}

// DefaultShopKeyMap returns the default shop bindings.
func DefaultShopKeyMap() ShopKeyMap {
	return ShopKeyMap{
		navKeys: defaultNavKeys(),
		Buy:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "buy")),
	}
}

// ShopModel is the Bubble Tea model for the meta upgrade shop.
type ShopModel struct {
	deps       Deps
	profile    *meta.Profile
	table      table.Model
	help       help.Model
	keys       ShopKeyMap
	status     string
	statusErr  bool
	width      int
	height     int
	quitting   bool
	goingBack  bool
	standalone bool // back exits the program
}

// NewShopModel creates a shop screen for the session's player.
func NewShopModel(deps Deps, width, height int) ShopModel {
	m := ShopModel{
		deps:    deps,
		profile: loadProfile(deps),
		help:    help.New(),
		keys:    DefaultShopKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *ShopModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Upgrade", Width: 12},
		{Title: "Stat", Width: 12},
		{Title: "Level", Width: 6},
		{Title: "Bonus", Width: 10},
		{Title: "Cost", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(len(meta.Categories())+1),
	)

	t.SetStyles(tableStyles())
	return t
}

func (m *ShopModel) updateTableRows() {
	cats := meta.Categories()
	rows := make([]table.Row, len(cats))
	for i, c := range cats {
		level := m.profile.Level(c)
		cost := "-"
		bonus := "-"
		if m.deps.Shop != nil {
			if v, err := m.deps.Shop.Cost(c, level); err == nil {
				cost = fmt.Sprintf("%d", v)
			}
			bonus = formatBonus(m.deps.Shop.Bonus(c) * float64(level))
		}
		rows[i] = table.Row{
			strings.ToUpper(string(c)),
			c.Describe(),
			fmt.Sprintf("%d", level),
			bonus,
			cost,
		}
	}
	m.table.SetRows(rows)
}

func formatBonus(v float64) string {
	if v == float64(int(v)) {
		return fmt.Sprintf("+%d", int(v))
	}
	return fmt.Sprintf("+%.2f", v)
}

// buy purchases the selected category and persists the profile.
func (m *ShopModel) buy() {
	if m.deps.Shop == nil {
		return
	}
	cats := meta.Categories()
	i := m.table.Cursor()
	if i < 0 || i >= len(cats) {
		return
	}
	c := cats[i]

	if err := m.deps.Shop.Purchase(m.profile, c); err != nil {
		m.statusErr = true
		if errors.Is(err, meta.ErrInsufficientFunds) {
			m.status = "Not enough credits"
		} else {
			m.status = err.Error()
		}
		return
	}

	m.statusErr = false
	m.status = fmt.Sprintf("%s upgraded to level %d", strings.ToUpper(string(c)), m.profile.Level(c))
	log.Info("upgrade purchased", "player", m.profile.Name, "category", c, "level", m.profile.Level(c))
	if m.deps.Store != nil {
		if err := m.deps.Store.SaveProfile(m.profile); err != nil {
			log.Warn("could not save profile", "player", m.profile.Name, "err", err)
		}
	}
	m.updateTableRows()
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Buy):
			m.buy()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("UPGRADES", m.width)))
	b.WriteString("\n\n")

	bank := fmt.Sprintf("Credits: %d   Best score: %d", m.profile.Currency, m.profile.BestScore)
	b.WriteString(centerText(bank, m.width))
	b.WriteString("\n\n")

	b.WriteString(panelStyle.Render(m.table.View()))
	b.WriteString("\n")

	if m.status != "" {
		st := okStyle
		if m.statusErr {
			st = errStyle
		}
		b.WriteString(st.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Profile returns the profile shown by the shop.
func (m ShopModel) Profile() *meta.Profile {
	return m.profile
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ShopModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ShopModel) IsQuitting() bool {
	return m.quitting
}

// RunShop runs the shop screen on its own.
func RunShop(deps Deps, width, height int) error {
	model := NewShopModel(deps, width, height)
	model.standalone = true

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
