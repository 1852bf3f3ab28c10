package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/core-defense/internal/games/coredefense"
	"github.com/vovakirdan/core-defense/internal/storage"
)

const (
	tableMinWidth = 50
	maxScores     = 100
)

// scoreView selects what the board lists.
type scoreView int

const (
	viewAll scoreView = iota
	viewMine
	viewStats

	numViews
)

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	navKeys
	Toggle key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Toggle}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		navKeys: defaultNavKeys(),
		Toggle:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next view")),
	}
}

// ScoreboardModel lists recorded runs: everybody's, the player's own, or
// aggregate statistics.
type ScoreboardModel struct {
	store      *storage.Store
	player     string
	view       scoreView
	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
	standalone bool // back exits the program
}

// NewScoreboardModel builds the board and loads the all-players view.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		player: player,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Lv", Width: 4},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 13},
	}

	// Spare width goes to the player column.
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := max(m.width-6, tableMinWidth) - used; extra > 0 {
		columns[1].Width += min(extra, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)
	t.SetStyles(tableStyles())
	return t
}

// reload queries the store for the current view.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if m.store == nil {
		m.setRows()
		return
	}

	var err error
	switch m.view {
	case viewAll:
		m.scores, err = m.store.TopScores(coredefense.GameID, maxScores)
	case viewMine:
		m.scores, err = m.store.PlayerScores(coredefense.GameID, m.player, maxScores)
	case viewStats:
		m.stats, err = m.store.GetGameStats(coredefense.GameID)
	}
	if err != nil {
		log.Warn("could not load scoreboard", "view", m.view, "err", err)
	}
	m.setRows()
}

func (m *ScoreboardModel) setRows() {
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Level),
			formatDuration(s.Seconds),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		case key.Matches(msg, m.keys.Toggle):
			m.view = (m.view + 1) % numViews
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.setRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.MarginBottom(1).Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	tabs := []string{"All players", "Mine (" + m.player + ")", "Stats"}
	b.WriteString(centerText(renderTabs(tabs, int(m.view)), m.width))
	b.WriteString("\n\n")

	b.WriteString(panelStyle.Render(m.body()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) body() string {
	if m.view == viewStats {
		if m.stats == nil || m.stats.GamesCount == 0 {
			return mutedStyle.Italic(true).Padding(2, 4).Render("No runs recorded yet.")
		}
		s := m.stats
		lines := []string{
			fmt.Sprintf("Runs          %d", s.GamesCount),
			fmt.Sprintf("Best score    %d", s.HighScore),
			fmt.Sprintf("Average       %.0f", s.AvgScore),
			fmt.Sprintf("Total score   %d", s.TotalScore),
			fmt.Sprintf("Best level    %d", s.BestLevel),
			fmt.Sprintf("Last played   %s", s.LastPlayed.Format("Jan 02 15:04")),
		}
		return strings.Join(lines, "\n")
	}

	if len(m.scores) == 0 {
		return mutedStyle.Italic(true).Padding(2, 4).
			Render("No runs recorded yet.\nDefend the core to set a high score!")
	}
	return m.table.View()
}

// Rows returns the number of listed runs.
func (m ScoreboardModel) Rows() int {
	return len(m.scores)
}

// IsGoingBack reports whether the user asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(store *storage.Store, player string, width, height int) error {
	model := NewScoreboardModel(store, player, width, height)
	model.standalone = true

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
