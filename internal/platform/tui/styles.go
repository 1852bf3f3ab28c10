package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Palette shared by the list screens.
var (
	accent    = lipgloss.Color("229")
	highlight = lipgloss.Color("57")
	muted     = lipgloss.Color("241")
	border    = lipgloss.Color("240")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
	tabStyle    = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)
	activeTab   = lipgloss.NewStyle().Bold(true).Foreground(accent).Background(highlight).Padding(0, 1)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
)

// tableStyles is the bubbles table look used by the shop and scoreboard.
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(border).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(accent).
		Background(highlight).
		Bold(false)
	return s
}

// renderTabs draws a tab strip with the active tab highlighted.
func renderTabs(labels []string, active int) string {
	out := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			out[i] = activeTab.Render(l)
		} else {
			out[i] = tabStyle.Render(l)
		}
	}
	return strings.Join(out, " ")
}

// navKeys are the bindings every list screen shares.
type navKeys struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

func defaultNavKeys() navKeys {
	return navKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// centerText left-pads text to center it within width cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
