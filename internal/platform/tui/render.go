package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/core-defense/internal/core"
)

// cellStyles caches one lipgloss style per core color.
var cellStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for _, c := range core.Colors() {
		st := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		styles[c] = st
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := cellStyles[c]; ok {
		return st
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen turns a Screen into styled terminal output. Adjacent cells
// of one color share a single escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run []rune
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		runColor := core.ColorDefault
		run = run[:0]
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor && len(run) > 0 {
				sb.WriteString(styleFor(runColor).Render(string(run)))
				run = run[:0]
			}
			runColor = cell.Color
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(styleFor(runColor).Render(string(run)))
		}
	}
	return sb.String()
}
