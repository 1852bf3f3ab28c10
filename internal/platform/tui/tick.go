// Package tui runs Core Defense in a terminal with Bubble Tea: the game
// loop, the menu, shop and scoreboard screens, and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/core-defense/internal/core"
)

// TickMsg drives one simulation step. Loop identifies the tick loop that
// scheduled it; a model drops ticks from loops other than its own.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopSeq atomic.Uint64

// nextLoop returns a fresh tick loop id.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next tick of loop.
func tickCmd(rate int, loop uint64) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
