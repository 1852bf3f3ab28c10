package core

// Smallest terminal the platform lays a run out on.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// RuntimeConfig is what a game gets from the platform on Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // simulation steps per second
	Seed     int64 // 0 lets the platform pick a time-based seed
}

// DefaultConfig is an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// WithDefaults fills a non-positive tick rate from DefaultConfig and
// raises the screen to the minimum size.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultConfig().TickRate
	}
	c.ScreenW = max(c.ScreenW, MinScreenW)
	c.ScreenH = max(c.ScreenH, MinScreenH)
	return c
}

// GameState is the platform-visible status of a run.
type GameState struct {
	Score    int
	GameOver bool
	// Paused is set whenever the simulation is suspended, including while
	// a level-up or relic choice is pending.
	Paused bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	// Cues lists the sounds requested during this tick, in emission order.
	Cues []Cue
}
