package sim

import (
	"math"
	"time"
)

const framesPerSecond = 60

// Clock owns frame counting, elapsed seconds and the difficulty curve.
type Clock struct {
	Frames     int
	Seconds    int
	Difficulty float64
	Paused     bool
}

// advance counts one gameplay frame. Every 60 frames it bumps the elapsed
// seconds and recomputes difficulty.
func (c *Clock) advance(cfg Config) {
	c.Frames++
	if c.Frames%framesPerSecond == 0 {
		c.Seconds++
		c.Difficulty = DifficultyAt(cfg, c.Seconds)
	}
}

// DifficultyAt returns the difficulty scalar after the given number of
// elapsed seconds. It grows without bound.
func DifficultyAt(cfg Config, seconds int) float64 {
	ramp := cfg.RampSeconds
	if ramp <= 0 {
		return cfg.DifficultyBase
	}
	return cfg.DifficultyBase + (float64(seconds)/ramp)*cfg.RampAmount
}

// SpawnInterval returns the number of frames between spawn attempts.
func SpawnInterval(difficulty float64) int {
	return int(math.Floor(math.Max(20, 100-difficulty*10)))
}

// fpsMeter measures host tick rate over one-second windows.
type fpsMeter struct {
	now    func() time.Time
	start  time.Time
	frames int
	value  int
}

func newFPSMeter(now func() time.Time) fpsMeter {
	if now == nil {
		now = time.Now
	}
	return fpsMeter{now: now, start: now(), value: framesPerSecond}
}

func (m *fpsMeter) frame() {
	m.frames++
	t := m.now()
	elapsed := t.Sub(m.start)
	if elapsed < time.Second {
		return
	}
	m.value = int(math.Round(float64(m.frames) / elapsed.Seconds()))
	m.frames = 0
	m.start = t
}

func (m *fpsMeter) Value() int {
	return m.value
}
