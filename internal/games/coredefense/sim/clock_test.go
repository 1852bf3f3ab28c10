package sim

import (
	"math"
	"testing"
	"time"
)

func TestDifficultyCurve(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		seconds int
		want    float64
	}{
		{0, 1.0},
		{45, 1.5},
		{90, 2.0},
		{450, 6.0},
	}
	for _, tt := range tests {
		if got := DifficultyAt(cfg, tt.seconds); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DifficultyAt(%d) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		d    float64
		want int
	}{
		{1, 90},
		{1.5, 85},
		{8, 20},
		{50, 20},
	}
	for _, tt := range tests {
		if got := SpawnInterval(tt.d); got != tt.want {
			t.Errorf("SpawnInterval(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestClockAdvance(t *testing.T) {
	cfg := DefaultConfig()
	c := Clock{Difficulty: cfg.DifficultyBase}
	for i := 0; i < 59; i++ {
		c.advance(cfg)
	}
	if c.Seconds != 0 {
		t.Fatalf("Seconds = %d after 59 frames", c.Seconds)
	}
	c.advance(cfg)
	if c.Seconds != 1 {
		t.Fatalf("Seconds = %d after 60 frames", c.Seconds)
	}
	if want := DifficultyAt(cfg, 1); c.Difficulty != want {
		t.Errorf("Difficulty = %v, want %v", c.Difficulty, want)
	}
}

func TestFPSMeter(t *testing.T) {
	now := time.Unix(0, 0)
	m := newFPSMeter(func() time.Time { return now })
	if m.Value() != 60 {
		t.Fatalf("initial FPS = %d, want 60", m.Value())
	}
	for i := 0; i < 20; i++ {
		now = now.Add(50 * time.Millisecond)
		m.frame()
	}
	if m.Value() != 20 {
		t.Errorf("FPS = %d, want 20", m.Value())
	}
}
