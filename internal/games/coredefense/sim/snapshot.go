package sim

// Snapshot is the HUD view of a run.
type Snapshot struct {
	HP        float64
	MaxHP     float64
	Score     float64
	XP        float64
	NextXP    float64
	Level     int
	UltCharge int
	UltMax    int
	UltActive bool
	Time      int
	Tags      []string
	Relics    []string
	FPS       int
}

// Snapshot returns the current HUD state.
func (s *Sim) Snapshot() Snapshot {
	tags := make([]string, len(s.core.Tags))
	for i, t := range s.core.Tags {
		tags[i] = t.String()
	}
	relics := make([]string, len(s.core.Relics))
	copy(relics, s.core.Relics)

	return Snapshot{
		HP:        s.stats.HP,
		MaxHP:     s.stats.MaxHP,
		Score:     s.score,
		XP:        s.core.XP,
		NextXP:    s.core.NextXP,
		Level:     s.core.Level,
		UltCharge: s.ult.Charge,
		UltMax:    s.ult.MaxCharge,
		UltActive: s.ult.Active,
		Time:      s.clock.Seconds,
		Tags:      tags,
		Relics:    relics,
		FPS:       s.fps.Value(),
	}
}
