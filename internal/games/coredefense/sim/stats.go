package sim

import "math"

// Stats holds the core's combat statistics for the current run.
type Stats struct {
	HP          float64
	MaxHP       float64
	Atk         float64
	FireRate    float64 // frames between shots
	ProjSpeed   float64
	CritRate    float64
	CritDmg     float64
	Luck        float64
	XPMult      float64
	MissileCd   int
	PickupRange float64
}

// DefaultStats returns the base stats every run starts from.
func DefaultStats() Stats {
	return Stats{
		HP:          100,
		MaxHP:       100,
		Atk:         10,
		FireRate:    15,
		ProjSpeed:   8,
		CritRate:    0.05,
		CritDmg:     1.5,
		Luck:        1,
		XPMult:      1,
		MissileCd:   120,
		PickupRange: 100,
	}
}

// StatBonuses are additive meta-progression bonuses applied by Start.
type StatBonuses struct {
	MaxHP    float64
	Atk      float64
	XPMult   float64
	CritRate float64
	CritDmg  float64
	Luck     float64
}

func (s Stats) withBonuses(b StatBonuses) Stats {
	s.MaxHP += b.MaxHP
	s.Atk += b.Atk
	s.XPMult += b.XPMult
	s.CritRate += b.CritRate
	s.CritDmg += b.CritDmg
	s.Luck += b.Luck
	s.HP = s.MaxHP
	return s
}

func (s *Stats) clampHP() {
	s.HP = math.Max(0, math.Min(s.MaxHP, s.HP))
}

// Config parameterizes a simulation.
type Config struct {
	Width  float64
	Height float64
	Base   Stats

	// Difficulty is Base + (elapsedSeconds / RampSeconds) * RampAmount.
	DifficultyBase float64
	RampSeconds    float64
	RampAmount     float64
}

// DefaultConfig returns an 800x600 field with the standard curve.
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		Base:           DefaultStats(),
		DifficultyBase: 1.0,
		RampSeconds:    45,
		RampAmount:     0.5,
	}
}
