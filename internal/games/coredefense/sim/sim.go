// Package sim is the Core Defense simulation: a stationary core fighting
// waves of enemies on a fixed 60 Hz tick. It has no I/O; the host drives
// it with commands and Tick, then drains the events it produced.
package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/core-defense/internal/core"
)

const (
	coreRadius    = 25
	ultMaxCharge  = 100
	ultDuration   = 300
	ultFireRate   = 4
	syncEvery     = 5
	initialNextXP = 20
	orbitalRadius = 60
	orbitalSpin   = 0.05
)

// AimStep is the rotation in radians hosts apply per keyboard aim input.
const AimStep = 0.1

// Option configures a Sim.
type Option func(*Sim)

// WithNow replaces the wall clock used by the FPS meter.
func WithNow(now func() time.Time) Option {
	return func(s *Sim) {
		s.now = now
	}
}

// Sim is one Core Defense run. It is not safe for concurrent use; the
// host calls commands and Tick from a single goroutine and reads state
// between ticks.
type Sim struct {
	cfg  Config
	seed int64
	rng  *rand.Rand
	fx   *rand.Rand // cosmetic effects only
	now  func() time.Time

	store     Store
	core      Core
	stats     Stats
	ult       Ultimate
	orbitals  []Orbital
	clock     Clock
	score     float64
	bossCount int
	shake     float64

	started   bool
	over      bool
	hostTicks int
	fps       fpsMeter
	events    []Event
}

// New creates a simulation. Runs started on it are reproducible for a
// given seed and command sequence.
func New(cfg Config, seed int64, opts ...Option) *Sim {
	s := &Sim{cfg: cfg, seed: seed}
	for _, opt := range opts {
		opt(s)
	}
	s.fps = newFPSMeter(s.now)
	return s
}

// Start resets all run state and applies meta-progression bonuses.
func (s *Sim) Start(b StatBonuses) {
	s.rng = rand.New(rand.NewSource(s.seed))
	s.fx = rand.New(rand.NewSource(s.seed + 1))

	s.store.clear()
	s.core = Core{
		Pos:    core.V(s.cfg.Width/2, s.cfg.Height/2),
		Level:  1,
		NextXP: initialNextXP,
	}
	s.stats = s.cfg.Base.withBonuses(b)
	s.ult = Ultimate{MaxCharge: ultMaxCharge}
	s.orbitals = nil
	s.clock = Clock{Difficulty: s.cfg.DifficultyBase}
	s.score = 0
	s.bossCount = 0
	s.shake = 0
	s.over = false
	s.hostTicks = 0
	s.events = nil
	s.fps = newFPSMeter(s.now)
	s.started = true
}

// Pause suspends gameplay updates.
func (s *Sim) Pause() {
	if !s.live() {
		return
	}
	s.clock.Paused = true
}

// Resume continues gameplay updates.
func (s *Sim) Resume() {
	if !s.live() {
		return
	}
	s.clock.Paused = false
}

// ActivateUltimate starts the ultimate. It does nothing unless the charge
// is full and the ultimate is not already running.
func (s *Sim) ActivateUltimate() {
	if !s.live() || s.ult.Active || s.ult.Charge < s.ult.MaxCharge {
		return
	}
	s.ult.Active = true
	s.ult.Timer = ultDuration
	s.ult.Charge = 0
	s.shake = 20
	s.explode(s.core.Pos, core.ColorBrightWhite, 20)
	s.cue(core.CueExplosion)
}

// SetAimTarget points the core at (x, y) in field units. Ignored while
// the core auto-aims.
func (s *Sim) SetAimTarget(x, y float64) {
	if !s.live() || s.core.HasTag(TagOmni) {
		return
	}
	s.core.Angle = core.V(x, y).Sub(s.core.Pos).Angle()
}

// RotateAim turns the core by delta radians. Ignored while the core
// auto-aims.
func (s *Sim) RotateAim(delta float64) {
	if !s.live() || s.core.HasTag(TagOmni) {
		return
	}
	s.core.Angle = math.Remainder(s.core.Angle+delta, 2*math.Pi)
}

// Tick advances one frame. While paused or after game over only the
// HUD sync cadence runs. A core at zero hp ends the run before the clock
// moves.
func (s *Sim) Tick() {
	if !s.started {
		return
	}
	s.hostTicks++
	s.fps.frame()

	ended := false
	if !s.clock.Paused && !s.over {
		if s.stats.HP <= 0 {
			s.endRun()
		} else {
			s.clock.advance(s.cfg)
			s.update()
		}
		ended = s.over
	}

	if s.hostTicks%syncEvery == 0 || ended {
		s.emit(SyncEvent{Snapshot: s.Snapshot()})
	}
}

// Drain returns and clears the events produced since the last call.
func (s *Sim) Drain() []Event {
	out := s.events
	s.events = nil
	return out
}

func (s *Sim) update() {
	s.updateUltimate()
	s.maybeSpawn()
	s.fire()

	s.updateEnemies()
	if s.over {
		return
	}
	s.updateProjectiles()
	if s.over {
		return
	}

	s.updateParticles()
	s.updateOrbs()
	s.updateChests()
	s.updateOrbitals()
	s.updateBeams()
	s.updateTexts()
}

func (s *Sim) updateUltimate() {
	if !s.ult.Active {
		return
	}
	s.ult.Timer--
	if s.ult.Timer <= 0 {
		s.ult.Active = false
	}
	if s.clock.Frames%5 == 0 {
		s.shake = 5
	}
}

// damageCore is the single path that lowers core hp.
func (s *Sim) damageCore(dmg float64) {
	s.stats.HP -= dmg
	s.stats.clampHP()
	if s.stats.HP <= 0 {
		s.endRun()
	}
}

func (s *Sim) endRun() {
	if s.over {
		return
	}
	s.over = true
	s.cue(core.CueGameOver)
	s.emit(GameOverEvent{Score: s.score})
}

func (s *Sim) live() bool {
	return s.started && !s.over
}

func (s *Sim) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Sim) cue(c core.Cue) {
	s.emit(CueEvent{Cue: c})
}

// Started reports whether Start has been called.
func (s *Sim) Started() bool { return s.started }

// Over reports whether the run has ended.
func (s *Sim) Over() bool { return s.over }

// Paused reports whether gameplay is suspended.
func (s *Sim) Paused() bool { return s.clock.Paused }

// Score returns the current score.
func (s *Sim) Score() float64 { return s.score }

// Stats returns a copy of the core stats.
func (s *Sim) Stats() Stats { return s.stats }

// Core returns a copy of the core record.
func (s *Sim) Core() Core {
	c := s.core
	c.Tags = append([]Tag(nil), s.core.Tags...)
	c.Relics = append([]string(nil), s.core.Relics...)
	return c
}

// Ultimate returns the ultimate state.
func (s *Sim) Ultimate() Ultimate { return s.ult }

// Clock returns the frame clock.
func (s *Sim) Clock() Clock { return s.clock }

// Orbitals returns the orbital guards.
func (s *Sim) Orbitals() []Orbital { return append([]Orbital(nil), s.orbitals...) }

// Entities exposes the entity store for read-only presentation.
func (s *Sim) Entities() *Store { return &s.store }

// Shake returns the current screen shake magnitude.
func (s *Sim) Shake() float64 { return s.shake }

// Field returns the play-field size.
func (s *Sim) Field() (w, h float64) { return s.cfg.Width, s.cfg.Height }
