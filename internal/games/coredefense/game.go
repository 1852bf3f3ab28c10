// Package coredefense adapts the Core Defense simulation to the arcade
// platform. It maps input frames to simulation commands, runs the choice
// prompts that pause a run, and draws the field into a colour Screen.
package coredefense

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/core-defense/internal/config"
	"github.com/vovakirdan/core-defense/internal/core"
	"github.com/vovakirdan/core-defense/internal/games/coredefense/sim"
	"github.com/vovakirdan/core-defense/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "coredefense"

// Run phases
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateUpgrade  = "upgrade"
	StateRelic    = "relic"
	StateGameOver = "gameover"
)

// hudRows is the number of screen rows above the field.
const hudRows = 2

// bannerTicks is how long a boss or ultimate banner stays up.
const bannerTicks = 120

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game implements registry.Game for Core Defense.
type Game struct {
	sim     *sim.Sim
	runtime core.RuntimeConfig
	cfg     config.CoreDefenseConfig
	bonuses sim.StatBonuses

	state   string
	snap    sim.Snapshot
	offers  []sim.Upgrade
	pending int      // level-ups still waiting for a choice
	relics  []string // relics found but not yet confirmed
	banner  string
	bannerT int
	ticks   int

	cellW, cellH float64
}

// New creates a new Core Defense game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Core Defense"
}

// SetBonuses sets the meta-progression bonuses applied by the next Reset.
func (g *Game) SetBonuses(b sim.StatBonuses) {
	g.bonuses = b
}

// Reset starts a new run sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime.WithDefaults()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultCoreDefenseConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.cellW = cfg.Field.CellWidth
	g.cellH = cfg.Field.CellHeight
	if g.cellW <= 0 || g.cellH <= 0 {
		def := config.DefaultCoreDefenseConfig().Field
		g.cellW, g.cellH = def.CellWidth, def.CellHeight
	}

	g.sim = sim.New(simConfig(cfg, g.runtime, g.cellW, g.cellH), runtime.Seed)
	g.sim.Start(g.bonuses)

	g.state = StatePlaying
	g.snap = g.sim.Snapshot()
	g.offers = nil
	g.pending = 0
	g.relics = nil
	g.banner = ""
	g.bannerT = 0
	g.ticks = 0

	w, h := g.sim.Field()
	log.Debug("run started", "seed", runtime.Seed, "field", [2]float64{w, h}, "preset", difficultyPreset)
}

// simConfig maps the loaded configuration and screen size to simulation units.
func simConfig(cfg config.CoreDefenseConfig, runtime core.RuntimeConfig, cellW, cellH float64) sim.Config {
	rows := max(runtime.ScreenH-hudRows, 1)
	cols := max(runtime.ScreenW, 1)
	c := cfg.Core
	return sim.Config{
		Width:  float64(cols) * cellW,
		Height: float64(rows) * cellH,
		Base: sim.Stats{
			HP:          c.HP,
			MaxHP:       c.HP,
			Atk:         c.Atk,
			FireRate:    c.FireRate,
			ProjSpeed:   c.ProjSpeed,
			CritRate:    c.CritRate,
			CritDmg:     c.CritDmg,
			Luck:        c.Luck,
			XPMult:      c.XPMult,
			MissileCd:   c.MissileCd,
			PickupRange: c.PickupRange,
		},
		DifficultyBase: cfg.Difficulty.Base,
		RampSeconds:    cfg.Difficulty.RampSeconds,
		RampAmount:     cfg.Difficulty.RampAmount,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	switch g.state {
	case StatePlaying:
		g.handlePlayInput(in)
	case StatePaused:
		if in.Has(core.ActionPause) {
			g.sim.Resume()
			g.state = StatePlaying
		}
	case StateUpgrade:
		g.handleUpgradeInput(in)
	case StateRelic:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionChoice1) {
			g.confirmRelic()
		}
	}

	g.ticks++
	if g.bannerT > 0 {
		g.bannerT--
	}

	g.sim.Tick()
	cues := g.drainEvents()
	g.openPrompt()

	return core.StepResult{State: g.State(), Cues: cues}
}

func (g *Game) handlePlayInput(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.sim.Pause()
		g.state = StatePaused
		return
	}
	if in.Pointer.Valid {
		x, y := g.toField(in.Pointer.X, in.Pointer.Y)
		g.sim.SetAimTarget(x, y)
	}
	if in.Has(core.ActionAimLeft) {
		g.sim.RotateAim(-sim.AimStep)
	}
	if in.Has(core.ActionAimRight) {
		g.sim.RotateAim(sim.AimStep)
	}
	if in.Has(core.ActionUltimate) {
		g.sim.ActivateUltimate()
	}
}

func (g *Game) handleUpgradeInput(in core.InputFrame) {
	choice := -1
	switch {
	case in.Has(core.ActionChoice1):
		choice = 0
	case in.Has(core.ActionChoice2):
		choice = 1
	case in.Has(core.ActionChoice3):
		choice = 2
	}
	if choice < 0 || choice >= len(g.offers) {
		return
	}

	up := g.offers[choice]
	if g.sim.ApplySelection(up.Selection()) {
		log.Debug("upgrade chosen", "id", up.ID, "rarity", up.Rarity)
	}
	g.offers = nil
	g.pending--
	g.closePrompt()
}

func (g *Game) confirmRelic() {
	if len(g.relics) == 0 {
		g.closePrompt()
		return
	}
	id := g.relics[0]
	g.relics = g.relics[1:]
	if g.sim.ApplySelection(sim.Selection{Kind: sim.SelectRelic, ID: id}) {
		log.Info("relic taken", "relic", id)
	}
	g.closePrompt()
}

// closePrompt resumes the run once no choice is left, otherwise it moves
// on to the next prompt.
func (g *Game) closePrompt() {
	g.state = StatePlaying
	if !g.openPrompt() {
		g.sim.Resume()
	}
}

// openPrompt pauses the run for a waiting level-up or relic. Level-ups
// are answered first.
func (g *Game) openPrompt() bool {
	if g.state != StatePlaying || g.sim.Over() {
		return false
	}
	switch {
	case g.pending > 0:
		g.offers = g.sim.RollOffers()
		if len(g.offers) == 0 {
			g.pending = 0
			return false
		}
		g.state = StateUpgrade
	case len(g.relics) > 0:
		g.state = StateRelic
	default:
		return false
	}
	g.sim.Pause()
	return true
}

// drainEvents folds simulation events into adapter state and returns the
// cues in emission order.
func (g *Game) drainEvents() []core.Cue {
	var cues []core.Cue
	for _, ev := range g.sim.Drain() {
		switch e := ev.(type) {
		case sim.CueEvent:
			cues = append(cues, e.Cue)
		case sim.SyncEvent:
			g.snap = e.Snapshot
		case sim.UpgradeOfferEvent:
			g.pending++
			log.Debug("level up", "level", e.Level)
		case sim.RelicFoundEvent:
			g.relics = append(g.relics, e.RelicID)
			log.Debug("relic found", "relic", e.RelicID)
		case sim.BossSpawnedEvent:
			g.showBanner("WARNING: " + e.Tier.String() + " approaching")
			log.Info("boss spawned", "number", e.Number, "tier", e.Tier)
		case sim.UltimateReadyEvent:
			g.showBanner("ULTIMATE READY  [space]")
		case sim.SynergyEvent:
			g.showBanner(e.Name + ": " + e.Desc)
		case sim.GameOverEvent:
			g.state = StateGameOver
			g.offers = nil
			g.pending = 0
			g.relics = nil
			g.snap = g.sim.Snapshot()
			log.Info("run ended", "score", int(e.Score), "level", g.snap.Level, "seconds", g.snap.Time)
		}
	}
	return cues
}

func (g *Game) showBanner(text string) {
	g.banner = text
	g.bannerT = bannerTicks
}

// toField maps a screen cell to the centre of that cell in field units.
func (g *Game) toField(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * g.cellW, (float64(cy-hudRows) + 0.5) * g.cellH
}

// toCell maps a field position to a screen cell.
func (g *Game) toCell(p core.Vec2) (int, int) {
	return int(p.X / g.cellW), int(p.Y/g.cellH) + hudRows
}

// Phase returns the current run phase.
func (g *Game) Phase() string {
	return g.state
}

// Offers returns the upgrade choices currently on screen.
func (g *Game) Offers() []sim.Upgrade {
	return append([]sim.Upgrade(nil), g.offers...)
}

// PendingRelic returns the relic waiting for confirmation.
func (g *Game) PendingRelic() (string, bool) {
	if len(g.relics) == 0 {
		return "", false
	}
	return g.relics[0], true
}

// Snapshot returns the last HUD snapshot.
func (g *Game) Snapshot() sim.Snapshot {
	return g.snap
}

// Sim exposes the running simulation.
func (g *Game) Sim() *sim.Sim {
	return g.sim
}

// RunStats returns the level reached and seconds survived.
func (g *Game) RunStats() (level, seconds int) {
	if g.sim == nil {
		return 0, 0
	}
	s := g.sim.Snapshot()
	return s.Level, s.Time
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.sim.Score()),
		GameOver: g.state == StateGameOver,
		Paused:   g.state != StatePlaying && g.state != StateGameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
