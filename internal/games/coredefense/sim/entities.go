package sim

import "github.com/vovakirdan/core-defense/internal/core"

// Body is the geometry shared by every moving entity.
type Body struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// EnemyKind enumerates enemy variants.
type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyTank
	EnemyFast
	EnemySplitter
	EnemySplitterMini
	EnemySummoner
	EnemyHealer
	EnemySwarm
	EnemyBoss
)

var enemyKindNames = [...]string{
	EnemyNormal:       "normal",
	EnemyTank:         "tank",
	EnemyFast:         "fast",
	EnemySplitter:     "splitter",
	EnemySplitterMini: "splitter_mini",
	EnemySummoner:     "summoner",
	EnemyHealer:       "healer",
	EnemySwarm:        "swarm",
	EnemyBoss:         "boss",
}

func (k EnemyKind) String() string {
	if k < 0 || int(k) >= len(enemyKindNames) {
		return "unknown"
	}
	return enemyKindNames[k]
}

// BossTier selects a boss ability script. Zero for non-boss enemies.
type BossTier int

const (
	TierNone BossTier = iota
	TierGuardian
	TierPrism
	TierCarrier
)

func (t BossTier) String() string {
	switch t {
	case TierGuardian:
		return "Guardian"
	case TierPrism:
		return "Prism"
	case TierCarrier:
		return "Carrier"
	default:
		return "none"
	}
}

// Enemy is a hostile unit. Swarm units and reinforcements keep Shield,
// Timer and Tier at zero.
type Enemy struct {
	Body
	Kind     EnemyKind
	HP       float64
	MaxHP    float64
	Speed    float64
	Freeze   int
	Shield   float64
	HitFlash int
	Push     core.Vec2
	Timer    int
	MaxTimer int
	Tier     BossTier
}

// Owner says who fired a projectile and therefore whom it can hurt.
type Owner int

const (
	OwnerCore Owner = iota
	OwnerEnemy
)

// Projectile is a bullet, missile or boss shot.
type Projectile struct {
	Body
	Angle  float64
	Life   int
	Tags   TagSet
	Pierce int
	Homing bool
	Owner  Owner
}

// XPOrb is dropped on kills and drifts toward the core.
type XPOrb struct {
	Body
	Value float64
}

// Chest drifts toward the core and yields a relic on pickup.
type Chest struct {
	Body
}

// Particle is a short-lived explosion fragment.
type Particle struct {
	Body
	Life    int
	MaxLife int
	Color   core.Color
}

// FloatingText is a rising damage or status label.
type FloatingText struct {
	Pos   core.Vec2
	Text  string
	Color core.Color
	Size  int
	Life  int
	Crit  bool
}

// Beam is a jittered lightning polyline.
type Beam struct {
	From   core.Vec2
	To     core.Vec2
	Points []core.Vec2
	Life   int
	Color  core.Color
}

// Orbital is a guard rotating around the core.
type Orbital struct {
	Angle  float64
	Radius float64
}

// Ultimate tracks the charge-gated damage boost.
type Ultimate struct {
	Active    bool
	Charge    int
	MaxCharge int
	Timer     int
}

// Core is the defended player entity.
type Core struct {
	Pos    core.Vec2
	Angle  float64
	Level  int
	XP     float64
	NextXP float64
	Tags   []Tag
	Relics []string
	held   TagSet
}

// HasTag reports whether the core holds t.
func (c *Core) HasTag(t Tag) bool {
	return c.held.Has(t)
}

// HasRelic reports whether the core owns the relic.
func (c *Core) HasRelic(id string) bool {
	for _, r := range c.Relics {
		if r == id {
			return true
		}
	}
	return false
}

func (c *Core) addTag(t Tag) bool {
	if c.held.Has(t) {
		return false
	}
	c.held = c.held.With(t)
	c.Tags = append(c.Tags, t)
	return true
}

// Store owns every transient entity collection of a run.
type Store struct {
	Enemies     Pool[Enemy]
	Projectiles Pool[Projectile]
	Particles   Pool[Particle]
	Orbs        Pool[XPOrb]
	Chests      Pool[Chest]
	Texts       Pool[FloatingText]
	Beams       Pool[Beam]
}

func (s *Store) clear() {
	s.Enemies.Clear()
	s.Projectiles.Clear()
	s.Particles.Clear()
	s.Orbs.Clear()
	s.Chests.Clear()
	s.Texts.Clear()
	s.Beams.Clear()
}
