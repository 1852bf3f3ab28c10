package sim

import (
	"math"

	"github.com/vovakirdan/core-defense/internal/core"
)

const (
	bossBaseCooldown   = 300
	prismCooldown      = 180
	carrierCooldown    = 240
	guardianShield     = 200
	prismShots         = 12
	prismShotSpeed     = 5
	prismShotLife      = 120
	carrierChargeForce = 30
)

// runBossScript counts down the boss timer and fires the tier ability
// when it expires.
func (s *Sim) runBossScript(e *Enemy) {
	e.Timer--
	if e.Timer > 0 {
		return
	}
	e.Timer = bossBaseCooldown
	s.text(e.Pos.Add(core.V(0, -60)), "WARNING!", core.ColorRed, 24, false)

	d := s.clock.Difficulty
	switch e.Tier {
	case TierGuardian:
		e.Shield = guardianShield
		s.text(e.Pos, "SHIELD UP", core.ColorPurple, 20, false)
		for i := 0; i < 2; i++ {
			off := core.V((s.rng.Float64()-0.5)*50, (s.rng.Float64()-0.5)*50)
			s.store.Enemies.Add(Enemy{
				Body:  Body{Pos: e.Pos.Add(off), Radius: 22},
				Kind:  EnemyTank,
				HP:    50 * d,
				MaxHP: 50 * d,
				Speed: 1,
			})
		}
		s.cue(core.CueLevelUp)

	case TierPrism:
		e.Timer = prismCooldown
		for i := 0; i < prismShots; i++ {
			angle := 2 * math.Pi / prismShots * float64(i)
			s.store.Projectiles.Add(Projectile{
				Body:  Body{Pos: e.Pos, Vel: core.Polar(angle, prismShotSpeed), Radius: 6},
				Angle: angle,
				Life:  prismShotLife,
				Owner: OwnerEnemy,
			})
		}
		s.cue(core.CueExplosion)

	case TierCarrier:
		e.Timer = carrierCooldown
		for i := 0; i < 4; i++ {
			s.store.Enemies.Add(Enemy{
				Body:  Body{Pos: e.Pos, Radius: 10},
				Kind:  EnemyFast,
				HP:    15 * d,
				MaxHP: 15 * d,
				Speed: 3,
			})
		}
		e.Push = core.Polar(s.core.Pos.Sub(e.Pos).Angle(), carrierChargeForce)
		s.cue(core.CueShoot)
	}
}
