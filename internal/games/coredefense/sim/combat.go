package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/core-defense/internal/core"
)

const (
	bulletLife       = 60
	bulletRadius     = 4
	giantRadius      = 8
	pierceCount      = 2
	missileLife      = 150
	missileRadius    = 6
	homingTurn       = 0.15
	freezeFrames     = 120
	blastRadius      = 80
	chainRange       = 200
	chainSteps       = 5
	chainJitter      = 30
	enemyShotDamage  = 10
	hitFlashFrames   = 5
	knockbackDecay   = 0.9
	knockbackEpsilon = 0.1
)

// Hit describes one resolved hit.
type Hit struct {
	Damage float64
	Crit   bool
	Killed bool
}

func (s *Sim) fire() {
	rate := s.stats.FireRate
	if s.ult.Active {
		rate = ultFireRate
	}
	omni := s.core.HasTag(TagOmni)
	if omni {
		rate *= 0.8
	}
	period := int(math.Floor(rate))
	if period < 1 {
		period = 1
	}

	if s.clock.Frames%period == 0 {
		if omni {
			if _, e, ok := s.nearestEnemy(s.core.Pos, Handle{}, math.Inf(1)); ok {
				s.core.Angle = e.Pos.Sub(s.core.Pos).Angle()
			} else {
				s.core.Angle += 0.1
			}
		}
		s.shoot()
	}

	if s.core.HasTag(TagHoming) && s.stats.MissileCd > 0 && s.clock.Frames%s.stats.MissileCd == 0 {
		s.shootMissile()
	}
}

func (s *Sim) shoot() {
	s.cue(core.CueShoot)

	radius := float64(bulletRadius)
	if s.core.HasTag(TagGiant) {
		radius = giantRadius
	}
	pierce := 0
	if s.core.HasTag(TagPierce) {
		pierce = pierceCount
	}
	bullet := func(offset float64) {
		angle := s.core.Angle + offset
		s.store.Projectiles.Add(Projectile{
			Body:   Body{Pos: s.core.Pos, Vel: core.Polar(angle, s.stats.ProjSpeed), Radius: radius},
			Angle:  angle,
			Life:   bulletLife,
			Tags:   s.core.held,
			Pierce: pierce,
		})
	}

	if s.core.HasTag(TagSplit) {
		bullet(-0.2)
		bullet(0)
		bullet(0.2)
	} else {
		bullet(0)
	}
	if s.core.HasTag(TagDouble) {
		bullet(0.1)
	}
	if s.core.HasTag(TagRear) {
		bullet(math.Pi)
	}
}

func (s *Sim) shootMissile() {
	s.store.Projectiles.Add(Projectile{
		Body:   Body{Pos: s.core.Pos, Vel: core.Polar(s.core.Angle, s.stats.ProjSpeed*0.5), Radius: missileRadius},
		Angle:  s.core.Angle,
		Life:   missileLife,
		Tags:   TagSet(0).With(TagHoming).With(TagBlast),
		Homing: true,
	})
	s.cue(core.CueShoot)
}

// nearestEnemy finds the closest live enemy to p within maxDist, skipping
// the excluded handle.
func (s *Sim) nearestEnemy(p core.Vec2, exclude Handle, maxDist float64) (Handle, *Enemy, bool) {
	var best Handle
	var target *Enemy
	bestDist := maxDist
	s.store.Enemies.Each(func(h Handle, e *Enemy) bool {
		if h == exclude {
			return true
		}
		if d := e.Pos.Dist(p); d < bestDist {
			bestDist, best, target = d, h, e
		}
		return true
	})
	return best, target, target != nil
}

func contactDamage(k EnemyKind) float64 {
	switch k {
	case EnemyBoss:
		return 50
	case EnemySwarm:
		return 5
	default:
		return 10
	}
}

func (s *Sim) updateEnemies() {
	sep := s.enemySeparation()

	s.store.Enemies.Each(func(h Handle, e *Enemy) bool {
		if e.Kind == EnemyBoss && e.Tier != TierNone {
			s.runBossScript(e)
		}

		dir, dist := s.core.Pos.Sub(e.Pos).Normalize()
		spd := e.Speed
		if e.Freeze > 0 {
			spd *= 0.5
			e.Freeze--
		}
		e.Pos = e.Pos.Add(dir.Scale(spd)).Add(sep[h])

		if math.Abs(e.Push.X) > knockbackEpsilon || math.Abs(e.Push.Y) > knockbackEpsilon {
			e.Pos = e.Pos.Add(e.Push)
			e.Push = e.Push.Scale(knockbackDecay)
		}

		if e.HitFlash > 0 {
			e.HitFlash--
		}

		if dist < e.Radius+coreRadius {
			dmg := contactDamage(e.Kind)
			s.text(s.core.Pos, fmt.Sprintf("-%d", int(dmg)), core.ColorRed, 20, false)
			s.shake = 15
			s.explode(s.core.Pos, core.ColorRed, 10)
			s.cue(core.CueHit)
			if e.Kind != EnemyBoss {
				s.store.Enemies.Remove(h)
			}
			s.damageCore(dmg)
		}
		return !s.over
	})
}

func (s *Sim) updateProjectiles() {
	s.store.Projectiles.Each(func(h Handle, p *Projectile) bool {
		if p.Owner == OwnerEnemy {
			p.Pos = p.Pos.Add(p.Vel)
			p.Life--
			if p.Pos.Dist(s.core.Pos) < coreRadius {
				s.store.Projectiles.Remove(h)
				s.shake = 5
				s.cue(core.CueHit)
				s.damageCore(enemyShotDamage)
				return !s.over
			}
			if p.Life <= 0 {
				s.store.Projectiles.Remove(h)
			}
			return true
		}

		if p.Homing {
			if _, t, ok := s.nearestEnemy(p.Pos, Handle{}, math.Inf(1)); ok {
				diff := math.Remainder(t.Pos.Sub(p.Pos).Angle()-p.Angle, 2*math.Pi)
				p.Angle += diff * homingTurn
				p.Vel = core.Polar(p.Angle, s.stats.ProjSpeed)
			}
		}

		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life <= 0 || p.Pos.X < 0 || p.Pos.X > s.cfg.Width || p.Pos.Y < 0 || p.Pos.Y > s.cfg.Height {
			s.store.Projectiles.Remove(h)
			return true
		}

		s.store.Enemies.Each(func(eh Handle, e *Enemy) bool {
			if p.Pos.Dist(e.Pos) >= e.Radius+p.Radius {
				return true
			}
			shot := *p
			at := e.Pos
			s.HitEnemy(eh, &shot)

			switch {
			case s.ult.Active:
			case p.Pierce > 0:
				p.Pierce--
			default:
				s.store.Projectiles.Remove(h)
			}

			if shot.Tags.Has(TagBlast) {
				s.areaDamage(at, blastRadius, s.stats.Atk*0.5)
			}
			if shot.Tags.Has(TagChain) {
				s.chainLightning(eh, at)
			}
			return false
		})
		return true
	})
}

// HitEnemy resolves a hit on the enemy behind h. A nil projectile means a
// chain-lightning hit: base attack, ultimate bonus, no crit roll and no
// projectile side effects.
func (s *Sim) HitEnemy(h Handle, p *Projectile) Hit {
	e, ok := s.store.Enemies.Get(h)
	if !ok {
		return Hit{}
	}

	dmg := s.stats.Atk
	if p != nil && p.Tags.Has(TagGiant) {
		dmg *= 1.5
	}
	if s.ult.Active {
		dmg *= 2
	}
	crit := false
	if p != nil && s.rng.Float64() < s.stats.CritRate {
		crit = true
		dmg *= s.stats.CritDmg
	}

	s.applyDamage(e, dmg)

	if p != nil {
		if p.Tags.Has(TagFreeze) {
			e.Freeze = freezeFrames
		}
		if p.Tags.Has(TagKnock) || p.Homing {
			e.Push = e.Push.Add(core.Polar(p.Angle, knockbackPower(e.Kind)))
		}
	}

	color, size := core.ColorWhite, 12
	if crit {
		color, size = core.ColorBrightYellow, 20
	}
	s.text(e.Pos.Add(core.V(0, -e.Radius)), fmt.Sprintf("%d", int(math.Ceil(dmg))), color, size, crit)
	e.HitFlash = hitFlashFrames
	s.explode(e.Pos, enemyColor(e.Kind), 2)
	s.cue(core.CueHit)
	if crit {
		s.explode(e.Pos, core.ColorBrightYellow, 5)
		s.cue(core.CueCrit)
	}

	hit := Hit{Damage: dmg, Crit: crit}
	if e.HP <= 0 {
		s.killEnemy(h, e)
		hit.Killed = true
	}
	return hit
}

// applyDamage routes damage through the shield first; overflow reaches hp.
func (s *Sim) applyDamage(e *Enemy, dmg float64) {
	if e.Shield <= 0 {
		e.HP -= dmg
		return
	}
	e.Shield -= dmg
	s.text(e.Pos.Add(core.V(0, -e.Radius)), "ABSORB", core.ColorBlue, 10, false)
	if e.Shield < 0 {
		e.HP += e.Shield
		e.Shield = 0
	}
}

func knockbackPower(k EnemyKind) float64 {
	switch k {
	case EnemyBoss:
		return 0.2
	case EnemyTank:
		return 2
	case EnemySwarm:
		return 8
	default:
		return 6
	}
}

// areaDamage hits every enemy within r of center, bypassing shields.
func (s *Sim) areaDamage(center core.Vec2, r, dmg float64) {
	s.store.Enemies.Each(func(h Handle, e *Enemy) bool {
		if e.Pos.Dist(center) >= r {
			return true
		}
		e.HP -= dmg
		e.HitFlash = hitFlashFrames
		s.text(e.Pos.Add(core.V(0, -e.Radius)), fmt.Sprintf("%d", int(math.Ceil(dmg))), core.ColorWhite, 10, false)
		if e.HP <= 0 {
			s.killEnemy(h, e)
		}
		return true
	})
	s.explode(center, core.ColorOrange, 10)
}

// chainLightning strikes the single nearest other enemy within range of
// the struck enemy's position.
func (s *Sim) chainLightning(source Handle, from core.Vec2) (Handle, bool) {
	th, target, ok := s.nearestEnemy(from, source, chainRange)
	if !ok {
		return Handle{}, false
	}

	to := target.Pos
	step := to.Sub(from).Scale(1.0 / chainSteps)
	points := make([]core.Vec2, 0, chainSteps-1)
	for i := 1; i < chainSteps; i++ {
		jitter := core.V((s.fx.Float64()-0.5)*chainJitter, (s.fx.Float64()-0.5)*chainJitter)
		points = append(points, from.Add(step.Scale(float64(i))).Add(jitter))
	}
	s.store.Beams.Add(Beam{From: from, To: to, Points: points, Life: 10, Color: core.ColorBrightYellow})

	s.HitEnemy(th, nil)
	return th, true
}

// KillScore is the score awarded for killing an enemy of kind k.
func KillScore(k EnemyKind, difficulty float64) float64 {
	switch k {
	case EnemyBoss:
		return 1000
	case EnemySwarm:
		return 5
	default:
		return 10 * (1 + difficulty)
	}
}

func (s *Sim) killEnemy(h Handle, e *Enemy) {
	if !s.store.Enemies.Alive(h) {
		return
	}
	dead := *e
	s.store.Enemies.Remove(h)
	d := s.clock.Difficulty

	s.score += KillScore(dead.Kind, d)

	if dead.Kind != EnemySwarm || s.rng.Float64() < 0.2 {
		value := 10.0
		if dead.Kind == EnemyBoss {
			value = 100
		}
		s.store.Orbs.Add(XPOrb{Body: Body{Pos: dead.Pos, Radius: 4}, Value: value})
	}
	s.cue(core.CueExplosion)

	chance := 0.01
	if dead.Kind == EnemyBoss {
		chance = 1
	}
	if s.rng.Float64() < chance*s.stats.Luck {
		vel := core.V((s.rng.Float64()-0.5)*2, (s.rng.Float64()-0.5)*2)
		s.store.Chests.Add(Chest{Body: Body{Pos: dead.Pos, Vel: vel, Radius: 10}})
		s.text(dead.Pos, "CHEST!", core.ColorBrightYellow, 18, false)
	}

	if dead.Kind == EnemySplitter {
		for i := 0; i < 2; i++ {
			mini := dead
			mini.Kind = EnemySplitterMini
			mini.Radius = 10
			mini.HP = 5 * d
			mini.MaxHP = 5 * d
			mini.Pos.X += s.rng.Float64()*20 - 10
			s.store.Enemies.Add(mini)
		}
	}

	if (s.core.HasTag(TagVamp) || s.core.HasRelic(relicVamp)) && s.rng.Float64() < 0.1 {
		s.stats.HP = math.Min(s.stats.MaxHP, s.stats.HP+2)
		s.text(s.core.Pos, "+2", core.ColorGreen, 16, false)
	}

	if !s.ult.Active {
		gain := 5
		if dead.Kind == EnemySwarm {
			gain = 1
		}
		s.addUltCharge(gain)
	}
}

func (s *Sim) addOrbital() {
	s.orbitals = append(s.orbitals, Orbital{Radius: orbitalRadius})
	n := float64(len(s.orbitals))
	for i := range s.orbitals {
		s.orbitals[i].Angle = 2 * math.Pi / n * float64(i)
	}
}

func (s *Sim) updateOrbitals() {
	for i := range s.orbitals {
		o := &s.orbitals[i]
		o.Angle += orbitalSpin
		pos := s.core.Pos.Add(core.Polar(o.Angle, o.Radius))

		s.store.Enemies.Each(func(h Handle, e *Enemy) bool {
			if e.Pos.Dist(pos) >= e.Radius+10 || e.HitFlash > 0 {
				return true
			}
			e.HP -= s.stats.Atk
			e.HitFlash = hitFlashFrames
			s.text(e.Pos.Add(core.V(0, -e.Radius)), fmt.Sprintf("%d", int(math.Ceil(s.stats.Atk))), core.ColorGreen, 12, false)
			s.store.Particles.Add(Particle{Body: Body{Pos: pos, Radius: 3}, Life: 10, MaxLife: 10, Color: core.ColorGreen})
			s.cue(core.CueHit)
			if e.HP <= 0 {
				s.killEnemy(h, e)
			}
			return true
		})
	}
}

func enemyColor(k EnemyKind) core.Color {
	switch k {
	case EnemyTank:
		return core.ColorPurple
	case EnemyFast:
		return core.ColorYellow
	case EnemySplitter, EnemySplitterMini:
		return core.ColorGreen
	case EnemySummoner:
		return core.ColorMagenta
	case EnemyHealer:
		return core.ColorCyan
	case EnemySwarm:
		return core.ColorOrange
	case EnemyBoss:
		return core.ColorBrightRed
	default:
		return core.ColorRed
	}
}

// EnemyColor returns the display color of an enemy kind.
func EnemyColor(k EnemyKind) core.Color {
	return enemyColor(k)
}
