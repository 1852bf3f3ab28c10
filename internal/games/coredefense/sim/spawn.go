package sim

import (
	"math"

	"github.com/vovakirdan/core-defense/internal/core"
)

const (
	spawnMargin    = 50
	swarmMinCount  = 12
	swarmSpread    = 150
	bossEverySecs  = 60
	enemyTimer     = 180
	maxSpeedFactor = 2.5
)

type enemyTemplate struct {
	hp     float64
	speed  float64
	radius float64
}

var enemyTemplates = map[EnemyKind]enemyTemplate{
	EnemyNormal:   {10, 1, 14},
	EnemyTank:     {30, 0.6, 22},
	EnemyFast:     {6, 1.8, 10},
	EnemySplitter: {15, 0.8, 18},
	EnemySummoner: {40, 0.4, 24},
	EnemyHealer:   {20, 0.7, 16},
	EnemySwarm:    {4, 2.2, 8},
	EnemyBoss:     {0, 0.3, 50},
}

// SelectKind applies the spawn priority rules to a uniform roll.
func SelectKind(roll float64, seconds int, difficulty float64, bossAlive bool) EnemyKind {
	switch {
	case seconds > 0 && seconds%bossEverySecs == 0 && !bossAlive:
		return EnemyBoss
	case difficulty > 1.5 && roll < 0.1:
		return EnemySummoner
	case difficulty > 1.5 && roll < 0.2:
		return EnemyHealer
	case difficulty > 1.2 && roll < 0.3:
		return EnemySplitter
	case seconds > 30 && roll < 0.05:
		return EnemySwarm
	case roll < 0.1*difficulty:
		return EnemyTank
	case roll < 0.3*difficulty:
		return EnemyFast
	default:
		return EnemyNormal
	}
}

// BossTierFor returns the ability script of the n-th boss (1-based).
func BossTierFor(n int) BossTier {
	return BossTier((n-1)%3 + 1)
}

// SpeedFactor is the difficulty speed multiplier, capped at 2.5.
func SpeedFactor(difficulty float64) float64 {
	return math.Min(maxSpeedFactor, 1+difficulty*0.1)
}

func (s *Sim) maybeSpawn() {
	if s.clock.Frames%SpawnInterval(s.clock.Difficulty) != 0 {
		return
	}
	s.spawnEnemy()
}

func (s *Sim) bossAlive() bool {
	alive := false
	s.store.Enemies.Each(func(_ Handle, e *Enemy) bool {
		if e.Kind == EnemyBoss {
			alive = true
			return false
		}
		return true
	})
	return alive
}

func (s *Sim) spawnEnemy() {
	d := s.clock.Difficulty
	kind := SelectKind(s.rng.Float64(), s.clock.Seconds, d, s.bossAlive())
	if kind == EnemyBoss {
		s.bossCount++
	}

	origin := s.edgePoint()
	if kind == EnemySwarm {
		s.spawnSwarm(origin)
		return
	}

	t := enemyTemplates[kind]
	hp := t.hp * d
	if kind == EnemyBoss {
		hp = (300 + 100*float64(s.bossCount)) * d
	}
	e := Enemy{
		Body:     Body{Pos: origin, Radius: t.radius},
		Kind:     kind,
		HP:       hp,
		MaxHP:    hp,
		Speed:    t.speed * SpeedFactor(d),
		Timer:    enemyTimer,
		MaxTimer: enemyTimer,
	}
	if kind == EnemyBoss {
		e.Tier = BossTierFor(s.bossCount)
	}
	s.store.Enemies.Add(e)

	if kind == EnemyBoss {
		s.text(core.V(s.cfg.Width/2, s.cfg.Height/2-100), "BOSS DETECTED", core.ColorRed, 40, false)
		s.cue(core.CueBossAlarm)
		s.emit(BossSpawnedEvent{Number: s.bossCount, Tier: e.Tier})
	}
}

// edgePoint picks a uniformly random side and a point just outside it.
func (s *Sim) edgePoint() core.Vec2 {
	w, h := s.cfg.Width, s.cfg.Height
	switch int(s.rng.Float64() * 4) {
	case 0:
		return core.V(s.rng.Float64()*w, -spawnMargin)
	case 1:
		return core.V(w+spawnMargin, s.rng.Float64()*h)
	case 2:
		return core.V(s.rng.Float64()*w, h+spawnMargin)
	default:
		return core.V(-spawnMargin, s.rng.Float64()*h)
	}
}

// spawnSwarm adds a batch of 12-19 swarm units within 75 units of origin.
func (s *Sim) spawnSwarm(origin core.Vec2) int {
	d := s.clock.Difficulty
	t := enemyTemplates[EnemySwarm]
	count := int(s.rng.Float64()*8) + swarmMinCount
	for i := 0; i < count; i++ {
		off := core.V((s.rng.Float64()-0.5)*swarmSpread, (s.rng.Float64()-0.5)*swarmSpread)
		s.store.Enemies.Add(Enemy{
			Body:  Body{Pos: origin.Add(off), Radius: t.radius},
			Kind:  EnemySwarm,
			HP:    t.hp * d,
			MaxHP: t.hp * d,
			Speed: t.speed * SpeedFactor(d),
		})
	}
	return count
}
