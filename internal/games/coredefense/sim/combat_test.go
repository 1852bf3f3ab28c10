package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/core-defense/internal/core"
)

func addTarget(s *Sim, x, y float64, hp float64) Handle {
	return s.store.Enemies.Add(Enemy{
		Body:  Body{Pos: core.V(x, y), Radius: 14},
		Kind:  EnemyNormal,
		HP:    hp,
		MaxHP: hp,
	})
}

func TestDamageFormula(t *testing.T) {
	tests := []struct {
		name string
		tags TagSet
		ult  bool
		want float64
	}{
		{"plain", 0, false, 10},
		{"giant", TagSet(0).With(TagGiant), false, 15},
		{"ultimate", 0, true, 20},
		{"giant ultimate", TagSet(0).With(TagGiant), true, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRun(t)
			s.stats.CritRate = 0
			s.ult.Active = tt.ult
			h := addTarget(s, 100, 100, 100)

			hit := s.HitEnemy(h, &Projectile{Tags: tt.tags})
			if hit.Damage != tt.want || hit.Crit {
				t.Errorf("hit = %+v, want %v damage without crit", hit, tt.want)
			}
			e, _ := s.store.Enemies.Get(h)
			if e.HP != 100-tt.want {
				t.Errorf("hp = %v, want %v", e.HP, 100-tt.want)
			}
		})
	}
}

func TestCriticalHit(t *testing.T) {
	s := newRun(t)
	s.stats.CritRate = 1
	h := addTarget(s, 100, 100, 100)

	hit := s.HitEnemy(h, &Projectile{})
	if !hit.Crit || hit.Damage != 15 {
		t.Errorf("hit = %+v, want crit for 15", hit)
	}
	if !hasCue(s.Drain(), core.CueCrit) {
		t.Error("crit cue not emitted")
	}

	// chain hits never crit
	hit = s.HitEnemy(h, nil)
	if hit.Crit || hit.Damage != 10 {
		t.Errorf("chain hit = %+v, want 10 without crit", hit)
	}
}

func TestShieldAbsorption(t *testing.T) {
	s := newRun(t)
	e := &Enemy{HP: 100, Shield: 5}
	s.applyDamage(e, 8)
	if e.Shield != 0 {
		t.Errorf("shield = %v, want 0", e.Shield)
	}
	if e.HP != 97 {
		t.Errorf("hp = %v, want 97", e.HP)
	}

	e = &Enemy{HP: 100, Shield: 20}
	s.applyDamage(e, 8)
	if e.Shield != 12 || e.HP != 100 {
		t.Errorf("shield/hp = %v/%v, want 12/100", e.Shield, e.HP)
	}
}

func TestKillScore(t *testing.T) {
	tests := []struct {
		kind EnemyKind
		d    float64
		want float64
	}{
		{EnemyBoss, 3, 1000},
		{EnemySwarm, 3, 5},
		{EnemyNormal, 1, 20},
		{EnemyTank, 2, 30},
		{EnemyFast, 1.5, 25},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s := newRun(t)
			s.clock.Difficulty = tt.d
			h := s.store.Enemies.Add(Enemy{Kind: tt.kind, HP: 0})
			e, _ := s.store.Enemies.Get(h)

			before := s.Score()
			s.killEnemy(h, e)
			if got := s.Score() - before; got != tt.want {
				t.Errorf("score delta = %v, want %v", got, tt.want)
			}
			if s.store.Enemies.Alive(h) {
				t.Error("killed enemy still alive")
			}

			// a second kill of the same handle awards nothing
			s.killEnemy(h, e)
			if got := s.Score() - before; got != tt.want {
				t.Errorf("double kill changed score delta to %v", got)
			}
		})
	}
}

func TestSplitterSpawnsMinis(t *testing.T) {
	s := newRun(t)
	s.clock.Difficulty = 2
	h := s.store.Enemies.Add(Enemy{Body: Body{Pos: core.V(300, 300), Radius: 18}, Kind: EnemySplitter})
	e, _ := s.store.Enemies.Get(h)
	s.killEnemy(h, e)

	minis := 0
	s.store.Enemies.Each(func(_ Handle, m *Enemy) bool {
		if m.Kind == EnemySplitterMini {
			minis++
			if m.HP != 10 || m.Radius != 10 {
				t.Errorf("mini hp/radius = %v/%v, want 10/10", m.HP, m.Radius)
			}
		}
		return true
	})
	if minis != 2 {
		t.Errorf("minis = %d, want 2", minis)
	}
}

func TestKillChargesUltimate(t *testing.T) {
	s := newRun(t)
	h := addTarget(s, 100, 100, 0)
	e, _ := s.store.Enemies.Get(h)
	s.killEnemy(h, e)
	if s.Ultimate().Charge != 5 {
		t.Errorf("charge = %d, want 5", s.Ultimate().Charge)
	}

	s.ult.Active = true
	h = addTarget(s, 100, 100, 0)
	e, _ = s.store.Enemies.Get(h)
	s.killEnemy(h, e)
	if s.Ultimate().Charge != 5 {
		t.Errorf("charge grew during ultimate: %d", s.Ultimate().Charge)
	}
}

func TestChainLightningSingleHop(t *testing.T) {
	s := newRun(t)
	src := addTarget(s, 100, 100, 100)
	near := addTarget(s, 150, 100, 100)
	far := addTarget(s, 250, 100, 100)

	got, ok := s.chainLightning(src, core.V(100, 100))
	if !ok || got != near {
		t.Fatalf("chain target = %v, %v; want the nearest enemy", got, ok)
	}
	for h, want := range map[Handle]float64{src: 100, near: 90, far: 100} {
		e, _ := s.store.Enemies.Get(h)
		if e.HP != want {
			t.Errorf("hp = %v, want %v", e.HP, want)
		}
	}
	if s.store.Beams.Len() != 1 {
		t.Errorf("beams = %d, want 1", s.store.Beams.Len())
	}
}

func TestChainLightningRange(t *testing.T) {
	s := newRun(t)
	src := addTarget(s, 100, 100, 100)
	addTarget(s, 300, 100, 100) // exactly 200 away

	if _, ok := s.chainLightning(src, core.V(100, 100)); ok {
		t.Error("chain reached an enemy 200 units away")
	}
}

func TestAreaDamageIgnoresShield(t *testing.T) {
	s := newRun(t)
	in := s.store.Enemies.Add(Enemy{Body: Body{Pos: core.V(100, 100)}, HP: 100, Shield: 50})
	out := addTarget(s, 300, 100, 100)

	s.areaDamage(core.V(120, 100), blastRadius, 5)

	e, _ := s.store.Enemies.Get(in)
	if e.HP != 95 || e.Shield != 50 {
		t.Errorf("in-range hp/shield = %v/%v, want 95/50", e.HP, e.Shield)
	}
	e, _ = s.store.Enemies.Get(out)
	if e.HP != 100 {
		t.Errorf("out-of-range hp = %v, want 100", e.HP)
	}
}

func TestProjectilePierce(t *testing.T) {
	s := newRun(t)
	s.stats.CritRate = 0
	addTarget(s, 108, 100, 100)
	h := s.store.Projectiles.Add(Projectile{Body: Body{Pos: core.V(100, 100), Vel: core.V(4, 0), Radius: 4}, Life: 60, Pierce: 2})

	s.updateProjectiles()
	p, ok := s.store.Projectiles.Get(h)
	if !ok {
		t.Fatal("piercing projectile removed on first hit")
	}
	if p.Pierce != 1 {
		t.Errorf("pierce = %d, want 1", p.Pierce)
	}

	plain := s.store.Projectiles.Add(Projectile{Body: Body{Pos: core.V(100, 100), Vel: core.V(4, 0), Radius: 4}, Life: 60})
	s.updateProjectiles()
	if s.store.Projectiles.Alive(plain) {
		t.Error("non-piercing projectile survived a hit")
	}
}

func TestFreezeAndKnockback(t *testing.T) {
	s := newRun(t)
	s.stats.CritRate = 0
	h := addTarget(s, 100, 100, 100)
	s.HitEnemy(h, &Projectile{Tags: TagSet(0).With(TagFreeze).With(TagKnock)})

	e, _ := s.store.Enemies.Get(h)
	if e.Freeze != freezeFrames {
		t.Errorf("freeze = %d, want %d", e.Freeze, freezeFrames)
	}
	if e.Push.X != 6 {
		t.Errorf("push = %v, want 6 along +x", e.Push)
	}
}

func TestEnemyProjectileHitsCore(t *testing.T) {
	s := newRun(t)
	s.store.Projectiles.Add(Projectile{Body: Body{Pos: s.core.Pos, Radius: 6}, Life: 120, Owner: OwnerEnemy})
	s.updateProjectiles()
	if s.Stats().HP != 90 {
		t.Errorf("hp = %v, want 90", s.Stats().HP)
	}
	if s.store.Projectiles.Len() != 0 {
		t.Error("enemy projectile not consumed")
	}
}

func TestBossSurvivesContact(t *testing.T) {
	s := newRun(t)
	boss := s.store.Enemies.Add(Enemy{Body: Body{Pos: s.core.Pos, Radius: 50}, Kind: EnemyBoss, HP: 400, Tier: TierGuardian, Timer: 100})
	minion := s.store.Enemies.Add(Enemy{Body: Body{Pos: s.core.Pos, Radius: 14}, Kind: EnemySwarm, HP: 4})

	s.updateEnemies()
	if !s.store.Enemies.Alive(boss) {
		t.Error("boss removed on contact")
	}
	if s.store.Enemies.Alive(minion) {
		t.Error("swarm unit survived contact")
	}
	if s.Stats().HP != 45 {
		t.Errorf("hp = %v, want 100-50-5", s.Stats().HP)
	}
}

func TestShotFanOut(t *testing.T) {
	tests := []struct {
		tags []Tag
		want int
	}{
		{nil, 1},
		{[]Tag{TagSplit}, 3},
		{[]Tag{TagSplit, TagDouble}, 4},
		{[]Tag{TagSplit, TagDouble, TagRear}, 5},
		{[]Tag{TagRear}, 2},
	}
	for _, tt := range tests {
		s := newRun(t)
		for _, tag := range tt.tags {
			s.core.addTag(tag)
		}
		s.shoot()
		if got := s.store.Projectiles.Len(); got != tt.want {
			t.Errorf("tags %v: %d projectiles, want %d", tt.tags, got, tt.want)
		}
	}
}

func TestOrbitalSpacing(t *testing.T) {
	s := newRun(t)
	s.ApplySelection(Selection{Kind: SelectTag, ID: "ORBIT"})
	s.addOrbital()
	o := s.Orbitals()
	if len(o) != 2 {
		t.Fatalf("orbitals = %d, want 2", len(o))
	}
	if o[0].Angle != 0 || o[1].Angle == 0 {
		t.Errorf("orbitals not evenly spaced: %v", o)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestKnockbackByKind(t *testing.T) {
	tests := []struct {
		kind EnemyKind
		want float64
	}{
		{EnemyBoss, 0.2},
		{EnemyTank, 2},
		{EnemySwarm, 8},
		{EnemyNormal, 6},
		{EnemyFast, 6},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s := newRun(t)
			s.stats.CritRate = 0
			h := s.store.Enemies.Add(Enemy{Body: Body{Pos: core.V(100, 100), Radius: 14}, Kind: tt.kind, HP: 100, MaxHP: 100})

			s.HitEnemy(h, &Projectile{Tags: TagSet(0).With(TagKnock)})
			e, _ := s.store.Enemies.Get(h)
			if !approx(e.Push.X, tt.want) || e.Push.Y != 0 {
				t.Errorf("push = %v, want (%v, 0)", e.Push, tt.want)
			}
		})
	}
}

func TestHomingHitPushes(t *testing.T) {
	s := newRun(t)
	s.stats.CritRate = 0
	h := addTarget(s, 100, 100, 100)

	s.HitEnemy(h, &Projectile{Angle: math.Pi / 2, Homing: true})
	e, _ := s.store.Enemies.Get(h)
	if !approx(e.Push.Y, 6) || !approx(e.Push.X, 0) {
		t.Errorf("push = %v, want (0, 6)", e.Push)
	}
}

func TestKnockbackDecay(t *testing.T) {
	tests := []struct {
		name     string
		push     core.Vec2
		wantPos  float64
		wantPush float64
	}{
		{"applied and decayed", core.V(6, 0), 706, 5.4},
		{"below cutoff", core.V(0.05, 0), 700, 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRun(t)
			h := s.store.Enemies.Add(Enemy{
				Body:  Body{Pos: s.core.Pos.Add(core.V(300, 0)), Radius: 14},
				Kind:  EnemyNormal,
				HP:    100,
				MaxHP: 100,
				Push:  tt.push,
			})

			s.updateEnemies()
			e, _ := s.store.Enemies.Get(h)
			if !approx(e.Pos.X, tt.wantPos) {
				t.Errorf("x = %v, want %v", e.Pos.X, tt.wantPos)
			}
			if !approx(e.Push.X, tt.wantPush) {
				t.Errorf("push = %v, want %v", e.Push.X, tt.wantPush)
			}
		})
	}
}

func TestFireCadence(t *testing.T) {
	tests := []struct {
		name  string
		omni  bool
		ult   bool
		frame int
		shots int
	}{
		{"base", false, false, 15, 1},
		{"base off beat", false, false, 12, 0},
		{"omni", true, false, 12, 1},
		{"omni off beat", true, false, 15, 0},
		{"ultimate", false, true, 4, 1},
		{"omni ultimate", true, true, 3, 1},
		{"omni ultimate off beat", true, true, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRun(t)
			if tt.omni {
				s.core.addTag(TagOmni)
			}
			s.ult.Active = tt.ult
			s.clock.Frames = tt.frame

			s.fire()
			if got := s.store.Projectiles.Len(); got != tt.shots {
				t.Errorf("projectiles = %d, want %d", got, tt.shots)
			}
		})
	}
}

func TestAutoAim(t *testing.T) {
	s := newRun(t)
	s.core.addTag(TagOmni)
	s.clock.Frames = 12

	// no target: the core sweeps
	s.fire()
	if !approx(s.core.Angle, 0.1) {
		t.Errorf("idle angle = %v, want 0.1", s.core.Angle)
	}

	s.store.Enemies.Add(Enemy{Body: Body{Pos: s.core.Pos.Add(core.V(300, 0)), Radius: 14}, HP: 10})
	s.store.Enemies.Add(Enemy{Body: Body{Pos: s.core.Pos.Add(core.V(0, 100)), Radius: 14}, HP: 10})
	s.clock.Frames = 24
	s.fire()
	if !approx(s.core.Angle, math.Pi/2) {
		t.Errorf("angle = %v, want pi/2 toward the nearest enemy", s.core.Angle)
	}
}

func TestHomingMissileCooldown(t *testing.T) {
	tests := []struct {
		name     string
		frame    int
		cd       int
		missiles int
	}{
		{"on cooldown boundary", 120, 120, 1},
		{"between launches", 60, 120, 0},
		{"second launch", 240, 120, 1},
		{"cooldown disabled", 120, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRun(t)
			s.core.addTag(TagHoming)
			s.stats.MissileCd = tt.cd
			s.clock.Frames = tt.frame

			s.fire()
			missiles := 0
			s.store.Projectiles.Each(func(_ Handle, p *Projectile) bool {
				if p.Homing {
					missiles++
				}
				return true
			})
			if missiles != tt.missiles {
				t.Errorf("missiles = %d, want %d", missiles, tt.missiles)
			}
		})
	}
}

func TestHomingTurnsTowardTarget(t *testing.T) {
	s := newRun(t)
	addTarget(s, 100, 400, 100)
	h := s.store.Projectiles.Add(Projectile{
		Body:   Body{Pos: core.V(100, 100), Vel: core.V(8, 0), Radius: missileRadius},
		Life:   missileLife,
		Homing: true,
	})

	s.updateProjectiles()
	p, ok := s.store.Projectiles.Get(h)
	if !ok {
		t.Fatal("missile removed")
	}
	want := math.Pi / 2 * homingTurn
	if !approx(p.Angle, want) {
		t.Errorf("angle = %v, want %v", p.Angle, want)
	}
	if !approx(p.Vel.Len(), s.stats.ProjSpeed) {
		t.Errorf("speed = %v, want %v", p.Vel.Len(), s.stats.ProjSpeed)
	}
}

func TestOrbitalHitFlashGate(t *testing.T) {
	s := newRun(t)
	s.addOrbital()
	at := s.core.Pos.Add(core.Polar(orbitalSpin, orbitalRadius))
	h := s.store.Enemies.Add(Enemy{Body: Body{Pos: at, Radius: 14}, Kind: EnemyNormal, HP: 1000, MaxHP: 1000})

	s.updateOrbitals()
	s.updateOrbitals()

	e, _ := s.store.Enemies.Get(h)
	if e.HP != 1000-s.stats.Atk {
		t.Errorf("hp = %v, want exactly one hit of %v", e.HP, s.stats.Atk)
	}
	if e.HitFlash != hitFlashFrames {
		t.Errorf("hit flash = %d, want %d", e.HitFlash, hitFlashFrames)
	}
}

func TestLifeLeech(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Sim)
		heals bool
	}{
		{"none", func(*Sim) {}, false},
		{"tag", func(s *Sim) { s.core.addTag(TagVamp) }, true},
		{"relic", func(s *Sim) { s.core.Relics = append(s.core.Relics, relicVamp) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRun(t)
			tt.setup(s)
			s.stats.HP = s.stats.MaxHP - 1

			for i := 0; i < 200; i++ {
				h := addTarget(s, 100, 100, 0)
				e, _ := s.store.Enemies.Get(h)
				s.killEnemy(h, e)
				if s.stats.HP > s.stats.MaxHP {
					t.Fatalf("hp %v above max %v after kill %d", s.stats.HP, s.stats.MaxHP, i)
				}
			}

			want := s.stats.MaxHP - 1
			if tt.heals {
				want = s.stats.MaxHP
			}
			if s.stats.HP != want {
				t.Errorf("hp = %v, want %v", s.stats.HP, want)
			}
		})
	}
}

func killN(s *Sim, kind EnemyKind, n int) {
	for i := 0; i < n; i++ {
		h := s.store.Enemies.Add(Enemy{Body: Body{Pos: core.V(100, 100), Radius: 14}, Kind: kind})
		e, _ := s.store.Enemies.Get(h)
		s.killEnemy(h, e)
	}
}

func TestBossChestDrop(t *testing.T) {
	tests := []struct {
		luck float64
		want int
	}{
		{0, 0},
		{1, 50},
		{2.5, 50},
	}
	for _, tt := range tests {
		s := newRun(t)
		s.stats.Luck = tt.luck
		killN(s, EnemyBoss, 50)
		if got := s.store.Chests.Len(); got != tt.want {
			t.Errorf("luck %v: chests = %d, want %d", tt.luck, got, tt.want)
		}
	}
}

func TestChestChanceScalesWithLuck(t *testing.T) {
	chests := func(luck float64) int {
		s := newRun(t)
		s.stats.Luck = luck
		killN(s, EnemyNormal, 5000)
		return s.store.Chests.Len()
	}

	base, lucky := chests(1), chests(10)
	if base == 0 || base > 100 {
		t.Errorf("luck 1: %d chests in 5000 kills, want about 50", base)
	}
	if lucky < 3*base {
		t.Errorf("luck 10: %d chests, want well above luck 1's %d", lucky, base)
	}
}

func TestOrbDrops(t *testing.T) {
	s := newRun(t)
	killN(s, EnemyNormal, 100)
	if got := s.store.Orbs.Len(); got != 100 {
		t.Errorf("normal kills dropped %d orbs, want 100", got)
	}

	s = newRun(t)
	killN(s, EnemySwarm, 2000)
	if got := s.store.Orbs.Len(); got < 300 || got > 500 {
		t.Errorf("swarm kills dropped %d orbs, want about 400", got)
	}
}
