package sim

import "github.com/vovakirdan/core-defense/internal/core"

const (
	textLife     = 40
	particleLife = 30
	shakeDecay   = 0.9
	shakeEpsilon = 0.5
	beamJitter   = 5
)

// explode throws n particles from pos. Cosmetic only: it draws from the
// effects rng so gameplay stays reproducible regardless of visuals.
func (s *Sim) explode(pos core.Vec2, color core.Color, n int) {
	for i := 0; i < n; i++ {
		vel := core.V((s.fx.Float64()-0.5)*5, (s.fx.Float64()-0.5)*5)
		c := s.fx.Float64()
		s.store.Particles.Add(Particle{
			Body:    Body{Pos: pos, Vel: vel, Radius: c * 3},
			Life:    int(c*20 + 10),
			MaxLife: particleLife,
			Color:   color,
		})
	}
}

func (s *Sim) text(pos core.Vec2, text string, color core.Color, size int, crit bool) {
	s.store.Texts.Add(FloatingText{
		Pos:   pos,
		Text:  text,
		Color: color,
		Size:  size,
		Life:  textLife,
		Crit:  crit,
	})
}

func (s *Sim) updateParticles() {
	s.store.Particles.Each(func(h Handle, p *Particle) bool {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life <= 0 {
			s.store.Particles.Remove(h)
		}
		return true
	})

	s.shake *= shakeDecay
	if s.shake < shakeEpsilon {
		s.shake = 0
	}
}

func (s *Sim) updateTexts() {
	s.store.Texts.Each(func(h Handle, t *FloatingText) bool {
		t.Pos.Y--
		t.Life--
		if t.Life <= 0 {
			s.store.Texts.Remove(h)
		}
		return true
	})
}

func (s *Sim) updateBeams() {
	s.store.Beams.Each(func(h Handle, b *Beam) bool {
		b.Life--
		if b.Life <= 0 {
			s.store.Beams.Remove(h)
			return true
		}
		for i := range b.Points {
			b.Points[i] = b.Points[i].Add(core.V((s.fx.Float64()-0.5)*beamJitter, (s.fx.Float64()-0.5)*beamJitter))
		}
		return true
	})
}
