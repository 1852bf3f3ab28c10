package sim

import "github.com/vovakirdan/core-defense/internal/core"

const (
	separationGap      = 5
	separationStrength = 2
)

// separationForces returns, for each body, the summed repulsion from every
// other body closer than the two radii plus a small gap. The push scales
// with (minDist - dist) / minDist. Coincident bodies are split along the
// x axis by their order so stacked spawns fan out instead of staying fused.
func separationForces(bodies []Body) []core.Vec2 {
	out := make([]core.Vec2, len(bodies))
	for i := range bodies {
		a := bodies[i]
		var f core.Vec2
		for j := range bodies {
			if i == j {
				continue
			}
			b := bodies[j]
			minDist := a.Radius + b.Radius + separationGap
			dir, dist := a.Pos.Sub(b.Pos).Normalize()
			if dist >= minDist {
				continue
			}
			if dist == 0 {
				dir = core.V(1, 0)
				if i < j {
					dir = core.V(-1, 0)
				}
			}
			force := (minDist - dist) / minDist
			f = f.Add(dir.Scale(force * separationStrength))
		}
		out[i] = f
	}
	return out
}

// enemySeparation computes the separation push for every live enemy from
// the positions at the start of the enemy pass.
func (s *Sim) enemySeparation() map[Handle]core.Vec2 {
	var handles []Handle
	var bodies []Body
	s.store.Enemies.Each(func(h Handle, e *Enemy) bool {
		handles = append(handles, h)
		bodies = append(bodies, e.Body)
		return true
	})
	forces := separationForces(bodies)
	out := make(map[Handle]core.Vec2, len(handles))
	for i, h := range handles {
		out[h] = forces[i]
	}
	return out
}
