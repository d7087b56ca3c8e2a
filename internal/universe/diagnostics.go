package universe

import (
	"github.com/san-kum/gravsim/internal/vec"
)

// Energy returns kinetic plus pairwise potential energy in the engine's
// unit convention. Coincident pairs contribute no potential.
func (u *Universe) Energy() float64 {
	ke, pe := 0.0, 0.0
	for i, a := range u.bodies {
		v := a.velocity.Norm()
		ke += 0.5 * a.mass * v * v

		for _, b := range u.bodies[i+1:] {
			if a.position.Equal(b.position) {
				continue
			}
			r := b.position.Sub(a.position).Norm()
			pe -= G * a.mass * b.mass / r
		}
	}
	return ke + pe
}

// Momentum returns the total linear momentum Σ m·v.
func (u *Universe) Momentum() vec.Vec3 {
	p := vec.Zero
	for _, b := range u.bodies {
		p = p.Add(b.velocity.Scale(b.mass))
	}
	return p
}

// AngularMomentum returns Σ m·(r × v) about the frame origin.
func (u *Universe) AngularMomentum() vec.Vec3 {
	l := vec.Zero
	for _, b := range u.bodies {
		l = l.Add(b.position.Cross(b.velocity).Scale(b.mass))
	}
	return l
}

// MinSeparation returns the smallest pairwise distance in internal units, or
// zero when fewer than two bodies are registered.
func (u *Universe) MinSeparation() float64 {
	best := -1.0
	for i, a := range u.bodies {
		for _, b := range u.bodies[i+1:] {
			d := b.position.Sub(a.position).Norm()
			if best < 0 || d < best {
				best = d
			}
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// Finite reports whether every position and velocity is finite.
func (u *Universe) Finite() bool {
	for _, b := range u.bodies {
		if !b.position.IsFinite() || !b.velocity.IsFinite() {
			return false
		}
	}
	return true
}
