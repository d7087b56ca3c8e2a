package universe

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/gravsim/internal/units"
	"github.com/san-kum/gravsim/internal/vec"
)

// G is the Newtonian gravitational constant in SI units.
const G = 6.674e-11

// Body is a point mass. Radius and color are presentation attributes and do
// not take part in the dynamics.
type Body struct {
	label    string
	mass     float64
	position vec.Vec3
	velocity vec.Vec3
	radius   float64
	color    colorful.Color

	// universe is set by Universe.Add. It does not own the universe.
	universe *Universe
}

type BodyOption func(*Body)

// WithRadius sets the display radius in internal units.
func WithRadius(r float64) BodyOption {
	return func(b *Body) { b.radius = r }
}

func WithColor(c colorful.Color) BodyOption {
	return func(b *Body) { b.color = c }
}

// NewBody creates a body at pos moving with vel, both in internal units.
// The mass must be positive and finite.
func NewBody(label string, mass float64, pos, vel vec.Vec3, opts ...BodyOption) (*Body, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if !validFactor(mass) {
		return nil, &BodyError{Label: label, Wrapped: ErrInvalidMass}
	}
	b := &Body{
		label:    label,
		mass:     mass,
		position: pos,
		velocity: vel,
		radius:   1.0,
		color:    colorful.Color{R: 1, G: 1, B: 1},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func (b *Body) Label() string             { return b.label }
func (b *Body) Mass() float64             { return b.mass }
func (b *Body) Position() vec.Vec3        { return b.position }
func (b *Body) Velocity() vec.Vec3        { return b.velocity }
func (b *Body) Radius() float64           { return b.radius }
func (b *Body) Color() colorful.Color     { return b.color }
func (b *Body) Universe() *Universe       { return b.universe }
func (b *Body) SetRadius(r float64)       { b.radius = r }
func (b *Body) SetColor(c colorful.Color) { b.color = c }

// PositionMeters returns the position converted for renderers.
func (b *Body) PositionMeters() r3.Vec {
	return units.VecToMeters(b.position)
}

func (b *Body) RadiusMeters() float64 {
	return units.ToMeters(b.radius)
}

// Acceleration returns the net gravitational acceleration exerted on b by
// every other body of its universe, at the current positions.
//
// Bodies whose position equals b's position component-wise are skipped. This
// also skips distinct bodies that happen to coincide in space.
func (b *Body) Acceleration() vec.Vec3 {
	if b.universe == nil {
		return vec.Zero
	}
	pos, mass := b.universe.snapshot()
	return pull(b.position, b.mass, pos, mass)
}

// pull sums the acceleration on a body of mass m located at p due to the
// sources at srcPos with masses srcMass.
func pull(p vec.Vec3, m float64, srcPos []vec.Vec3, srcMass []float64) vec.Vec3 {
	acc := vec.Zero
	for j, q := range srcPos {
		if p.Equal(q) {
			continue
		}
		diff := q.Sub(p)
		dist := diff.Norm()

		force := G * m * srcMass[j] / (dist * dist)
		a := force / m
		acc = acc.Add(diff.Scale(a / dist))
	}
	return acc
}

func validFactor(k float64) bool {
	return k > 0 && !math.IsInf(k, 0) && !math.IsNaN(k)
}
