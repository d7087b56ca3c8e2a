package metrics

import (
	"math"

	"github.com/san-kum/gravsim/internal/sim"
	"github.com/san-kum/gravsim/internal/units"
	"github.com/san-kum/gravsim/internal/universe"
)

// Stability is the fraction of observed steps with an all-finite state.
type Stability struct {
	name       string
	violations int
	samples    int
}

func NewStability() *Stability {
	return &Stability{name: "stability"}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(u *universe.Universe, dt float64) {
	s.samples++
	if !u.Finite() {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}

// MinSeparation records the closest approach between any two bodies, in meters.
type MinSeparation struct {
	name string
	min  float64
}

func NewMinSeparation() *MinSeparation {
	return &MinSeparation{name: "min_separation_m", min: math.Inf(1)}
}

func (m *MinSeparation) Name() string { return m.name }

func (m *MinSeparation) Observe(u *universe.Universe, dt float64) {
	if u.Len() < 2 {
		return
	}
	m.min = math.Min(m.min, units.ToMeters(u.MinSeparation()))
}

func (m *MinSeparation) Value() float64 {
	if math.IsInf(m.min, 1) {
		return 0
	}
	return m.min
}

func (m *MinSeparation) Reset() { m.min = math.Inf(1) }

// Defaults returns the metrics a run records unless told otherwise.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewEnergyDrift(),
		NewMomentumDrift(),
		NewMinSeparation(),
		NewStability(),
	}
}
