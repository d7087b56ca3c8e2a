package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/gravsim/internal/universe"
)

// EnergyDrift tracks the largest relative departure of the total energy from
// its value at the first observed step.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	drifts        []float64
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(u *universe.Universe, dt float64) {
	energy := u.Energy()
	if len(e.drifts) == 0 {
		e.initialEnergy = energy
	}
	drift := 0.0
	if e.initialEnergy != 0 {
		drift = math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
	}
	e.drifts = append(e.drifts, drift)
}

func (e *EnergyDrift) Value() float64 {
	if len(e.drifts) == 0 {
		return 0
	}
	return floats.Max(e.drifts)
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.drifts = e.drifts[:0]
}

// MomentumDrift tracks the largest change of |Σ m·v| since the first
// observed step.
type MomentumDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{name: "momentum_drift"}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(u *universe.Universe, dt float64) {
	p := u.Momentum().Norm()
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++
	m.maxDrift = math.Max(m.maxDrift, math.Abs(p-m.initial))
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}
