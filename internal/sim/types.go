package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/gravsim/internal/units"
	"github.com/san-kum/gravsim/internal/universe"
	"github.com/san-kum/gravsim/internal/vec"
)

const (
	// MinDt and MaxDt bound the scaled dt handed to the engine.
	MinDt = 1e-6
	MaxDt = 1e6
)

// ClampDt bounds dt to [MinDt, MaxDt] to keep the explicit integrator stable.
func ClampDt(dt float64) float64 {
	return math.Min(MaxDt, math.Max(MinDt, dt))
}

// Metric accumulates a scalar over the steps of a run.
type Metric interface {
	Name() string
	Observe(u *universe.Universe, dt float64)
	Value() float64
	Reset()
}

// Observer is notified after every completed step.
type Observer interface {
	OnStep(u *universe.Universe, dt float64)
}

type Config struct {
	// Tick is the raw tick duration in seconds before time scaling.
	Tick float64
	// Steps is the number of ticks to drive.
	Steps int
	// SampleEvery records a frame every n completed steps. Zero disables frames.
	SampleEvery int
	// Recenter centers the frame on the central body after every step.
	Recenter      bool
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Tick:          1.0 / 60.0,
		Steps:         600,
		SampleEvery:   1,
		Recenter:      true,
		ValidateState: true,
	}
}

// Frame is a snapshot of body positions in internal units.
type Frame struct {
	Time      float64
	Positions []vec.Vec3
}

type Result struct {
	Labels      []string
	Frames      []Frame
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	PausedTicks int
	Elapsed     float64
	Errors      []error
}

// Separation returns the distance in meters between two bodies for every
// recorded frame.
func (r *Result) Separation(a, b string) ([]float64, error) {
	ia, ib := -1, -1
	for i, l := range r.Labels {
		switch l {
		case a:
			ia = i
		case b:
			ib = i
		}
	}
	if ia < 0 {
		return nil, fmt.Errorf("unknown body: %s", a)
	}
	if ib < 0 {
		return nil, fmt.Errorf("unknown body: %s", b)
	}

	out := make([]float64, len(r.Frames))
	for i, f := range r.Frames {
		out[i] = units.ToMeters(f.Positions[ib].Sub(f.Positions[ia]).Norm())
	}
	return out, nil
}

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
