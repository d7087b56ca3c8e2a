// Package sim drives a universe tick by tick on behalf of a frontend. It
// owns the cadence concerns the engine leaves to its caller: time scaling,
// dt clamping, pause handling and frame recentering.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/gravsim/internal/universe"
	"github.com/san-kum/gravsim/internal/vec"
)

type Simulator struct {
	u         *universe.Universe
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
}

func New(u *universe.Universe, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{
		u:         u,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    logger,
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Universe returns the driven universe.
func (s *Simulator) Universe() *universe.Universe { return s.u }

// Tick drives a single tick and returns the dt applied, or zero when the
// universe is paused.
func (s *Simulator) Tick(raw float64) float64 {
	if s.u.Paused() {
		return 0
	}
	dt := ClampDt(raw * s.u.TimeScale())
	if !s.u.Update(dt) {
		return 0
	}
	return dt
}

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	frames := 0
	if cfg.SampleEvery > 0 {
		frames = cfg.Steps/cfg.SampleEvery + 1
	}
	result := &Result{
		Labels:  s.u.Labels(),
		Frames:  make([]Frame, 0, frames),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	if cfg.Recenter {
		s.u.Recenter()
	}
	if cfg.SampleEvery > 0 {
		result.Frames = append(result.Frames, s.frame())
	}

	initialEnergy := s.u.Energy()
	s.logger.Debug("run started",
		"bodies", s.u.Len(),
		"mode", s.u.Mode().String(),
		"steps", cfg.Steps,
		"tick", cfg.Tick,
		"time_scale", s.u.TimeScale())

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		dt := s.Tick(cfg.Tick)
		if dt == 0 {
			result.PausedTicks++
			continue
		}
		if cfg.Recenter {
			s.u.Recenter()
		}
		result.StepsTaken++

		if cfg.ValidateState && !s.u.Finite() {
			err := SimError{Time: s.u.Elapsed(), Step: i, Message: "invalid state (NaN/Inf)"}
			s.logger.Warn("run aborted", "step", i, "elapsed", s.u.Elapsed(), "err", err)
			result.Errors = append(result.Errors, err)
			break
		}

		for _, m := range s.metrics {
			m.Observe(s.u, dt)
		}
		for _, obs := range s.observers {
			obs.OnStep(s.u, dt)
		}

		if cfg.SampleEvery > 0 && result.StepsTaken%cfg.SampleEvery == 0 {
			result.Frames = append(result.Frames, s.frame())
		}
	}

	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(s.u.Energy()-initialEnergy) / math.Abs(initialEnergy)
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Elapsed = s.u.Elapsed()

	s.logger.Debug("run finished",
		"steps_taken", result.StepsTaken,
		"paused_ticks", result.PausedTicks,
		"elapsed", result.Elapsed,
		"energy_drift", result.EnergyDrift)

	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %f", cfg.Tick)
	}
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	if cfg.SampleEvery < 0 {
		return fmt.Errorf("sample interval must not be negative, got %d", cfg.SampleEvery)
	}
	if s.u.Len() == 0 {
		return fmt.Errorf("universe has no bodies")
	}
	return nil
}

func (s *Simulator) frame() Frame {
	bodies := s.u.Bodies()
	pos := make([]vec.Vec3, len(bodies))
	for i, b := range bodies {
		pos[i] = b.Position()
	}
	return Frame{Time: s.u.Elapsed(), Positions: pos}
}

// RunWithCallback drives ticks until the callback returns false, the step
// budget is spent or ctx is done. The callback runs before every tick.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(u *universe.Universe, step int) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(s.u, i) {
			return nil
		}

		if s.Tick(cfg.Tick) == 0 {
			continue
		}
		if cfg.Recenter {
			s.u.Recenter()
		}

		if cfg.ValidateState && !s.u.Finite() {
			return fmt.Errorf("invalid state at t=%.4f", s.u.Elapsed())
		}
	}

	return nil
}
