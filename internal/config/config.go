package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravsim/internal/sim"
	"github.com/san-kum/gravsim/internal/units"
	"github.com/san-kum/gravsim/internal/universe"
)

const (
	DefaultMode        = "naive"
	DefaultTick        = 1.0 / 60.0
	DefaultSteps       = 600
	DefaultSampleEvery = 1
	DefaultColor       = "#ffffff"
)

// Config describes a scenario. Bodies are given in SI units; they are
// converted to internal units by Build.
type Config struct {
	Mode        string       `yaml:"mode"`
	TimeScale   float64      `yaml:"time_scale"`
	Paused      bool         `yaml:"paused"`
	Tick        float64      `yaml:"tick"`
	Steps       int          `yaml:"steps"`
	SampleEvery int          `yaml:"sample_every"`
	Recenter    bool         `yaml:"recenter"`
	Central     string       `yaml:"central,omitempty"`
	Workers     int          `yaml:"workers,omitempty"`
	Bodies      []BodyConfig `yaml:"bodies"`
}

type BodyConfig struct {
	Label    string     `yaml:"label"`
	Mass     float64    `yaml:"mass"`
	Radius   float64    `yaml:"radius"`
	Color    string     `yaml:"color,omitempty"`
	Position [3]float64 `yaml:"position"`
	Velocity [3]float64 `yaml:"velocity"`
}

// DefaultConfig is the Earth-Moon system: the Earth at rest at the origin and
// the Moon at perigee moving at its maximum orbital velocity.
func DefaultConfig() *Config {
	return &Config{
		Mode:        DefaultMode,
		TimeScale:   universe.DefaultTimeScale,
		Tick:        DefaultTick,
		Steps:       DefaultSteps,
		SampleEvery: DefaultSampleEvery,
		Recenter:    true,
		Bodies: []BodyConfig{
			{
				Label:  "Earth",
				Mass:   5.9736e24,
				Radius: 6.371e6,
				Color:  "#4d4dff",
			},
			{
				Label:    "Moon",
				Mass:     7.3483e22,
				Radius:   1.7371e6,
				Color:    "#b3b3b3",
				Position: [3]float64{0, 3.633e8, 0},
				Velocity: [3]float64{1.076e3, 0, 0},
			},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Bodies = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields Build depends on.
func (c *Config) Validate() error {
	var errs []error
	if _, err := universe.ParseMode(c.Mode); err != nil {
		errs = append(errs, err)
	}
	if c.TimeScale <= 0 {
		errs = append(errs, fmt.Errorf("time_scale must be positive, got %g", c.TimeScale))
	}
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive, got %g", c.Tick))
	}
	if c.Steps <= 0 {
		errs = append(errs, fmt.Errorf("steps must be positive, got %d", c.Steps))
	}
	if len(c.Bodies) == 0 {
		errs = append(errs, errors.New("no bodies configured"))
	}
	for i, b := range c.Bodies {
		if b.Label == "" {
			errs = append(errs, fmt.Errorf("body %d: missing label", i))
		}
		if b.Mass <= 0 {
			errs = append(errs, fmt.Errorf("body %q: mass must be positive, got %g", b.Label, b.Mass))
		}
		if b.Color != "" {
			if _, err := colorful.Hex(b.Color); err != nil {
				errs = append(errs, fmt.Errorf("body %q: color: %w", b.Label, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Build converts the configuration into a universe ready to run.
func (c *Config) Build() (*universe.Universe, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	mode, _ := universe.ParseMode(c.Mode)

	u := universe.New(
		universe.WithMode(mode),
		universe.WithTimeScale(c.TimeScale),
		universe.WithPaused(c.Paused),
		universe.WithWorkers(c.Workers),
	)

	bodies := make([]*universe.Body, 0, len(c.Bodies))
	for _, bc := range c.Bodies {
		b, err := bc.build()
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	if err := u.Add(bodies...); err != nil {
		return nil, err
	}

	if c.Central != "" {
		if err := u.SetCentral(c.Central); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func (bc BodyConfig) build() (*universe.Body, error) {
	hex := bc.Color
	if hex == "" {
		hex = DefaultColor
	}
	color, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("body %q: color: %w", bc.Label, err)
	}

	radius := units.FromMeters(bc.Radius)
	if bc.Radius <= 0 {
		radius = 1
	}

	return universe.NewBody(bc.Label, bc.Mass,
		units.VecFromMeters(toR3(bc.Position)),
		units.VecFromMeters(toR3(bc.Velocity)),
		universe.WithRadius(radius),
		universe.WithColor(color),
	)
}

// SimConfig returns the driver settings of the scenario.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Tick:          c.Tick,
		Steps:         c.Steps,
		SampleEvery:   c.SampleEvery,
		Recenter:      c.Recenter,
		ValidateState: true,
	}
}

func toR3(v [3]float64) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}
