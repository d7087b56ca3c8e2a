package config

import (
	"sort"

	"github.com/san-kum/gravsim/internal/units"
	"github.com/san-kum/gravsim/internal/universe"
)

// unitMass gives G·M = 1 in internal units.
const unitMass = 1 / universe.G

var Presets = map[string]*Config{
	"earth_moon": DefaultConfig(),
	"unit_binary": {
		Mode: "naive", TimeScale: 1, Tick: 1e-3, Steps: 6284, SampleEvery: 10, Recenter: true,
		Bodies: []BodyConfig{
			{Label: "Primary", Mass: unitMass, Radius: 0.1 * units.EarthRadius, Color: "#ffcc33",
				Velocity: [3]float64{0, -1e-6 * units.EarthRadius, 0}},
			{Label: "Satellite", Mass: unitMass * 1e-6, Radius: 0.02 * units.EarthRadius, Color: "#33ccff",
				Position: [3]float64{units.EarthRadius, 0, 0},
				Velocity: [3]float64{0, units.EarthRadius, 0}},
		},
	},
	"drift": {
		Mode: "no-gravity", TimeScale: 1, Tick: 1, Steps: 100, SampleEvery: 10,
		Bodies: []BodyConfig{
			{Label: "Probe", Mass: 1000, Radius: 10, Velocity: [3]float64{1e4, 0, 0}},
			{Label: "Beacon", Mass: 1000, Radius: 10, Position: [3]float64{0, 1e6, 0}},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Bodies = append([]BodyConfig(nil), p.Bodies...)
	return &cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
