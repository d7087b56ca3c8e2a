// Package units converts between the engine's internal distance unit, one
// Earth radius, and meters. Physics runs entirely in internal units; the
// conversion is applied only at input and presentation boundaries.
package units

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/gravsim/internal/vec"
)

// EarthRadius is the length of one internal distance unit in meters.
const EarthRadius = 6.371e6

// ToMeters converts internal units to meters.
func ToMeters(x float64) float64 {
	return x * EarthRadius
}

// FromMeters converts meters to internal units.
func FromMeters(m float64) float64 {
	return m / EarthRadius
}

// VecToMeters converts an internal-unit vector into a meter vector for renderers.
func VecToMeters(v vec.Vec3) r3.Vec {
	return r3.Scale(EarthRadius, v.R3())
}

// VecFromMeters converts a meter vector into internal units.
func VecFromMeters(p r3.Vec) vec.Vec3 {
	return vec.New(FromMeters(p.X), FromMeters(p.Y), FromMeters(p.Z))
}
