// Package vec provides the three-component vector used by the engine.
//
// All operations take and return values; none of them mutate an operand.
// NaN and Inf propagate per IEEE 754, callers guard degenerate geometry.
package vec

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a point or displacement in three dimensions.
type Vec3 struct {
	X, Y, Z float64
}

// Zero is the origin.
var Zero = Vec3{}

func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale multiplies every component by k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Norm returns the Euclidean length sqrt(x²+y²+z²).
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Equal reports component-wise equality. NaN never equals anything.
func (v Vec3) Equal(o Vec3) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// R3 converts to the gonum spatial vector.
func (v Vec3) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// FromR3 converts from the gonum spatial vector.
func FromR3(p r3.Vec) Vec3 {
	return Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("%g, %g, %g", v.X, v.Y, v.Z)
}

// Sexp renders the vector as three signed scientific-notation components,
// e.g. "( +1.0000e+00  -2.5000e-01  +0.0000e+00 )".
func (v Vec3) Sexp() string {
	var b strings.Builder
	b.WriteByte('(')
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		fmt.Fprintf(&b, " %+1.4e ", c)
	}
	b.WriteByte(')')
	return b.String()
}
