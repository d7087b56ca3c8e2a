package universe

import (
	"fmt"
	"strings"

	"github.com/san-kum/gravsim/internal/vec"
)

const (
	SecondsPerDay = 86400.0
	DaysPerYear   = 365.25
)

// Report renders the elapsed time and, per body in order, its position in
// internal units and in meters, its velocity and its current acceleration.
// Accelerations are recomputed on every call.
func (u *Universe) Report() string {
	var sb strings.Builder

	days := u.elapsed / SecondsPerDay
	years := days / DaysPerYear
	fmt.Fprintf(&sb, "seconds: %g <=> %g days <=> %g years", u.elapsed, days, years)

	for _, b := range u.bodies {
		meters := vec.FromR3(b.PositionMeters())
		fmt.Fprintf(&sb, "\n%10s %17s %s", b.label, "position units", b.position.Sexp())
		fmt.Fprintf(&sb, "\n%10s %17s %s", b.label, "position meters", meters.Sexp())
		fmt.Fprintf(&sb, "\n%10s %17s %s", b.label, "velocity", b.velocity.Sexp())
		fmt.Fprintf(&sb, "\n%10s %17s %s\n", b.label, "acceleration", b.Acceleration().Sexp())
	}
	return sb.String()
}

func (u *Universe) String() string {
	return u.Report()
}
