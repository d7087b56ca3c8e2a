package universe

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/gravsim/internal/vec"
)

// Mode selects the update scheme applied by Update.
type Mode int

const (
	// Naive moves every body with its pre-step velocity, then updates every
	// velocity from the accelerations at the moved positions.
	Naive Mode = iota
	// NoGravity moves every body in a straight line.
	NoGravity
	// RK4 is the classical fourth-order Runge-Kutta scheme on the joint
	// position and velocity state of all bodies.
	RK4
)

var modeNames = map[Mode]string{
	Naive:     "naive",
	NoGravity: "no-gravity",
	RK4:       "rk4",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode resolves a mode by name. The empty string selects Naive.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "naive", "euler":
		return Naive, nil
	case "no-gravity", "nogravity", "no_gravity", "drift":
		return NoGravity, nil
	case "rk4":
		return RK4, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownMode, name)
}

// Modes lists the selectable mode names.
func Modes() []string {
	return []string{Naive.String(), NoGravity.String(), RK4.String()}
}

// Update advances the universe by dt seconds with the configured mode and
// reports whether time advanced. It does nothing while paused. No clamping
// or stability checks are applied to dt.
func (u *Universe) Update(dt float64) bool {
	if u.paused {
		return false
	}
	switch u.mode {
	case NoGravity:
		u.driftStep(dt)
	case RK4:
		u.rk4Step(dt)
	default:
		u.naiveStep(dt)
	}
	u.elapsed += dt
	return true
}

func (u *Universe) naiveStep(dt float64) {
	for _, b := range u.bodies {
		b.position = b.position.Add(b.velocity.Scale(dt))
	}

	pos, mass := u.snapshot()
	acc := u.field(pos, mass)

	for i, b := range u.bodies {
		b.velocity = b.velocity.Add(acc[i].Scale(dt))
	}
}

func (u *Universe) driftStep(dt float64) {
	for _, b := range u.bodies {
		b.position = b.position.Add(b.velocity.Scale(dt))
	}
}

func (u *Universe) rk4Step(dt float64) {
	n := len(u.bodies)
	x, mass := u.snapshot()
	v := make([]vec.Vec3, n)
	for i, b := range u.bodies {
		v[i] = b.velocity
	}

	k1x, k1v := v, u.field(x, mass)

	k2x := axpy(v, 0.5*dt, k1v)
	k2v := u.field(axpy(x, 0.5*dt, k1x), mass)

	k3x := axpy(v, 0.5*dt, k2v)
	k3v := u.field(axpy(x, 0.5*dt, k2x), mass)

	k4x := axpy(v, dt, k3v)
	k4v := u.field(axpy(x, dt, k3x), mass)

	dt6 := dt / 6.0
	for i, b := range u.bodies {
		dx := k1x[i].Add(k2x[i].Scale(2)).Add(k3x[i].Scale(2)).Add(k4x[i])
		dv := k1v[i].Add(k2v[i].Scale(2)).Add(k3v[i].Scale(2)).Add(k4v[i])
		b.position = x[i].Add(dx.Scale(dt6))
		b.velocity = v[i].Add(dv.Scale(dt6))
	}
}

// field evaluates the acceleration of every body at the given positions.
// All reads complete before field returns, so callers may commit afterwards.
func (u *Universe) field(pos []vec.Vec3, mass []float64) []vec.Vec3 {
	acc := make([]vec.Vec3, len(pos))
	if u.workers <= 1 || len(pos) < 2 {
		for i := range pos {
			acc[i] = pull(pos[i], mass[i], pos, mass)
		}
		return acc
	}

	var g errgroup.Group
	g.SetLimit(u.workers)
	for i := range pos {
		i := i
		g.Go(func() error {
			acc[i] = pull(pos[i], mass[i], pos, mass)
			return nil
		})
	}
	_ = g.Wait()
	return acc
}

// axpy returns x + k*d element-wise.
func axpy(x []vec.Vec3, k float64, d []vec.Vec3) []vec.Vec3 {
	out := make([]vec.Vec3, len(x))
	for i := range x {
		out[i] = x[i].Add(d[i].Scale(k))
	}
	return out
}
