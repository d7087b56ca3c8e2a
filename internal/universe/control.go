package universe

import (
	"github.com/san-kum/gravsim/internal/vec"
)

// MassStep is the factor applied by IncreaseMasses and DecreaseMasses.
const MassStep = 1.1

// TogglePause flips the pause flag and returns the new state.
func (u *Universe) TogglePause() bool {
	u.paused = !u.paused
	return u.paused
}

func (u *Universe) SetPaused(p bool) { u.paused = p }

// SetTimeScale sets the multiplier a driver applies to its raw tick.
func (u *Universe) SetTimeScale(k float64) error {
	if !validFactor(k) {
		return ErrInvalidFactor
	}
	u.timeScale = k
	return nil
}

func (u *Universe) DoubleTimeScale() float64 {
	if validFactor(u.timeScale * 2) {
		u.timeScale *= 2
	}
	return u.timeScale
}

// HalveTimeScale halves the time scale, never going below MinTimeScale.
func (u *Universe) HalveTimeScale() float64 {
	u.timeScale /= 2
	if u.timeScale < MinTimeScale {
		u.timeScale = MinTimeScale
	}
	return u.timeScale
}

// ScaleMasses multiplies every mass by k.
func (u *Universe) ScaleMasses(k float64) error {
	if !validFactor(k) {
		return ErrInvalidFactor
	}
	for _, b := range u.bodies {
		m := b.mass * k
		if !validFactor(m) {
			return &BodyError{Label: b.label, Wrapped: ErrInvalidMass}
		}
	}
	for _, b := range u.bodies {
		b.mass *= k
	}
	return nil
}

// IncreaseMasses grows every mass by 10%.
func (u *Universe) IncreaseMasses() error { return u.ScaleMasses(MassStep) }

// DecreaseMasses shrinks every mass by the inverse of IncreaseMasses.
func (u *Universe) DecreaseMasses() error { return u.ScaleMasses(1 / MassStep) }

// StopAll sets every velocity to zero.
func (u *Universe) StopAll() {
	for _, b := range u.bodies {
		b.velocity = vec.Zero
	}
}
