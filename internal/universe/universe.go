package universe

import (
	"github.com/san-kum/gravsim/internal/vec"
)

const (
	// DefaultTimeScale maps one month of simulated time to one minute.
	DefaultTimeScale = 43800.0

	// MinTimeScale is the floor applied when the time scale is halved.
	MinTimeScale = 1e-9
)

// Universe owns an ordered set of bodies, the simulated clock and the
// central-body selection. Insertion order defines iteration order and the
// central-body cycle.
type Universe struct {
	bodies  []*Body
	index   map[string]int
	central int
	elapsed float64

	timeScale float64
	paused    bool
	mode      Mode
	workers   int
}

type Option func(*Universe)

func WithTimeScale(k float64) Option {
	return func(u *Universe) {
		if validFactor(k) {
			u.timeScale = k
		}
	}
}

func WithPaused(p bool) Option {
	return func(u *Universe) { u.paused = p }
}

func WithMode(m Mode) Option {
	return func(u *Universe) { u.mode = m }
}

// WithWorkers computes accelerations on up to n goroutines. n <= 1 keeps
// the step single-threaded.
func WithWorkers(n int) Option {
	return func(u *Universe) { u.workers = n }
}

func New(opts ...Option) *Universe {
	u := &Universe{
		index:     make(map[string]int),
		timeScale: DefaultTimeScale,
		mode:      Naive,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Add registers bodies in order and stamps their back-reference. Nothing is
// registered if any body is rejected.
func (u *Universe) Add(bodies ...*Body) error {
	seen := make(map[string]bool, len(bodies))
	for _, b := range bodies {
		if b.universe != nil {
			return &BodyError{Label: b.label, Wrapped: ErrOwnedBody}
		}
		if _, ok := u.index[b.label]; ok || seen[b.label] {
			return &BodyError{Label: b.label, Wrapped: ErrDuplicateLabel}
		}
		seen[b.label] = true
	}
	for _, b := range bodies {
		b.universe = u
		u.index[b.label] = len(u.bodies)
		u.bodies = append(u.bodies, b)
	}
	return nil
}

// Remove unregisters a body. The central selection stays on the same body
// when possible and always resolves to a valid index.
func (u *Universe) Remove(label string) error {
	i, ok := u.index[label]
	if !ok {
		return &BodyError{Label: label, Wrapped: ErrUnknownBody}
	}
	u.bodies[i].universe = nil
	u.bodies = append(u.bodies[:i], u.bodies[i+1:]...)
	delete(u.index, label)
	for j := i; j < len(u.bodies); j++ {
		u.index[u.bodies[j].label] = j
	}

	switch {
	case len(u.bodies) == 0:
		u.central = 0
	case i < u.central:
		u.central--
	default:
		u.central %= len(u.bodies)
	}
	return nil
}

func (u *Universe) Body(label string) (*Body, bool) {
	i, ok := u.index[label]
	if !ok {
		return nil, false
	}
	return u.bodies[i], true
}

// Bodies returns the bodies in registration order.
func (u *Universe) Bodies() []*Body {
	out := make([]*Body, len(u.bodies))
	copy(out, u.bodies)
	return out
}

func (u *Universe) Labels() []string {
	out := make([]string, len(u.bodies))
	for i, b := range u.bodies {
		out[i] = b.label
	}
	return out
}

func (u *Universe) Len() int           { return len(u.bodies) }
func (u *Universe) Elapsed() float64   { return u.elapsed }
func (u *Universe) Mode() Mode         { return u.mode }
func (u *Universe) SetMode(m Mode)     { u.mode = m }
func (u *Universe) Workers() int       { return u.workers }
func (u *Universe) CentralIndex() int  { return u.central }
func (u *Universe) TimeScale() float64 { return u.timeScale }
func (u *Universe) Paused() bool       { return u.paused }

// Central returns the body the display frame is centered on, or nil for an
// empty universe.
func (u *Universe) Central() *Body {
	if len(u.bodies) == 0 {
		return nil
	}
	return u.bodies[u.central%len(u.bodies)]
}

// SetCentral selects the central body by label.
func (u *Universe) SetCentral(label string) error {
	i, ok := u.index[label]
	if !ok {
		return &BodyError{Label: label, Wrapped: ErrUnknownBody}
	}
	u.central = i
	return nil
}

// SwitchCentralBody advances the central selection cyclically and returns
// the newly selected body.
func (u *Universe) SwitchCentralBody() *Body {
	if len(u.bodies) == 0 {
		return nil
	}
	u.central = (u.central + 1) % len(u.bodies)
	return u.bodies[u.central]
}

// CenterOn shifts the frame so that ref becomes the origin. Velocities and
// masses are unchanged.
func (u *Universe) CenterOn(ref vec.Vec3) {
	for _, b := range u.bodies {
		b.position = b.position.Sub(ref)
	}
}

// Recenter centers the frame on the current central body.
func (u *Universe) Recenter() {
	if c := u.Central(); c != nil {
		u.CenterOn(c.position)
	}
}

func (u *Universe) snapshot() ([]vec.Vec3, []float64) {
	pos := make([]vec.Vec3, len(u.bodies))
	mass := make([]float64, len(u.bodies))
	for i, b := range u.bodies {
		pos[i] = b.position
		mass[i] = b.mass
	}
	return pos, mass
}
