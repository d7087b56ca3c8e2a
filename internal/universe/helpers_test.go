package universe_test

import (
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravsim/internal/units"
	"github.com/san-kum/gravsim/internal/universe"
	"github.com/san-kum/gravsim/internal/vec"
)

const (
	earthMass = 5.9736e24
	moonMass  = 7.3483e22
)

func mustBody(label string, mass float64, pos, vel vec.Vec3) *universe.Body {
	b, err := universe.NewBody(label, mass, pos, vel)
	Expect(err).NotTo(HaveOccurred())
	return b
}

// earthMoon builds the Earth at rest at the origin and the Moon at perigee
// moving with its maximum orbital velocity, converted to internal units.
func earthMoon(opts ...universe.Option) *universe.Universe {
	u := universe.New(opts...)
	earth := mustBody("Earth", earthMass, vec.Zero, vec.Zero)
	moon := mustBody("Moon", moonMass,
		vec.New(0, units.FromMeters(3.633e8), 0),
		vec.New(units.FromMeters(1.076e3), 0, 0))
	Expect(u.Add(earth, moon)).To(Succeed())
	return u
}

// unitBinary is a light satellite on a circular orbit of radius 1 around a
// primary with G·M = 1, with zero total momentum.
func unitBinary(opts ...universe.Option) *universe.Universe {
	primaryMass := 1 / universe.G
	satMass := primaryMass * 1e-6
	u := universe.New(opts...)
	primary := mustBody("Primary", primaryMass, vec.Zero, vec.New(0, -1e-6, 0))
	sat := mustBody("Satellite", satMass, vec.New(1, 0, 0), vec.New(0, 1, 0))
	Expect(u.Add(primary, sat)).To(Succeed())
	return u
}

func relDiff(a, b float64) float64 {
	if b == 0 {
		return a
	}
	d := (a - b) / b
	if d < 0 {
		return -d
	}
	return d
}
