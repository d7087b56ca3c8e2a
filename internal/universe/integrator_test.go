package universe_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravsim/internal/universe"
	"github.com/san-kum/gravsim/internal/vec"
)

var _ = Describe("Update", func() {
	It("parses mode names", func() {
		for _, name := range universe.Modes() {
			m, err := universe.ParseMode(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.String()).To(Equal(name))
		}
		_, err := universe.ParseMode("leapfrog")
		Expect(err).To(MatchError(universe.ErrUnknownMode))
	})

	Describe("naive mode", func() {
		It("moves with the old velocity then accelerates from the moved positions", func() {
			u := earthMoon()
			earth, _ := u.Body("Earth")
			moon, _ := u.Body("Moon")
			moon0, moonVel0 := moon.Position(), moon.Velocity()

			Expect(u.Update(1)).To(BeTrue())

			Expect(earth.Position()).To(Equal(vec.Zero))
			Expect(moon.Position()).To(Equal(moon0.Add(moonVel0)))

			diff := moon.Position().Sub(earth.Position())
			dist := diff.Norm()
			want := diff.Scale(universe.G * moonMass / (dist * dist) / dist)

			got := earth.Velocity()
			Expect(got.Norm()).To(BeNumerically(">", 0))
			Expect(got.Sub(want).Norm()).To(BeNumerically("<", 1e-12*want.Norm()))
			Expect(got.Dot(moon.Position())).To(BeNumerically(">", 0))
			// A pre-step evaluation would have no x component.
			Expect(got.X).To(BeNumerically(">", 0))

			moonAcc := moon.Velocity().Sub(moonVel0)
			Expect(moonAcc.Dot(diff)).To(BeNumerically("<", 0))
			Expect(u.Elapsed()).To(Equal(1.0))
		})

		It("accumulates elapsed time exactly", func() {
			u := earthMoon()
			for i := 0; i < 100; i++ {
				u.Update(0.25)
			}
			Expect(u.Elapsed()).To(Equal(25.0))
		})

		It("keeps energy drift bounded over many small steps", func() {
			u := unitBinary()
			e0 := u.Energy()
			l0 := u.AngularMomentum().Norm()

			for i := 0; i < 2000; i++ {
				u.Update(1e-3)
			}

			Expect(relDiff(u.Energy(), e0)).To(BeNumerically("<", 1e-2))
			Expect(relDiff(u.AngularMomentum().Norm(), l0)).To(BeNumerically("<", 1e-6))
			Expect(u.Finite()).To(BeTrue())
		})

		It("gives the same result with parallel workers", func() {
			build := func(opts ...universe.Option) *universe.Universe {
				u := universe.New(opts...)
				for i := 0; i < 6; i++ {
					f := float64(i)
					b := mustBody(string(rune('A'+i)), 1e10*(f+1),
						vec.New(math.Cos(f), math.Sin(f), 0.1*f), vec.New(-0.01*f, 0.02, 0))
					Expect(u.Add(b)).To(Succeed())
				}
				return u
			}
			serial := build()
			parallel := build(universe.WithWorkers(4))

			for i := 0; i < 50; i++ {
				serial.Update(1e-2)
				parallel.Update(1e-2)
			}

			s, p := serial.Bodies(), parallel.Bodies()
			for i := range s {
				Expect(p[i].Position()).To(Equal(s[i].Position()))
				Expect(p[i].Velocity()).To(Equal(s[i].Velocity()))
			}
		})

		It("blows up under an oversized dt", func() {
			u := earthMoon()
			sep0 := u.MinSeparation()
			for i := 0; i < 3; i++ {
				u.Update(1e6)
			}
			Expect(!u.Finite() || u.MinSeparation() > 1e6*sep0).To(BeTrue())
		})
	})

	Describe("no-gravity mode", func() {
		It("moves linearly and conserves velocity", func() {
			u := earthMoon(universe.WithMode(universe.NoGravity))
			moon, _ := u.Body("Moon")
			p0, v0 := moon.Position(), moon.Velocity()

			u.Update(3)

			Expect(moon.Velocity()).To(Equal(v0))
			Expect(moon.Position()).To(Equal(p0.Add(v0.Scale(3))))
			Expect(u.Elapsed()).To(Equal(3.0))
		})
	})

	Describe("rk4 mode", func() {
		It("conserves energy more tightly than the naive step", func() {
			rk := unitBinary(universe.WithMode(universe.RK4))
			naive := unitBinary()
			e0 := rk.Energy()

			rkDrift, naiveDrift := 0.0, 0.0
			for i := 0; i < 1000; i++ {
				rk.Update(1e-2)
				naive.Update(1e-2)
				rkDrift = math.Max(rkDrift, relDiff(rk.Energy(), e0))
				naiveDrift = math.Max(naiveDrift, relDiff(naive.Energy(), e0))
			}

			Expect(rkDrift).To(BeNumerically("<", 1e-5))
			Expect(rkDrift).To(BeNumerically("<", naiveDrift))
		})
	})

	Describe("pause", func() {
		It("refuses to advance time while paused", func() {
			u := earthMoon(universe.WithPaused(true))
			moon, _ := u.Body("Moon")
			before := moon.Position()

			Expect(u.Update(10)).To(BeFalse())
			Expect(u.Elapsed()).To(BeZero())
			Expect(moon.Position()).To(Equal(before))

			u.SetPaused(false)
			Expect(u.Update(10)).To(BeTrue())
			Expect(u.Elapsed()).To(Equal(10.0))
		})
	})
})
