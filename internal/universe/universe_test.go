package universe_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravsim/internal/universe"
	"github.com/san-kum/gravsim/internal/vec"
)

var _ = Describe("Universe", func() {
	Describe("registration", func() {
		It("stamps the back-reference and keeps insertion order", func() {
			u := earthMoon()
			Expect(u.Labels()).To(Equal([]string{"Earth", "Moon"}))
			for _, b := range u.Bodies() {
				Expect(b.Universe()).To(BeIdenticalTo(u))
			}
		})

		It("rejects duplicate labels atomically", func() {
			u := earthMoon()
			extra := mustBody("Mars", 6.4e23, vec.New(9, 9, 9), vec.Zero)
			dup := mustBody("Moon", 1, vec.Zero, vec.Zero)

			Expect(u.Add(extra, dup)).To(MatchError(universe.ErrDuplicateLabel))
			Expect(u.Len()).To(Equal(2))
			Expect(extra.Universe()).To(BeNil())
		})

		It("rejects a body owned by another universe", func() {
			u := earthMoon()
			earth, _ := u.Body("Earth")
			Expect(universe.New().Add(earth)).To(MatchError(universe.ErrOwnedBody))
		})

		It("removes bodies and keeps the central selection valid", func() {
			u := earthMoon()
			mars := mustBody("Mars", 6.4e23, vec.New(9, 9, 9), vec.Zero)
			Expect(u.Add(mars)).To(Succeed())
			Expect(u.SetCentral("Mars")).To(Succeed())

			Expect(u.Remove("Earth")).To(Succeed())
			Expect(u.Central().Label()).To(Equal("Mars"))
			Expect(u.Labels()).To(Equal([]string{"Moon", "Mars"}))

			Expect(u.Remove("Mars")).To(Succeed())
			Expect(u.Central().Label()).To(Equal("Moon"))
			Expect(mars.Universe()).To(BeNil())

			Expect(u.Remove("Pluto")).To(MatchError(universe.ErrUnknownBody))
			Expect(u.Remove("Moon")).To(Succeed())
			Expect(u.Central()).To(BeNil())
			Expect(u.SwitchCentralBody()).To(BeNil())
		})
	})

	Describe("central body", func() {
		It("cycles through the bodies in order", func() {
			u := earthMoon()
			Expect(u.Central().Label()).To(Equal("Earth"))
			Expect(u.SwitchCentralBody().Label()).To(Equal("Moon"))
			Expect(u.SwitchCentralBody().Label()).To(Equal("Earth"))
			Expect(u.CentralIndex()).To(Equal(0))
		})

		It("rejects an unknown label", func() {
			Expect(earthMoon().SetCentral("Sun")).To(MatchError(universe.ErrUnknownBody))
		})
	})

	Describe("CenterOn", func() {
		It("shifts positions only", func() {
			u := earthMoon()
			moon, _ := u.Body("Moon")
			earth, _ := u.Body("Earth")
			vel := moon.Velocity()
			mass := moon.Mass()
			ref := moon.Position()

			u.CenterOn(ref)

			Expect(moon.Position()).To(Equal(vec.Zero))
			Expect(earth.Position()).To(Equal(vec.Zero.Sub(ref)))
			Expect(moon.Velocity()).To(Equal(vel))
			Expect(moon.Mass()).To(Equal(mass))
		})

		It("recenters on the selected body", func() {
			u := earthMoon()
			u.SwitchCentralBody()
			u.Recenter()
			moon, _ := u.Body("Moon")
			Expect(moon.Position()).To(Equal(vec.Zero))
		})
	})

	Describe("controls", func() {
		It("toggles pause", func() {
			u := universe.New()
			Expect(u.Paused()).To(BeFalse())
			Expect(u.TogglePause()).To(BeTrue())
			Expect(u.TogglePause()).To(BeFalse())
		})

		It("doubles and halves the time scale", func() {
			u := universe.New()
			Expect(u.TimeScale()).To(Equal(universe.DefaultTimeScale))
			Expect(u.DoubleTimeScale()).To(Equal(2 * universe.DefaultTimeScale))
			Expect(u.HalveTimeScale()).To(Equal(universe.DefaultTimeScale))

			Expect(u.SetTimeScale(1e-9)).To(Succeed())
			Expect(u.HalveTimeScale()).To(Equal(universe.MinTimeScale))
			Expect(u.SetTimeScale(0)).To(MatchError(universe.ErrInvalidFactor))
		})

		It("scales masses and keeps them positive", func() {
			u := earthMoon()
			earth, _ := u.Body("Earth")

			Expect(u.IncreaseMasses()).To(Succeed())
			Expect(relDiff(earth.Mass(), earthMass*1.1)).To(BeNumerically("<", 1e-15))
			Expect(u.DecreaseMasses()).To(Succeed())
			Expect(relDiff(earth.Mass(), earthMass)).To(BeNumerically("<", 1e-15))

			Expect(u.ScaleMasses(-1)).To(MatchError(universe.ErrInvalidFactor))
			Expect(u.ScaleMasses(0)).To(MatchError(universe.ErrInvalidFactor))
		})

		It("stops every body", func() {
			u := earthMoon()
			u.StopAll()
			for _, b := range u.Bodies() {
				Expect(b.Velocity()).To(Equal(vec.Zero))
			}
			Expect(u.Momentum()).To(Equal(vec.Zero))
		})
	})

	Describe("Report", func() {
		It("lists elapsed time and every body", func() {
			u := earthMoon(universe.WithMode(universe.NoGravity))
			r := u.Report()
			Expect(r).To(HavePrefix("seconds: 0 <=> 0 days <=> 0 years\n"))
			Expect(r).To(ContainSubstring("     Earth    position units ( +0.0000e+00  +0.0000e+00  +0.0000e+00 )"))
			Expect(r).To(ContainSubstring("      Moon   position meters ( +0.0000e+00  +3.6330e+08  +0.0000e+00 )"))
			Expect(r).To(ContainSubstring("      Moon          velocity"))
			Expect(r).To(ContainSubstring("     Earth      acceleration"))

			u.Update(86400)
			Expect(u.String()).To(HavePrefix("seconds: 86400 <=> 1 days <=> "))
		})

		It("does not change state", func() {
			u := earthMoon()
			moon, _ := u.Body("Moon")
			before := moon.Position()
			_ = u.Report()
			Expect(moon.Position()).To(Equal(before))
			Expect(u.Elapsed()).To(BeZero())
		})
	})
})
