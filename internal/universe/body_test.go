package universe_test

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravsim/internal/units"
	"github.com/san-kum/gravsim/internal/universe"
	"github.com/san-kum/gravsim/internal/vec"
)

var _ = Describe("Body", func() {
	Describe("NewBody", func() {
		DescribeTable("rejects invalid mass",
			func(mass float64) {
				_, err := universe.NewBody("X", mass, vec.Zero, vec.Zero)
				Expect(err).To(MatchError(universe.ErrInvalidMass))

				var be *universe.BodyError
				Expect(err).To(BeAssignableToTypeOf(be))
			},
			Entry("zero", 0.0),
			Entry("negative", -1.0),
			Entry("NaN", math.NaN()),
			Entry("+Inf", math.Inf(1)),
		)

		It("rejects an empty label", func() {
			_, err := universe.NewBody("", 1, vec.Zero, vec.Zero)
			Expect(err).To(MatchError(universe.ErrEmptyLabel))
		})

		It("applies presentation options", func() {
			c := colorful.Color{R: 0.3, G: 0.3, B: 1}
			b, err := universe.NewBody("Earth", earthMass, vec.Zero, vec.Zero,
				universe.WithRadius(1), universe.WithColor(c))
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Color()).To(Equal(c))
			Expect(b.RadiusMeters()).To(Equal(units.EarthRadius))
		})
	})

	Describe("Acceleration", func() {
		It("is zero outside a universe", func() {
			b := mustBody("Lone", 1, vec.Zero, vec.Zero)
			Expect(b.Acceleration()).To(Equal(vec.Zero))
		})

		It("obeys the third law for two bodies", func() {
			u := universe.New()
			a := mustBody("A", 3e10, vec.Zero, vec.Zero)
			b := mustBody("B", 5e12, vec.New(2, 1, 0), vec.Zero)
			Expect(u.Add(a, b)).To(Succeed())

			fa := a.Acceleration().Norm() * a.Mass()
			fb := b.Acceleration().Norm() * b.Mass()
			Expect(fa).To(BeNumerically(">", 0))
			Expect(relDiff(fa, fb)).To(BeNumerically("<", 1e-12))

			sum := a.Acceleration().Scale(a.Mass()).Add(b.Acceleration().Scale(b.Mass()))
			Expect(sum.Norm()).To(BeNumerically("<", 1e-12*fa))
		})

		It("depends on the source mass only", func() {
			u := universe.New()
			light := mustBody("Light", 1, vec.Zero, vec.Zero)
			src := mustBody("Src", 2e11, vec.New(0, 0, 4), vec.Zero)
			Expect(u.Add(light, src)).To(Succeed())

			want := universe.G * 2e11 / 16
			got := light.Acceleration()
			Expect(relDiff(got.Z, want)).To(BeNumerically("<", 1e-12))
			Expect(got.X).To(BeZero())
			Expect(got.Y).To(BeZero())
		})

		It("skips bodies sharing the exact same position", func() {
			u := universe.New()
			a := mustBody("A", 1e10, vec.New(1, 1, 1), vec.Zero)
			twin := mustBody("Twin", 1e10, vec.New(1, 1, 1), vec.Zero)
			Expect(u.Add(a, twin)).To(Succeed())

			acc := a.Acceleration()
			Expect(acc).To(Equal(vec.Zero))
			Expect(acc.IsFinite()).To(BeTrue())
		})

		It("does not mutate any body", func() {
			u := earthMoon()
			moon, _ := u.Body("Moon")
			before := moon.Position()
			_ = moon.Acceleration()
			Expect(moon.Position()).To(Equal(before))
		})
	})
})
