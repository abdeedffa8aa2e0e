package response_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flow-eng/joggerspan/internal/response"
)

// Central difference with step h.
func diff(f func(float64) float64, t, h float64) float64 {
	return (f(t+h) - f(t-h)) / (2 * h)
}

var _ = Describe("closed-form derivative consistency", func() {
	const (
		h       = 1e-6
		tol     = 1e-4
		samples = 50
		points  = 40
	)

	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(1))
	})

	It("matches Velocity against the numerical derivative of Displacement", func() {
		for i := 0; i < samples; i++ {
			a := 0.05 + rng.Float64()*4.95
			T := 0.05 + rng.Float64()*9.95
			tMax := math.Pi / a
			for j := 1; j < points; j++ {
				t := float64(j) * tMax / float64(points)
				num := diff(func(t float64) float64 { return response.Displacement(t, a, T) }, t, h)
				Expect(response.Velocity(t, a, T)).To(
					BeNumerically("~", num, tol*math.Max(1, math.Abs(num))),
					"a=%v T=%v t=%v", a, T, t)
			}
		}
	})

	It("matches Acceleration against the numerical derivative of Velocity", func() {
		for i := 0; i < samples; i++ {
			a := 0.05 + rng.Float64()*4.95
			T := 0.05 + rng.Float64()*9.95
			tMax := math.Pi / a
			for j := 1; j < points; j++ {
				t := float64(j) * tMax / float64(points)
				num := diff(func(t float64) float64 { return response.Velocity(t, a, T) }, t, h)
				Expect(response.Acceleration(t, a, T)).To(
					BeNumerically("~", num, tol*math.Max(1, math.Abs(num))),
					"a=%v T=%v t=%v", a, T, t)
			}
		}
	})

	It("keeps the peak inside the first half-cycle for random parameters", func() {
		for i := 0; i < 500; i++ {
			a := 0.01 + rng.Float64()*4.99
			T := 0.01 + rng.Float64()*9.99
			tp := response.FindPeakTime(a, T)
			Expect(tp).To(BeNumerically(">=", 0))
			Expect(tp).To(BeNumerically("<=", math.Pi/a))
		}
	})
})
