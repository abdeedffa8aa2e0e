package response

import "math"

// newtonSteps is the fixed iteration count of [FindPeakTime]. Six steps
// converge to machine precision over the damping and frequency ratios a
// footbridge can realistically take; the clamps below handle the rest.
const newtonSteps = 6

// FindPeakTime locates the time of maximum [Displacement] within the first
// excitation half-cycle [0, pi/a] by applying Newton's method to the root of
// [Velocity], with [Acceleration] as its derivative.
//
// Each step linearizes the velocity at t as A*t+B and jumps to the root of
// that line. An overshoot past pi/a clamps to pi/a; a negative update resets
// to 0.45*pi/a, which keeps the iteration inside the physical interval
// instead of diverging into negative time. The returned value is always in
// [0, pi/a] for a > 0, T > 0.
func FindPeakTime(a, T float64) float64 {
	tMax := math.Pi / a
	t := 0.75 * tMax
	for i := 0; i < newtonSteps; i++ {
		A := Acceleration(t, a, T)
		B := Velocity(t, a, T) - A*t
		t = -B / A
		if t > tMax {
			t = tMax
		}
		if t < 0 {
			t = 0.45 * tMax
		}
	}
	return t
}
