package response

import "math"

// ReferenceJoggerLoad is the harmonic load amplitude of a single jogger in
// newtons, per the HIVOSS jogger load case.
const ReferenceJoggerLoad = 1250.0

// Displacement returns the amplitude ratio at time t for load angular
// frequency a and rise time constant T. The ratio is a fraction of the
// steady-state amplitude and starts at zero.
//
// The algebraic form is kept exactly as derived; simplifying it changes the
// rounding behavior for small a*T.
func Displacement(t, a, T float64) float64 {
	return (-a*T*math.Cos(a*t) + a*T*math.Exp(-t/T) + math.Sin(a*t)) / (pow2(a*T) + 1)
}

// Velocity is the first time derivative of [Displacement].
func Velocity(t, a, T float64) float64 {
	return (pow2(a)*T*math.Sin(a*t) + a*math.Cos(a*t) - a*math.Exp(-t/T)) / (pow2(a*T) + 1)
}

// Acceleration is the second time derivative of [Displacement].
func Acceleration(t, a, T float64) float64 {
	return (pow3(a)*T*math.Cos(a*t) - pow2(a)*math.Sin(a*t) + a*math.Exp(-t/T)/T) / (pow2(a*T) + 1)
}

// JoggerLoadFactor maps a resonance frequency in Hz to a dimensionless
// factor in [0,1] describing how strongly a jogger's step frequency excites
// that frequency. The curve is trapezoidal: zero below 1.9 Hz and above
// 3.5 Hz, a plateau of 1 between 2.2 and 2.7 Hz, with ramps in between.
//
// The ramp expressions reproduce the reference arithmetic verbatim. They do
// not reach 1 at the plateau edges, so the curve jumps at 2.2 Hz; see the
// accompanying tests. Kept for compatibility with the published figures.
func JoggerLoadFactor(f float64) float64 {
	switch {
	case f <= 1.9 || f >= 3.5:
		return 0
	case f < 2.2:
		return (f - 1.9) * (2.2 - 1.9)
	case f <= 2.7:
		return 1
	default:
		return -(f - 3.5) * (3.5 - 2.7)
	}
}

func pow2(x float64) float64 { return x * x }
func pow3(x float64) float64 { return x * x * x }
