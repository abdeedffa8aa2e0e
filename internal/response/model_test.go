package response

import (
	"math"
	"testing"
)

func TestDisplacementStartsAtRest(t *testing.T) {
	cases := []struct{ a, T float64 }{
		{0.1, 0.1},
		{0.9424777960769379, 9.473508517374722},
		{5.0, 10.0},
		{2.5, 0.01},
	}
	for _, c := range cases {
		if got := Displacement(0, c.a, c.T); got != 0 {
			t.Errorf("Displacement(0, %v, %v) = %v, want exactly 0", c.a, c.T, got)
		}
	}
}

func TestJoggerLoadFactorBoundaries(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		want float64
	}{
		{"below band", 1.0, 0},
		{"lower cutoff", 1.9, 0},
		{"plateau start", 2.2, 1},
		{"plateau mid", 2.5, 1},
		{"plateau end", 2.7, 1},
		{"falling ramp", 2.8, -(2.8 - 3.5) * (3.5 - 2.7)},
		{"upper cutoff", 3.5, 0},
		{"above band", 4.2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoggerLoadFactor(tt.f); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("JoggerLoadFactor(%v) = %v, want %v", tt.f, got, tt.want)
			}
		})
	}
}

func TestJoggerLoadFactorFallingRampValue(t *testing.T) {
	// 2.8 Hz sits on the falling ramp: -(2.8-3.5)*(3.5-2.7) = 0.56.
	if got := JoggerLoadFactor(2.8); math.Abs(got-0.56) > 1e-12 {
		t.Errorf("JoggerLoadFactor(2.8) = %v, want 0.56", got)
	}
}

// The rising ramp uses the reference arithmetic (f-1.9)*(2.2-1.9), which
// tops out at 0.09 just below the plateau. The jump to 1 at 2.2 Hz is part
// of the published curve and is kept, not smoothed.
func TestJoggerLoadFactorPlateauDiscontinuity(t *testing.T) {
	justBelow := JoggerLoadFactor(2.2 - 1e-9)
	if math.Abs(justBelow-0.3*0.3) > 1e-6 {
		t.Errorf("JoggerLoadFactor(2.2-) = %v, want ~0.09", justBelow)
	}
	if got := JoggerLoadFactor(2.2); got != 1 {
		t.Errorf("JoggerLoadFactor(2.2) = %v, want 1", got)
	}
}

func TestResponseIdempotent(t *testing.T) {
	const a, T, tt = 0.9424777960769379, 9.473508517374722, 1.7
	y1, y2 := Displacement(tt, a, T), Displacement(tt, a, T)
	v1, v2 := Velocity(tt, a, T), Velocity(tt, a, T)
	w1, w2 := Acceleration(tt, a, T), Acceleration(tt, a, T)
	if y1 != y2 || v1 != v2 || w1 != w2 {
		t.Error("repeated evaluation with identical inputs must be bit-identical")
	}
}
