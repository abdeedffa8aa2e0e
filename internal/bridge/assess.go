package bridge

import (
	"github.com/flow-eng/joggerspan/internal/response"
)

// Assessment holds the outcome of a peak-response evaluation for one span.
type Assessment struct {
	Span             Span    `json:"span"`
	LoadFactor       float64 `json:"load_factor"`
	JoggerLoad       float64 `json:"jogger_load_n"`
	PeakTime         float64 `json:"peak_time_s"`
	CrossingTime     float64 `json:"crossing_time_s"`
	AmplitudeRatio   float64 `json:"amplitude_ratio"`
	PeakAcceleration float64 `json:"peak_acceleration_ms2"` // per jogger
}

// PeakTimePercent is the peak time as a percentage of the crossing time.
func (a *Assessment) PeakTimePercent() float64 {
	return a.PeakTime * 100 / a.CrossingTime
}

// Assess runs the peak search and assembles the per-jogger result. The span
// is validated first so the response functions never see a and T that would
// divide by zero.
func (s *Span) Assess() (*Assessment, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	a := s.LoadFrequency()
	T := s.RiseTime()
	factor := response.JoggerLoadFactor(s.Frequency)

	peakTime := response.FindPeakTime(a, T)
	ratio := response.Displacement(peakTime, a, T)

	return &Assessment{
		Span:             *s,
		LoadFactor:       factor,
		JoggerLoad:       factor * response.ReferenceJoggerLoad,
		PeakTime:         peakTime,
		CrossingTime:     s.CrossingTime(),
		AmplitudeRatio:   ratio,
		PeakAcceleration: ratio * response.ReferenceJoggerLoad * factor / (2 * s.Mass * s.Damping),
	}, nil
}

// Trace samples the displacement ratio at n equal steps of duration/n
// starting at t=0, for plotting. The derived a and T are computed once.
func (s *Span) Trace(n int, duration float64) (times, ratios []float64) {
	a := s.LoadFrequency()
	T := s.RiseTime()

	times = make([]float64, n)
	ratios = make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) * duration / float64(n)
		times[i] = t
		ratios[i] = response.Displacement(t, a, T)
	}
	return times, ratios
}
