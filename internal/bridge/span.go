package bridge

import (
	"errors"
	"fmt"
	"math"

	"github.com/flow-eng/joggerspan/internal/response"
)

// Defaults match the worked example the model was calibrated against:
// a 10 m deck crossed at jogging pace, resonant at 2.8 Hz, lightly damped.
const (
	DefaultLength    = 10.0
	DefaultVelocity  = 3.0
	DefaultFrequency = 2.8
	DefaultDamping   = 0.006
	DefaultMass      = 5000.0
)

// Parameter errors returned by [Span.Validate].
var (
	ErrLength    = errors.New("bridge: span length must be positive")
	ErrVelocity  = errors.New("bridge: jogger velocity must be positive")
	ErrFrequency = errors.New("bridge: resonance frequency must be positive")
	ErrDamping   = errors.New("bridge: damping ratio must be positive")
	ErrMass      = errors.New("bridge: generalized mass must be positive")
)

// Span describes a single simply-supported deck between two supports,
// reduced to its fundamental vibration mode.
type Span struct {
	Length    float64 `json:"length_m"`     // span length
	Velocity  float64 `json:"velocity_ms"`  // jogger group velocity
	Frequency float64 `json:"frequency_hz"` // fundamental resonance frequency
	Damping   float64 `json:"damping"`      // damping ratio, dimensionless
	Mass      float64 `json:"mass_kg"`      // generalized modal mass
}

func NewSpan() *Span {
	return &Span{
		Length:    DefaultLength,
		Velocity:  DefaultVelocity,
		Frequency: DefaultFrequency,
		Damping:   DefaultDamping,
		Mass:      DefaultMass,
	}
}

// Validate rejects any non-positive parameter. The response functions divide
// by the derived quantities, so this must pass before anything is computed.
func (s *Span) Validate() error {
	switch {
	case s.Length <= 0 || math.IsNaN(s.Length):
		return ErrLength
	case s.Velocity <= 0 || math.IsNaN(s.Velocity):
		return ErrVelocity
	case s.Frequency <= 0 || math.IsNaN(s.Frequency):
		return ErrFrequency
	case s.Damping <= 0 || math.IsNaN(s.Damping):
		return ErrDamping
	case s.Mass <= 0 || math.IsNaN(s.Mass):
		return ErrMass
	}
	return nil
}

// LoadFrequency is the angular frequency of the modal load seen by the deck
// as the group traverses the half-sine modeshape: a = pi*v/L.
func (s *Span) LoadFrequency() float64 {
	return math.Pi * s.Velocity / s.Length
}

// RiseTime is the time constant of the 1-exp(-t/T) amplitude envelope:
// T = 1/(2*pi*f*z).
func (s *Span) RiseTime() float64 {
	return 1.0 / (2.0 * math.Pi * s.Frequency * s.Damping)
}

// CrossingTime is the time for the group to traverse the span.
func (s *Span) CrossingTime() float64 {
	return s.Length / s.Velocity
}

// JoggerLoad is the per-jogger modal load in newtons after applying the
// step-frequency sensitivity curve.
func (s *Span) JoggerLoad() float64 {
	return response.JoggerLoadFactor(s.Frequency) * response.ReferenceJoggerLoad
}

func (s *Span) GetParams() map[string]float64 {
	return map[string]float64{
		"length":    s.Length,
		"velocity":  s.Velocity,
		"frequency": s.Frequency,
		"damping":   s.Damping,
		"mass":      s.Mass,
	}
}

func (s *Span) SetParam(name string, value float64) error {
	switch name {
	case "length":
		s.Length = value
	case "velocity":
		s.Velocity = value
	case "frequency":
		s.Frequency = value
	case "damping":
		s.Damping = value
	case "mass":
		s.Mass = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
