// Package response implements the transient response model of a damped
// single-degree-of-freedom oscillator under a harmonic force whose
// amplitude rises as 1-exp(-t/T), approximating a group of joggers
// progressively engaging the fundamental mode of a span while crossing it.
//
// The package exposes closed-form functions:
//
//   - [Displacement]: amplitude ratio relative to steady state
//   - [Velocity]: first time derivative of [Displacement]
//   - [Acceleration]: second time derivative of [Displacement]
//   - [JoggerLoadFactor]: step-frequency sensitivity of a jogger load
//   - [FindPeakTime]: Newton search for the time of maximum amplitude
//
// All functions are pure and total for t >= 0, a > 0, T > 0. Callers must
// reject non-positive a or T before invoking them; those values divide by
// zero inside the closed forms.
package response
