package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/flow-eng/joggerspan/internal/bridge"
	"github.com/flow-eng/joggerspan/internal/config"
	"github.com/flow-eng/joggerspan/internal/report"
	"github.com/flow-eng/joggerspan/internal/response"
)

// promptOptions carries the command-line toggles into the interactive flow.
type promptOptions struct {
	Plot           bool // dump the trace as comma-separated pairs
	PromptVelocity bool // ask for jogger velocity instead of assuming 3 m/s
}

// runPrompt drives the interactive assessment: parameters are read one
// scalar per prompt in a fixed order, the per-jogger load is echoed as soon
// as the frequency is known, and the peak is reported before the mass prompt
// so the amplitude ratio can be judged on its own.
func runPrompt(in io.Reader, out io.Writer, opts promptOptions) error {
	r := bufio.NewReader(in)
	span := bridge.NewSpan()

	f, err := readPositive(r, out, "Resonance frequency at span [Hz] = ")
	if err != nil {
		return err
	}
	span.Frequency = f

	fmt.Fprintf(out, "\nJogger load [N]                  = %.6g  per jogger.\n\n", span.JoggerLoad())

	span.Length, err = readPositive(r, out, "Length of span [m]               = ")
	if err != nil {
		return err
	}

	if opts.PromptVelocity {
		span.Velocity, err = readPositive(r, out, "Velocity joggers                 = ")
		if err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "Assumed velocity jogger [m/s]    = %.6g\n", span.Velocity)
	}

	span.Damping, err = readPositive(r, out, "Damping of bridge [-]            = ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out)

	if err := span.Validate(); err != nil {
		return err
	}

	if opts.Plot {
		times, ratios := span.Trace(config.DefaultTraceSamples, config.DefaultTraceDuration)
		report.PlotDump(out, times, ratios)
	}

	a := span.LoadFrequency()
	T := span.RiseTime()
	peakTime := response.FindPeakTime(a, T)
	crossing := span.CrossingTime()

	fmt.Fprintf(out, "t_max                            = %.6g of %.6g [s] at %.6g %%\n",
		peakTime, crossing, peakTime*100/crossing)
	ratio := response.Displacement(peakTime, a, T)
	fmt.Fprintf(out, "y_max                            = %.6g %% of maximum.\n\n", ratio*100)

	span.Mass, err = readPositive(r, out, "Generalized mass [kg]            = ")
	if err != nil {
		return err
	}

	as, err := span.Assess()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Maximal acceleration [m/s^2]     = %.6g per jogger.\n", as.PeakAcceleration)

	return nil
}

func readPositive(r *bufio.Reader, out io.Writer, prompt string) (float64, error) {
	fmt.Fprint(out, prompt)

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("reading input: %w", err)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", strings.TrimSpace(line))
	}
	if v <= 0 {
		return 0, fmt.Errorf("value must be positive, got %g", v)
	}
	return v, nil
}
