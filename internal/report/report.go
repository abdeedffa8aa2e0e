// Package report renders assessment results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/flow-eng/joggerspan/internal/bridge"
)

var (
	title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	label = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	value = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	warn  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

// Summary renders the styled per-jogger result block.
func Summary(as *bridge.Assessment) string {
	var b strings.Builder

	b.WriteString(title.Render("jogger span assessment"))
	b.WriteString("\n\n")

	line := func(name, val string) {
		fmt.Fprintf(&b, "%s %s\n", label.Render(fmt.Sprintf("%-28s", name)), value.Render(val))
	}

	line("resonance frequency [Hz]", fmt.Sprintf("%.3f", as.Span.Frequency))
	line("span length [m]", fmt.Sprintf("%.2f", as.Span.Length))
	line("jogger velocity [m/s]", fmt.Sprintf("%.2f", as.Span.Velocity))
	line("damping ratio [-]", fmt.Sprintf("%.4f", as.Span.Damping))
	line("generalized mass [kg]", fmt.Sprintf("%.0f", as.Span.Mass))
	b.WriteString("\n")
	line("jogger load [N]", fmt.Sprintf("%.4g per jogger", as.JoggerLoad))
	line("t_max [s]", fmt.Sprintf("%.4g of %.4g at %.3g %%",
		as.PeakTime, as.CrossingTime, as.PeakTimePercent()))
	line("y_max [% of maximum]", fmt.Sprintf("%.4g", as.AmplitudeRatio*100))
	line("max acceleration [m/s^2]", fmt.Sprintf("%.4g per jogger", as.PeakAcceleration))

	if as.LoadFactor == 0 {
		b.WriteString("\n")
		b.WriteString(warn.Render("deck is outside the jogger excitation band; no response"))
		b.WriteString("\n")
	}

	return b.String()
}

// TraceGraph renders an ascii plot of the displacement ratio trace.
func TraceGraph(ratios []float64, caption string) string {
	return asciigraph.Plot(ratios,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

// PlotDump writes the trace as comma-separated (t, ratio) pairs, one per
// line, for external plotting tools.
func PlotDump(w io.Writer, times, ratios []float64) {
	for i := range times {
		fmt.Fprintf(w, "%g, %g\n", times[i], ratios[i])
	}
}
