package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/flow-eng/joggerspan/internal/bridge"
)

func TestSummary(t *testing.T) {
	as, err := bridge.NewSpan().Assess()
	if err != nil {
		t.Fatal(err)
	}

	s := Summary(as)
	for _, want := range []string{"jogger load [N]", "t_max [s]", "y_max", "max acceleration [m/s^2]"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q", want)
		}
	}
	if strings.Contains(s, "excitation band") {
		t.Error("in-band deck should not carry the out-of-band warning")
	}
}

func TestSummaryOutOfBand(t *testing.T) {
	span := bridge.NewSpan()
	span.Frequency = 4.2

	as, err := span.Assess()
	if err != nil {
		t.Fatal(err)
	}
	if as.PeakAcceleration != 0 {
		t.Errorf("out-of-band acceleration = %v, want 0", as.PeakAcceleration)
	}
	if !strings.Contains(Summary(as), "excitation band") {
		t.Error("expected out-of-band warning")
	}
}

func TestTraceGraph(t *testing.T) {
	_, ratios := bridge.NewSpan().Trace(100, 20.0)
	g := TraceGraph(ratios, "test")
	if g == "" || !strings.Contains(g, "\n") {
		t.Error("expected a multi-line graph")
	}
	if !strings.Contains(g, "test") {
		t.Error("expected the caption in the graph")
	}
}

func TestPlotDump(t *testing.T) {
	times, ratios := bridge.NewSpan().Trace(100, 20.0)

	var buf bytes.Buffer
	PlotDump(&buf, times, ratios)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 100 {
		t.Fatalf("expected 100 lines, got %d", len(lines))
	}
	if lines[0] != "0, 0" {
		t.Errorf("first pair = %q, want \"0, 0\"", lines[0])
	}
	for _, line := range lines {
		if !strings.Contains(line, ", ") {
			t.Fatalf("malformed pair: %q", line)
		}
	}
}
