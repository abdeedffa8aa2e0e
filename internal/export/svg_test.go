package export

import (
	"strings"
	"testing"

	"github.com/flow-eng/joggerspan/internal/bridge"
)

func TestTraceToSVG(t *testing.T) {
	times, ratios := bridge.NewSpan().Trace(100, 20.0)

	svg := TraceToSVG(times, ratios, 640, 240)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("expected XML header")
	}
	if !strings.Contains(svg, "<path") {
		t.Error("expected a path element")
	}
	if !strings.Contains(svg, "peak") {
		t.Error("expected a peak marker label")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("expected closing svg tag")
	}
}

func TestTraceToSVG_Degenerate(t *testing.T) {
	if got := TraceToSVG([]float64{0}, []float64{0}, 100, 100); got != "" {
		t.Error("expected empty output for a single point")
	}
	if got := TraceToSVG([]float64{0, 1}, []float64{0}, 100, 100); got != "" {
		t.Error("expected empty output for mismatched lengths")
	}
}
