// Package export renders displacement traces to SVG for reports.
package export

import (
	"fmt"
	"strings"
)

// TraceToSVG draws the amplitude-ratio trace as a polyline with a zero
// axis and a marker at the peak sample.
func TraceToSVG(times, ratios []float64, width, height int) string {
	if len(times) < 2 || len(times) != len(ratios) {
		return ""
	}

	minY, maxY := ratios[0], ratios[0]
	peak := 0
	for i, y := range ratios {
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
			peak = i
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	minX, maxX := times[0], times[len(times)-1]
	rangeX := maxX - minX
	if rangeX == 0 {
		rangeX = 1
	}

	toX := func(t float64) float64 { return (t - minX) / rangeX * float64(width) }
	toY := func(y float64) float64 { return float64(height) - (y-minY)/rangeY*float64(height) }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	// zero-amplitude axis
	if minY < 0 && maxY > 0 {
		y0 := toY(0)
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#cccccc" stroke-width="1"/>
`, y0, width, y0))
	}

	sb.WriteString(`<path fill="none" stroke="#1565c0" stroke-width="1.5" d="M`)
	for i := range times {
		x := toX(times[i])
		y := toY(ratios[i])
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="#c62828"/>
<text x="%.1f" y="%.1f" font-family="monospace" font-size="11" fill="#333333">peak %.4g at %.3g s</text>
</svg>`,
		toX(times[peak]), toY(ratios[peak]),
		toX(times[peak])+6, toY(ratios[peak])-6,
		ratios[peak], times[peak]))

	return sb.String()
}
