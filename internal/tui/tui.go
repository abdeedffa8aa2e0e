// Package tui provides an interactive parameter editor with a live
// assessment preview.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/flow-eng/joggerspan/internal/bridge"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var paramUnits = map[string]string{
	"frequency": "Hz",
	"length":    "m",
	"velocity":  "m/s",
	"damping":   "-",
	"mass":      "kg",
}

type Model struct {
	span    *bridge.Span
	params  []string
	cursor  int
	editing bool
	editBuf string
	errMsg  string
	width   int
}

func New() Model {
	return Model{
		span:   bridge.NewSpan(),
		params: []string{"frequency", "length", "velocity", "damping", "mass"},
		width:  80,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg)
		}
		return m.browseKey(msg)
	}
	return m, nil
}

func (m Model) browseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.params)-1 {
			m.cursor++
		}
	case "enter":
		m.editing = true
		m.editBuf = ""
		m.errMsg = ""
	case "r":
		m.span = bridge.NewSpan()
		m.errMsg = ""
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.editBuf = ""
	case "enter":
		v, err := strconv.ParseFloat(m.editBuf, 64)
		if err != nil {
			m.errMsg = fmt.Sprintf("not a number: %q", m.editBuf)
		} else if v <= 0 {
			m.errMsg = "value must be positive"
		} else {
			_ = m.span.SetParam(m.params[m.cursor], v)
			m.errMsg = ""
		}
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		s := msg.String()
		if len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '.' || s[0] == '-' || s[0] == 'e') {
			m.editBuf += s
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("joggerspan") + dim.Render("  span parameters"))
	b.WriteString("\n\n")

	values := m.span.GetParams()
	for i, name := range m.params {
		marker := "  "
		style := white
		if i == m.cursor {
			marker = cyan.Render("> ")
			style = cyan
		}
		val := fmt.Sprintf("%g %s", values[name], paramUnits[name])
		if m.editing && i == m.cursor {
			val = yellow.Render(m.editBuf + "▌")
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, style.Render(fmt.Sprintf("%-10s", name)), val)
	}

	if m.errMsg != "" {
		b.WriteString("\n" + red.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.resultView())
	b.WriteString("\n\n")
	b.WriteString(dim.Render("↑/↓ select · enter edit · r reset · q quit"))

	return b.String()
}

func (m Model) resultView() string {
	as, err := m.span.Assess()
	if err != nil {
		return red.Render(err.Error())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", dim.Render("jogger load      "), white.Render(fmt.Sprintf("%.4g N", as.JoggerLoad)))
	fmt.Fprintf(&b, "%s %s\n", dim.Render("peak time        "), white.Render(fmt.Sprintf("%.3g s (%.3g %% of crossing)", as.PeakTime, as.PeakTimePercent())))
	fmt.Fprintf(&b, "%s %s\n", dim.Render("amplitude ratio  "), white.Render(fmt.Sprintf("%.3g %% of maximum", as.AmplitudeRatio*100)))
	fmt.Fprintf(&b, "%s %s\n", dim.Render("max acceleration "), green.Render(fmt.Sprintf("%.4g m/s² per jogger", as.PeakAcceleration)))

	if as.LoadFactor == 0 {
		b.WriteString(yellow.Render("outside the jogger excitation band") + "\n")
	}

	_, ratios := m.span.Trace(60, 20.0)
	width := m.width - 12
	if width > 68 {
		width = 68
	}
	if width > 10 {
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(ratios,
			asciigraph.Height(8),
			asciigraph.Width(width),
			asciigraph.Caption("amplitude ratio"),
		))
	}

	return b.String()
}
