package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// VerticalGradient samples a two-stop gradient at the centre of each of rows
// bands. Stops are fractions of the full height; outside them the end colour
// holds.
func VerticalGradient(from, to lipgloss.Color, fromStop, toStop float64, rows int) []lipgloss.Color {
	out := make([]lipgloss.Color, max(0, rows))
	span := toStop - fromStop
	for i := range out {
		pos := (float64(i) + 0.5) / float64(rows)
		t := 0.0
		if span != 0 {
			t = (pos - fromStop) / span
		}
		out[i] = Blend(from, to, t)
	}
	return out
}

// Blend mixes a toward b by t in [0, 1], clamped. Unparseable colours fall
// back to a.
func Blend(a, b lipgloss.Color, t float64) lipgloss.Color {
	ca, err := colorful.Hex(string(a))
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(string(b))
	if err != nil {
		return a
	}
	switch {
	case t <= 0:
		return lipgloss.Color(ca.Hex())
	case t >= 1:
		return lipgloss.Color(cb.Hex())
	}
	return lipgloss.Color(ca.BlendRgb(cb, t).Clamped().Hex())
}
