package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card is a bordered popup and where it lands on screen.
type Card struct {
	Body          string
	X, Y          int
	Width, Height int
}

// Contains reports whether the screen cell (x, y) falls on the card.
func (c Card) Contains(x, y int) bool {
	return x >= c.X && x < c.X+c.Width && y >= c.Y && y < c.Y+c.Height
}

// PlaceCard wraps content in the popup chrome and centres it on a
// width×height screen.
func PlaceCard(content string, width, height int) Card {
	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(content)
	w := lipgloss.Width(body)
	h := lipgloss.Height(body)
	return Card{
		Body:   body,
		X:      max(0, (width-w)/2),
		Y:      max(0, (height-h)/2),
		Width:  w,
		Height: h,
	}
}

// RenderPopup draws card over base. Base rows outside the card are kept.
func RenderPopup(base string, card Card, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := splitToLines(base, height)
	cardLines := strings.Split(card.Body, "\n")
	out := make([]string, height)
	for i := 0; i < height; i++ {
		baseLine := padRightANSI(baseLines[i], width)
		row := i - card.Y
		if row < 0 || row >= len(cardLines) || card.X >= width {
			out[i] = baseLine
			continue
		}
		segment := ansi.Truncate(cardLines[row], width-card.X, "")
		left := ansi.Truncate(baseLine, card.X, "")
		right := dropColumns(baseLine, card.X+ansi.StringWidth(segment))
		out[i] = padRightANSI(left+segment+right, width)
	}
	return strings.Join(out, "\n")
}

// FitCanvas pads or crops s to exactly width×height cells.
func FitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
