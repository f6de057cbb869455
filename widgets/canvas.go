package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	r      rune
	fg, bg lipgloss.Color
}

// Canvas is a fixed grid of styled cells. Writes outside the grid are clipped.
type Canvas struct {
	w, h  int
	cells []cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{w: max(0, w), h: max(0, h)}
	c.cells = make([]cell, c.w*c.h)
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

func (c *Canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return nil
	}
	return &c.cells[y*c.w+x]
}

// Rune returns the rune at (x, y), or 0 when out of bounds.
func (c *Canvas) Rune(x, y int) rune {
	if p := c.at(x, y); p != nil {
		return p.r
	}
	return 0
}

// Background returns the background colour at (x, y).
func (c *Canvas) Background(x, y int) lipgloss.Color {
	if p := c.at(x, y); p != nil {
		return p.bg
	}
	return ""
}

// FillRow sets the background of every cell in row y.
func (c *Canvas) FillRow(y int, bg lipgloss.Color) {
	if y < 0 || y >= c.h {
		return
	}
	for x := 0; x < c.w; x++ {
		c.at(x, y).bg = bg
	}
}

// Tint sets the background of (x, y) without touching its rune.
func (c *Canvas) Tint(x, y int, bg lipgloss.Color) {
	if p := c.at(x, y); p != nil {
		p.bg = bg
	}
}

// Text writes s left to right from (x, y), including spaces.
func (c *Canvas) Text(x, y int, s string, fg lipgloss.Color) {
	for i, r := range []rune(s) {
		if p := c.at(x+i, y); p != nil {
			p.r = r
			p.fg = fg
		}
	}
}

// Blit draws art with its top-left at (x, y). Spaces are transparent.
func (c *Canvas) Blit(x, y int, art []string, fg lipgloss.Color) {
	for dy, row := range art {
		for dx, r := range []rune(row) {
			if r == ' ' {
				continue
			}
			if p := c.at(x+dx, y+dy); p != nil {
				p.r = r
				p.fg = fg
			}
		}
	}
}

// Plain renders the canvas runes without styling.
func (c *Canvas) Plain() string {
	lines := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var b strings.Builder
		for x := 0; x < c.w; x++ {
			b.WriteRune(c.at(x, y).r)
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Render styles the canvas one run of equal colours at a time.
func (c *Canvas) Render() string {
	lines := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var b strings.Builder
		for x := 0; x < c.w; {
			start := c.at(x, y)
			var run strings.Builder
			for x < c.w {
				p := c.at(x, y)
				if p.fg != start.fg || p.bg != start.bg {
					break
				}
				run.WriteRune(p.r)
				x++
			}
			style := lipgloss.NewStyle()
			if start.fg != "" {
				style = style.Foreground(start.fg)
			}
			if start.bg != "" {
				style = style.Background(start.bg)
			}
			b.WriteString(style.Render(run.String()))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
