package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/betslider/internal/assets"
	"github.com/jask/betslider/internal/slider"
	"github.com/jask/betslider/widgets"
)

const (
	declineLabel = "✕ Decline"
	acceptLabel  = "Accept ✓"
	closeLabel   = "[ Close ]"
	footerText   = "drag the orb to an end · q quit"
	tooSmallText = "terminal too small for the slider"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	buttonStyle = lipgloss.NewStyle().Foreground(slider.GlowFrom).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	p := m.slider.Presentation()
	l, ok := m.geo.layout(m.width, m.height, p, m.slider.Offset())
	if !ok {
		return widgets.FitCanvas(tooSmallText, m.width, m.height)
	}

	track := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Render(m.drawTrack(l, p).Render())

	lines := make([]string, 0, m.height)
	for i := 0; i < l.outer.y; i++ {
		lines = append(lines, "")
	}
	pad := strings.Repeat(" ", l.outer.x)
	for _, row := range strings.Split(track, "\n") {
		lines = append(lines, pad+row)
	}
	if l.outer.y+l.outer.h < m.height-1 {
		for len(lines) < m.height-1 {
			lines = append(lines, "")
		}
		lines = append(lines, footerStyle.Render(footerText))
	}
	screen := widgets.FitCanvas(strings.Join(lines, "\n"), m.width, m.height)

	if m.slider.DialogOpen() {
		card, _ := m.dialog()
		screen = widgets.RenderPopup(screen, card, m.width, m.height)
	}
	return screen
}

// drawTrack paints the inside of the track. Positions in l are screen cells;
// the canvas origin is l.inner.
func (m *Model) drawTrack(l layout, p slider.Presentation) *widgets.Canvas {
	c := widgets.NewCanvas(l.inner.w, l.inner.h)
	for y, bg := range widgets.VerticalGradient(p.Track.From, p.Track.To, p.Track.FromStop, p.Track.ToStop, l.inner.h) {
		c.FillRow(y, bg)
	}

	ly := l.labelY - l.inner.y
	c.Text(1, ly, declineLabel, p.Text)
	c.Text(l.inner.w-1-lipgloss.Width(acceptLabel), ly, acceptLabel, p.Text)

	m.blit(c, l.inner, l.left, p.Left.Asset)
	m.blit(c, l.inner, l.right, p.Right.Asset)

	if p.ControlGlow {
		halo := widgets.Blend(slider.GlowFrom, slider.GlowTo, m.pulse())
		for y := l.control.y - 1; y <= l.control.y+l.control.h; y++ {
			for x := l.control.x - 1; x <= l.control.x+l.control.w; x++ {
				if l.control.contains(x, y) {
					continue
				}
				c.Tint(x-l.inner.x, y-l.inner.y, halo)
			}
		}
	}
	m.blit(c, l.inner, l.control, p.Control)
	return c
}

func (m *Model) blit(c *widgets.Canvas, origin, at rect, key assets.Key) {
	f, ok := m.catalog.Frame(key, m.frame)
	if !ok {
		return
	}
	f = assets.Fit(f, at.w, at.h)
	c.Blit(at.x-origin.x, at.y-origin.y, f.Art, f.Color)
}

// pulse is a triangle wave in [0, 1] with a one second half period.
func (m *Model) pulse() float64 {
	half := max(1, int(time.Second/m.interval))
	pos := m.frame % (2 * half)
	if pos > half {
		pos = 2*half - pos
	}
	return float64(pos) / float64(half)
}

// dialog lays out the decision card and its close button in screen cells.
func (m *Model) dialog() (widgets.Card, rect) {
	title := titleStyle.Render(m.slider.Decision().Title())
	button := buttonStyle.Render(closeLabel)
	tw, bw := lipgloss.Width(title), lipgloss.Width(button)
	cw := max(tw, bw)
	content := strings.Join([]string{
		title,
		"",
		strings.Repeat(" ", cw-bw) + button,
	}, "\n")
	card := widgets.PlaceCard(content, m.width, m.height)
	// border 1, padding 1 vertical and 2 horizontal, button on content row 2
	btn := rect{x: card.X + 3 + cw - bw, y: card.Y + 4, w: bw, h: 1}
	return card, btn
}
