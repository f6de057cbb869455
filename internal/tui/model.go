package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/jask/betslider/internal/assets"
	"github.com/jask/betslider/internal/config"
	"github.com/jask/betslider/internal/slider"
)

type frameMsg time.Time

// Model hosts one slider in a bubbletea program. Mouse events are forwarded to
// the slider's pointer bus in pixel space.
type Model struct {
	geo      geometry
	interval time.Duration
	catalog  *assets.Catalog
	bus      *slider.Bus
	slider   *slider.Slider
	log      log.FieldLogger

	width, height int
	frame         int
}

// New builds the host. opts.MaxDistance defaults to cfg.Slider.MaxDistance.
func New(cfg config.Config, catalog *assets.Catalog, opts slider.Options) *Model {
	if catalog == nil {
		catalog = assets.Default()
	}
	if opts.MaxDistance == 0 {
		opts.MaxDistance = cfg.Slider.MaxDistance
	}
	if opts.Logger == nil {
		opts.Logger = log.StandardLogger()
	}
	m := &Model{
		geo:      newGeometry(cfg.UI),
		interval: cfg.UI.FrameInterval,
		catalog:  catalog,
		bus:      slider.NewBus(),
		log:      opts.Logger,
	}
	if m.interval <= 0 {
		m.interval = 100 * time.Millisecond
	}
	m.slider = slider.New(m.bus, slider.ReferenceFunc(m.trackBounds), opts)
	return m
}

// Slider exposes the hosted widget.
func (m *Model) Slider() *slider.Slider { return m.slider }

// Teardown releases any drag still in progress. Call it once the program has
// exited.
func (m *Model) Teardown() { m.slider.Teardown() }

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case frameMsg:
		m.frame++
		return m, m.tick()
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.log.WithFields(log.Fields{
			"state": m.slider.State().String(),
		}).Debug("Quit requested")
		m.Teardown()
		return m, tea.Quit
	case "esc", "enter":
		m.slider.Dismiss()
	}
	return m, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if m.slider.DialogOpen() {
			m.pressDialog(msg.X, msg.Y)
			return
		}
		if m.controlHit(msg.X, msg.Y) {
			m.slider.PointerDown()
		}
	case tea.MouseActionMotion:
		m.bus.Dispatch(slider.PointerEvent{Kind: slider.PointerMove, X: m.pixelX(msg.X)})
	case tea.MouseActionRelease:
		m.bus.Dispatch(slider.PointerEvent{Kind: slider.PointerUp, X: m.pixelX(msg.X)})
	}
}

func (m *Model) pixelX(col int) float64 {
	return float64(col * m.geo.cellW)
}

// trackBounds is the slider's reference element. It is read fresh on every
// move and reports false until the first window size arrives.
func (m *Model) trackBounds() (slider.Rect, bool) {
	_, inner, ok := m.geo.trackRect(m.width, m.height)
	if !ok {
		return slider.Rect{}, false
	}
	return slider.Rect{
		Left:   float64(inner.x * m.geo.cellW),
		Top:    float64(inner.y * m.geo.cellH),
		Width:  float64(inner.w * m.geo.cellW),
		Height: float64(inner.h * m.geo.cellH),
	}, true
}

func (m *Model) currentLayout() (layout, bool) {
	return m.geo.layout(m.width, m.height, m.slider.Presentation(), m.slider.Offset())
}

func (m *Model) controlHit(x, y int) bool {
	l, ok := m.currentLayout()
	if !ok {
		return false
	}
	return l.control.intersect(l.inner).contains(x, y)
}

func (m *Model) pressDialog(x, y int) {
	card, closeBtn := m.dialog()
	if closeBtn.contains(x, y) || !card.Contains(x, y) {
		m.slider.Dismiss()
	}
}
