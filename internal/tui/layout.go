package tui

import (
	"math"

	"github.com/jask/betslider/internal/config"
	"github.com/jask/betslider/internal/slider"
)

// Indicator edge lengths in logical pixels.
const (
	indicatorAnimatedSize = 50.0
	indicatorStaticSize   = 40.0
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (r rect) intersect(o rect) rect {
	x0 := max(r.x, o.x)
	y0 := max(r.y, o.y)
	x1 := min(r.x+r.w, o.x+o.w)
	y1 := min(r.y+r.h, o.y+o.h)
	if x1 <= x0 || y1 <= y0 {
		return rect{}
	}
	return rect{x: x0, y: y0, w: x1 - x0, h: y1 - y0}
}

// geometry converts between logical pixels and terminal cells.
type geometry struct {
	cellW, cellH         int
	innerCols, innerRows int
}

func newGeometry(ui config.UIConfig) geometry {
	return geometry{
		cellW:     ui.CellWidth,
		cellH:     ui.CellHeight,
		innerCols: max(1, ui.TrackWidth/ui.CellWidth),
		innerRows: max(1, ui.TrackHeight/ui.CellHeight),
	}
}

func (g geometry) cols(px float64) int {
	return int(math.Round(px / float64(g.cellW)))
}

func (g geometry) rows(px float64) int {
	return max(1, int(math.Round(px/float64(g.cellH))))
}

// trackRect is the bordered track centred on a w×h screen. ok is false when
// the screen is too small to hold it.
func (g geometry) trackRect(w, h int) (outer, inner rect, ok bool) {
	ow, oh := g.innerCols+2, g.innerRows+2
	if w < ow || h < oh {
		return rect{}, rect{}, false
	}
	outer = rect{x: (w - ow) / 2, y: (h - oh) / 2, w: ow, h: oh}
	inner = rect{x: outer.x + 1, y: outer.y + 1, w: g.innerCols, h: g.innerRows}
	return outer, inner, true
}

// layout places everything in screen cells for one state.
type layout struct {
	outer, inner rect
	control      rect
	left, right  rect
	labelY       int
}

func indicatorSize(ind slider.Indicator) float64 {
	if ind.Animated {
		return indicatorAnimatedSize
	}
	return indicatorStaticSize
}

func (g geometry) layout(w, h int, p slider.Presentation, offset float64) (layout, bool) {
	outer, inner, ok := g.trackRect(w, h)
	if !ok {
		return layout{}, false
	}

	ctrl := rect{w: g.cols(p.ControlSize), h: g.rows(p.ControlSize)}
	left := rect{w: g.cols(indicatorSize(p.Left)), h: g.rows(indicatorSize(p.Left))}
	right := rect{w: g.cols(indicatorSize(p.Right)), h: g.rows(indicatorSize(p.Right))}
	gap := g.cols(p.Spacing)

	stack := left.w + gap + ctrl.w + gap + right.w
	left.x = inner.x + (inner.w-stack)/2
	base := left.x + left.w + gap
	right.x = base + ctrl.w + gap
	ctrl.x = base + g.cols(offset)

	centre := func(r *rect) { r.y = inner.y + (inner.h-r.h)/2 }
	centre(&ctrl)
	centre(&left)
	centre(&right)

	return layout{
		outer:   outer,
		inner:   inner,
		control: ctrl,
		left:    left,
		right:   right,
		labelY:  inner.y + inner.h/2,
	}, true
}
