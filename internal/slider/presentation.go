package slider

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/betslider/internal/assets"
)

// Gradient is a two-stop linear gradient running top to bottom. Stops are
// fractions of the element height and may fall outside [0, 1].
type Gradient struct {
	From, To         lipgloss.Color
	FromStop, ToStop float64
}

// Indicator is what sits beside the control on one side.
type Indicator struct {
	Asset    assets.Key
	Animated bool
}

// Presentation is everything the renderer needs to draw one state.
type Presentation struct {
	Track  Gradient
	Border lipgloss.Color
	Text   lipgloss.Color

	Control     assets.Key
	ControlGlow bool
	// ControlSize is the control's edge length in logical pixels.
	ControlSize float64

	Left, Right Indicator
	// Spacing separates the indicators from the control. Negative overlaps.
	Spacing float64

	DialogTitle string
}

const (
	ControlSizeNeutral = 80.0
	ControlSizeEngaged = 160.0

	SpacingNeutral = 14.0
	SpacingEngaged = -40.0
)

// Glow pulse endpoints for the neutral control.
const (
	GlowFrom lipgloss.Color = "#ff5722"
	GlowTo   lipgloss.Color = "#ff9800"
)

const (
	gradientFromStop = 0.092
	gradientToStop   = 1.039
)

type palette struct {
	from, to lipgloss.Color
	border   lipgloss.Color
	text     lipgloss.Color
	control  assets.Key
	left     assets.Key
	right    assets.Key
}

var palettes = map[Sign]palette{
	Negative: {
		from:    "#621631",
		to:      "#ff5a8b",
		border:  "#ff5a8b",
		text:    "#802037",
		control: assets.OrbRed,
		left:    assets.LeftArrowsRed,
		right:   assets.RightArrowsRed,
	},
	Positive: {
		from:    "#1b7d43",
		to:      "#6ce796",
		border:  "#6ce796",
		text:    "#076e49",
		control: assets.OrbGreen,
		left:    assets.LeftArrowsGreen,
		right:   assets.RightArrowsGreen,
	},
	Zero: {
		from:    "#25252f",
		to:      "#14141b",
		border:  "#ff5722",
		text:    "#ffffff",
		control: assets.OrbNeutral,
		left:    assets.GlowingLeftArrows,
		right:   assets.GlowingRightArrows,
	},
}

// Present derives the presentation for a sign and decision. It holds no state
// and returns equal values for equal inputs.
func Present(sign Sign, d Decision) Presentation {
	p, ok := palettes[sign]
	if !ok {
		p = palettes[Zero]
		sign = Zero
	}
	neutral := sign == Zero
	out := Presentation{
		Track: Gradient{
			From:     p.from,
			To:       p.to,
			FromStop: gradientFromStop,
			ToStop:   gradientToStop,
		},
		Border:      p.border,
		Text:        p.text,
		Control:     p.control,
		ControlGlow: neutral,
		ControlSize: ControlSizeEngaged,
		Left:        Indicator{Asset: p.left, Animated: neutral},
		Right:       Indicator{Asset: p.right, Animated: neutral},
		Spacing:     SpacingEngaged,
		DialogTitle: d.Title(),
	}
	if neutral {
		out.ControlSize = ControlSizeNeutral
		out.Spacing = SpacingNeutral
	}
	return out
}
