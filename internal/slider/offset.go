package slider

// DefaultMaxDistance is the clamp boundary of the control, in pixels.
const DefaultMaxDistance = 150.0

// Sign is the direction the control is engaged in.
type Sign int

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	default:
		return "zero"
	}
}

// SignOf reports which side of center offset sits on.
func SignOf(offset float64) Sign {
	switch {
	case offset < 0:
		return Negative
	case offset > 0:
		return Positive
	default:
		return Zero
	}
}

// Clamp limits v to [-limit, +limit].
func Clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
