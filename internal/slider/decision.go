package slider

// Decision is the terminal outcome of a drag gesture.
type Decision int

const (
	None Decision = iota
	Accepted
	Declined
)

func (d Decision) String() string {
	switch d {
	case Accepted:
		return "accepted"
	case Declined:
		return "declined"
	default:
		return "none"
	}
}

// Title is the dialog heading shown for d. Empty for None.
func (d Decision) Title() string {
	switch d {
	case Accepted:
		return "Bet has been accepted!"
	case Declined:
		return "Bet has been declined!"
	default:
		return ""
	}
}
