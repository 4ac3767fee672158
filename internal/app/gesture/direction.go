package gesture

// Direction is the navigation step requested by an input gesture
type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// FromDelta maps a horizontal drag delta to a direction: leftward swipes go forward
func FromDelta(dx float64) Direction {
	switch {
	case dx < 0:
		return Forward
	case dx > 0:
		return Backward
	default:
		return None
	}
}
