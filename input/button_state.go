package input

// ButtonState is the per-frame state of one binary input.
type ButtonState uint8

const (
	// NotPressed: up now and up last frame.
	NotPressed ButtonState = iota
	// Pressed: went down this frame.
	Pressed
	// Held: down now and down last frame.
	Held
	// Released: went up this frame.
	Released
)

// ElementState is the raw direction reported by a platform event.
type ElementState uint8

const (
	StateReleased ElementState = iota
	StatePressed
)

func (s ButtonState) String() string {
	switch s {
	case NotPressed:
		return "not_pressed"
	case Pressed:
		return "pressed"
	case Held:
		return "held"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

// ParseButtonState is the inverse of String.
func ParseButtonState(s string) (ButtonState, bool) {
	switch s {
	case "not_pressed":
		return NotPressed, true
	case "pressed":
		return Pressed, true
	case "held":
		return Held, true
	case "released":
		return Released, true
	}
	return NotPressed, false
}

// Apply returns the state after a raw event. The previous state is
// irrelevant: within one frame the last event wins.
func (s ButtonState) Apply(raw ElementState) ButtonState {
	if raw == StatePressed {
		return Pressed
	}
	return Released
}

// ClearTemporary collapses edge states into the steady state that follows
// them on the next frame.
func (s ButtonState) ClearTemporary() ButtonState {
	switch s {
	case Pressed, Held:
		return Held
	default:
		return NotPressed
	}
}

// IsDown reports Pressed or Held.
func (s ButtonState) IsDown() bool {
	return s == Pressed || s == Held
}

// IsEdge reports Pressed or Released.
func (s ButtonState) IsEdge() bool {
	return s == Pressed || s == Released
}
