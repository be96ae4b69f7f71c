package input

// MouseButton identifies a physical mouse button as reported by a platform.
// Only Left, Right and Middle are tracked.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward
)

const trackedMouseButtons = int(MouseButtonMiddle) + 1

var mouseButtonNames = [...]string{
	MouseButtonLeft:    "Left",
	MouseButtonRight:   "Right",
	MouseButtonMiddle:  "Middle",
	MouseButtonBack:    "Back",
	MouseButtonForward: "Forward",
}

func (b MouseButton) String() string {
	if int(b) < len(mouseButtonNames) {
		return mouseButtonNames[b]
	}
	return "Unknown"
}

// ParseMouseButton accepts the tracked button names only.
func ParseMouseButton(name string) (MouseButton, bool) {
	for i := 0; i < trackedMouseButtons; i++ {
		if mouseButtonNames[i] == name {
			return MouseButton(i), true
		}
	}
	return 0, false
}

// Mouse is the pointer aggregate: a logical position, three buttons and the
// wheel delta accumulated during the current frame. The zero value is a
// mouse at the origin with every button up.
type Mouse struct {
	pos     Position
	buttons [trackedMouseButtons]ButtonState
	wheel   Position
}

// NewMouse returns a mouse at the origin with every button NotPressed.
func NewMouse() *Mouse {
	return &Mouse{}
}

// SetPosition stores raw/scale. A non-positive scale or a non-finite
// coordinate leaves the position unchanged.
func (m *Mouse) SetPosition(raw Position, scale float64) {
	if !validScale(scale) || !raw.finite() {
		return
	}
	m.pos = raw.Scaled(scale)
}

// ProcessButton applies a raw button event. Buttons outside the tracked
// set are ignored.
func (m *Mouse) ProcessButton(state ElementState, button MouseButton) {
	if int(button) >= trackedMouseButtons {
		return
	}
	m.buttons[button] = m.buttons[button].Apply(state)
}

// AddWheel accumulates scroll for the current frame.
func (m *Mouse) AddWheel(dx, dy float64) {
	d := Position{X: dx, Y: dy}
	if !d.finite() {
		return
	}
	m.wheel.X += dx
	m.wheel.Y += dy
}

// ClearTemporaryStates collapses every button and resets the wheel delta.
func (m *Mouse) ClearTemporaryStates() {
	for i := range m.buttons {
		m.buttons[i] = m.buttons[i].ClearTemporary()
	}
	m.wheel = Position{}
}

func (m *Mouse) Position() Position {
	return m.pos
}

// Button returns NotPressed for untracked buttons.
func (m *Mouse) Button(button MouseButton) ButtonState {
	if int(button) >= trackedMouseButtons {
		return NotPressed
	}
	return m.buttons[button]
}

func (m *Mouse) Left() ButtonState   { return m.buttons[MouseButtonLeft] }
func (m *Mouse) Right() ButtonState  { return m.buttons[MouseButtonRight] }
func (m *Mouse) Middle() ButtonState { return m.buttons[MouseButtonMiddle] }

// Wheel returns the scroll accumulated since the last collapse.
func (m *Mouse) Wheel() Position {
	return m.wheel
}
