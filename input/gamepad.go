package input

// MaxGamepads is the number of gamepad slots a Coordinator tracks.
const MaxGamepads = 4

// GamepadButton is a button of the standard gamepad layout.
type GamepadButton uint8

const (
	GamepadA GamepadButton = iota
	GamepadB
	GamepadX
	GamepadY
	GamepadLeftBumper
	GamepadRightBumper
	GamepadLeftTrigger
	GamepadRightTrigger
	GamepadBack
	GamepadStart
	GamepadGuide
	GamepadLeftStick
	GamepadRightStick
	GamepadDPadUp
	GamepadDPadDown
	GamepadDPadLeft
	GamepadDPadRight

	GamepadButtonCount
)

var gamepadButtonNames = [GamepadButtonCount]string{
	GamepadA:            "A",
	GamepadB:            "B",
	GamepadX:            "X",
	GamepadY:            "Y",
	GamepadLeftBumper:   "LeftBumper",
	GamepadRightBumper:  "RightBumper",
	GamepadLeftTrigger:  "LeftTrigger",
	GamepadRightTrigger: "RightTrigger",
	GamepadBack:         "Back",
	GamepadStart:        "Start",
	GamepadGuide:        "Guide",
	GamepadLeftStick:    "LeftStick",
	GamepadRightStick:   "RightStick",
	GamepadDPadUp:       "DPadUp",
	GamepadDPadDown:     "DPadDown",
	GamepadDPadLeft:     "DPadLeft",
	GamepadDPadRight:    "DPadRight",
}

func (b GamepadButton) String() string {
	if b >= GamepadButtonCount {
		return "Unknown"
	}
	return gamepadButtonNames[b]
}

func ParseGamepadButton(name string) (GamepadButton, bool) {
	for i, n := range gamepadButtonNames {
		if n == name {
			return GamepadButton(i), true
		}
	}
	return 0, false
}

// GamepadAxis is an analog axis of the standard gamepad layout.
type GamepadAxis uint8

const (
	AxisLeftX GamepadAxis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger

	GamepadAxisCount
)

var gamepadAxisNames = [GamepadAxisCount]string{
	AxisLeftX:        "LeftX",
	AxisLeftY:        "LeftY",
	AxisRightX:       "RightX",
	AxisRightY:       "RightY",
	AxisLeftTrigger:  "LeftTrigger",
	AxisRightTrigger: "RightTrigger",
}

func (a GamepadAxis) String() string {
	if a >= GamepadAxisCount {
		return "Unknown"
	}
	return gamepadAxisNames[a]
}

// Stick selects one of the two analog sticks.
type Stick uint8

const (
	StickLeft Stick = iota
	StickRight
)

// Gamepad is one pad slot: buttons, clamped axes and a connected flag.
type Gamepad struct {
	connected bool
	deadzone  float64
	buttons   [GamepadButtonCount]ButtonState
	axes      [GamepadAxisCount]Axis
}

// NewGamepad returns a disconnected pad whose sticks ignore magnitudes below
// deadzone.
func NewGamepad(deadzone float64) *Gamepad {
	return &Gamepad{deadzone: deadzone}
}

func (g *Gamepad) Connected() bool {
	return g.connected
}

func (g *Gamepad) Connect() {
	g.connected = true
}

// Disconnect marks the slot free and returns every input to rest.
func (g *Gamepad) Disconnect() {
	g.connected = false
	g.buttons = [GamepadButtonCount]ButtonState{}
	g.axes = [GamepadAxisCount]Axis{}
}

// ProcessButton applies a raw button event. Unknown buttons are ignored.
func (g *Gamepad) ProcessButton(state ElementState, button GamepadButton) {
	if button >= GamepadButtonCount {
		return
	}
	g.buttons[button] = g.buttons[button].Apply(state)
}

// SetAxis stores v clamped to [-1, 1]. Unknown axes are ignored.
func (g *Gamepad) SetAxis(axis GamepadAxis, v float64) {
	if axis >= GamepadAxisCount {
		return
	}
	g.axes[axis].Set(v)
}

// ClearTemporaryStates collapses every button. Axes are levels, not edges,
// and keep their value.
func (g *Gamepad) ClearTemporaryStates() {
	for i := range g.buttons {
		g.buttons[i] = g.buttons[i].ClearTemporary()
	}
}

func (g *Gamepad) Button(button GamepadButton) ButtonState {
	if button >= GamepadButtonCount {
		return NotPressed
	}
	return g.buttons[button]
}

// Axis returns the clamped raw axis value.
func (g *Gamepad) Axis(axis GamepadAxis) float64 {
	if axis >= GamepadAxisCount {
		return 0
	}
	return g.axes[axis].Value()
}

// Stick returns the stick position with the radial deadzone applied.
func (g *Gamepad) Stick(s Stick) (float64, float64) {
	switch s {
	case StickLeft:
		return Deadzone(g.axes[AxisLeftX].Value(), g.axes[AxisLeftY].Value(), g.deadzone)
	case StickRight:
		return Deadzone(g.axes[AxisRightX].Value(), g.axes[AxisRightY].Value(), g.deadzone)
	}
	return 0, 0
}
