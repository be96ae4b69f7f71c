package input

// Snapshot is the read-only view of input for one frame. It is only valid
// between Coordinator.Begin and Coordinator.End; End mutates the state it
// reads, so callers must not keep it across frames.
type Snapshot struct {
	c     *Coordinator
	frame uint64
}

// Frame is the frame number this snapshot was taken in.
func (s *Snapshot) Frame() uint64 {
	return s.frame
}

// Valid reports whether the frame the snapshot belongs to is still open.
func (s *Snapshot) Valid() bool {
	return s != nil && s.c != nil && s.c.phase == PhaseQuery && s.c.frame == s.frame
}

func (s *Snapshot) Key(k Key) ButtonState {
	return s.c.keyboard.Key(k)
}

// AppendKeys appends every key that is not NotPressed.
func (s *Snapshot) AppendKeys(dst []Key) []Key {
	return s.c.keyboard.AppendActive(dst)
}

func (s *Snapshot) MouseButton(b MouseButton) ButtonState {
	return s.c.mouse.Button(b)
}

// Position is the pointer position in logical units.
func (s *Snapshot) Position() Position {
	return s.c.mouse.Position()
}

// Wheel is the scroll delta received during this frame.
func (s *Snapshot) Wheel() Position {
	return s.c.mouse.Wheel()
}

// Scale is the display scale in effect for this frame.
func (s *Snapshot) Scale() float64 {
	return s.c.scale
}

// Connected reports whether pad slot i holds a connected gamepad.
func (s *Snapshot) Connected(pad int) bool {
	if pad < 0 || pad >= MaxGamepads {
		return false
	}
	return s.c.pads[pad].Connected()
}

func (s *Snapshot) GamepadButton(pad int, b GamepadButton) ButtonState {
	if pad < 0 || pad >= MaxGamepads {
		return NotPressed
	}
	return s.c.pads[pad].Button(b)
}

func (s *Snapshot) GamepadAxis(pad int, a GamepadAxis) float64 {
	if pad < 0 || pad >= MaxGamepads {
		return 0
	}
	return s.c.pads[pad].Axis(a)
}

// Stick returns the deadzoned stick position of pad.
func (s *Snapshot) Stick(pad int, st Stick) (float64, float64) {
	if pad < 0 || pad >= MaxGamepads {
		return 0, 0
	}
	return s.c.pads[pad].Stick(st)
}
