package input

import "log/slog"

// Phase is the coordinator's position within a frame.
type Phase uint8

const (
	// PhaseCollapse: the previous frame has been collapsed and no snapshot
	// is live. A fresh coordinator starts here.
	PhaseCollapse Phase = iota
	// PhaseQuery: events have been drained and the snapshot is queryable.
	PhaseQuery
)

func (p Phase) String() string {
	if p == PhaseQuery {
		return "query"
	}
	return "collapse"
}

// ScaleProvider reports the current logical/physical display scale.
type ScaleProvider interface {
	Scale() float64
}

// ScaleFunc adapts a function to ScaleProvider.
type ScaleFunc func() float64

func (f ScaleFunc) Scale() float64 { return f() }

// Options configures a Coordinator. The zero value is usable.
type Options struct {
	// Scale, when set, is consulted at the start of every frame. Scale
	// events from the source override it until the next frame.
	Scale ScaleProvider
	// InitialScale is used until a provider or event supplies one.
	// Defaults to 1.
	InitialScale float64
	// Deadzone is the radial stick deadzone applied by Gamepad.Stick.
	Deadzone float64
	Logger   *slog.Logger
}

// Coordinator owns every device aggregate and is the only component that
// knows about frames. Each frame runs Begin, application queries against
// the returned Snapshot, then End.
type Coordinator struct {
	src   Source
	opts  Options
	log   *slog.Logger
	buf   []Event
	phase Phase
	frame uint64
	scale float64
	snap  Snapshot

	mouse    Mouse
	keyboard Keyboard
	pads     [MaxGamepads]Gamepad
}

// NewCoordinator creates the input state for one application. src may be
// nil when events are fed through Dispatch.
func NewCoordinator(src Source, opts Options) *Coordinator {
	c := &Coordinator{
		src:   src,
		opts:  opts,
		log:   opts.Logger,
		buf:   make([]Event, 0, 64),
		scale: 1,
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if validScale(opts.InitialScale) {
		c.scale = opts.InitialScale
	}
	for i := range c.pads {
		c.pads[i].deadzone = opts.Deadzone
	}
	c.snap.c = c
	return c
}

// Begin drains the source, applies every event in delivery order and
// returns the snapshot for this frame. Calling Begin again before End
// drains further events into the same frame.
func (c *Coordinator) Begin() *Snapshot {
	if c.phase == PhaseQuery {
		c.log.Debug("input: begin called twice in one frame", "frame", c.frame)
	}
	if c.opts.Scale != nil {
		c.setScale(c.opts.Scale.Scale())
	}
	if c.src != nil {
		c.buf = c.src.Poll(c.buf[:0])
		for i := range c.buf {
			c.Dispatch(c.buf[i])
		}
		c.buf = c.buf[:0]
	}
	c.phase = PhaseQuery
	c.snap.frame = c.frame
	return &c.snap
}

// End collapses every aggregate and advances the frame counter. It is a
// no-op when no frame is open.
func (c *Coordinator) End() {
	if c.phase != PhaseQuery {
		return
	}
	c.collapse()
	c.phase = PhaseCollapse
	c.frame++
}

// Update runs one whole frame around fn.
func (c *Coordinator) Update(fn func(s *Snapshot) error) error {
	s := c.Begin()
	defer c.End()
	if fn == nil {
		return nil
	}
	return fn(s)
}

// Dispatch applies a single event immediately. Events that name unknown
// devices or carry unusable values are dropped.
func (c *Coordinator) Dispatch(ev Event) {
	switch ev.Kind {
	case EventKey:
		if ev.Key >= KeyCount {
			c.drop(ev, "unknown key")
			return
		}
		c.keyboard.ProcessKey(ev.State, ev.Key)
	case EventMouseButton:
		c.mouse.ProcessButton(ev.State, ev.Mouse)
	case EventMouseMove:
		c.mouse.SetPosition(Position{X: ev.X, Y: ev.Y}, c.scale)
	case EventMouseWheel:
		c.mouse.AddWheel(ev.X, ev.Y)
	case EventScale:
		if !c.setScale(ev.X) {
			c.drop(ev, "invalid scale")
		}
	case EventGamepadButton, EventGamepadAxis, EventGamepadConnected, EventGamepadDisconnected:
		if ev.Pad < 0 || ev.Pad >= MaxGamepads {
			c.drop(ev, "gamepad slot out of range")
			return
		}
		pad := &c.pads[ev.Pad]
		switch ev.Kind {
		case EventGamepadButton:
			pad.ProcessButton(ev.State, ev.Button)
		case EventGamepadAxis:
			pad.SetAxis(ev.Axis, ev.X)
		case EventGamepadConnected:
			pad.Connect()
		case EventGamepadDisconnected:
			pad.Disconnect()
		}
	default:
		c.drop(ev, "unknown event kind")
	}
}

func (c *Coordinator) drop(ev Event, reason string) {
	c.log.Debug("input: event dropped", "kind", ev.Kind.String(), "reason", reason)
}

func (c *Coordinator) setScale(scale float64) bool {
	if !validScale(scale) {
		return false
	}
	c.scale = scale
	return true
}

func (c *Coordinator) collapse() {
	c.mouse.ClearTemporaryStates()
	c.keyboard.ClearTemporaryStates()
	for i := range c.pads {
		c.pads[i].ClearTemporaryStates()
	}
}

// Phase reports where the coordinator is within the frame.
func (c *Coordinator) Phase() Phase {
	return c.phase
}

// Frame returns the number of completed frames.
func (c *Coordinator) Frame() uint64 {
	return c.frame
}

// Scale returns the display scale used for pointer events.
func (c *Coordinator) Scale() float64 {
	return c.scale
}
