package input

import "fmt"

// EventKind identifies the payload carried by an Event.
type EventKind uint8

const (
	EventKey EventKind = iota
	EventMouseButton
	EventMouseMove
	EventMouseWheel
	EventScale
	EventGamepadButton
	EventGamepadAxis
	EventGamepadConnected
	EventGamepadDisconnected
)

var eventKindNames = [...]string{
	EventKey:                 "key",
	EventMouseButton:         "mouse_button",
	EventMouseMove:           "mouse_move",
	EventMouseWheel:          "mouse_wheel",
	EventScale:               "scale",
	EventGamepadButton:       "gamepad_button",
	EventGamepadAxis:         "gamepad_axis",
	EventGamepadConnected:    "gamepad_connected",
	EventGamepadDisconnected: "gamepad_disconnected",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("event(%d)", uint8(k))
}

// Event is one raw platform input event. Which fields are meaningful depends
// on Kind:
//
//	EventKey             State, Key
//	EventMouseButton     State, Mouse
//	EventMouseMove       X, Y in physical units
//	EventMouseWheel      X, Y scroll delta
//	EventScale           X is the new logical/physical scale factor
//	EventGamepadButton   Pad, State, Button
//	EventGamepadAxis     Pad, Axis, X
//	EventGamepadConnected, EventGamepadDisconnected  Pad
type Event struct {
	Kind   EventKind
	State  ElementState
	Key    Key
	Mouse  MouseButton
	Pad    int
	Button GamepadButton
	Axis   GamepadAxis
	X, Y   float64
}

func KeyEvent(state ElementState, key Key) Event {
	return Event{Kind: EventKey, State: state, Key: key}
}

func MouseButtonEvent(state ElementState, button MouseButton) Event {
	return Event{Kind: EventMouseButton, State: state, Mouse: button}
}

func MouseMoveEvent(x, y float64) Event {
	return Event{Kind: EventMouseMove, X: x, Y: y}
}

func MouseWheelEvent(dx, dy float64) Event {
	return Event{Kind: EventMouseWheel, X: dx, Y: dy}
}

func ScaleEvent(scale float64) Event {
	return Event{Kind: EventScale, X: scale}
}

func GamepadButtonEvent(pad int, state ElementState, button GamepadButton) Event {
	return Event{Kind: EventGamepadButton, Pad: pad, State: state, Button: button}
}

func GamepadAxisEvent(pad int, axis GamepadAxis, v float64) Event {
	return Event{Kind: EventGamepadAxis, Pad: pad, Axis: axis, X: v}
}

func GamepadConnectedEvent(pad int) Event {
	return Event{Kind: EventGamepadConnected, Pad: pad}
}

func GamepadDisconnectedEvent(pad int) Event {
	return Event{Kind: EventGamepadDisconnected, Pad: pad}
}

// Source is a platform collaborator that reports the events accumulated
// since its previous Poll. Poll appends to dst and returns the extended
// slice; returning dst unchanged means nothing happened.
type Source interface {
	Poll(dst []Event) []Event
}

// EventQueue is a simple FIFO queue. It is itself a Source, which lets
// callers push events by hand (tests, replays, synthetic input).
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Poll appends all queued events to dst in push order and clears the queue.
func (q *EventQueue) Poll(dst []Event) []Event {
	if q == nil || len(q.items) == 0 {
		return dst
	}
	dst = append(dst, q.items...)
	q.items = q.items[:0]
	return dst
}
