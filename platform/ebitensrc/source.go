// Package ebitensrc feeds ebiten's per-tick input state into an input
// coordinator. Poll must be called from ebiten's Update.
package ebitensrc

import (
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/quiver/input"
)

var mouseTable = [...]struct {
	eb ebiten.MouseButton
	in input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseButtonLeft},
	{ebiten.MouseButtonRight, input.MouseButtonRight},
	{ebiten.MouseButtonMiddle, input.MouseButtonMiddle},
	{ebiten.MouseButton3, input.MouseButtonBack},
	{ebiten.MouseButton4, input.MouseButtonForward},
}

// Source turns ebiten's polled state into edge events. Ebiten reports the
// cursor in logical pixels, so moves are emitted in device pixels alongside
// the monitor scale and the coordinator divides them back.
type Source struct {
	log   *slog.Logger
	keys  []ebiten.Key
	scale float64
	mx    int
	my    int
	moved bool
	pads  padSlots
}

func New(log *slog.Logger) *Source {
	if log == nil {
		log = slog.Default()
	}
	return &Source{log: log, keys: make([]ebiten.Key, 0, 16)}
}

// Scale reports the device scale of the current monitor.
func (s *Source) Scale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if f := m.DeviceScaleFactor(); f > 0 {
			return f
		}
	}
	return 1
}

func (s *Source) Poll(dst []input.Event) []input.Event {
	dst = s.pollScale(dst)
	dst = s.pollKeys(dst)
	dst = s.pollMouse(dst)
	dst = s.pads.poll(dst, s.log)
	return dst
}

func (s *Source) pollScale(dst []input.Event) []input.Event {
	scale := s.Scale()
	if scale != s.scale {
		s.scale = scale
		dst = append(dst, input.ScaleEvent(scale))
	}
	return dst
}

func (s *Source) pollKeys(dst []input.Event) []input.Event {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key, ok := TranslateKey(k); ok {
			dst = append(dst, input.KeyEvent(input.StatePressed, key))
		}
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key, ok := TranslateKey(k); ok {
			dst = append(dst, input.KeyEvent(input.StateReleased, key))
		}
	}
	return dst
}

func (s *Source) pollMouse(dst []input.Event) []input.Event {
	mx, my := ebiten.CursorPosition()
	if !s.moved || mx != s.mx || my != s.my {
		s.mx, s.my, s.moved = mx, my, true
		dst = append(dst, input.MouseMoveEvent(float64(mx)*s.scale, float64(my)*s.scale))
	}

	for _, m := range mouseTable {
		switch {
		case inpututil.IsMouseButtonJustPressed(m.eb):
			dst = append(dst, input.MouseButtonEvent(input.StatePressed, m.in))
		case inpututil.IsMouseButtonJustReleased(m.eb):
			dst = append(dst, input.MouseButtonEvent(input.StateReleased, m.in))
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		if !math.IsNaN(wx) && !math.IsNaN(wy) {
			dst = append(dst, input.MouseWheelEvent(wx, wy))
		}
	}
	return dst
}
