//go:build !nogamepad

package ebitensrc

import (
	"io/fs"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/quiver/gamepad"
	"github.com/milk9111/quiver/input"
)

var padButtonTable = [input.GamepadButtonCount]ebiten.StandardGamepadButton{
	input.GamepadA:            ebiten.StandardGamepadButtonRightBottom,
	input.GamepadB:            ebiten.StandardGamepadButtonRightRight,
	input.GamepadX:            ebiten.StandardGamepadButtonRightLeft,
	input.GamepadY:            ebiten.StandardGamepadButtonRightTop,
	input.GamepadLeftBumper:   ebiten.StandardGamepadButtonFrontTopLeft,
	input.GamepadRightBumper:  ebiten.StandardGamepadButtonFrontTopRight,
	input.GamepadLeftTrigger:  ebiten.StandardGamepadButtonFrontBottomLeft,
	input.GamepadRightTrigger: ebiten.StandardGamepadButtonFrontBottomRight,
	input.GamepadBack:         ebiten.StandardGamepadButtonCenterLeft,
	input.GamepadStart:        ebiten.StandardGamepadButtonCenterRight,
	input.GamepadGuide:        ebiten.StandardGamepadButtonCenterCenter,
	input.GamepadLeftStick:    ebiten.StandardGamepadButtonLeftStick,
	input.GamepadRightStick:   ebiten.StandardGamepadButtonRightStick,
	input.GamepadDPadUp:       ebiten.StandardGamepadButtonLeftTop,
	input.GamepadDPadDown:     ebiten.StandardGamepadButtonLeftBottom,
	input.GamepadDPadLeft:     ebiten.StandardGamepadButtonLeftLeft,
	input.GamepadDPadRight:    ebiten.StandardGamepadButtonLeftRight,
}

var padAxisTable = [...]struct {
	axis ebiten.StandardGamepadAxis
	in   input.GamepadAxis
}{
	{ebiten.StandardGamepadAxisLeftStickHorizontal, input.AxisLeftX},
	{ebiten.StandardGamepadAxisLeftStickVertical, input.AxisLeftY},
	{ebiten.StandardGamepadAxisRightStickHorizontal, input.AxisRightX},
	{ebiten.StandardGamepadAxisRightStickVertical, input.AxisRightY},
}

// padSlots pins ebiten gamepad IDs to coordinator slots for as long as
// the pad stays connected.
type padSlots struct {
	ids   [input.MaxGamepads]ebiten.GamepadID
	used  [input.MaxGamepads]bool
	axes  [input.MaxGamepads][input.GamepadAxisCount]float64
	found []ebiten.GamepadID
}

func (p *padSlots) poll(dst []input.Event, log *slog.Logger) []input.Event {
	for slot := range p.ids {
		if p.used[slot] && inpututil.IsGamepadJustDisconnected(p.ids[slot]) {
			p.used[slot] = false
			p.axes[slot] = [input.GamepadAxisCount]float64{}
			dst = append(dst, input.GamepadDisconnectedEvent(slot))
			log.Info("ebitensrc: gamepad disconnected", "slot", slot)
		}
	}

	p.found = ebiten.AppendGamepadIDs(p.found[:0])
	for _, id := range p.found {
		if p.slotOf(id) >= 0 {
			continue
		}
		slot := p.free()
		if slot < 0 {
			log.Debug("ebitensrc: no free gamepad slot", "id", int(id))
			continue
		}
		p.ids[slot], p.used[slot] = id, true
		dst = append(dst, input.GamepadConnectedEvent(slot))
		log.Info("ebitensrc: gamepad connected", "slot", slot, "name", ebiten.GamepadName(id),
			"standard", ebiten.IsStandardGamepadLayoutAvailable(id))
	}

	for slot, id := range p.ids {
		if !p.used[slot] || !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b, sb := range padButtonTable {
			switch {
			case inpututil.IsStandardGamepadButtonJustPressed(id, sb):
				dst = append(dst, input.GamepadButtonEvent(slot, input.StatePressed, input.GamepadButton(b)))
			case inpututil.IsStandardGamepadButtonJustReleased(id, sb):
				dst = append(dst, input.GamepadButtonEvent(slot, input.StateReleased, input.GamepadButton(b)))
			}
		}
		for _, a := range padAxisTable {
			dst = p.axis(dst, slot, a.in, ebiten.StandardGamepadAxisValue(id, a.axis))
		}
		dst = p.axis(dst, slot, input.AxisLeftTrigger,
			ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft))
		dst = p.axis(dst, slot, input.AxisRightTrigger,
			ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight))
	}
	return dst
}

// axis emits only changes so an idle pad costs nothing.
func (p *padSlots) axis(dst []input.Event, slot int, a input.GamepadAxis, v float64) []input.Event {
	if p.axes[slot][a] == v {
		return dst
	}
	p.axes[slot][a] = v
	return append(dst, input.GamepadAxisEvent(slot, a, v))
}

func (p *padSlots) slotOf(id ebiten.GamepadID) int {
	for slot := range p.ids {
		if p.used[slot] && p.ids[slot] == id {
			return slot
		}
	}
	return -1
}

func (p *padSlots) free() int {
	for slot, used := range p.used {
		if !used {
			return slot
		}
	}
	return -1
}

// LoadMappings validates an SDL mapping database and installs it in
// ebiten's standard gamepad layout.
func LoadMappings(fsys fs.FS, name string) error {
	data, _, err := gamepad.ReadMappings(fsys, name)
	if err != nil {
		return err
	}
	ok, err := ebiten.UpdateStandardGamepadLayoutMappings(string(data))
	if err != nil {
		return &gamepad.Error{Source: name, Err: err}
	}
	if !ok {
		return &gamepad.Error{Source: name, Err: gamepad.ErrRejected}
	}
	return nil
}
