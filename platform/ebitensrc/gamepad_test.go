//go:build !nogamepad

package ebitensrc

import (
	"testing"

	"github.com/milk9111/quiver/input"
)

func TestPadSlotsAxisEmitsChangesOnly(t *testing.T) {
	var p padSlots
	evs := p.axis(nil, 1, input.AxisLeftX, 0.5)
	evs = p.axis(evs, 1, input.AxisLeftX, 0.5)
	evs = p.axis(evs, 1, input.AxisLeftX, -0.25)
	if len(evs) != 2 {
		t.Fatalf("got %d events, want 2", len(evs))
	}
	if evs[1].Pad != 1 || evs[1].X != -0.25 || evs[1].Kind != input.EventGamepadAxis {
		t.Fatalf("event = %+v", evs[1])
	}
}

func TestPadSlotsAssignment(t *testing.T) {
	var p padSlots
	if p.free() != 0 {
		t.Fatalf("first free slot = %d", p.free())
	}
	p.ids[0], p.used[0] = 7, true
	p.ids[1], p.used[1] = 3, true
	if p.slotOf(3) != 1 || p.slotOf(9) != -1 {
		t.Fatalf("slotOf wrong")
	}
	if p.free() != 2 {
		t.Fatalf("next free slot = %d", p.free())
	}
}

func TestPadButtonTableIsComplete(t *testing.T) {
	seen := map[int]bool{}
	for b, sb := range padButtonTable {
		if seen[int(sb)] {
			t.Fatalf("button %v shares a standard button", input.GamepadButton(b))
		}
		seen[int(sb)] = true
	}
}
