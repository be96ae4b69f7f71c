package action

import "github.com/milk9111/quiver/input"

// Combine merges the states of every input bound to one action. While any
// input is down the action is Held if one of them is Held and Pressed
// otherwise. With nothing down it is Released if one of them was released
// this frame and NotPressed otherwise.
func Combine(states ...input.ButtonState) input.ButtonState {
	var pressed, held, released bool
	for _, s := range states {
		switch s {
		case input.Pressed:
			pressed = true
		case input.Held:
			held = true
		case input.Released:
			released = true
		}
	}
	switch {
	case held:
		return input.Held
	case pressed:
		return input.Pressed
	case released:
		return input.Released
	}
	return input.NotPressed
}
