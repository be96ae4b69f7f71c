package input

import "testing"

var allStates = []ButtonState{NotPressed, Pressed, Held, Released}

func TestClearTemporary(t *testing.T) {
	cases := []struct {
		from ButtonState
		want ButtonState
	}{
		{NotPressed, NotPressed},
		{Pressed, Held},
		{Held, Held},
		{Released, NotPressed},
	}

	for _, c := range cases {
		t.Run(c.from.String(), func(t *testing.T) {
			if got := c.from.ClearTemporary(); got != c.want {
				t.Fatalf("ClearTemporary(%v) = %v, want %v", c.from, got, c.want)
			}
		})
	}
}

func TestClearTemporaryIsIdempotent(t *testing.T) {
	for _, s := range allStates {
		once := s.ClearTemporary()
		if twice := once.ClearTemporary(); twice != once {
			t.Fatalf("%v: second collapse gave %v, first gave %v", s, twice, once)
		}
		if once != NotPressed && once != Held {
			t.Fatalf("%v: collapse produced edge state %v", s, once)
		}
	}
}

func TestApplyIgnoresPreviousState(t *testing.T) {
	for _, s := range allStates {
		if got := s.Apply(StatePressed); got != Pressed {
			t.Fatalf("%v + press = %v, want pressed", s, got)
		}
		if got := s.Apply(StateReleased); got != Released {
			t.Fatalf("%v + release = %v, want released", s, got)
		}
	}
}

func TestApplyLastEventWins(t *testing.T) {
	cases := []struct {
		name   string
		events []ElementState
		want   ButtonState
	}{
		{"press", []ElementState{StatePressed}, Pressed},
		{"press_release", []ElementState{StatePressed, StateReleased}, Released},
		{"release_press", []ElementState{StateReleased, StatePressed}, Pressed},
		{"press_press", []ElementState{StatePressed, StatePressed}, Pressed},
		{"long_burst", []ElementState{StatePressed, StateReleased, StatePressed, StateReleased, StatePressed}, Pressed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, start := range allStates {
				s := start
				for _, ev := range c.events {
					s = s.Apply(ev)
				}
				if s != c.want {
					t.Fatalf("from %v: got %v, want %v", start, s, c.want)
				}
			}
		})
	}
}

func TestParseButtonState(t *testing.T) {
	for _, s := range allStates {
		got, ok := ParseButtonState(s.String())
		if !ok || got != s {
			t.Fatalf("ParseButtonState(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseButtonState("down"); ok {
		t.Fatalf("expected unknown name to fail")
	}
}
