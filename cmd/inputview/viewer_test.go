package main

import (
	"strings"
	"testing"

	"github.com/milk9111/quiver/input"
)

func TestDescribe(t *testing.T) {
	q := &input.EventQueue{}
	c := input.NewCoordinator(q, input.Options{})
	q.Push(input.KeyEvent(input.StatePressed, input.KeyQ))
	q.Push(input.GamepadConnectedEvent(1))
	q.Push(input.GamepadButtonEvent(1, input.StatePressed, input.GamepadStart))
	s := c.Begin()
	defer c.End()

	keys := s.AppendKeys(nil)
	if got := describeKeys(keys, s); got != "Keys   Q:pressed" {
		t.Fatalf("keys = %q", got)
	}
	if got := describeKeys(nil, s); got != "Keys   -" {
		t.Fatalf("no keys = %q", got)
	}
	if got := describePads(s); !strings.Contains(got, "1: Start:pressed") {
		t.Fatalf("pads = %q", got)
	}

	states := map[string]input.ButtonState{"jump": input.Held, "fire": input.NotPressed}
	got := describeActions(states, map[string]int{"jump": 3})
	lines := strings.Split(got, "\n")
	if len(lines) != 3 || !strings.HasPrefix(strings.TrimSpace(lines[1]), "fire") {
		t.Fatalf("actions = %q", got)
	}
	if !strings.Contains(lines[2], "held") || !strings.HasSuffix(lines[2], "3") {
		t.Fatalf("jump line = %q", lines[2])
	}
}
