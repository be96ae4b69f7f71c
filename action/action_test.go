package action

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/quiver/input"
)

func TestCombine(t *testing.T) {
	cases := []struct {
		name string
		in   []input.ButtonState
		want input.ButtonState
	}{
		{"none", nil, input.NotPressed},
		{"all_up", []input.ButtonState{input.NotPressed, input.NotPressed}, input.NotPressed},
		{"one_pressed", []input.ButtonState{input.NotPressed, input.Pressed}, input.Pressed},
		{"held_wins_over_pressed", []input.ButtonState{input.Pressed, input.Held}, input.Held},
		{"down_wins_over_released", []input.ButtonState{input.Released, input.Pressed}, input.Pressed},
		{"released_when_nothing_down", []input.ButtonState{input.NotPressed, input.Released}, input.Released},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Combine(c.in...); got != c.want {
				t.Fatalf("Combine(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestParseMapErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"bad_yaml", "actions: [\n", "unmarshal"},
		{"empty_binding", "actions:\n  jump: {}\n", "no inputs"},
		{"unknown_key", "actions:\n  jump:\n    keys: [Hyper]\n", `unknown key "Hyper"`},
		{"unknown_mouse", "actions:\n  fire:\n    mouse: [Back]\n", "unknown mouse button"},
		{"unknown_pad", "actions:\n  fire:\n    pad: [Z]\n", "unknown gamepad button"},
		{"slot_out_of_range", "actions:\n  fire:\n    pad: [A]\n    slot: 4\n", "slot 4"},
		{"bad_gate", "actions:\n  fire:\n    pad: [A]\n    when: \"key(\"\n", "when:"},
		{"gate_imports_os", "actions:\n  fire:\n    pad: [A]\n    when: 'import(\"os\").remove(\"x\") == undefined'\n", "when:"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseMap([]byte(c.doc))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("err = %v, want containing %q", err, c.want)
			}
		})
	}
}

func TestDefaultBindings(t *testing.T) {
	m, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	for _, name := range []string{"up", "down", "left", "right", "jump", "fire", "pause"} {
		if _, ok := m.Binding(name); !ok {
			t.Fatalf("default bindings missing %q", name)
		}
	}

	fromMissing, err := LoadMap(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil || len(fromMissing.Names()) != len(m.Names()) {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
}

func TestMapState(t *testing.T) {
	m, err := ParseMap([]byte(`
actions:
  jump:
    keys: [Space, W]
    pad: [A]
  fire:
    mouse: [Left]
    pad: [RightTrigger]
    slot: 1
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	q := &input.EventQueue{}
	c := input.NewCoordinator(q, input.Options{})

	q.Push(input.KeyEvent(input.StatePressed, input.KeySpace))
	s := c.Begin()
	if st, _ := m.State(s, "jump"); st != input.Pressed {
		t.Fatalf("frame 0 jump = %v", st)
	}
	c.End()

	q.Push(input.KeyEvent(input.StatePressed, input.KeyW))
	s = c.Begin()
	if st, _ := m.State(s, "jump"); st != input.Held {
		t.Fatalf("frame 1 jump = %v, want held (space held, w pressed)", st)
	}
	c.End()

	q.Push(input.KeyEvent(input.StateReleased, input.KeySpace))
	s = c.Begin()
	if st, _ := m.State(s, "jump"); st != input.Held {
		t.Fatalf("frame 2 jump = %v, want held (w still down)", st)
	}
	c.End()

	q.Push(input.KeyEvent(input.StateReleased, input.KeyW))
	s = c.Begin()
	if st, _ := m.State(s, "jump"); st != input.Released {
		t.Fatalf("frame 3 jump = %v, want released", st)
	}
	c.End()

	q.Push(input.GamepadConnectedEvent(0))
	q.Push(input.GamepadButtonEvent(0, input.StatePressed, input.GamepadRightTrigger))
	s = c.Begin()
	if st, _ := m.State(s, "fire"); st != input.NotPressed {
		t.Fatalf("fire bound to slot 1 reacted to slot 0: %v", st)
	}
	if _, err := m.State(s, "crouch"); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("unknown action err = %v", err)
	}
	states := map[string]input.ButtonState{}
	if err := m.Fill(s, states); err != nil || len(states) != 2 {
		t.Fatalf("fill = %v %v", states, err)
	}
	c.End()
}

func TestMapGate(t *testing.T) {
	m, err := ParseMap([]byte(`
actions:
  dash:
    keys: [ShiftLeft]
    when: is_down(key("D")) && frame >= 0
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	q := &input.EventQueue{}
	c := input.NewCoordinator(q, input.Options{})

	q.Push(input.KeyEvent(input.StatePressed, input.KeyShiftLeft))
	s := c.Begin()
	if m.Down(s, "dash") {
		t.Fatalf("dash should be gated without D")
	}
	c.End()

	q.Push(input.KeyEvent(input.StatePressed, input.KeyD))
	s = c.Begin()
	if st, err := m.State(s, "dash"); err != nil || st != input.Held {
		t.Fatalf("dash = %v %v, want held", st, err)
	}
	c.End()
}

func TestGateAllowsSafeModules(t *testing.T) {
	_, err := ParseMap([]byte(`
actions:
  dash:
    keys: [ShiftLeft]
    when: 'import("text").contains("dash", "a") && import("math").pi > 3'
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.yaml")
	if err := os.WriteFile(path, []byte("actions:\n  jump:\n    keys: [Space]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("actions:\n  jump:\n    keys: [Space]\n  fire:\n    mouse: [Left]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case m := <-w.Maps:
		if _, ok := m.Binding("fire"); !ok {
			t.Fatalf("reloaded map missing fire: %v", m.Names())
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
}

func TestWatcherKeepsLastEditOfBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.yaml")
	if err := os.WriteFile(path, []byte("actions:\n  jump:\n    keys: [Space]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("actions:\n  fire:\n    mouse: [Left]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(reloadDebounce / 2)
	if err := os.WriteFile(path, []byte("actions:\n  fire:\n    mouse: [Left]\n  dash:\n    keys: [ShiftLeft]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case m := <-w.Maps:
			if _, ok := m.Binding("dash"); ok {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watch error: %v", err)
		case <-deadline:
			t.Fatalf("second edit never reloaded")
		}
	}
}
