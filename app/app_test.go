package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/quiver/action"
	"github.com/milk9111/quiver/config"
	"github.com/milk9111/quiver/input"
)

type nopGame struct{}

func (nopGame) Update(*Frame) error { return nil }
func (nopGame) Draw(*ebiten.Image)  {}

func TestFrameAction(t *testing.T) {
	m, err := action.ParseMap([]byte("actions:\n  jump:\n    keys: [Space]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := &input.EventQueue{}
	c := input.NewCoordinator(q, input.Options{})
	q.Push(input.KeyEvent(input.StatePressed, input.KeySpace))

	f := &Frame{Snapshot: c.Begin(), Actions: m}
	if got := f.Action("jump"); got != input.Pressed {
		t.Fatalf("jump = %v", got)
	}
	if got := f.Action("missing"); got != input.NotPressed {
		t.Fatalf("unknown action = %v", got)
	}
	c.End()

	empty := &Frame{Snapshot: c.Begin()}
	if got := empty.Action("jump"); got != input.NotPressed {
		t.Fatalf("frame without actions = %v", got)
	}
	c.End()
}

func TestNewRejectsBrokenBindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	if err := os.WriteFile(path, []byte("actions:\n  jump:\n    keys: [Nope]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Input.Bindings = path

	_, err := New(cfg, nil, nopGame{})
	if err == nil || !strings.Contains(err.Error(), `unknown key "Nope"`) {
		t.Fatalf("err = %v", err)
	}
}

func TestNewUsesDefaults(t *testing.T) {
	a, err := New(nil, nil, nopGame{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer a.Close()
	if _, ok := a.Actions().Binding("jump"); !ok {
		t.Fatalf("default bindings not loaded")
	}
	if w, h := a.Layout(1, 1); w != 960 || h != 540 {
		t.Fatalf("layout = %dx%d", w, h)
	}
}
