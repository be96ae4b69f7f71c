// Package app runs a game on ebiten with the input coordinator driving
// each tick.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/quiver/action"
	"github.com/milk9111/quiver/config"
	"github.com/milk9111/quiver/gameerr"
	"github.com/milk9111/quiver/graphics"
	"github.com/milk9111/quiver/input"
	"github.com/milk9111/quiver/platform/ebitensrc"
)

// Game is the application driven by App. Update sees one frame of input;
// the frame is collapsed when it returns.
type Game interface {
	Update(f *Frame) error
	Draw(screen *ebiten.Image)
}

// Frame is the input available to one Game.Update call.
type Frame struct {
	*input.Snapshot
	Actions *action.Map
}

// Action is the combined state of a named action. Unknown actions read as
// NotPressed.
func (f *Frame) Action(name string) input.ButtonState {
	if f.Actions == nil {
		return input.NotPressed
	}
	st, _ := f.Actions.State(f.Snapshot, name)
	return st
}

type App struct {
	cfg     *config.Config
	log     *slog.Logger
	game    Game
	src     *ebitensrc.Source
	coord   *input.Coordinator
	actions *action.Map
	watcher *action.Watcher
	frame   Frame
	started bool
}

func New(cfg *config.Config, log *slog.Logger, game Game) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = slog.Default()
	}

	actions, err := action.LoadMap(cfg.Input.Bindings)
	if err != nil {
		return nil, err
	}

	src := ebitensrc.New(log)
	a := &App{
		cfg:     cfg,
		log:     log,
		game:    game,
		src:     src,
		actions: actions,
		coord: input.NewCoordinator(src, input.Options{
			Deadzone: cfg.Input.Deadzone,
			Logger:   log,
		}),
	}

	if cfg.Input.Gamepads != "" {
		dir, name := filepath.Split(cfg.Input.Gamepads)
		if dir == "" {
			dir = "."
		}
		if err := ebitensrc.LoadMappings(os.DirFS(dir), name); err != nil {
			ge := gameerr.From(err)
			log.Warn("app: gamepad mappings not loaded", "kind", ge.Kind().String(), "error", ge.Description())
		}
	}

	if cfg.Input.Watch && cfg.Input.Bindings != "" {
		w, err := action.NewWatcher(cfg.Input.Bindings, log)
		if err != nil {
			log.Warn("app: bindings watch disabled", "path", cfg.Input.Bindings, "error", err)
		} else {
			a.watcher = w
		}
	}
	return a, nil
}

func (a *App) Coordinator() *input.Coordinator {
	return a.coord
}

func (a *App) Actions() *action.Map {
	return a.actions
}

func (a *App) Update() error {
	a.started = true
	if a.watcher != nil {
		if m, ok := a.watcher.Poll(); ok {
			a.actions = m
		}
	}
	err := a.coord.Update(func(s *input.Snapshot) error {
		a.frame = Frame{Snapshot: s, Actions: a.actions}
		return a.game.Update(&a.frame)
	})
	a.frame = Frame{}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return gameerr.From(err)
	}
	return err
}

func (a *App) Draw(screen *ebiten.Image) {
	a.game.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Run opens the window and blocks until the game ends. A nil error means
// the game asked to stop or the window was closed.
func (a *App) Run() error {
	defer a.Close()

	ebiten.SetWindowTitle(a.cfg.Window.Title)
	ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
	if a.cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	err := ebiten.RunGame(a)
	switch {
	case err == nil, errors.Is(err, ebiten.Termination):
		return nil
	case !a.started:
		// Nothing ran, so the window or its context never came up.
		return gameerr.From(&graphics.CreationError{Reason: graphics.CreationPlatform, Detail: err.Error()})
	}
	return gameerr.From(err)
}

func (a *App) Close() error {
	if a.watcher == nil {
		return nil
	}
	if err := a.watcher.Close(); err != nil {
		return fmt.Errorf("app: close watcher: %w", err)
	}
	a.watcher = nil
	return nil
}
