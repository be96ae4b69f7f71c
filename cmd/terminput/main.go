package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/quiver/action"
	"github.com/milk9111/quiver/config"
	"github.com/milk9111/quiver/input"
	"github.com/milk9111/quiver/platform/termsrc"
)

func main() {
	configPath := flag.String("config", "quiver.yaml", "configuration file (missing file uses defaults)")
	bindings := flag.String("bindings", "", "action bindings file, overrides the config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *bindings != "" {
		cfg.Input.Bindings = *bindings
	}
	// The screen owns stderr while running, so logs only go to a file.
	logger := slog.New(slog.DiscardHandler)
	if cfg.Logging.File != "" {
		l, closer, err := config.NewLogger(cfg.Logging)
		if err != nil {
			log.Fatal(err)
		}
		defer closer.Close()
		logger = l
	}

	actions, err := action.LoadMap(cfg.Input.Bindings)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	src := termsrc.New(screen, logger)
	defer src.Close()

	coord := input.NewCoordinator(src, input.Options{Logger: logger})
	run(screen, src, coord, actions, logger)
}

func run(screen tcell.Screen, src *termsrc.Source, coord *input.Coordinator, actions *action.Map, log *slog.Logger) {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	states := make(map[string]input.ButtonState)
	var keys []input.Key
	for range ticker.C {
		quit := false
		_ = coord.Update(func(s *input.Snapshot) error {
			if err := actions.Fill(s, states); err != nil {
				log.Debug("terminput: action gate failed", "error", err)
			}
			keys = s.AppendKeys(keys[:0])
			draw(screen, s, keys, actions.Names(), states)
			quit = src.Interrupted() || s.Key(input.KeyEscape) == input.Pressed
			return nil
		})
		if quit {
			return
		}
	}
}

func draw(screen tcell.Screen, s *input.Snapshot, keys []input.Key, names []string, states map[string]input.ButtonState) {
	screen.Clear()
	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	plain := tcell.StyleDefault
	active := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	y := 0
	line := func(style tcell.Style, format string, args ...any) {
		for x, r := range []rune(fmt.Sprintf(format, args...)) {
			screen.SetContent(x, y, r, nil, style)
		}
		y++
	}

	line(title, "terminput  frame %d   (Esc or Ctrl-C quits)", s.Frame())
	p, w := s.Position(), s.Wheel()
	line(plain, "mouse %3.0f,%-3.0f wheel %+.0f,%+.0f  L %-11s R %-11s M %s", p.X, p.Y, w.X, w.Y,
		s.MouseButton(input.MouseButtonLeft), s.MouseButton(input.MouseButtonRight), s.MouseButton(input.MouseButtonMiddle))
	y++

	line(title, "keys")
	for _, k := range keys {
		line(active, "  %-12s %s", k, s.Key(k))
	}
	y++

	line(title, "actions")
	for _, name := range names {
		style := plain
		if states[name] != input.NotPressed {
			style = active
		}
		line(style, "  %-12s %s", name, states[name])
	}
	screen.Show()
}
