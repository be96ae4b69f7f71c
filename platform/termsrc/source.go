// Package termsrc reads keyboard and mouse input from a terminal through
// tcell.
package termsrc

import (
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/quiver/input"
)

// Source pumps a tcell screen's events into batches for the coordinator.
// The screen must already be initialized.
type Source struct {
	screen tcell.Screen
	log    *slog.Logger
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once
	tr     *Translator
	pend   []tcell.Event
}

func New(screen tcell.Screen, log *slog.Logger) *Source {
	if log == nil {
		log = slog.Default()
	}
	screen.EnableMouse()
	s := &Source{
		screen: screen,
		log:    log,
		events: make(chan tcell.Event, 100),
		quit:   make(chan struct{}),
		tr:     NewTranslator(),
	}
	go s.pump()
	return s
}

func (s *Source) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Poll drains every event received since the last call.
func (s *Source) Poll(dst []input.Event) []input.Event {
	s.pend = s.pend[:0]
	for {
		select {
		case ev := <-s.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				s.screen.Sync()
				continue
			}
			s.pend = append(s.pend, ev)
		default:
			return s.tr.Batch(dst, s.pend)
		}
	}
}

// Interrupted reports whether Ctrl-C was pressed.
func (s *Source) Interrupted() bool {
	return s.tr.Interrupted
}

// Close stops the pump. The caller still owns the screen and must Fini it,
// which also unblocks the pump's pending PollEvent.
func (s *Source) Close() {
	s.once.Do(func() {
		close(s.quit)
		s.log.Debug("termsrc: closed")
	})
}
