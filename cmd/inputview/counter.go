//go:build !nosave

package main

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/milk9111/quiver/config"
	"github.com/milk9111/quiver/save"
)

const counterProfile = "inputview"

// pressCounter keeps per-action press totals across sessions.
type pressCounter struct {
	log    *slog.Logger
	st     *save.Store
	counts map[string]int
}

type counterFile struct {
	Presses map[string]int `yaml:"presses"`
}

func loadPressCounter(cfg config.SaveConfig, log *slog.Logger) (*pressCounter, error) {
	st, err := save.NewStore(cfg.App, cfg.Dir)
	if err != nil {
		return nil, err
	}
	c := &pressCounter{log: log, st: st, counts: map[string]int{}}

	var f counterFile
	err = st.Load(counterProfile, &f)
	switch {
	case err == nil:
		if f.Presses != nil {
			c.counts = f.Presses
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		// A corrupt file starts the count over rather than blocking the viewer.
		log.Warn("inputview: press counts not loaded", "path", st.Path(counterProfile), "error", err)
	}
	return c, nil
}

func (c *pressCounter) add(action string) {
	c.counts[action]++
}

func (c *pressCounter) store() {
	if err := c.st.Save(counterProfile, counterFile{Presses: c.counts}); err != nil {
		c.log.Warn("inputview: press counts not saved", "error", err)
	}
}
