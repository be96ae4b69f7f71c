//go:build nosave

package main

import (
	"log/slog"

	"github.com/milk9111/quiver/config"
)

type pressCounter struct {
	counts map[string]int
}

func loadPressCounter(config.SaveConfig, *slog.Logger) (*pressCounter, error) {
	return &pressCounter{counts: map[string]int{}}, nil
}

func (c *pressCounter) add(action string) {
	c.counts[action]++
}

func (c *pressCounter) store() {}
