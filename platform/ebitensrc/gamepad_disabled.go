//go:build nogamepad

package ebitensrc

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/milk9111/quiver/input"
)

type padSlots struct{}

func (p *padSlots) poll(dst []input.Event, _ *slog.Logger) []input.Event {
	return dst
}

// LoadMappings is unavailable in builds without gamepad support.
func LoadMappings(_ fs.FS, name string) error {
	if name == "" {
		return nil
	}
	return errors.New("ebitensrc: gamepad support disabled")
}
