//go:build !nosound

package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/quiver/app"
	"github.com/milk9111/quiver/assets"
	"github.com/milk9111/quiver/gameerr"
)

type clicker struct {
	player *audio.Player
}

func newClicker(log *slog.Logger) clicker {
	data, err := assets.LoadFile(assets.Click)
	if err == nil {
		var p *audio.Player
		if p, err = app.NewPlayer(assets.Click, data); err == nil {
			p.SetVolume(0.4)
			return clicker{player: p}
		}
	}
	ge := gameerr.From(err)
	log.Warn("inputview: click sound unavailable", "kind", ge.Kind().String(), "error", ge.Description())
	return clicker{}
}

func (c clicker) play() {
	if c.player == nil {
		return
	}
	_ = c.player.Rewind()
	c.player.Play()
}
