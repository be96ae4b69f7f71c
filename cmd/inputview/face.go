//go:build !nofont

package main

import (
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/quiver/app"
	"github.com/milk9111/quiver/font"
)

func uiFace() (ebtext.Face, error) {
	return app.NewFace(font.Default(), 14)
}
