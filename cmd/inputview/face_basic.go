//go:build nofont

package main

import (
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

func uiFace() (ebtext.Face, error) {
	return ebtext.NewGoXFace(basicfont.Face7x13), nil
}
