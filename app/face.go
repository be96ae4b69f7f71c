//go:build !nofont

package app

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/quiver/font"
)

// NewFace builds a text/v2 face at size pixels.
func NewFace(f *font.Font, size float64) (text.Face, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(f.Data()))
	if err != nil {
		return nil, &font.Error{Name: f.Name(), Err: err}
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}
