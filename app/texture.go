package app

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/quiver/graphics"
)

// LoadTexture decodes an image from fsys and uploads it to the GPU.
func LoadTexture(fsys fs.FS, name string) (*ebiten.Image, error) {
	img, err := graphics.ReadImage(fsys, name)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// AtlasTextures uploads every region of an atlas as its own texture.
func AtlasTextures(a *graphics.Atlas) (map[string]*ebiten.Image, error) {
	out := make(map[string]*ebiten.Image, len(a.Regions()))
	for _, name := range a.Regions() {
		img, err := a.Region(name)
		if err != nil {
			return nil, err
		}
		out[name] = ebiten.NewImageFromImage(img)
	}
	return out, nil
}
