// Package assets holds the files embedded in the input viewer.
package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/milk9111/quiver/graphics"
)

//go:embed *.png *.yaml *.wav
var assetsFS embed.FS

const (
	UIAtlas = "ui.yaml"
	Click   = "click.wav"
)

func FS() fs.FS {
	return assetsFS
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// LoadUIAtlas decodes the viewer's icon sheet.
func LoadUIAtlas() (*graphics.Atlas, error) {
	return graphics.LoadAtlas(assetsFS, UIAtlas)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
