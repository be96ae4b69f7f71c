//go:build !nofont

// Package font loads TrueType and OpenType fonts.
package font

import (
	"fmt"
	"io/fs"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/milk9111/quiver/gameerr"
)

// Error reports a font that could not be parsed or rasterized.
type Error struct {
	Name string
	Err  error
}

func (e *Error) Error() string {
	msg := "font: invalid"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Name == "" {
		return msg
	}
	return fmt.Sprintf("font %s: %s", e.Name, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func init() {
	gameerr.Register(func(err error) (*gameerr.Error, bool) {
		switch err {
		case sfnt.ErrNotFound, sfnt.ErrColoredGlyph:
			return gameerr.Font(&Error{Err: err}), true
		}
		if fe, ok := err.(*Error); ok {
			return gameerr.Font(fe), true
		}
		return nil, false
	})
}

// Font is a parsed font file. Data keeps the original bytes for renderers
// that parse fonts themselves.
type Font struct {
	name string
	data []byte
	otf  *opentype.Font
}

// Load parses TTF or OTF data.
func Load(name string, data []byte) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, &Error{Name: name, Err: err}
	}
	return &Font{name: name, data: data, otf: otf}, nil
}

// LoadFS reads and parses name from fsys.
func LoadFS(fsys fs.FS, name string) (*Font, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return Load(name, data)
}

var (
	defaultOnce sync.Once
	defaultFont *Font
)

// Default returns Go Regular.
func Default() *Font {
	defaultOnce.Do(func() {
		f, err := Load("goregular", goregular.TTF)
		if err != nil {
			panic("font: embedded goregular failed to parse: " + err.Error())
		}
		defaultFont = f
	})
	return defaultFont
}

func (f *Font) Name() string {
	return f.name
}

func (f *Font) Data() []byte {
	return f.data
}

// Family reads the family name from the font's name table.
func (f *Font) Family() string {
	var buf sfnt.Buffer
	family, err := f.otf.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return family
}

// Face rasterizes the font at size points.
func (f *Font) Face(size, dpi float64) (xfont.Face, error) {
	if dpi <= 0 {
		dpi = 72
	}
	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, &Error{Name: f.name, Err: err}
	}
	return face, nil
}
