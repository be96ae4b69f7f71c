package graphics

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoAtlasImage  = errors.New("atlas: manifest names no image")
	ErrRegionBounds  = errors.New("atlas: region outside image bounds")
	ErrRegionEmpty   = errors.New("atlas: region has no area")
	ErrRegionUnknown = errors.New("atlas: no such region")
)

// AtlasError reports a texture atlas that could not be used.
type AtlasError struct {
	Atlas  string
	Region string
	Err    error
}

func (e *AtlasError) Error() string {
	msg := "atlas: invalid"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Atlas != "" && e.Region != "":
		return fmt.Sprintf("%s [%s]: %s", e.Atlas, e.Region, msg)
	case e.Atlas != "":
		return e.Atlas + ": " + msg
	}
	return msg
}

func (e *AtlasError) Unwrap() error {
	return e.Err
}

// RegionSpec is one named rectangle in an atlas manifest.
type RegionSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// AtlasSpec is the YAML manifest describing an atlas.
type AtlasSpec struct {
	Image   string                `yaml:"image"`
	Regions map[string]RegionSpec `yaml:"regions"`
}

// Atlas is a decoded sheet plus its named regions.
type Atlas struct {
	Name    string
	Sheet   image.Image
	regions map[string]image.Rectangle
}

// ParseAtlasSpec decodes a manifest.
func ParseAtlasSpec(name string, data []byte) (*AtlasSpec, error) {
	var spec AtlasSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, &AtlasError{Atlas: name, Err: err}
	}
	if spec.Image == "" {
		return nil, &AtlasError{Atlas: name, Err: ErrNoAtlasImage}
	}
	return &spec, nil
}

// LoadAtlas reads the manifest at name and the sheet it references, which
// is resolved relative to the manifest.
func LoadAtlas(fsys fs.FS, name string) (*Atlas, error) {
	data, err := fs.ReadFile(fsys, cleanPath(name))
	if err != nil {
		return nil, err
	}
	spec, err := ParseAtlasSpec(name, data)
	if err != nil {
		return nil, err
	}
	sheet, err := ReadImage(fsys, path.Join(path.Dir(cleanPath(name)), spec.Image))
	if err != nil {
		return nil, err
	}
	return NewAtlas(name, sheet, spec)
}

// NewAtlas validates every region of spec against sheet.
func NewAtlas(name string, sheet image.Image, spec *AtlasSpec) (*Atlas, error) {
	a := &Atlas{
		Name:    name,
		Sheet:   sheet,
		regions: make(map[string]image.Rectangle, len(spec.Regions)),
	}
	bounds := sheet.Bounds()
	for _, regionName := range sortedRegionNames(spec.Regions) {
		r := spec.Regions[regionName]
		rect := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H).Add(bounds.Min)
		if r.W <= 0 || r.H <= 0 {
			return nil, &AtlasError{Atlas: name, Region: regionName, Err: ErrRegionEmpty}
		}
		if !rect.In(bounds) {
			return nil, &AtlasError{Atlas: name, Region: regionName, Err: ErrRegionBounds}
		}
		a.regions[regionName] = rect
	}
	return a, nil
}

func sortedRegionNames(m map[string]RegionSpec) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Region returns the named sub-image.
func (a *Atlas) Region(name string) (image.Image, error) {
	rect, ok := a.regions[name]
	if !ok {
		return nil, &AtlasError{Atlas: a.Name, Region: name, Err: ErrRegionUnknown}
	}
	if si, ok := a.Sheet.(subImager); ok {
		return si.SubImage(rect), nil
	}
	return nil, &AtlasError{Atlas: a.Name, Region: name, Err: fmt.Errorf("atlas: sheet type %T cannot be sliced", a.Sheet)}
}

// Regions lists region names in sorted order.
func (a *Atlas) Regions() []string {
	names := make([]string, 0, len(a.regions))
	for n := range a.regions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
