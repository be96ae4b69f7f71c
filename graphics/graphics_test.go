package graphics

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/milk9111/quiver/gameerr"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	t.Run("valid_png", func(t *testing.T) {
		img, err := DecodeImage(bytes.NewReader(pngBytes(t, 4, 3)))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
			t.Fatalf("bounds = %v", img.Bounds())
		}
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := DecodeImage(strings.NewReader("definitely not an image"))
		var ie *ImageError
		if !errors.As(err, &ie) {
			t.Fatalf("expected *ImageError, got %T", err)
		}
		if ge := gameerr.From(err); ge.Kind() != gameerr.KindImage {
			t.Fatalf("kind = %v", ge.Kind())
		}
	})
}

func TestImageConversionIsPathIndependent(t *testing.T) {
	direct := gameerr.From(image.ErrFormat)
	twoStep := gameerr.From(NewImageError("", image.ErrFormat))
	if direct.Kind() != gameerr.KindImage || twoStep.Kind() != gameerr.KindImage {
		t.Fatalf("direct=%v twoStep=%v", direct.Kind(), twoStep.Kind())
	}
	if direct.Description() != twoStep.Description() {
		t.Fatalf("descriptions differ: %q vs %q", direct.Description(), twoStep.Description())
	}

	corrupt := gameerr.From(png.FormatError("not a PNG file"))
	if corrupt.Kind() != gameerr.KindImage {
		t.Fatalf("png format error kind = %v", corrupt.Kind())
	}
}

func TestNewImageErrorKeepsExisting(t *testing.T) {
	first := NewImageError("hero.png", image.ErrFormat)
	if again := NewImageError("hero.png", first); again != first {
		t.Fatalf("expected the same error back")
	}
	if first.Error() != "image hero.png: "+image.ErrFormat.Error() {
		t.Fatalf("message = %q", first.Error())
	}
}

func TestReadImage(t *testing.T) {
	fsys := fstest.MapFS{
		"sprites/hero.png": {Data: pngBytes(t, 8, 8)},
		"sprites/bad.png":  {Data: []byte("nope")},
	}

	if _, err := ReadImage(fsys, "sprites/hero.png"); err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, err := ReadImage(fsys, "/sprites/../sprites/hero.png"); err != nil {
		t.Fatalf("read with unclean path: %v", err)
	}

	_, err := ReadImage(fsys, "sprites/missing.png")
	if !errors.Is(err, fs.ErrNotExist) || gameerr.From(err).Kind() != gameerr.KindIO {
		t.Fatalf("missing file: %v", err)
	}

	_, err = ReadImage(fsys, "sprites/bad.png")
	if gameerr.From(err).Kind() != gameerr.KindImage {
		t.Fatalf("bad file: %v", err)
	}
}

func TestLoadAtlas(t *testing.T) {
	sheet := pngBytes(t, 64, 32)

	cases := []struct {
		name     string
		manifest string
		wantKind gameerr.Kind
		wantErr  error
	}{
		{
			name:     "valid",
			manifest: "image: sheet.png\nregions:\n  hero: {x: 0, y: 0, w: 32, h: 32}\n  coin: {x: 32, y: 0, w: 16, h: 16}\n",
		},
		{
			name:     "region_out_of_bounds",
			manifest: "image: sheet.png\nregions:\n  hero: {x: 48, y: 0, w: 32, h: 32}\n",
			wantKind: gameerr.KindAtlas,
			wantErr:  ErrRegionBounds,
		},
		{
			name:     "empty_region",
			manifest: "image: sheet.png\nregions:\n  hero: {x: 0, y: 0, w: 0, h: 32}\n",
			wantKind: gameerr.KindAtlas,
			wantErr:  ErrRegionEmpty,
		},
		{
			name:     "no_image",
			manifest: "regions: {}\n",
			wantKind: gameerr.KindAtlas,
			wantErr:  ErrNoAtlasImage,
		},
		{
			name:     "bad_yaml",
			manifest: "image: [unterminated\n",
			wantKind: gameerr.KindAtlas,
		},
		{
			name:     "missing_sheet",
			manifest: "image: other.png\n",
			wantKind: gameerr.KindIO,
			wantErr:  fs.ErrNotExist,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"atlas/sheet.png":  {Data: sheet},
				"atlas/atlas.yaml": {Data: []byte(c.manifest)},
			}
			a, err := LoadAtlas(fsys, "atlas/atlas.yaml")
			if c.wantKind == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got := a.Regions(); len(got) != 2 || got[0] != "coin" || got[1] != "hero" {
					t.Fatalf("regions = %v", got)
				}
				hero, err := a.Region("hero")
				if err != nil || hero.Bounds().Dx() != 32 {
					t.Fatalf("hero region: %v %v", hero, err)
				}
				if _, err := a.Region("ghost"); !errors.Is(err, ErrRegionUnknown) {
					t.Fatalf("unknown region err = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error")
			}
			ge := gameerr.From(err)
			if ge.Kind() != c.wantKind {
				t.Fatalf("kind = %v, want %v (%v)", ge.Kind(), c.wantKind, err)
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("err = %v, want %v", err, c.wantErr)
			}
			if ge.Cause() == nil || ge.Cause().Error() != err.Error() {
				t.Fatalf("cause does not describe the original error")
			}
		})
	}
}

func TestContextConversions(t *testing.T) {
	pathErr := &fs.PathError{Op: "read", Path: "/dev/dri/card0", Err: fs.ErrPermission}

	cases := []struct {
		name     string
		err      error
		wantKind gameerr.Kind
		wantDesc string
	}{
		{"creation_os", &CreationError{Reason: CreationOS, Detail: "X11 display not found"}, gameerr.KindContext, "X11 display not found"},
		{"creation_pixel_format", &CreationError{Reason: CreationNoPixelFormat}, gameerr.KindContext, "No available pixel format"},
		{"creation_version", &CreationError{Reason: CreationVersionNotSupported}, gameerr.KindContext, "OpenGL version not supported"},
		{"creation_window", &CreationError{Reason: CreationWindowNotSupported}, gameerr.KindContext, "Window creation failed: not supported"},
		{"creation_robustness", &CreationError{Reason: CreationRobustnessNotSupported}, gameerr.KindContext, robustnessMessage},
		{"context_lost", &ContextError{Lost: true}, gameerr.KindContext, "Context lost"},
		{"context_os", &ContextError{OS: "driver reset"}, gameerr.KindContext, "driver reset"},
		{"context_io", &ContextError{IO: pathErr}, gameerr.KindIO, pathErr.Error()},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ge := gameerr.From(c.err)
			if ge.Kind() != c.wantKind {
				t.Fatalf("kind = %v, want %v", ge.Kind(), c.wantKind)
			}
			if ge.Description() != c.wantDesc {
				t.Fatalf("description = %q, want %q", ge.Description(), c.wantDesc)
			}
		})
	}

	viaContext := gameerr.From(&ContextError{IO: pathErr})
	direct := gameerr.From(pathErr)
	if viaContext.Kind() != direct.Kind() || viaContext.Cause() != direct.Cause() {
		t.Fatalf("context I/O path differs from direct I/O path")
	}
	if gameerr.From(&ContextError{Lost: true}).Cause() != nil {
		t.Fatalf("context errors must be terminal")
	}
}
