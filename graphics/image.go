package graphics

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"path"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/milk9111/quiver/gameerr"
)

// ImageError reports an image that could not be decoded.
type ImageError struct {
	Path string
	Err  error
}

// NewImageError normalizes a decoder error. An error that already is an
// ImageError is returned unchanged.
func NewImageError(path string, err error) *ImageError {
	var ie *ImageError
	if errors.As(err, &ie) && ie.Path == path {
		return ie
	}
	return &ImageError{Path: path, Err: err}
}

func (e *ImageError) Error() string {
	msg := "image: decode failed"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Path == "" {
		return msg
	}
	return "image " + e.Path + ": " + msg
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// DecodeImage decodes PNG, JPEG, GIF, BMP or WebP data.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, NewImageError("", err)
	}
	return img, nil
}

// ReadImage reads and decodes path from fsys. Read failures are returned as
// they are; decode failures as *ImageError.
func ReadImage(fsys fs.FS, name string) (image.Image, error) {
	b, err := fs.ReadFile(fsys, cleanPath(name))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, NewImageError(name, err)
	}
	return img, nil
}

func cleanPath(p string) string {
	return strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(p, "\\", "/")), "/")
}

// isDecoderError recognizes the errors the registered decoders return when
// they reject their input.
func isDecoderError(err error) bool {
	if err == image.ErrFormat {
		return true
	}
	switch err.(type) {
	case png.FormatError, png.UnsupportedError, jpeg.FormatError, jpeg.UnsupportedError:
		return true
	}
	return false
}

func init() {
	gameerr.Register(func(err error) (*gameerr.Error, bool) {
		switch e := err.(type) {
		case *ImageError:
			return gameerr.Image(e), true
		case *AtlasError:
			return gameerr.Atlas(e), true
		case *CreationError:
			return gameerr.Context(e.Error()), true
		case *ContextError:
			return e.unified(), true
		}
		if isDecoderError(err) {
			return gameerr.Image(NewImageError("", err)), true
		}
		return nil, false
	})
}
