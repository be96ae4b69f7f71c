//go:build !nosound

// Package sound decodes audio assets into streams an ebiten audio context
// can play.
package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/milk9111/quiver/gameerr"
)

// Format is a supported container format.
type Format string

const (
	FormatWAV    Format = "wav"
	FormatVorbis Format = "ogg"
	FormatMP3    Format = "mp3"
)

var ErrUnknownFormat = errors.New("sound: unknown format")

// Error reports a sound that could not be decoded or played.
type Error struct {
	Name   string
	Format Format
	Err    error
}

// NewError normalizes a decoder error into a sound error.
func NewError(name string, format Format, err error) *Error {
	var se *Error
	if errors.As(err, &se) {
		return se
	}
	return &Error{Name: name, Format: format, Err: err}
}

func (e *Error) Error() string {
	msg := "sound: decode failed"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Name == "" {
		return msg
	}
	return fmt.Sprintf("sound %s: %s", e.Name, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func init() {
	gameerr.Register(func(err error) (*gameerr.Error, bool) {
		if se, ok := err.(*Error); ok {
			return gameerr.Sound(se), true
		}
		return nil, false
	})
}

// Stream is decoded PCM in the audio context's native format.
type Stream interface {
	io.ReadSeeker
	Length() int64
}

// Sound is a decoded asset.
type Sound struct {
	Name   string
	Format Format
	Stream Stream
}

// DetectFormat guesses the format from the file extension, falling back to
// the leading magic bytes.
func DetectFormat(name string, head []byte) (Format, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".wav", ".wave":
		return FormatWAV, true
	case ".ogg", ".oga":
		return FormatVorbis, true
	case ".mp3":
		return FormatMP3, true
	}
	switch {
	case bytes.HasPrefix(head, []byte("RIFF")):
		return FormatWAV, true
	case bytes.HasPrefix(head, []byte("OggS")):
		return FormatVorbis, true
	case bytes.HasPrefix(head, []byte("ID3")), len(head) > 1 && head[0] == 0xFF && head[1]&0xE0 == 0xE0:
		return FormatMP3, true
	}
	return "", false
}

// Decode decodes data into a stream resampled to sampleRate.
func Decode(name string, data []byte, sampleRate int) (*Sound, error) {
	head := data
	if len(head) > 4 {
		head = head[:4]
	}
	format, ok := DetectFormat(name, head)
	if !ok {
		return nil, &Error{Name: name, Err: ErrUnknownFormat}
	}

	var (
		stream Stream
		err    error
	)
	r := bytes.NewReader(data)
	switch format {
	case FormatWAV:
		stream, err = decodeWAV(sampleRate, r)
	case FormatVorbis:
		stream, err = decodeVorbis(sampleRate, r)
	case FormatMP3:
		stream, err = decodeMP3(sampleRate, r)
	}
	if err != nil {
		return nil, NewError(name, format, err)
	}
	return &Sound{Name: name, Format: format, Stream: stream}, nil
}

func decodeWAV(sampleRate int, r io.Reader) (Stream, error) {
	s, err := wav.DecodeWithSampleRate(sampleRate, r)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func decodeVorbis(sampleRate int, r io.Reader) (Stream, error) {
	s, err := vorbis.DecodeWithSampleRate(sampleRate, r)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func decodeMP3(sampleRate int, r io.Reader) (Stream, error) {
	s, err := mp3.DecodeWithSampleRate(sampleRate, r)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewPlayer decodes data and creates a player on ctx.
func NewPlayer(ctx *audio.Context, name string, data []byte) (*audio.Player, error) {
	snd, err := Decode(name, data, ctx.SampleRate())
	if err != nil {
		return nil, err
	}
	p, err := ctx.NewPlayer(snd.Stream)
	if err != nil {
		return nil, NewError(name, snd.Format, err)
	}
	return p, nil
}
