//go:build !nosound

package sound

import (
	"errors"
	"testing"

	"github.com/milk9111/quiver/gameerr"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name   string
		file   string
		head   []byte
		want   Format
		wantOK bool
	}{
		{"wav_ext", "jump.WAV", nil, FormatWAV, true},
		{"ogg_ext", "music/theme.ogg", nil, FormatVorbis, true},
		{"mp3_ext", "hit.mp3", nil, FormatMP3, true},
		{"riff_magic", "blob", []byte("RIFF"), FormatWAV, true},
		{"ogg_magic", "blob", []byte("OggS"), FormatVorbis, true},
		{"id3_magic", "blob", []byte("ID3\x04"), FormatMP3, true},
		{"frame_sync", "blob", []byte{0xFF, 0xFB, 0x90, 0x00}, FormatMP3, true},
		{"unknown", "notes.txt", []byte("hell"), "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := DetectFormat(c.file, c.head)
			if got != c.want || ok != c.wantOK {
				t.Fatalf("DetectFormat(%q) = %q, %v", c.file, got, ok)
			}
		})
	}
}

func TestDecodeErrorsAreSoundErrors(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		data    []byte
		wantErr error
	}{
		{"unknown_format", "readme.txt", []byte("hello"), ErrUnknownFormat},
		{"truncated_wav", "bad.wav", []byte("RIFFjunk"), nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode(c.file, c.data, 44100)
			if err == nil {
				t.Fatalf("expected error")
			}
			var se *Error
			if !errors.As(err, &se) || se.Name != c.file {
				t.Fatalf("expected *Error for %s, got %T %v", c.file, err, err)
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("err = %v, want %v", err, c.wantErr)
			}
			ge := gameerr.From(err)
			if ge.Kind() != gameerr.KindSound {
				t.Fatalf("kind = %v", ge.Kind())
			}
			if ge.Cause().Error() != err.Error() {
				t.Fatalf("cause %q does not match %q", ge.Cause().Error(), err.Error())
			}
		})
	}
}

func TestNewErrorTwoStep(t *testing.T) {
	raw := errors.New("vorbis: invalid header")
	once := NewError("theme.ogg", FormatVorbis, raw)
	if again := NewError("theme.ogg", FormatVorbis, once); again != once {
		t.Fatalf("NewError re-wrapped an existing sound error")
	}
	if gameerr.From(once).Kind() != gameerr.KindSound {
		t.Fatalf("two-step conversion lost the sound kind")
	}
	if once.Error() != "sound theme.ogg: vorbis: invalid header" {
		t.Fatalf("message = %q", once.Error())
	}
}
