//go:build !nosound

package app

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/quiver/sound"
)

const sampleRate = 44100

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

// AudioContext returns the process-wide audio context. Ebiten allows only
// one.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// NewPlayer decodes data and prepares it for playback.
func NewPlayer(name string, data []byte) (*audio.Player, error) {
	return sound.NewPlayer(AudioContext(), name, data)
}
