//go:build !nosound

package gameerr

// KindSound: a sound asset could not be decoded.
const KindSound Kind = 6

func init() {
	registerKind(KindSound, "sound")
}

// Sound wraps a sound subsystem error.
func Sound(err error) *Error { return wrap(KindSound, err) }
