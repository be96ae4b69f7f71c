//go:build !nogamepad

package gameerr

// KindGamepad: the gamepad backend could not be initialized.
const KindGamepad Kind = 5

func init() {
	registerKind(KindGamepad, "gamepad")
}

// Gamepad wraps a gamepad backend error.
func Gamepad(err error) *Error { return wrap(KindGamepad, err) }
