//go:build !nofont

package gameerr

// KindFont: a font file could not be loaded.
const KindFont Kind = 8

func init() {
	registerKind(KindFont, "font")
}

// Font wraps a font loading error.
func Font(err error) *Error { return wrap(KindFont, err) }
