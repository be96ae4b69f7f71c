//go:build !nosave

package gameerr

// KindSave: serializing or deserializing saved data failed.
const KindSave Kind = 7

func init() {
	registerKind(KindSave, "save")
}

// Save wraps a persistence error.
func Save(err error) *Error { return wrap(KindSave, err) }
