//go:build !nogamepad && !nosound && !nosave && !nofont

package gameerr

import (
	"errors"
	"testing"
)

func TestOptionalKinds(t *testing.T) {
	cause := errors.New("subsystem failure")
	cases := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"gamepad", Gamepad(cause), KindGamepad},
		{"sound", Sound(cause), KindSound},
		{"save", Save(cause), KindSave},
		{"font", Font(cause), KindFont},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !Enabled(c.kind) {
				t.Fatalf("%s not enabled", c.name)
			}
			if c.kind.String() != c.name {
				t.Fatalf("name = %q", c.kind.String())
			}
			if c.err.Kind() != c.kind || c.err.Cause() != cause || c.err.Description() != cause.Error() {
				t.Fatalf("unexpected error %+v", c.err)
			}
		})
	}
	if n := len(Kinds()); n != 8 {
		t.Fatalf("expected 8 kinds, got %d", n)
	}
}
