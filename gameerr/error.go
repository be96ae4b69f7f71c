// Package gameerr is the single error type every fallible engine subsystem
// reports through. An Error carries exactly one Kind; the set of kinds is
// fixed when the binary is built; subsystems that are compiled out (build
// tags nogamepad, nosound, nosave, nofont) take their kind with them.
package gameerr

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Kind identifies the subsystem an Error originated in.
type Kind uint8

const (
	// KindAtlas: a texture atlas manifest was invalid.
	KindAtlas Kind = iota + 1
	// KindContext: creating or using the graphics context failed. Context
	// errors carry only a message and have no cause.
	KindContext
	// KindImage: an image could not be decoded or uploaded.
	KindImage
	// KindIO: a file or stream operation failed.
	KindIO
)

var (
	kindsMu   sync.RWMutex
	kindNames = map[Kind]string{
		KindAtlas:   "atlas",
		KindContext: "context",
		KindImage:   "image",
		KindIO:      "io",
	}
)

func registerKind(k Kind, name string) {
	kindsMu.Lock()
	defer kindsMu.Unlock()
	kindNames[k] = name
}

func (k Kind) String() string {
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Enabled reports whether k belongs to a subsystem compiled into this build.
func Enabled(k Kind) bool {
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	_, ok := kindNames[k]
	return ok
}

// Kinds returns every kind available in this build, in ascending order.
func Kinds() []Kind {
	kindsMu.RLock()
	out := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		out = append(out, k)
	}
	kindsMu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Error is the unified engine error. It is never mutated after creation.
type Error struct {
	kind Kind
	msg  string
	err  error
}

func wrap(kind Kind, err error) *Error {
	return &Error{kind: kind, err: err}
}

// Atlas wraps an atlas error.
func Atlas(err error) *Error { return wrap(KindAtlas, err) }

// Image wraps an image loading error.
func Image(err error) *Error { return wrap(KindImage, err) }

// IO wraps a file or stream error.
func IO(err error) *Error { return wrap(KindIO, err) }

// Context reports a graphics context failure described only by msg.
func Context(msg string) *Error {
	return &Error{kind: KindContext, msg: msg}
}

func (e *Error) Kind() Kind {
	return e.kind
}

// Description is a human readable account of the failure. It is never
// empty.
func (e *Error) Description() string {
	if e.kind == KindContext {
		if e.msg != "" {
			return e.msg
		}
		return "graphics context error"
	}
	if e.err != nil {
		if s := e.err.Error(); s != "" {
			return s
		}
	}
	return e.kind.String() + " error"
}

func (e *Error) Error() string {
	return e.Description()
}

// Cause returns the wrapped error, or nil for context errors.
func (e *Error) Cause() error {
	if e.kind == KindContext {
		return nil
	}
	return e.err
}

func (e *Error) Unwrap() error {
	return e.Cause()
}

// IsKind reports whether any Error in err's chain has kind k.
func IsKind(err error, k Kind) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.kind == k
}

// Root walks the cause chain to the innermost error.
func Root(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}
