package gameerr

import (
	"io"
	"io/fs"
	"os"
	"sync"
	"syscall"
)

// Converter recognizes one subsystem's native error. It inspects only the
// error it is given, not its chain, and reports false for anything else.
type Converter func(err error) (*Error, bool)

var (
	convertersMu sync.RWMutex
	converters   []Converter
)

// Register adds a converter. Subsystems call it from init so that only the
// subsystems linked into the binary take part in conversion.
func Register(c Converter) {
	if c == nil {
		return
	}
	convertersMu.Lock()
	defer convertersMu.Unlock()
	converters = append(converters, c)
}

func init() {
	Register(convertIO)
}

// Convert maps err onto a unified Error. It walks err's wrap tree from the
// outside in, visiting every branch of a joined error before moving on; the
// first link a converter recognizes decides the kind. When
// that link is not err itself, the resulting Error still wraps err, so
// context added by wrappers survives.
func Convert(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	convertersMu.RLock()
	convs := converters
	convertersMu.RUnlock()

	ge, depth := find(err, convs, 0)
	switch {
	case ge == nil:
		return nil, false
	case depth == 0:
		return ge, true
	}
	return rewrap(ge, err), true
}

// find walks err's tree depth-first, following every branch of a joined
// error in order, and returns the first recognized link with its depth.
func find(err error, convs []Converter, depth int) (*Error, int) {
	if ge, ok := err.(*Error); ok {
		return ge, depth
	}
	for _, conv := range convs {
		if ge, ok := conv(err); ok && ge != nil {
			return ge, depth
		}
	}
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		if next := u.Unwrap(); next != nil {
			return find(next, convs, depth+1)
		}
	case interface{ Unwrap() []error }:
		for _, next := range u.Unwrap() {
			if next == nil {
				continue
			}
			if ge, d := find(next, convs, depth+1); ge != nil {
				return ge, d
			}
		}
	}
	return nil, 0
}

// From converts err, falling back to a context error carrying err's text
// when no subsystem recognizes it. From(nil) is nil.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if ge, ok := Convert(err); ok {
		return ge
	}
	return Context(err.Error())
}

func rewrap(ge *Error, outer error) *Error {
	if ge.kind == KindContext {
		return ge
	}
	return wrap(ge.kind, outer)
}

var ioSentinels = []error{
	io.ErrUnexpectedEOF,
	io.ErrShortWrite,
	io.ErrShortBuffer,
	io.ErrClosedPipe,
	fs.ErrNotExist,
	fs.ErrExist,
	fs.ErrPermission,
	fs.ErrClosed,
	fs.ErrInvalid,
}

func convertIO(err error) (*Error, bool) {
	switch err.(type) {
	case *fs.PathError, *os.LinkError, *os.SyscallError, syscall.Errno:
		return IO(err), true
	}
	for _, s := range ioSentinels {
		if err == s {
			return IO(err), true
		}
	}
	return nil, false
}
