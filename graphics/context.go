package graphics

import "github.com/milk9111/quiver/gameerr"

// CreationReason is why the window or graphics context could not be created.
type CreationReason uint8

const (
	CreationOS CreationReason = iota
	CreationNotSupported
	CreationNoBackend
	CreationRobustnessNotSupported
	CreationVersionNotSupported
	CreationNoPixelFormat
	CreationPlatform
	CreationWindowOS
	CreationWindowNotSupported
)

const robustnessMessage = `graphics context: robustness not supported by the driver
This is a bug in the engine rather than in the game. Please report it with:
- the smallest program that reproduces it
- the message above
`

// CreationError is reported when the window or its graphics context cannot
// be created. Detail carries the platform's own wording where it has one.
type CreationError struct {
	Reason CreationReason
	Detail string
}

func (e *CreationError) Error() string {
	switch e.Reason {
	case CreationOS, CreationPlatform, CreationWindowOS:
		if e.Detail != "" {
			return e.Detail
		}
		return "graphics context: operating system error"
	case CreationNotSupported:
		if e.Detail != "" {
			return e.Detail
		}
		return "graphics context: not supported"
	case CreationNoBackend:
		if e.Detail != "" {
			return e.Detail
		}
		return "graphics context: no backend available"
	case CreationRobustnessNotSupported:
		return robustnessMessage
	case CreationVersionNotSupported:
		return "OpenGL version not supported"
	case CreationNoPixelFormat:
		return "No available pixel format"
	case CreationWindowNotSupported:
		return "Window creation failed: not supported"
	}
	return "graphics context: creation failed"
}

// ContextError is reported by an existing graphics context. Exactly one of
// IO, OS or Lost describes it.
type ContextError struct {
	IO   error
	OS   string
	Lost bool
}

func (e *ContextError) Error() string {
	switch {
	case e.IO != nil:
		return e.IO.Error()
	case e.OS != "":
		return e.OS
	case e.Lost:
		return "Context lost"
	}
	return "graphics context error"
}

func (e *ContextError) Unwrap() error {
	return e.IO
}

// unified maps an I/O failure onto the IO kind and everything else onto a
// context message, so callers see the same kind as a direct I/O error.
func (e *ContextError) unified() *gameerr.Error {
	if e.IO != nil {
		if ge, ok := gameerr.Convert(e.IO); ok && ge.Kind() == gameerr.KindIO {
			return ge
		}
		return gameerr.IO(e.IO)
	}
	return gameerr.Context(e.Error())
}
