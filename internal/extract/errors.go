package extract

import (
	"errors"
	"fmt"
)

// ErrorKind classifies structural extraction failures that abort a run.
type ErrorKind int

const (
	ErrUnspecified ErrorKind = iota
	ErrNoSourcesFound
	ErrPermissionDenied
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNoSourcesFound:
		return "no sources found"
	case ErrPermissionDenied:
		return "permission denied"
	default:
		return "extraction error"
	}
}

// Error aborts an extraction run. Per-file problems are reported as
// Diagnostics on the Output instead; only conditions that make the whole
// run meaningless (nothing to extract, unreadable source tree, a failed
// tool invocation) surface as *Error.
type Error struct {
	Kind ErrorKind
	File string // offending path, if any
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.File != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.File)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the extraction error kind carried by err, or ErrUnspecified
// with ok=false when err is not an extraction error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return ErrUnspecified, false
}
