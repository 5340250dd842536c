package model

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory indicates that the host's allocator failed a non-zero
// request. It is never retried; the caller reports the failure upward.
var ErrOutOfMemory = errors.New("host allocator is out of memory")

// A FatalError signals an error that invalidates not only the current model
// instance, but every other instance created from the same model definition.
// It must propagate past all local recovery, up to the boundary layer that
// reports status to the host.
type FatalError struct {
	msg string
}

// NewFatalError creates a FatalError with the given message.
func NewFatalError(msg string) *FatalError {
	return &FatalError{msg: msg}
}

// Fatalf creates a FatalError with a formatted message.
func Fatalf(format string, args ...any) *FatalError {
	return &FatalError{msg: fmt.Sprintf(format, args...)}
}

func (e *FatalError) Error() string {
	return e.msg
}

// IsFatal reports whether err, or any error it wraps, invalidates the whole
// model definition rather than a single call.
func IsFatal(err error) bool {
	var fatalErr *FatalError
	return errors.As(err, &fatalErr)
}
