package tracker

import (
	"errors"
	"fmt"
)

// ErrInvalidTarget matches any InvalidTargetError via errors.Is.
var ErrInvalidTarget = errors.New("invalid target")

var ErrEmptyName = errors.New("display name is required")

// InvalidTargetError means the caller referenced an id outside the catalog.
// It points at a catalog/state mismatch and is always returned to the caller.
type InvalidTargetError struct {
	ID string
}

func (e InvalidTargetError) Error() string {
	return fmt.Sprintf("unknown target %q", e.ID)
}

func (e InvalidTargetError) Is(target error) bool {
	return target == ErrInvalidTarget
}

// DecodeError describes a stored value that could not be parsed.
// The tracker logs it and falls back to defaults; it never reaches callers.
type DecodeError struct {
	Key string
	Err error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Key, e.Err)
}

func (e DecodeError) Unwrap() error { return e.Err }
