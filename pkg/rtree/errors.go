package rtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOrder is returned by New when order is below the minimum
	// branching factor of 3.
	ErrInvalidOrder = errors.New("rtree: order must be at least 3")

	// ErrNilValue is returned by Add when the supplied value is nil (only
	// meaningful when V is a pointer or interface-shaped type).
	ErrNilValue = errors.New("rtree: value must not be nil")

	// ErrCorrupted is the sentinel wrapped by InternalInconsistencyError.
	ErrCorrupted = errors.New("rtree: internal inconsistency detected")
)

// InternalInconsistencyError reports a violated internal invariant:
// deleteByIdentity failing to find the value it was told to remove, or
// Validate finding a stale IndexRef. These indicate a bug in the engine
// itself, never a caller mistake, so they are reported as a distinct
// error rather than a panic.
type InternalInconsistencyError struct {
	Reason string
}

func (e *InternalInconsistencyError) Error() string {
	return fmt.Sprintf("rtree: %s", e.Reason)
}

func (e *InternalInconsistencyError) Unwrap() error {
	return ErrCorrupted
}

func newInconsistency(reason string) error {
	return &InternalInconsistencyError{Reason: reason}
}
