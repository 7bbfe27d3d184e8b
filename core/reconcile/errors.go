package reconcile

import (
	"errors"
	"fmt"

	"roll-checker/core/pattern"
)

var (
	// ErrInvalidRange is returned when the range start exceeds its end.
	ErrInvalidRange = errors.New("invalid identifier range")

	// ErrInvalidTemplate is returned when the identifier template cannot be compiled.
	ErrInvalidTemplate = pattern.ErrInvalidTemplate

	// ErrSnapshotUnavailable is matched by every snapshot acquisition failure.
	ErrSnapshotUnavailable = errors.New("snapshot unavailable")
)

// SnapshotError reports a failed snapshot acquisition. The cause message is kept verbatim.
type SnapshotError struct {
	Source string
	Err    error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("%s snapshot unavailable: %v", e.Source, e.Err)
}

func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrSnapshotUnavailable) true for any SnapshotError.
func (e *SnapshotError) Is(target error) bool {
	return target == ErrSnapshotUnavailable
}
