package morph

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCommandKind is returned when an operation that only
	// handles lines and quadratic Béziers encounters another kind of command.
	ErrUnsupportedCommandKind = errors.New("unsupported command kind")

	// ErrInvariantViolation is returned when an internal consistency check
	// fails or when options contradict each other. It indicates a bug in the
	// caller or in this package and will recur on retry.
	ErrInvariantViolation = errors.New("invariant violation")
)

// UnsupportedCommandKindError describes a command that an operation could not
// handle. It matches [ErrUnsupportedCommandKind] via [errors.Is].
type UnsupportedCommandKindError struct {
	Op   string
	Kind CommandKind
}

func (err *UnsupportedCommandKindError) Error() string {
	return fmt.Sprintf("morph: %s: %s: %s", err.Op, ErrUnsupportedCommandKind, err.Kind)
}

func (err *UnsupportedCommandKindError) Is(target error) bool {
	return target == ErrUnsupportedCommandKind
}

// Invariantf returns an error wrapping [ErrInvariantViolation] with a
// formatted description.
func Invariantf(format string, args ...any) error {
	return fmt.Errorf("morph: %w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
