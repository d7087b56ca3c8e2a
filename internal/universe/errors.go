package universe

import (
	"errors"
	"fmt"
)

// Domain errors for universe operations.
var (
	// ErrInvalidMass indicates a zero, negative or non-finite mass.
	ErrInvalidMass = errors.New("universe: mass must be positive and finite")

	// ErrEmptyLabel indicates a body without a label.
	ErrEmptyLabel = errors.New("universe: body label is empty")

	// ErrDuplicateLabel indicates a label already registered in the universe.
	ErrDuplicateLabel = errors.New("universe: duplicate body label")

	// ErrUnknownBody indicates a label that is not registered.
	ErrUnknownBody = errors.New("universe: unknown body")

	// ErrOwnedBody indicates a body that already belongs to a universe.
	ErrOwnedBody = errors.New("universe: body already registered")

	// ErrInvalidFactor indicates a zero, negative or non-finite scale factor.
	ErrInvalidFactor = errors.New("universe: factor must be positive and finite")

	// ErrUnknownMode indicates an update mode name that is not recognised.
	ErrUnknownMode = errors.New("universe: unknown update mode")
)

// BodyError wraps an error with the label of the body it concerns.
type BodyError struct {
	Label   string
	Wrapped error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("%s: %q", e.Wrapped.Error(), e.Label)
}

func (e *BodyError) Unwrap() error {
	return e.Wrapped
}
