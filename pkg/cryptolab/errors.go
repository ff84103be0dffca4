package cryptolab

import (
	"errors"
	"fmt"
)

// Common errors returned by the library
var (
	// ErrInvalidCharacter reports a symbol outside the declared alphabet
	// during encoding.
	ErrInvalidCharacter = errors.New("character outside alphabet")

	// ErrInvalidEncoding reports a numeric encoding that no message can
	// produce (negative, or malformed for the codec).
	ErrInvalidEncoding = errors.New("invalid numeric encoding")

	// ErrDivisionUndefined reports a modular inverse of a non-invertible
	// element, surfaced from the underlying big-integer arithmetic.
	ErrDivisionUndefined = errors.New("modular inverse undefined")
)

// InputError describes a rejected argument. It names the operation and the
// reason, and wraps one of the sentinel errors above when the failure falls
// into the taxonomy.
type InputError struct {
	Op     string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new InputError.
func NewInputError(op, reason string, err error) *InputError {
	return &InputError{
		Op:     op,
		Reason: reason,
		Err:    err,
	}
}
