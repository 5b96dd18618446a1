package microqr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every *InvalidInputError.
	ErrInvalidInput = errors.New("microqr: invalid input")

	// ErrCapacityExceeded matches every *CapacityExceededError.
	ErrCapacityExceeded = errors.New("microqr: capacity exceeded")
)

// InvalidInputError reports data the numeric encoder cannot accept.
// Position is the byte offset of the offending character, or -1 when the
// problem is with the input as a whole.
type InvalidInputError struct {
	Input    string
	Position int
	Reason   string
}

func (e *InvalidInputError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("microqr: invalid input %q at offset %d: %s", e.Input, e.Position, e.Reason)
	}
	return fmt.Sprintf("microqr: invalid input %q: %s", e.Input, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// CapacityExceededError is returned by a strict encoder when the data and
// parity bits do not fit in the data region.
type CapacityExceededError struct {
	Bits     int
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("microqr: %d bits do not fit in %d data modules", e.Bits, e.Capacity)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
