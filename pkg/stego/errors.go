package stego

import (
	"errors"
	"fmt"
)

var (
	// Cover errors 📝
	ErrInvalidCover = errors.New("❌ cover text must be exactly one character long")

	// Capacity errors 📏
	ErrInsufficientCapacity = errors.New("❌ cover text is not long enough to encode message")

	// Dispatch errors 🧭
	ErrMethodNotImplemented = errors.New("❌ method is not implemented")
)

// CapacityError reports how far encoding got before the cover ran out
// of eligible characters. All counts are in bits.
type CapacityError struct {
	Hidden    int // bits embedded before the cover was exhausted
	Required  int // total bits the message needs
	Remaining int // bits left over
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: capacity: %d, required: %d, remaining: %d",
		ErrInsufficientCapacity, e.Hidden, e.Required, e.Remaining)
}

// Unwrap lets callers match with errors.Is(err, ErrInsufficientCapacity)
func (e *CapacityError) Unwrap() error {
	return ErrInsufficientCapacity
}
