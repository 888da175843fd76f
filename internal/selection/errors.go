// Package selection chooses the cells of a session and fills them with items:
// slot selection, item allocation and distractor filling.
package selection

import (
	"errors"
	"fmt"
)

// ErrNoEligibleSlots is returned when no slot of a layout can be satisfied by
// any non-joker catalog item.
var ErrNoEligibleSlots = errors.New("no eligible slots")

// Error represents an error that occurs during slot selection
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
