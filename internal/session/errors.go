package session

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest marks a request rejected before any catalog lookup.
var ErrInvalidRequest = errors.New("invalid request")

// NotFoundError is returned when a portal or layout a request refers to does
// not exist, or has no slots for the requested device.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func invalidRequest(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
}
