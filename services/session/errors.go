package session

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID is unknown or expired.
var ErrSessionNotFound = errors.New("quote session not found or expired")

// ValidationError reports why a wizard step cannot advance. It blocks the
// transition but never crashes the computation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
