package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel error for requisition status transitions
// that are absent from the transition table.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError reports a transition attempt between two statuses for
// which no edge exists. Both endpoints are carried so callers can explain the
// rejection without re-deriving them.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError without an underlying cause.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{
		From: from,
		To:   to,
	}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{
		From:  from,
		To:    to,
		Cause: cause,
	}
}

// Error formats the error message, appending the cause when present.
func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: from %s to %s (cause: %s)", ErrInvalidTransition, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To))
}

// Unwrap returns the sentinel so errors.Is(err, ErrInvalidTransition) matches.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
