package errs

import (
	"errors"
	"fmt"
)

// ErrMissingRequirement is the sentinel error for transition guards whose
// required data was not supplied with the transition request.
var ErrMissingRequirement = errors.New("missing requirement")

// MissingRequirementError reports which guard requirement was absent.
type MissingRequirementError struct {
	ParamName string
	Cause     error
}

// NewMissingRequirementError creates a MissingRequirementError without an underlying cause.
func NewMissingRequirementError(paramName string) *MissingRequirementError {
	return &MissingRequirementError{
		ParamName: paramName,
	}
}

// NewMissingRequirementErrorWithCause creates a MissingRequirementError wrapping an underlying cause.
func NewMissingRequirementErrorWithCause(paramName string, cause error) *MissingRequirementError {
	return &MissingRequirementError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// Error formats the error message, appending the cause when present.
func (e *MissingRequirementError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrMissingRequirement, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrMissingRequirement, e.ParamName))
}

// Unwrap returns the sentinel so errors.Is(err, ErrMissingRequirement) matches.
func (e *MissingRequirementError) Unwrap() error {
	return ErrMissingRequirement
}
