package errs

import (
	"errors"
	"fmt"
)

// ErrVersionIsInvalid is the sentinel error for optimistic-concurrency version
// conflicts: the stored aggregate version no longer matches the one that was read.
var ErrVersionIsInvalid = errors.New("version is invalid")

// VersionIsInvalidError reports a version mismatch on the named parameter.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{
		ParamName: paramName,
	}
}

// Error formats the error message, appending the cause when present.
func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

// Unwrap returns the sentinel so errors.Is(err, ErrVersionIsInvalid) matches.
func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}
