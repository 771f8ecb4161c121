package errs

import (
	"errors"
	"fmt"
)

// ErrUnknownPackagingType is the sentinel error for requisition items whose
// packaging type has no entry in the packaging catalog.
var ErrUnknownPackagingType = errors.New("unknown packaging type")

// UnknownPackagingTypeError names the offending item and the packaging type
// that could not be resolved.
type UnknownPackagingTypeError struct {
	ItemID        string
	PackagingType string
	Cause         error
}

// NewUnknownPackagingTypeError creates an UnknownPackagingTypeError without an underlying cause.
func NewUnknownPackagingTypeError(itemID, packagingType string) *UnknownPackagingTypeError {
	return &UnknownPackagingTypeError{
		ItemID:        itemID,
		PackagingType: packagingType,
	}
}

// NewUnknownPackagingTypeErrorWithCause creates an UnknownPackagingTypeError wrapping an underlying cause.
func NewUnknownPackagingTypeErrorWithCause(itemID, packagingType string, cause error) *UnknownPackagingTypeError {
	return &UnknownPackagingTypeError{
		ItemID:        itemID,
		PackagingType: packagingType,
		Cause:         cause,
	}
}

// Error formats the error message, appending the cause when present.
func (e *UnknownPackagingTypeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s for item %s (cause: %s)",
			ErrUnknownPackagingType, e.PackagingType, e.ItemID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s for item %s", ErrUnknownPackagingType, e.PackagingType, e.ItemID))
}

// Unwrap returns the sentinel so errors.Is(err, ErrUnknownPackagingType) matches.
func (e *UnknownPackagingTypeError) Unwrap() error {
	return ErrUnknownPackagingType
}
