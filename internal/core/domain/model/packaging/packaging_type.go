package packaging

import (
	"fmt"

	"requisition/internal/pkg/errs"
)

// Type identifies the kind of packaging a requisition item ships in.
// It is a value object; the zero value Unknown is invalid and exists to
// catch uninitialized fields.
type Type int

const (
	// Unknown represents an invalid or undefined packaging type.
	Unknown Type = iota

	// Parcel is small-box packaging for light, low-volume items.
	Parcel

	// Crate is rigid mid-size packaging for fragile or stackable goods.
	Crate

	// Pallet is full pallet-load packaging for bulk supply.
	Pallet
)

// getTypeStrings returns a map of Type values to their string representations.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		Unknown: "Unknown",
		Parcel:  "Parcel",
		Crate:   "Crate",
		Pallet:  "Pallet",
	}
}

// getValidTypeStrings returns a map of only valid Type values.
func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Type]string{
		Parcel: "Parcel",
		Crate:  "Crate",
		Pallet: "Pallet",
	}
}

// Validate checks if the Type value is valid.
//
// Valid types are: Parcel, Crate, Pallet. Unknown (0) and any other values
// are invalid. Used to vet values coming from external sources such as the
// database or API payloads.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("packaging type is invalid",
			fmt.Errorf("%d is not a valid packaging type", t))
	}
	return nil
}

// String returns the human-readable name of the packaging type.
// Implements fmt.Stringer and is safe to call on any Type value.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TypeFromString converts a packaging type name back into its Type value.
// The comparison is exact; Unknown is not accepted. Used to vet packaging
// types arriving in API payloads.
func TypeFromString(s string) (Type, error) {
	for packagingType, str := range getValidTypeStrings() {
		if str == s {
			return packagingType, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"packaging type is invalid",
		fmt.Errorf("%s is not a valid packaging type", s),
	)
}
