package requisition

import (
	"fmt"

	"requisition/internal/pkg/errs"
)

// Status represents the lifecycle state of a requisition.
// It implements a state machine with a flat transition table so every allowed
// edge is visible in one place.
//
// State transitions:
//
//	Pending ──> Approved ──> Packaged ──> ReadyForDispatch ──> AssignedToBatch ──> InTransit
//	   │            │            │                │    ▲              │                │
//	   │            │            │                │    └──────────────┘                ├──> Fulfilled
//	   ├──> Rejected└───────┐    │                │     (unassignment)                 ├──> PartiallyDelivered
//	   │                    ▼    ▼                ▼                                    └──> Failed
//	   └──────────────────> Cancelled <───────────┘
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a submitted requisition awaiting review.
	Pending

	// Approved indicates the requisition passed review and may be packaged.
	Approved

	// Packaged indicates the packaging artifact has been computed and frozen.
	Packaged

	// ReadyForDispatch indicates the requisition awaits delivery-batch assignment.
	ReadyForDispatch

	// AssignedToBatch indicates the requisition belongs to a delivery batch.
	AssignedToBatch

	// InTransit indicates the requisition left the facility with its batch.
	InTransit

	// Fulfilled indicates every item was delivered. Terminal.
	Fulfilled

	// PartiallyDelivered indicates only part of the items arrived. Terminal.
	PartiallyDelivered

	// Failed indicates the delivery attempt did not complete. Terminal.
	Failed

	// Rejected indicates the requisition was declined during review. Terminal.
	Rejected

	// Cancelled indicates the requisition was withdrawn before transit. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Pending:            "Pending",
		Approved:           "Approved",
		Packaged:           "Packaged",
		ReadyForDispatch:   "ReadyForDispatch",
		AssignedToBatch:    "AssignedToBatch",
		InTransit:          "InTransit",
		Fulfilled:          "Fulfilled",
		PartiallyDelivered: "PartiallyDelivered",
		Failed:             "Failed",
		Rejected:           "Rejected",
		Cancelled:          "Cancelled",
	}
}

// allowedTransitions is the authoritative transition table.
// Any (from, to) pair not listed here is invalid. Terminal states map to an
// empty row, which is what IsTerminal checks.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:          {Approved, Rejected, Cancelled},
		Approved:         {Packaged, Cancelled},
		Packaged:         {ReadyForDispatch, Cancelled},
		ReadyForDispatch: {AssignedToBatch, Cancelled},
		// AssignedToBatch -> ReadyForDispatch is the single reverse edge (unassignment).
		AssignedToBatch:    {InTransit, ReadyForDispatch},
		InTransit:          {Fulfilled, PartiallyDelivered, Failed},
		Fulfilled:          {},
		PartiallyDelivered: {},
		Failed:             {},
		Rejected:           {},
		Cancelled:          {},
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range value are invalid. Used to vet values
// coming from external sources such as the database or API payloads.
func (s Status) Validate() error {
	if _, ok := allowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the transition table holds an edge from the
// receiver to the target status. Pure query, no side effects.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ValidateTransition returns an InvalidTransitionError naming both endpoints
// when the edge is absent from the table.
func (s Status) ValidateTransition(target Status) error {
	if !s.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return nil
}

// IsTerminal reports whether no further transition is defined from the status.
// True for Fulfilled, PartiallyDelivered, Failed, Rejected, and Cancelled.
func (s Status) IsTerminal() bool {
	edges, ok := allowedTransitions()[s]
	return ok && len(edges) == 0
}

// CanCancel reports whether the requisition may still be withdrawn from this
// status. Cancellation is allowed up to and including ReadyForDispatch; once a
// requisition is batched or in transit it must run to a delivery outcome.
func (s Status) CanCancel() bool {
	return s.CanTransitionTo(Cancelled)
}

// DeliveryOutcomes lists the terminal statuses reachable from InTransit.
func DeliveryOutcomes() []Status {
	return []Status{Fulfilled, PartiallyDelivered, Failed}
}

// StatusFromString converts a status name back into its Status value.
// The comparison is exact; Unknown is not accepted. Used to vet target
// statuses arriving in transition requests.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status", s),
	)
}
