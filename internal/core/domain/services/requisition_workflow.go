package services

import (
	"time"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/packaging"
	"requisition/internal/core/domain/model/requisition"
	"requisition/internal/pkg/errs"
)

// TransitionMetadata carries the guard data a transition may require beyond
// its target status. Fields are read only by the edges that need them:
// BatchID on assignment, RejectionReason on rejection, Catalog on packaging.
type TransitionMetadata struct {
	BatchID         *kernel.UUID
	RejectionReason string
	Catalog         packaging.Catalog
}

// TransitionResult is the structured outcome of a transition attempt.
// A denied transition is a result, not a panic: Success is false, Err names
// the rule that denied it, and Requisition is nil. On success Requisition
// holds the advanced copy; the caller's value is never mutated either way.
type TransitionResult struct {
	Success     bool
	From        requisition.Status
	To          requisition.Status
	Err         error
	Timestamp   time.Time
	Requisition *requisition.Requisition
}

// RequisitionWorkflow is the domain service that drives requisitions through
// their lifecycle. It is the single writer of requisition status: every edge
// goes through Transition, which checks the transition table, evaluates the
// edge's guard, and applies the change to a clone of the input.
//
// Key responsibilities:
//   - Validating transition requests against the status transition table
//   - Enforcing per-edge guards (rejection reason, batch reference, catalog)
//   - Invoking the packaging calculator on the approved-to-packaged edge
//   - Stamping transition timestamps from the injected clock
//
// Business rules:
//   - The table check runs before any guard; an absent edge is reported as
//     an invalid transition naming both endpoints
//   - Packaging is computed exactly once per requisition, during the
//     approved-to-packaged edge
//   - The target status alone selects the edge; reaching ReadyForDispatch
//     from AssignedToBatch is unassignment, from Packaged it is release
//
// Example usage:
//
//	workflow := services.NewRequisitionWorkflow(time.Now)
//	result := workflow.Transition(req, requisition.Approved, services.TransitionMetadata{})
//	if !result.Success {
//	    // result.Err names the denial; req is unchanged
//	    return
//	}
//	// result.Requisition is the advanced copy
type RequisitionWorkflow struct {
	calculator PackagingCalculator
	now        func() time.Time
}

// NewRequisitionWorkflow creates a workflow service with the given clock.
// A nil clock defaults to time.Now; tests inject a fixed clock to pin
// transition timestamps.
func NewRequisitionWorkflow(now func() time.Time) RequisitionWorkflow {
	if now == nil {
		now = time.Now
	}
	return RequisitionWorkflow{
		calculator: NewPackagingCalculator(),
		now:        now,
	}
}

// Transition attempts to move the requisition to the target status.
//
// Parameters:
//   - req: The requisition to advance (left untouched)
//   - target: The status to transition to
//   - meta: Guard data for edges that require it
//
// Returns:
//   - TransitionResult: Structured outcome; on success its Requisition field
//     holds an advanced deep copy of req
func (w RequisitionWorkflow) Transition(
	req *requisition.Requisition,
	target requisition.Status,
	meta TransitionMetadata,
) TransitionResult {
	at := w.now()

	if err := req.Validate(); err != nil {
		return failedTransition(requisition.Unknown, target, err, at)
	}

	from := req.Status()

	if err := target.Validate(); err != nil {
		return failedTransition(from, target, err, at)
	}
	if err := from.ValidateTransition(target); err != nil {
		return failedTransition(from, target, err, at)
	}

	clone := req.Clone()
	if err := w.applyEdge(clone, from, target, meta, at); err != nil {
		return failedTransition(from, target, err, at)
	}

	return TransitionResult{
		Success:     true,
		From:        from,
		To:          target,
		Timestamp:   at,
		Requisition: clone,
	}
}

// applyEdge runs the guard and mutation for the already table-checked edge.
// The edge is selected by its target; the single target reachable from two
// sources, ReadyForDispatch, disambiguates on the source status.
func (w RequisitionWorkflow) applyEdge(
	clone *requisition.Requisition,
	from, target requisition.Status,
	meta TransitionMetadata,
	at time.Time,
) error {
	switch target {
	case requisition.Approved:
		return clone.Approve(at)

	case requisition.Rejected:
		return clone.Reject(meta.RejectionReason, at)

	case requisition.Cancelled:
		return clone.Cancel(at)

	case requisition.Packaged:
		pkg, err := w.calculator.Compute(clone.Items(), meta.Catalog)
		if err != nil {
			return err
		}
		return clone.AttachPackaging(pkg, at)

	case requisition.ReadyForDispatch:
		if from == requisition.AssignedToBatch {
			return clone.Unassign(at)
		}
		return clone.MarkReadyForDispatch(at)

	case requisition.AssignedToBatch:
		if meta.BatchID == nil {
			return errs.NewMissingRequirementError("batch id")
		}
		return clone.AssignToBatch(*meta.BatchID, at)

	case requisition.InTransit:
		return clone.StartTransit(at)

	case requisition.Fulfilled, requisition.PartiallyDelivered, requisition.Failed:
		return clone.CompleteDelivery(target, at)

	default:
		return errs.NewInvalidTransitionError(from.String(), target.String())
	}
}

func failedTransition(
	from, to requisition.Status,
	err error,
	at time.Time,
) TransitionResult {
	return TransitionResult{
		From:      from,
		To:        to,
		Err:       err,
		Timestamp: at,
	}
}
