package commands

import (
	"errors"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/requisition"
	"requisition/internal/pkg/guard"
)

var ErrTransitionRequisitionCommandIsNotConstructed = errors.New(
	"TransitionRequisitionCommand must be created via NewTransitionRequisitionCommand constructor",
)

// TransitionRequisitionCommand represents a request to move a requisition to
// a target lifecycle status. The command carries the guard data some edges
// require: a batch reference for assignment, a reason for rejection. Whether
// the edge itself is legal is decided by the workflow, not here.
//
// Example:
//
//	cmd, err := NewTransitionRequisitionCommand(
//	    requisitionID, requisition.Rejected, nil, "budget exceeded")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewTransitionRequisitionCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // infrastructure failure
//	}
//	if !result.Success {
//	    // the workflow denied the transition; result.Err names the rule
//	}
type TransitionRequisitionCommand struct { //nolint:recvcheck //using for validation
	requisitionID   kernel.UUID
	target          requisition.Status
	batchID         *kernel.UUID
	rejectionReason string

	guard guard.ConstructorGuard
}

// NewTransitionRequisitionCommand creates a command to transition a requisition.
// Validates the requisition ID, the target status, and the batch ID when one
// is supplied. Edge-specific requirements are left to the workflow.
func NewTransitionRequisitionCommand(
	requisitionID kernel.UUID,
	target requisition.Status,
	batchID *kernel.UUID,
	rejectionReason string,
) (TransitionRequisitionCommand, error) {
	command := TransitionRequisitionCommand{
		rejectionReason: rejectionReason,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequisitionID(requisitionID),
		command.setTarget(target),
		command.setBatchID(batchID),
	); err != nil {
		return TransitionRequisitionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionRequisitionCommandIsNotConstructed if validation fails.
func (c TransitionRequisitionCommand) Validate() error {
	return c.guard.Validate(ErrTransitionRequisitionCommandIsNotConstructed)
}

// RequisitionID returns the requisition to transition.
func (c TransitionRequisitionCommand) RequisitionID() kernel.UUID {
	return c.requisitionID
}

// Target returns the status to transition to.
func (c TransitionRequisitionCommand) Target() requisition.Status {
	return c.target
}

// BatchID returns the delivery batch reference for assignment edges,
// nil when the edge does not involve a batch.
func (c TransitionRequisitionCommand) BatchID() *kernel.UUID {
	return c.batchID
}

// RejectionReason returns the reason for rejection edges, empty otherwise.
func (c TransitionRequisitionCommand) RejectionReason() string {
	return c.rejectionReason
}

func (c *TransitionRequisitionCommand) setRequisitionID(requisitionID kernel.UUID) error {
	if err := requisitionID.Validate(); err != nil {
		return err
	}

	c.requisitionID = requisitionID
	return nil
}

func (c *TransitionRequisitionCommand) setTarget(target requisition.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *TransitionRequisitionCommand) setBatchID(batchID *kernel.UUID) error {
	if batchID != nil {
		if err := batchID.Validate(); err != nil {
			return err
		}
	}

	c.batchID = batchID
	return nil
}
