package commands

import (
	"errors"

	"requisition/internal/pkg/guard"
)

var ErrAssignBatchCommandIsNotConstructed = errors.New(
	"AssignBatchCommand must be created via NewAssignBatchCommand constructor",
)

// AssignBatchCommand triggers the assignment of dispatch-ready requisitions
// to a new delivery batch. This command represents the batch planning sweep:
// it collects every requisition awaiting batching and binds them to one
// freshly minted batch.
//
// Example:
//
//	cmd := NewAssignBatchCommand()
//	handler := NewAssignBatchCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoRequisitionsReady) {
//	    log.Println("Nothing to batch")
//	}
type AssignBatchCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignBatchCommand creates a new command to trigger batch assignment.
// This is a parameterless command; the batch identity is minted by the handler.
func NewAssignBatchCommand() AssignBatchCommand {
	return AssignBatchCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignBatchCommandIsNotConstructed if validation fails.
func (c *AssignBatchCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignBatchCommandIsNotConstructed,
	)
}
