package commands

import (
	"errors"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/requisition"
	"requisition/internal/pkg/guard"
)

var (
	ErrSubmitRequisitionCommandIsNotConstructed = errors.New(
		"SubmitRequisitionCommand must be created via NewSubmitRequisitionCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// SubmitRequisitionCommand represents a request to submit a new supply
// requisition. Encapsulates the requisition identity, the owning workspace,
// and the requested line items.
//
// Example:
//
//	requisitionID := kernel.NewUUID()
//	cmd, err := NewSubmitRequisitionCommand(requisitionID, workspaceID, items)
//	if err != nil {
//	    return fmt.Errorf("invalid requisition data: %w", err)
//	}
//
//	handler := NewSubmitRequisitionCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit requisition: %w", err)
//	}
//	fmt.Printf("Requisition %s submitted and awaiting review", requisitionID)
type SubmitRequisitionCommand struct { //nolint:recvcheck //using for validation
	requisitionID kernel.UUID
	workspaceID   kernel.UUID
	items         []requisition.Item

	guard guard.ConstructorGuard
}

// NewSubmitRequisitionCommand creates a command to submit a new requisition.
// Validates that both identifiers are valid and the item list is non-empty
// with every item properly constructed. Returns an error if any validation fails.
func NewSubmitRequisitionCommand(
	requisitionID, workspaceID kernel.UUID,
	items []requisition.Item,
) (SubmitRequisitionCommand, error) {
	command := SubmitRequisitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequisitionID(requisitionID),
		command.setWorkspaceID(workspaceID),
		command.setItems(items),
	); err != nil {
		return SubmitRequisitionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitRequisitionCommandIsNotConstructed if validation fails.
func (c SubmitRequisitionCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRequisitionCommandIsNotConstructed)
}

// RequisitionID returns the unique identifier for the requisition.
func (c SubmitRequisitionCommand) RequisitionID() kernel.UUID {
	return c.requisitionID
}

// WorkspaceID returns the workspace submitting the requisition.
func (c SubmitRequisitionCommand) WorkspaceID() kernel.UUID {
	return c.workspaceID
}

// Items returns the requested line items.
func (c SubmitRequisitionCommand) Items() []requisition.Item {
	return c.items
}

func (c *SubmitRequisitionCommand) setRequisitionID(requisitionID kernel.UUID) error {
	if err := requisitionID.Validate(); err != nil {
		return err
	}

	c.requisitionID = requisitionID
	return nil
}

func (c *SubmitRequisitionCommand) setWorkspaceID(workspaceID kernel.UUID) error {
	if err := workspaceID.Validate(); err != nil {
		return err
	}

	c.workspaceID = workspaceID
	return nil
}

func (c *SubmitRequisitionCommand) setItems(items []requisition.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
