package commands

import (
	"context"

	"requisition/internal/core/domain/model/requisition"
)

// SubmitRequisitionCommandHandler handles the business logic for requisition
// submission. Creates new requisitions in Pending status for review.
//
// Example:
//
//	handler := NewSubmitRequisitionCommandHandler(uowFactory)
//	cmd, _ := NewSubmitRequisitionCommand(requisitionID, workspaceID, items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("requisition submission failed: %w", err)
//	}
//	// Requisition is now pending review
type SubmitRequisitionCommandHandler struct {
	uowFactory RequisitionUoWFactory
}

// NewSubmitRequisitionCommandHandler creates a handler for requisition submission.
// Requires a RequisitionUoWFactory for transactional persistence.
func NewSubmitRequisitionCommandHandler(uowFactory RequisitionUoWFactory) SubmitRequisitionCommandHandler {
	return SubmitRequisitionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the requisition submission command.
// Creates the aggregate in Pending status and persists it within a transaction.
func (h *SubmitRequisitionCommandHandler) Handle(ctx context.Context, cmd SubmitRequisitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requisitionRepo := uow.RequisitionRepository()
	aggregate, err := requisition.NewRequisition(cmd.RequisitionID(), cmd.WorkspaceID(), cmd.Items())
	if err != nil {
		return err
	}

	if err = requisitionRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
