package commands

import (
	"context"
	"time"

	"requisition/internal/core/domain/model/requisition"
	"requisition/internal/core/domain/services"
)

// ReleaseForDispatchCommandHandler orchestrates the dispatch release sweep.
// Promotes every packaged requisition to ReadyForDispatch within a single
// transaction. An empty sweep is a successful no-op.
//
// Example:
//
//	handler := NewReleaseForDispatchCommandHandler(uowFactory)
//	cmd := NewReleaseForDispatchCommand()
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Dispatch release failed: %v", err)
//	}
type ReleaseForDispatchCommandHandler struct {
	uowFactory RequisitionUoWFactory
	workflow   services.RequisitionWorkflow
}

// NewReleaseForDispatchCommandHandler creates a handler for dispatch release sweeps.
// Requires a RequisitionUoWFactory for transactional updates.
func NewReleaseForDispatchCommandHandler(uowFactory RequisitionUoWFactory) ReleaseForDispatchCommandHandler {
	return ReleaseForDispatchCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewRequisitionWorkflow(time.Now),
	}
}

// Handle processes the release command.
// Moves each packaged requisition to ReadyForDispatch through the workflow;
// any denial aborts and rolls back the whole sweep.
func (h ReleaseForDispatchCommandHandler) Handle(ctx context.Context, command ReleaseForDispatchCommand) error {
	if err := command.Validate(); err != nil {
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
	packaged, err := requisitionRepo.GetAllInPackagedStatus(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range packaged {
		result := h.workflow.Transition(
			aggregate, requisition.ReadyForDispatch, services.TransitionMetadata{})
		if !result.Success {
			return result.Err
		}

		if err = requisitionRepo.Update(ctx, result.Requisition); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
