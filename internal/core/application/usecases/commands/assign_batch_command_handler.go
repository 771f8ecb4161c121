package commands

import (
	"context"
	"errors"
	"time"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/requisition"
	"requisition/internal/core/domain/services"
)

// ErrNoRequisitionsReady is returned when no requisition is awaiting batch
// assignment. The sweep is a no-op in that case and callers typically treat
// it as an idle tick rather than a failure.
var ErrNoRequisitionsReady = errors.New("no requisitions ready for batching")

// AssignBatchCommandHandler orchestrates the batch assignment sweep.
// Mints one batch identity per run and assigns every dispatch-ready
// requisition to it through the workflow, within a single transaction.
//
// Example:
//
//	handler := NewAssignBatchCommandHandler(uowFactory)
//	cmd := NewAssignBatchCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoRequisitionsReady):
//	    log.Println("No requisitions awaiting batching")
//	case err != nil:
//	    log.Printf("Batch assignment failed: %v", err)
//	default:
//	    log.Println("Batch assigned successfully")
//	}
type AssignBatchCommandHandler struct {
	uowFactory RequisitionUoWFactory
	workflow   services.RequisitionWorkflow
}

// NewAssignBatchCommandHandler creates a handler for batch assignment sweeps.
// Requires a RequisitionUoWFactory for transactional updates.
func NewAssignBatchCommandHandler(uowFactory RequisitionUoWFactory) AssignBatchCommandHandler {
	return AssignBatchCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewRequisitionWorkflow(time.Now),
	}
}

// Handle processes the batch assignment command.
// Collects all ready-for-batching requisitions, mints a single batch ID, and
// moves each to AssignedToBatch. Any denied transition aborts the whole
// sweep: the batch either forms completely or not at all.
func (h AssignBatchCommandHandler) Handle(ctx context.Context, command AssignBatchCommand) error {
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
	ready, err := requisitionRepo.GetAllReadyForBatching(ctx)
	if err != nil {
		return err
	}
	if len(ready) == 0 {
		return ErrNoRequisitionsReady
	}

	batchID := kernel.NewUUID()
	meta := services.TransitionMetadata{BatchID: &batchID}

	for _, aggregate := range ready {
		result := h.workflow.Transition(aggregate, requisition.AssignedToBatch, meta)
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
