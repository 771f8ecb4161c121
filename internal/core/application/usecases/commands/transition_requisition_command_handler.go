package commands

import (
	"context"
	"time"

	"requisition/internal/core/domain/model/requisition"
	"requisition/internal/core/domain/services"
)

// TransitionRequisitionCommandHandler orchestrates a single requisition
// transition: load the aggregate, run the workflow, persist the advanced copy.
//
// Two failure channels are kept apart on purpose. Infrastructure problems
// (missing requisition, version conflict, transaction failure) come back as
// the error. A transition the workflow denies is not an error: the handler
// commits nothing and returns the structured result with Success=false so the
// caller can report the denial to the client.
//
// Example:
//
//	handler := NewTransitionRequisitionCommandHandler(uowFactory)
//	cmd, _ := NewTransitionRequisitionCommand(id, requisition.Approved, nil, "")
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case err != nil:
//	    // not found, version conflict, or transaction failure
//	case !result.Success:
//	    // denied by the lifecycle rules; result.Err explains
//	default:
//	    // result.Requisition is the persisted aggregate
//	}
type TransitionRequisitionCommandHandler struct {
	uowFactory UoWFactory
	workflow   services.RequisitionWorkflow
}

// NewTransitionRequisitionCommandHandler creates a handler for requisition
// transitions. Requires a UoWFactory covering the requisition repository and
// the slot-cost catalog, which the packaging edge reads.
func NewTransitionRequisitionCommandHandler(uowFactory UoWFactory) TransitionRequisitionCommandHandler {
	return TransitionRequisitionCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewRequisitionWorkflow(time.Now),
	}
}

// Handle processes the transition command.
// Loads the aggregate, assembles the workflow metadata (including the catalog
// for the packaging edge), runs the transition, and persists the advanced
// copy with a compare-and-swap update. A denied transition returns the
// workflow result without writing anything.
func (h TransitionRequisitionCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionRequisitionCommand,
) (services.TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requisitionRepo := uow.RequisitionRepository()
	aggregate, err := requisitionRepo.Get(ctx, cmd.RequisitionID())
	if err != nil {
		return services.TransitionResult{}, err
	}

	meta := services.TransitionMetadata{
		BatchID:         cmd.BatchID(),
		RejectionReason: cmd.RejectionReason(),
	}
	if cmd.Target() == requisition.Packaged {
		catalog, catalogErr := uow.CatalogRepository().Get(ctx)
		if catalogErr != nil {
			return services.TransitionResult{}, catalogErr
		}
		meta.Catalog = catalog
	}

	result := h.workflow.Transition(aggregate, cmd.Target(), meta)
	if !result.Success {
		return result, nil
	}

	if err = requisitionRepo.Update(ctx, result.Requisition); err != nil {
		return services.TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.TransitionResult{}, err
	}

	return result, nil
}
