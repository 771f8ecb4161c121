package ports

import (
	"context"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/requisition"
)

// RequisitionRepository defines the persistence contract for requisition
// aggregates. Provides methods for storing, retrieving, and querying
// requisitions by their lifecycle status.
type RequisitionRepository interface {
	// Add persists a new requisition aggregate to storage.
	// The requisition must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *requisition.Requisition) error

	// Update persists changes to an existing requisition aggregate using a
	// compare-and-swap on the aggregate's version. Returns
	// errs.VersionIsInvalidError when the stored version no longer matches,
	// meaning a concurrent writer advanced the requisition first.
	Update(ctx context.Context, aggregate *requisition.Requisition) error

	// Get retrieves a requisition aggregate by its unique identifier.
	// Returns the complete requisition with items, packaging, and batch state.
	Get(ctx context.Context, id kernel.UUID) (*requisition.Requisition, error)

	// GetAllInPackagedStatus retrieves all requisitions awaiting dispatch
	// release. Used by the release sweep to promote them to ReadyForDispatch.
	GetAllInPackagedStatus(ctx context.Context) ([]*requisition.Requisition, error)

	// GetAllReadyForBatching retrieves all requisitions that batch planning
	// may pick up: dispatch-ready, packaged, and not yet assigned to a batch.
	GetAllReadyForBatching(ctx context.Context) ([]*requisition.Requisition, error)
}
