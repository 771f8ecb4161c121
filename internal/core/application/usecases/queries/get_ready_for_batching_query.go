package queries

import (
	"errors"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetReadyForBatchingQueryIsNotConstructed = errors.New(
		"GetReadyForBatchingQuery must be created via NewGetReadyForBatchingQuery constructor",
	)
)

// GetReadyForBatchingQuery retrieves the requisitions that batch planning may
// pick up: dispatch-ready and not yet assigned to a delivery batch. The
// response carries the frozen packaging totals so planners can size batches
// without loading full aggregates.
//
// Example:
//
//	query := NewGetReadyForBatchingQuery()
//	handler := NewGetReadyForBatchingQueryHandler(db)
//
//	ready, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get batching candidates: %w", err)
//	}
//
//	var slots int64
//	for _, r := range ready {
//	    slots += r.RoundedSlotDemand
//	}
//	fmt.Printf("%d requisitions need %d slots\n", len(ready), slots)
type GetReadyForBatchingQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReadyForBatchingQuery creates a query to retrieve batching candidates.
func NewGetReadyForBatchingQuery() GetReadyForBatchingQuery {
	return GetReadyForBatchingQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReadyForBatchingQueryIsNotConstructed if validation fails.
func (q GetReadyForBatchingQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyForBatchingQueryIsNotConstructed)
}

// GetReadyForBatchingQueryResponse represents one batching candidate with the
// demand figures from its frozen packaging artifact.
type GetReadyForBatchingQueryResponse struct {
	ID                kernel.UUID
	WorkspaceID       kernel.UUID
	RoundedSlotDemand int64
	TotalWeightKg     decimal.Decimal
	TotalVolumeM3     decimal.Decimal
}
