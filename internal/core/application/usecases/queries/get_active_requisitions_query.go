package queries

import (
	"errors"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/requisition"
	"requisition/internal/pkg/guard"
)

var (
	ErrGetActiveRequisitionsQueryIsNotConstructed = errors.New(
		"GetActiveRequisitionsQuery must be created via NewGetActiveRequisitionsQuery constructor",
	)
)

// GetActiveRequisitionsQuery retrieves all requisitions still moving through
// the lifecycle. Terminal requisitions (fulfilled, partially delivered,
// failed, rejected, cancelled) are excluded.
//
// Example:
//
//	query := NewGetActiveRequisitionsQuery()
//	handler := NewGetActiveRequisitionsQueryHandler(db)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active requisitions: %w", err)
//	}
//
//	fmt.Printf("Found %d requisitions in flight\n", len(active))
type GetActiveRequisitionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveRequisitionsQuery creates a query to retrieve in-flight requisitions.
// This is a parameterless query that fetches every non-terminal requisition.
func NewGetActiveRequisitionsQuery() GetActiveRequisitionsQuery {
	return GetActiveRequisitionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveRequisitionsQueryIsNotConstructed if validation fails.
func (q GetActiveRequisitionsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveRequisitionsQueryIsNotConstructed)
}

// GetActiveRequisitionsQueryResponse represents one in-flight requisition.
// RoundedSlotDemand is nil until the requisition has been packaged; BatchID
// is nil until it has been assigned to a delivery batch.
type GetActiveRequisitionsQueryResponse struct {
	ID                kernel.UUID
	WorkspaceID       kernel.UUID
	Status            requisition.Status
	RoundedSlotDemand *int64
	BatchID           *kernel.UUID
}
