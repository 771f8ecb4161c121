package ports

import (
	"context"

	"requisition/internal/core/domain/model/packaging"
)

// CatalogRepository defines the persistence contract for the slot-cost
// catalog. The catalog is reference data: seeded once, read on every
// packaging computation, never modified by the workflow.
type CatalogRepository interface {
	// Get loads the complete slot-cost catalog.
	// Returns errs.ObjectNotFoundError when no slot costs are seeded.
	Get(ctx context.Context) (packaging.Catalog, error)
}
