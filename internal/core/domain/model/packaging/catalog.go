package packaging

import (
	"errors"
	"fmt"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/pkg/errs"
)

var (
	// ErrCatalogIsNotConstructed indicates that a Catalog was not created
	// through the NewCatalog constructor.
	ErrCatalogIsNotConstructed = errors.New("Catalog must be created via NewCatalog constructor")

	// ErrDuplicateCatalogEntry indicates that two SlotCost entries describe
	// the same packaging type.
	ErrDuplicateCatalogEntry = errors.New("catalog holds more than one entry for a packaging type")
)

// Catalog is a validated, read-only lookup of slot costs by packaging type.
// It is reference data: the requisition workflow receives it as input and
// never mutates it.
type Catalog struct {
	costs map[Type]SlotCost
	guard kernel.ConstructorGuard
}

// NewCatalog builds a Catalog from a non-empty list of slot-cost entries.
// Every entry must be valid and no packaging type may appear twice.
func NewCatalog(costs []SlotCost) (Catalog, error) {
	if len(costs) == 0 {
		return Catalog{}, errs.NewValueIsRequiredError("catalog entries")
	}

	byType := make(map[Type]SlotCost, len(costs))
	for _, cost := range costs {
		if err := cost.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, exists := byType[cost.PackagingType()]; exists {
			return Catalog{}, fmt.Errorf("%w: %s", ErrDuplicateCatalogEntry, cost.PackagingType())
		}
		byType[cost.PackagingType()] = cost
	}

	return Catalog{
		costs: byType,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Catalog was constructed through NewCatalog.
func (c Catalog) Validate() error {
	return c.guard.Validate(ErrCatalogIsNotConstructed)
}

// CostFor looks up the slot cost for a packaging type.
// The boolean reports whether the catalog holds an entry for that type.
func (c Catalog) CostFor(packagingType Type) (SlotCost, bool) {
	cost, ok := c.costs[packagingType]
	return cost, ok
}

// Len returns the number of catalog entries.
func (c Catalog) Len() int {
	return len(c.costs)
}
