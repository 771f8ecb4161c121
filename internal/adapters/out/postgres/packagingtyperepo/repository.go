package packagingtyperepo

import (
	"context"

	"requisition/internal/core/domain/model/packaging"
	"requisition/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements CatalogRepository using GORM.
//
// The slot-cost catalog is reference data: Seed writes it during application
// bootstrap and Get serves it to every packaging computation.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Get loads the complete slot-cost catalog.
func (r *GormCatalogRepository) Get(ctx context.Context) (packaging.Catalog, error) {
	var dtos []SlotCostDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return packaging.Catalog{}, err
	}

	if len(dtos) == 0 {
		return packaging.Catalog{}, errs.NewObjectNotFoundError("slot cost catalog", "slot_costs")
	}

	costs := make([]packaging.SlotCost, 0, len(dtos))
	for _, dto := range dtos {
		cost, err := toDomain(dto)
		if err != nil {
			return packaging.Catalog{}, err
		}
		costs = append(costs, cost)
	}

	return packaging.NewCatalog(costs)
}

// Seed stores the given slot costs, leaving already-seeded rows untouched.
func (r *GormCatalogRepository) Seed(ctx context.Context, costs []packaging.SlotCost) error {
	if len(costs) == 0 {
		return errs.NewValueIsRequiredError("slot costs")
	}

	dtos := make([]SlotCostDTO, 0, len(costs))
	for _, cost := range costs {
		if err := cost.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(cost))
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dtos).Error
}
