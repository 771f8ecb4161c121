package queries

import (
	"context"

	"requisition/internal/core/domain/services"
	"requisition/internal/core/ports"
)

// PreviewPackagingQueryHandler runs the packaging computation against the
// current slot-cost catalog without persisting anything. It goes through
// the catalog repository rather than the unit of work since a preview is a
// pure read.
type PreviewPackagingQueryHandler struct {
	catalogRepository ports.CatalogRepository
	calculator        services.PackagingCalculator
}

// NewPreviewPackagingQueryHandler creates a handler for packaging previews.
// Requires a catalog repository to load slot costs from.
func NewPreviewPackagingQueryHandler(catalogRepository ports.CatalogRepository) PreviewPackagingQueryHandler {
	return PreviewPackagingQueryHandler{
		catalogRepository: catalogRepository,
		calculator:        services.NewPackagingCalculator(),
	}
}

// Handle executes the packaging computation for the query's items.
// Returns the same validation errors the real packaging transition would:
// an unknown packaging type or an unseeded catalog fails the preview.
func (h PreviewPackagingQueryHandler) Handle(
	ctx context.Context,
	query PreviewPackagingQuery,
) (PreviewPackagingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PreviewPackagingQueryResponse{}, err
	}

	catalog, err := h.catalogRepository.Get(ctx)
	if err != nil {
		return PreviewPackagingQueryResponse{}, err
	}

	pkg, err := h.calculator.Compute(query.Items(), catalog)
	if err != nil {
		return PreviewPackagingQueryResponse{}, err
	}

	items := make([]PreviewPackagingItemResponse, 0, pkg.ItemCount())
	for _, entry := range pkg.Items() {
		items = append(items, PreviewPackagingItemResponse{
			ItemID:        entry.ItemID(),
			PackagingType: entry.PackagingType(),
			SlotShare:     entry.SlotShare(),
		})
	}

	return PreviewPackagingQueryResponse{
		Items:             items,
		TotalSlotDemand:   pkg.TotalSlotDemand(),
		RoundedSlotDemand: pkg.RoundedSlotDemand(),
		TotalWeightKg:     pkg.TotalWeightKg(),
		TotalVolumeM3:     pkg.TotalVolumeM3(),
	}, nil
}
