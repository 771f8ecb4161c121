package queries

import (
	"errors"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/packaging"
	"requisition/internal/core/domain/model/requisition"
	"requisition/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPreviewPackagingQueryIsNotConstructed = errors.New(
		"PreviewPackagingQuery must be created via NewPreviewPackagingQuery constructor",
	)
	ErrPreviewItemsAreRequired = errors.New("at least one item is required")
)

// PreviewPackagingQuery computes the packaging figures a set of items would
// produce, without touching any requisition. The computation is identical to
// the one that runs at the approved-to-packaged transition, so the preview
// matches the artifact that would eventually be frozen.
//
// Example:
//
//	query, err := NewPreviewPackagingQuery(items)
//	if err != nil {
//	    return fmt.Errorf("invalid preview items: %w", err)
//	}
//
//	handler := NewPreviewPackagingQueryHandler(catalogRepository)
//	preview, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to preview packaging: %w", err)
//	}
//	fmt.Printf("Would need %d slots\n", preview.RoundedSlotDemand)
type PreviewPackagingQuery struct { //nolint:recvcheck //using for validation
	items []requisition.Item

	guard guard.ConstructorGuard
}

// NewPreviewPackagingQuery creates a preview query from a non-empty item list.
// Every item must have been constructed via requisition.NewItem.
func NewPreviewPackagingQuery(items []requisition.Item) (PreviewPackagingQuery, error) {
	query := PreviewPackagingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setItems(items); err != nil {
		return PreviewPackagingQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrPreviewPackagingQueryIsNotConstructed if validation fails.
func (q PreviewPackagingQuery) Validate() error {
	return q.guard.Validate(ErrPreviewPackagingQueryIsNotConstructed)
}

// Items returns the line items to preview.
func (q PreviewPackagingQuery) Items() []requisition.Item {
	return q.items
}

func (q *PreviewPackagingQuery) setItems(items []requisition.Item) error {
	if len(items) == 0 {
		return ErrPreviewItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	q.items = items
	return nil
}

// PreviewPackagingItemResponse represents one item's share of the preview.
type PreviewPackagingItemResponse struct {
	ItemID        kernel.UUID
	PackagingType packaging.Type
	SlotShare     decimal.Decimal
}

// PreviewPackagingQueryResponse represents the computed packaging figures.
type PreviewPackagingQueryResponse struct {
	Items             []PreviewPackagingItemResponse
	TotalSlotDemand   decimal.Decimal
	RoundedSlotDemand int64
	TotalWeightKg     decimal.Decimal
	TotalVolumeM3     decimal.Decimal
}
