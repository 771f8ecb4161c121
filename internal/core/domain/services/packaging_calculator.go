package services

import (
	"requisition/internal/core/domain/model/packaging"
	"requisition/internal/core/domain/model/requisition"
	"requisition/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PackagingCalculator is a domain service that computes the packaging artifact
// for a requisition's line items against a slot-cost catalog.
//
// Key responsibilities:
//   - Deriving each item's slot share from its physical dimensions
//   - Aggregating shares into requisition-level totals
//   - Producing the frozen Packaging artifact with ceil-rounded slot demand
//
// Business rules:
//   - An item's raw share is the larger of its volume-bound and weight-bound
//     demand against the slot capacity of its packaging type
//   - Rounding happens once, on the aggregate total, never per item
//   - Identical inputs always yield an identical artifact
//
// The calculator is pure: it reads nothing but its arguments and mutates
// nothing. Catalog lookup failures are reported per offending item.
//
// Example usage:
//
//	calculator := services.NewPackagingCalculator()
//	pkg, err := calculator.Compute(req.Items(), catalog)
//	if err != nil {
//	    // unknown packaging type or invalid input
//	    return
//	}
//	// pkg.RoundedSlotDemand() is the whole slot-units to reserve
type PackagingCalculator struct{}

// NewPackagingCalculator creates a new PackagingCalculator instance.
func NewPackagingCalculator() PackagingCalculator {
	return PackagingCalculator{}
}

// Compute builds the packaging artifact for the given items.
//
// Parameters:
//   - items: The requisition's line items (must be non-empty and valid)
//   - catalog: Slot-cost catalog keyed by packaging type
//
// Returns:
//   - *requisition.Packaging: The frozen artifact
//   - error: ValueIsRequiredError for empty input, UnknownPackagingTypeError
//     when an item's packaging type has no catalog entry, or validation errors
func (p PackagingCalculator) Compute(
	items []requisition.Item,
	catalog packaging.Catalog,
) (*requisition.Packaging, error) {
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	entries := make([]requisition.PackagingItem, 0, len(items))
	totalSlotDemand := decimal.Zero
	totalWeightKg := decimal.Zero
	totalVolumeM3 := decimal.Zero

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}

		cost, ok := catalog.CostFor(item.PackagingType())
		if !ok {
			return nil, errs.NewUnknownPackagingTypeError(
				item.ItemID().String(), item.PackagingType().String())
		}

		slotShare := itemSlotShare(item, cost)

		entry, err := requisition.NewPackagingItem(
			item.ItemID(), item.PackagingType(), slotShare)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
		totalSlotDemand = totalSlotDemand.Add(slotShare)
		totalWeightKg = totalWeightKg.Add(item.TotalWeightKg())
		totalVolumeM3 = totalVolumeM3.Add(item.TotalVolumeM3())
	}

	return requisition.NewPackaging(entries, totalSlotDemand, totalWeightKg, totalVolumeM3)
}

// itemSlotShare computes the raw slot-unit share of a single line item.
// The binding constraint wins: an item that fills a slot by weight before it
// fills it by volume demands slots by weight, and vice versa.
func itemSlotShare(item requisition.Item, cost packaging.SlotCost) decimal.Decimal {
	volumeShare := item.TotalVolumeM3().Div(cost.VolumeCapacityM3())
	weightShare := item.TotalWeightKg().Div(cost.WeightCapacityKg())

	if weightShare.GreaterThan(volumeShare) {
		return weightShare
	}
	return volumeShare
}
