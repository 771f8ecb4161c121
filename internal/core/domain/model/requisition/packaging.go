package requisition

import (
	"errors"
	"fmt"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/packaging"
	"requisition/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPackagingIsNotConstructed indicates that a Packaging was not created
	// through the NewPackaging constructor.
	ErrPackagingIsNotConstructed = errors.New("Packaging must be created via NewPackaging constructor")

	// ErrPackagingItemIsNotConstructed indicates that a PackagingItem was not
	// created through the NewPackagingItem constructor.
	ErrPackagingItemIsNotConstructed = errors.New(
		"PackagingItem must be created via NewPackagingItem constructor")
)

// PackagingItem binds one requisition item to the packaging type it ships in
// and the share of slot-units it consumes.
type PackagingItem struct {
	itemID        kernel.UUID
	packagingType packaging.Type
	slotShare     decimal.Decimal

	guard kernel.ConstructorGuard
}

// NewPackagingItem creates a per-item packaging entry with validation.
// The slot share must be strictly positive.
func NewPackagingItem(
	itemID kernel.UUID,
	packagingType packaging.Type,
	slotShare decimal.Decimal,
) (PackagingItem, error) {
	if err := itemID.Validate(); err != nil {
		return PackagingItem{}, err
	}
	if err := packagingType.Validate(); err != nil {
		return PackagingItem{}, err
	}
	if !slotShare.IsPositive() {
		return PackagingItem{}, errs.NewValueIsInvalidErrorWithCause("slot share is invalid",
			fmt.Errorf("%s is not greater than 0", slotShare))
	}

	return PackagingItem{
		itemID:        itemID,
		packagingType: packagingType,
		slotShare:     slotShare,
		guard:         kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the PackagingItem was constructed through NewPackagingItem.
func (p PackagingItem) Validate() error {
	return p.guard.Validate(ErrPackagingItemIsNotConstructed)
}

// ItemID returns the requisition item this entry describes.
func (p PackagingItem) ItemID() kernel.UUID {
	return p.itemID
}

// PackagingType returns the packaging kind the item ships in.
func (p PackagingItem) PackagingType() packaging.Type {
	return p.packagingType
}

// SlotShare returns the raw slot-unit share the item consumes.
func (p PackagingItem) SlotShare() decimal.Decimal {
	return p.slotShare
}

// Packaging is the frozen planning artifact attached to a requisition at the
// approved-to-packaged edge. It exists only as a completed, immutable value;
// there is no draft form, so IsFinal is true for every constructed instance.
//
// Once attached to a requisition every field is immutable for the remaining
// life of that requisition, including across retries of later transitions.
// Downstream batch planning sizes delivery batches from these totals.
type Packaging struct {
	items []PackagingItem

	// totalSlotDemand is the real-valued raw slot demand across all items
	totalSlotDemand decimal.Decimal

	// roundedSlotDemand is ceil(totalSlotDemand): the whole slot-units
	// actually reserved downstream. Requisitions never share a fractional slot.
	roundedSlotDemand int64

	totalWeightKg decimal.Decimal
	totalVolumeM3 decimal.Decimal
	itemCount     int

	guard kernel.ConstructorGuard
}

// NewPackaging creates the frozen packaging artifact.
//
// The rounded slot demand is derived here as ceil(totalSlotDemand), so the
// rounding law holds by construction and cannot drift from the raw demand.
// Totals must be strictly positive and there must be at least one item entry.
func NewPackaging(
	items []PackagingItem,
	totalSlotDemand decimal.Decimal,
	totalWeightKg decimal.Decimal,
	totalVolumeM3 decimal.Decimal,
) (*Packaging, error) {
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("packaging items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	if err := errors.Join(
		validatePositiveTotal("total slot demand", totalSlotDemand),
		validatePositiveTotal("total weight", totalWeightKg),
		validatePositiveTotal("total volume", totalVolumeM3),
	); err != nil {
		return nil, err
	}

	return &Packaging{
		items:             append([]PackagingItem(nil), items...),
		totalSlotDemand:   totalSlotDemand,
		roundedSlotDemand: totalSlotDemand.Ceil().IntPart(),
		totalWeightKg:     totalWeightKg,
		totalVolumeM3:     totalVolumeM3,
		itemCount:         len(items),
		guard:             kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Packaging was constructed through NewPackaging.
func (p *Packaging) Validate() error {
	if p == nil {
		return ErrPackagingIsNotConstructed
	}
	return p.guard.Validate(ErrPackagingIsNotConstructed)
}

// Items returns a copy of the per-item packaging entries.
func (p *Packaging) Items() []PackagingItem {
	return append([]PackagingItem(nil), p.items...)
}

// TotalSlotDemand returns the real-valued raw slot demand.
func (p *Packaging) TotalSlotDemand() decimal.Decimal {
	return p.totalSlotDemand
}

// RoundedSlotDemand returns the whole slot-units reserved downstream.
func (p *Packaging) RoundedSlotDemand() int64 {
	return p.roundedSlotDemand
}

// TotalWeightKg returns the aggregate weight of the requisition, in kilograms.
func (p *Packaging) TotalWeightKg() decimal.Decimal {
	return p.totalWeightKg
}

// TotalVolumeM3 returns the aggregate volume of the requisition, in cubic meters.
func (p *Packaging) TotalVolumeM3() decimal.Decimal {
	return p.totalVolumeM3
}

// ItemCount returns the number of packaged line items.
func (p *Packaging) ItemCount() int {
	return p.itemCount
}

// IsFinal reports whether the artifact is complete and frozen.
// Always true for a constructed Packaging; the type has no draft state.
func (p *Packaging) IsFinal() bool {
	return p != nil && p.guard.Validate(nil) == nil
}

// IsEqual compares two packaging artifacts field by field. Used by tests to
// assert that recomputation over identical inputs is a no-op.
func (p *Packaging) IsEqual(other *Packaging) bool {
	if other == nil || p.itemCount != other.itemCount ||
		p.roundedSlotDemand != other.roundedSlotDemand ||
		!p.totalSlotDemand.Equal(other.totalSlotDemand) ||
		!p.totalWeightKg.Equal(other.totalWeightKg) ||
		!p.totalVolumeM3.Equal(other.totalVolumeM3) ||
		len(p.items) != len(other.items) {
		return false
	}
	for i, item := range p.items {
		otherItem := other.items[i]
		if !item.itemID.IsEqual(otherItem.itemID) ||
			item.packagingType != otherItem.packagingType ||
			!item.slotShare.Equal(otherItem.slotShare) {
			return false
		}
	}
	return true
}

func validatePositiveTotal(name string, value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(name+" is invalid",
			fmt.Errorf("%s is not greater than 0", value))
	}
	return nil
}
