package requisition

import (
	"errors"
	"fmt"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/packaging"
	"requisition/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed indicates that an Item was not created through the
// NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of a requisition: a reference to a supply item, the
// requested quantity, and the physical dimensions of a single unit.
//
// Items are owned by the requisition at creation time and immutable once the
// requisition is submitted; the packaging computation depends on that.
type Item struct {
	// itemID references the supply item being requested
	itemID kernel.UUID

	// quantity is the requested unit count (must be positive)
	quantity int

	// unitWeightKg is the weight of a single unit, in kilograms
	unitWeightKg decimal.Decimal

	// unitVolumeM3 is the volume of a single unit, in cubic meters
	unitVolumeM3 decimal.Decimal

	// packagingType is the packaging kind this item ships in
	packagingType packaging.Type

	// guard ensures the value object was properly initialized
	guard kernel.ConstructorGuard
}

// NewItem creates a requisition line item with validation.
// Quantity, unit weight, and unit volume must all be strictly positive and the
// packaging type valid. Validation errors are aggregated.
func NewItem(
	itemID kernel.UUID,
	quantity int,
	unitWeightKg decimal.Decimal,
	unitVolumeM3 decimal.Decimal,
	packagingType packaging.Type,
) (Item, error) {
	item := Item{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setItemID(itemID),
		item.setQuantity(quantity),
		item.setUnitWeightKg(unitWeightKg),
		item.setUnitVolumeM3(unitVolumeM3),
		item.setPackagingType(packagingType),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ItemID returns the referenced supply item's identifier.
func (i Item) ItemID() kernel.UUID {
	return i.itemID
}

// Quantity returns the requested unit count.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitWeightKg returns the weight of a single unit, in kilograms.
func (i Item) UnitWeightKg() decimal.Decimal {
	return i.unitWeightKg
}

// UnitVolumeM3 returns the volume of a single unit, in cubic meters.
func (i Item) UnitVolumeM3() decimal.Decimal {
	return i.unitVolumeM3
}

// PackagingType returns the packaging kind this item ships in.
func (i Item) PackagingType() packaging.Type {
	return i.packagingType
}

// TotalWeightKg returns quantity times unit weight.
func (i Item) TotalWeightKg() decimal.Decimal {
	return i.unitWeightKg.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// TotalVolumeM3 returns quantity times unit volume.
func (i Item) TotalVolumeM3() decimal.Decimal {
	return i.unitVolumeM3.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	i.itemID = itemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitWeightKg(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unit weight is invalid",
			fmt.Errorf("%s is not greater than 0", weight))
	}
	i.unitWeightKg = weight
	return nil
}

func (i *Item) setUnitVolumeM3(volume decimal.Decimal) error {
	if !volume.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unit volume is invalid",
			fmt.Errorf("%s is not greater than 0", volume))
	}
	i.unitVolumeM3 = volume
	return nil
}

func (i *Item) setPackagingType(packagingType packaging.Type) error {
	if err := packagingType.Validate(); err != nil {
		return err
	}
	i.packagingType = packagingType
	return nil
}
