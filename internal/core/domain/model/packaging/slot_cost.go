package packaging

import (
	"errors"
	"fmt"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrSlotCostIsNotConstructed indicates that a SlotCost was not created
// through the NewSlotCost constructor.
var ErrSlotCostIsNotConstructed = errors.New("SlotCost must be created via NewSlotCost constructor")

// SlotCost describes the carrying capacity of a single shipping slot for one
// packaging type: how many kilograms and cubic meters fit in one slot-unit.
//
// SlotCost is an immutable value object. Both ceilings must be strictly
// positive; a slot that cannot carry weight or volume is meaningless.
type SlotCost struct {
	// packagingType is the packaging kind this cost entry describes
	packagingType Type

	// weightCapacityKg is the weight ceiling of one slot, in kilograms
	weightCapacityKg decimal.Decimal

	// volumeCapacityM3 is the volume ceiling of one slot, in cubic meters
	volumeCapacityM3 decimal.Decimal

	// guard ensures the value object was properly initialized
	guard kernel.ConstructorGuard
}

// NewSlotCost creates a SlotCost entry with validation.
//
// The packaging type must be valid and both capacities strictly positive.
// All validation errors are aggregated and returned as a single error.
func NewSlotCost(packagingType Type, weightCapacityKg, volumeCapacityM3 decimal.Decimal) (SlotCost, error) {
	cost := SlotCost{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cost.setPackagingType(packagingType),
		cost.setWeightCapacityKg(weightCapacityKg),
		cost.setVolumeCapacityM3(volumeCapacityM3),
	); err != nil {
		return SlotCost{}, err
	}

	return cost, nil
}

// Validate ensures the SlotCost was constructed through NewSlotCost.
func (s SlotCost) Validate() error {
	return s.guard.Validate(ErrSlotCostIsNotConstructed)
}

// PackagingType returns the packaging kind this cost entry describes.
func (s SlotCost) PackagingType() Type {
	return s.packagingType
}

// WeightCapacityKg returns the weight ceiling of one slot, in kilograms.
func (s SlotCost) WeightCapacityKg() decimal.Decimal {
	return s.weightCapacityKg
}

// VolumeCapacityM3 returns the volume ceiling of one slot, in cubic meters.
func (s SlotCost) VolumeCapacityM3() decimal.Decimal {
	return s.volumeCapacityM3
}

func (s *SlotCost) setPackagingType(packagingType Type) error {
	if err := packagingType.Validate(); err != nil {
		return err
	}
	s.packagingType = packagingType
	return nil
}

func (s *SlotCost) setWeightCapacityKg(capacity decimal.Decimal) error {
	if !capacity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("weight capacity is invalid",
			fmt.Errorf("%s is not greater than 0", capacity))
	}
	s.weightCapacityKg = capacity
	return nil
}

func (s *SlotCost) setVolumeCapacityM3(capacity decimal.Decimal) error {
	if !capacity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("volume capacity is invalid",
			fmt.Errorf("%s is not greater than 0", capacity))
	}
	s.volumeCapacityM3 = capacity
	return nil
}
