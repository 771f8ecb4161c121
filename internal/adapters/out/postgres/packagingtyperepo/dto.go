package packagingtyperepo

import (
	"requisition/internal/core/domain/model/packaging"

	"github.com/shopspring/decimal"
)

// SlotCostDTO represents one packaging type's slot capacities for persistence.
type SlotCostDTO struct {
	PackagingType    int             `gorm:"primaryKey"`
	WeightCapacityKg decimal.Decimal `gorm:"type:numeric"`
	VolumeCapacityM3 decimal.Decimal `gorm:"type:numeric"`
}

// TableName returns the database table name for SlotCostDTO.
func (SlotCostDTO) TableName() string {
	return "slot_costs"
}

// fromDomain converts a domain SlotCost to SlotCostDTO.
func fromDomain(cost packaging.SlotCost) SlotCostDTO {
	return SlotCostDTO{
		PackagingType:    int(cost.PackagingType()),
		WeightCapacityKg: cost.WeightCapacityKg(),
		VolumeCapacityM3: cost.VolumeCapacityM3(),
	}
}

// toDomain converts a SlotCostDTO back to a domain SlotCost.
func toDomain(dto SlotCostDTO) (packaging.SlotCost, error) {
	return packaging.NewSlotCost(
		packaging.Type(dto.PackagingType),
		dto.WeightCapacityKg,
		dto.VolumeCapacityM3,
	)
}
