// Package requisitionrepo provides data transfer objects and mapping functions
// for requisition persistence. This package implements the repository pattern
// for the requisition domain aggregate, handling the conversion between domain
// entities and database representations.
package requisitionrepo

import (
	"time"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/packaging"
	"requisition/internal/core/domain/model/requisition"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequisitionDTO represents the database structure for persisting requisition
// aggregates. The packaging artifact's totals are embedded as nullable columns
// on the requisition row; line items and per-item packaging entries live in
// child tables keyed by the requisition ID.
type RequisitionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;index"`
	Status      int       `gorm:"index"`

	// Version is the optimistic-concurrency counter checked by Update.
	Version int

	BatchID         *uuid.UUID `gorm:"type:uuid;index"`
	RejectionReason string

	PackagingTotalSlotDemand   decimal.NullDecimal `gorm:"type:numeric"`
	PackagingTotalWeightKg     decimal.NullDecimal `gorm:"type:numeric"`
	PackagingTotalVolumeM3     decimal.NullDecimal `gorm:"type:numeric"`
	PackagingRoundedSlotDemand *int64

	ApprovedAt         *time.Time
	PackagedAt         *time.Time
	ReadyForDispatchAt *time.Time
	AssignedToBatchAt  *time.Time
	InTransitAt        *time.Time
	CompletedAt        *time.Time

	Items          []RequisitionItemDTO `gorm:"foreignKey:RequisitionID;constraint:OnDelete:CASCADE"`
	PackagingItems []PackagingItemDTO   `gorm:"foreignKey:RequisitionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for requisition entities.
func (RequisitionDTO) TableName() string {
	return "requisitions"
}

// RequisitionItemDTO represents a requisition line item row.
type RequisitionItemDTO struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	RequisitionID uuid.UUID `gorm:"type:uuid;index"`
	ItemID        uuid.UUID `gorm:"type:uuid"`
	Quantity      int
	UnitWeightKg  decimal.Decimal `gorm:"type:numeric"`
	UnitVolumeM3  decimal.Decimal `gorm:"type:numeric"`
	PackagingType int
}

// TableName specifies the database table name for requisition line items.
func (RequisitionItemDTO) TableName() string {
	return "requisition_items"
}

// PackagingItemDTO represents one entry of the frozen packaging artifact.
type PackagingItemDTO struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	RequisitionID uuid.UUID `gorm:"type:uuid;index"`
	ItemID        uuid.UUID `gorm:"type:uuid"`
	PackagingType int
	SlotShare     decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for packaging entries.
func (PackagingItemDTO) TableName() string {
	return "requisition_packaging_items"
}

// fromDomain converts a requisition domain aggregate to its database representation.
func fromDomain(aggregate *requisition.Requisition) RequisitionDTO {
	requisitionID := aggregate.ID().Bytes()

	var batchID *uuid.UUID
	if id := aggregate.BatchID(); id != nil {
		raw := id.Bytes()
		batchID = &raw
	}

	stamps := aggregate.Stamps()
	dto := RequisitionDTO{
		ID:                 requisitionID,
		WorkspaceID:        aggregate.WorkspaceID().Bytes(),
		Status:             int(aggregate.Status()),
		Version:            aggregate.Version(),
		BatchID:            batchID,
		RejectionReason:    aggregate.RejectionReason(),
		ApprovedAt:         stamps.ApprovedAt,
		PackagedAt:         stamps.PackagedAt,
		ReadyForDispatchAt: stamps.ReadyForDispatchAt,
		AssignedToBatchAt:  stamps.AssignedToBatchAt,
		InTransitAt:        stamps.InTransitAt,
		CompletedAt:        stamps.CompletedAt,
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, RequisitionItemDTO{
			RequisitionID: requisitionID,
			ItemID:        item.ItemID().Bytes(),
			Quantity:      item.Quantity(),
			UnitWeightKg:  item.UnitWeightKg(),
			UnitVolumeM3:  item.UnitVolumeM3(),
			PackagingType: int(item.PackagingType()),
		})
	}

	if pkg := aggregate.Packaging(); pkg != nil {
		rounded := pkg.RoundedSlotDemand()
		dto.PackagingTotalSlotDemand = decimal.NewNullDecimal(pkg.TotalSlotDemand())
		dto.PackagingTotalWeightKg = decimal.NewNullDecimal(pkg.TotalWeightKg())
		dto.PackagingTotalVolumeM3 = decimal.NewNullDecimal(pkg.TotalVolumeM3())
		dto.PackagingRoundedSlotDemand = &rounded

		for _, entry := range pkg.Items() {
			dto.PackagingItems = append(dto.PackagingItems, PackagingItemDTO{
				RequisitionID: requisitionID,
				ItemID:        entry.ItemID().Bytes(),
				PackagingType: int(entry.PackagingType()),
				SlotShare:     entry.SlotShare(),
			})
		}
	}

	return dto
}

// toDomain converts a database DTO back into a requisition domain aggregate.
// The packaging artifact is rebuilt through its constructor, so the rounding
// law is re-derived rather than trusted from the stored column.
func toDomain(dto RequisitionDTO) (*requisition.Requisition, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	workspaceID, err := kernel.UUIDFromBytes(dto.WorkspaceID[:])
	if err != nil {
		return nil, err
	}

	var batchID *kernel.UUID
	if dto.BatchID != nil {
		bID, batchErr := kernel.UUIDFromBytes((*dto.BatchID)[:])
		if batchErr != nil {
			return nil, batchErr
		}
		batchID = &bID
	}

	items := make([]requisition.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := requisition.NewItem(
			itemID,
			itemDTO.Quantity,
			itemDTO.UnitWeightKg,
			itemDTO.UnitVolumeM3,
			packaging.Type(itemDTO.PackagingType),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	pkg, err := packagingToDomain(dto)
	if err != nil {
		return nil, err
	}

	return requisition.RestoreRequisition(
		id,
		workspaceID,
		dto.Version,
		requisition.Status(dto.Status),
		items,
		pkg,
		batchID,
		requisition.Timestamps{
			ApprovedAt:         dto.ApprovedAt,
			PackagedAt:         dto.PackagedAt,
			ReadyForDispatchAt: dto.ReadyForDispatchAt,
			AssignedToBatchAt:  dto.AssignedToBatchAt,
			InTransitAt:        dto.InTransitAt,
			CompletedAt:        dto.CompletedAt,
		},
		dto.RejectionReason,
	)
}

func packagingToDomain(dto RequisitionDTO) (*requisition.Packaging, error) {
	if !dto.PackagingTotalSlotDemand.Valid {
		return nil, nil
	}

	entries := make([]requisition.PackagingItem, 0, len(dto.PackagingItems))
	for _, entryDTO := range dto.PackagingItems {
		itemID, err := kernel.UUIDFromBytes(entryDTO.ItemID[:])
		if err != nil {
			return nil, err
		}

		entry, err := requisition.NewPackagingItem(
			itemID,
			packaging.Type(entryDTO.PackagingType),
			entryDTO.SlotShare,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return requisition.NewPackaging(
		entries,
		dto.PackagingTotalSlotDemand.Decimal,
		dto.PackagingTotalWeightKg.Decimal,
		dto.PackagingTotalVolumeM3.Decimal,
	)
}
