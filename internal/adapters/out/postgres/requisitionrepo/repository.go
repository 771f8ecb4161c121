package requisitionrepo

import (
	"context"
	"errors"
	"fmt"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/requisition"
	"requisition/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequisitionRepository implements RequisitionRepository using GORM.
type GormRequisitionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequisitionRepository creates a new GORM requisition repository.
func NewGormRequisitionRepository(db *gorm.DB, tracker aggregateTracker) *GormRequisitionRepository {
	return &GormRequisitionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new requisition to the database, including its line items.
func (r *GormRequisitionRepository) Add(ctx context.Context, aggregate *requisition.Requisition) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing requisition with a compare-and-swap on its version.
// The write succeeds only when the stored version still matches the version
// the aggregate was loaded with; the row's version is advanced by one in the
// same statement. Zero affected rows means a concurrent writer got there
// first and is reported as a version conflict.
func (r *GormRequisitionRepository) Update(ctx context.Context, aggregate *requisition.Requisition) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	updates := map[string]any{
		"status":                        dto.Status,
		"version":                       dto.Version + 1,
		"batch_id":                      dto.BatchID,
		"rejection_reason":              dto.RejectionReason,
		"packaging_total_slot_demand":   dto.PackagingTotalSlotDemand,
		"packaging_total_weight_kg":     dto.PackagingTotalWeightKg,
		"packaging_total_volume_m3":     dto.PackagingTotalVolumeM3,
		"packaging_rounded_slot_demand": dto.PackagingRoundedSlotDemand,
		"approved_at":                   dto.ApprovedAt,
		"packaged_at":                   dto.PackagedAt,
		"ready_for_dispatch_at":         dto.ReadyForDispatchAt,
		"assigned_to_batch_at":          dto.AssignedToBatchAt,
		"in_transit_at":                 dto.InTransitAt,
		"completed_at":                  dto.CompletedAt,
	}

	result := r.db.WithContext(ctx).Model(&RequisitionDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError(
			"requisition version",
			fmt.Errorf("requisition %s was modified concurrently at version %d",
				aggregate.ID(), dto.Version),
		)
	}

	if err := r.syncPackagingItems(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// syncPackagingItems replaces the stored packaging entries with the
// aggregate's current ones. The artifact is immutable once attached, so this
// only ever inserts rows on the transition that computes it; the
// delete-then-insert keeps the write idempotent across retries.
func (r *GormRequisitionRepository) syncPackagingItems(ctx context.Context, dto RequisitionDTO) error {
	if len(dto.PackagingItems) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).
		Where("requisition_id = ?", dto.ID).
		Delete(&PackagingItemDTO{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto.PackagingItems).Error
}

// Get retrieves a requisition by ID, with its line items and packaging entries.
func (r *GormRequisitionRepository) Get(ctx context.Context, id kernel.UUID) (*requisition.Requisition, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequisitionDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("PackagingItems").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("requisition", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInPackagedStatus retrieves all requisitions awaiting dispatch release.
func (r *GormRequisitionRepository) GetAllInPackagedStatus(ctx context.Context) ([]*requisition.Requisition, error) {
	return r.findAll(ctx, "status = ?", int(requisition.Packaged))
}

// GetAllReadyForBatching retrieves all requisitions that batch planning may
// pick up: dispatch-ready and not yet assigned to a batch.
func (r *GormRequisitionRepository) GetAllReadyForBatching(ctx context.Context) ([]*requisition.Requisition, error) {
	return r.findAll(ctx, "status = ? AND batch_id IS NULL", int(requisition.ReadyForDispatch))
}

func (r *GormRequisitionRepository) findAll(
	ctx context.Context,
	condition string,
	args ...any,
) ([]*requisition.Requisition, error) {
	var dtos []RequisitionDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("PackagingItems").
		Where(condition, args...).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	aggregates := make([]*requisition.Requisition, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}
