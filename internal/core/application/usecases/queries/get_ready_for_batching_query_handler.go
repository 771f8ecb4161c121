package queries

import (
	"context"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/requisition"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetReadyForBatchingQueryHandler retrieves batching candidates from the
// database. Only dispatch-ready, unassigned requisitions qualify; those rows
// always carry packaging totals, so the columns are read as non-null.
type GetReadyForBatchingQueryHandler struct {
	db *gorm.DB
}

// NewGetReadyForBatchingQueryHandler creates a handler for batching candidate queries.
// Requires a GORM database connection for query execution.
func NewGetReadyForBatchingQueryHandler(db *gorm.DB) GetReadyForBatchingQueryHandler {
	return GetReadyForBatchingQueryHandler{db: db}
}

// Handle executes the query to retrieve all batching candidates.
// Results are sorted by requisition ID for consistent output.
func (h GetReadyForBatchingQueryHandler) Handle(
	ctx context.Context,
	query GetReadyForBatchingQuery,
) ([]GetReadyForBatchingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]GetReadyForBatchingQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			workspace_id,
			packaging_rounded_slot_demand,
			packaging_total_weight_kg,
			packaging_total_volume_m3
		FROM requisitions
		WHERE status = ? AND batch_id IS NULL
		ORDER BY id
	`, requisition.ReadyForDispatch).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetReadyForBatchingQueryResponse
		var id, workspaceID uuid.UUID
		var roundedSlotDemand int64
		var totalWeightKg, totalVolumeM3 decimal.Decimal

		err = rows.Scan(
			&id,
			&workspaceID,
			&roundedSlotDemand,
			&totalWeightKg,
			&totalVolumeM3,
		)
		if err != nil {
			return nil, err
		}

		requisitionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = requisitionID

		wsID, wsErr := kernel.UUIDFromBytes(workspaceID[:])
		if wsErr != nil {
			return nil, wsErr
		}
		resp.WorkspaceID = wsID

		resp.RoundedSlotDemand = roundedSlotDemand
		resp.TotalWeightKg = totalWeightKg
		resp.TotalVolumeM3 = totalVolumeM3

		candidates = append(candidates, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}
