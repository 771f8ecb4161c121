package queries

import (
	"context"
	"database/sql"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/requisition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveRequisitionsQueryHandler retrieves in-flight requisitions from the
// database. Terminal statuses are filtered out in SQL so the workflow's
// monitoring surface only carries rows that can still change.
//
// Example:
//
//	handler := NewGetActiveRequisitionsQueryHandler(db)
//	query := NewGetActiveRequisitionsQuery()
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active requisitions: %v", err)
//	    return err
//	}
type GetActiveRequisitionsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveRequisitionsQueryHandler creates a handler for active requisition queries.
// Requires a GORM database connection for query execution.
func NewGetActiveRequisitionsQueryHandler(db *gorm.DB) GetActiveRequisitionsQueryHandler {
	return GetActiveRequisitionsQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal requisitions.
// Results are sorted by requisition ID for consistent output.
func (h GetActiveRequisitionsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveRequisitionsQuery,
) ([]GetActiveRequisitionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requisitions := make([]GetActiveRequisitionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			workspace_id,
			status,
			packaging_rounded_slot_demand,
			batch_id
		FROM requisitions
		WHERE status NOT IN (?, ?, ?, ?, ?)
		ORDER BY id
	`,
		requisition.Fulfilled,
		requisition.PartiallyDelivered,
		requisition.Failed,
		requisition.Rejected,
		requisition.Cancelled,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveRequisitionsQueryResponse
		var id, workspaceID uuid.UUID
		var status int
		var roundedSlotDemand sql.NullInt64
		var batchID *uuid.UUID

		err = rows.Scan(
			&id,
			&workspaceID,
			&status,
			&roundedSlotDemand,
			&batchID,
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

		resp.Status = requisition.Status(status)
		if statusErr := resp.Status.Validate(); statusErr != nil {
			return nil, statusErr
		}

		if roundedSlotDemand.Valid {
			demand := roundedSlotDemand.Int64
			resp.RoundedSlotDemand = &demand
		}

		if batchID != nil {
			bID, batchErr := kernel.UUIDFromBytes((*batchID)[:])
			if batchErr != nil {
				return nil, batchErr
			}
			resp.BatchID = &bID
		}

		requisitions = append(requisitions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requisitions, nil
}
