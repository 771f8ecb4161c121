package http

import (
	"errors"
	"net/http"
	"time"

	"requisition/internal/core/application/usecases/commands"
	"requisition/internal/core/application/usecases/queries"
	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/packaging"
	"requisition/internal/core/domain/model/requisition"
	"requisition/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server handles the HTTP surface of the requisition service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitRequisitionHandler     commands.SubmitRequisitionCommandHandler
	transitionRequisitionHandler commands.TransitionRequisitionCommandHandler

	// Query handlers
	getActiveRequisitionsHandler queries.GetActiveRequisitionsQueryHandler
	getReadyForBatchingHandler   queries.GetReadyForBatchingQueryHandler
	previewPackagingHandler      queries.PreviewPackagingQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitRequisitionHandler commands.SubmitRequisitionCommandHandler,
	transitionRequisitionHandler commands.TransitionRequisitionCommandHandler,
	getActiveRequisitionsHandler queries.GetActiveRequisitionsQueryHandler,
	getReadyForBatchingHandler queries.GetReadyForBatchingQueryHandler,
	previewPackagingHandler queries.PreviewPackagingQueryHandler,
) *Server {
	return &Server{
		submitRequisitionHandler:     submitRequisitionHandler,
		transitionRequisitionHandler: transitionRequisitionHandler,
		getActiveRequisitionsHandler: getActiveRequisitionsHandler,
		getReadyForBatchingHandler:   getReadyForBatchingHandler,
		previewPackagingHandler:      previewPackagingHandler,
	}
}

// RegisterRoutes attaches all requisition endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/requisitions", s.SubmitRequisition)
	e.POST("/api/v1/requisitions/:id/transitions", s.TransitionRequisition)
	e.GET("/api/v1/requisitions", s.GetActiveRequisitions)
	e.GET("/api/v1/requisitions/ready-for-batching", s.GetReadyForBatching)
	e.POST("/api/v1/packaging/preview", s.PreviewPackaging)
}

// SubmitRequisition handles POST /api/v1/requisitions - submits a new requisition.
func (s *Server) SubmitRequisition(ctx echo.Context) error {
	var body NewRequisition
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	workspaceID, err := kernel.UUIDFromString(body.WorkspaceID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid workspace id: " + err.Error(),
		})
	}

	items, err := parseItems(body.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid requisition items: " + err.Error(),
		})
	}

	requisitionID := kernel.NewUUID()
	cmd, err := commands.NewSubmitRequisitionCommand(requisitionID, workspaceID, items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid requisition data: " + err.Error(),
		})
	}

	if handleErr := s.submitRequisitionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, RequisitionCreated{ID: requisitionID.String()})
}

// TransitionRequisition handles POST /api/v1/requisitions/:id/transitions -
// attempts to move a requisition to a target status. A transition denied by
// the workflow returns 409 with the outcome; the requisition is unchanged.
func (s *Server) TransitionRequisition(ctx echo.Context) error {
	requisitionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid requisition id: " + err.Error(),
		})
	}

	var body NewTransition
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := requisition.StatusFromString(body.Target)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid target status: " + err.Error(),
		})
	}

	var batchID *kernel.UUID
	if body.BatchID != nil {
		parsed, idErr := kernel.UUIDFromString(*body.BatchID)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid batch id: " + idErr.Error(),
			})
		}
		batchID = &parsed
	}

	cmd, err := commands.NewTransitionRequisitionCommand(requisitionID, target, batchID, body.RejectionReason)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid transition data: " + err.Error(),
		})
	}

	result, err := s.transitionRequisitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	outcome := TransitionOutcome{
		Success:   result.Success,
		From:      result.From.String(),
		To:        result.To.String(),
		Timestamp: result.Timestamp.Format(time.RFC3339),
	}
	if !result.Success {
		outcome.Error = result.Err.Error()
		return ctx.JSON(http.StatusConflict, outcome)
	}

	return ctx.JSON(http.StatusOK, outcome)
}

// GetActiveRequisitions handles GET /api/v1/requisitions - retrieves all
// requisitions still moving through the lifecycle.
func (s *Server) GetActiveRequisitions(ctx echo.Context) error {
	query := queries.NewGetActiveRequisitionsQuery()

	active, err := s.getActiveRequisitionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve requisitions",
		})
	}

	response := make([]Requisition, len(active))
	for i, r := range active {
		response[i] = Requisition{
			ID:                r.ID.String(),
			WorkspaceID:       r.WorkspaceID.String(),
			Status:            r.Status.String(),
			RoundedSlotDemand: r.RoundedSlotDemand,
		}
		if r.BatchID != nil {
			batchID := r.BatchID.String()
			response[i].BatchID = &batchID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetReadyForBatching handles GET /api/v1/requisitions/ready-for-batching -
// retrieves the requisitions batch planning may pick up.
func (s *Server) GetReadyForBatching(ctx echo.Context) error {
	query := queries.NewGetReadyForBatchingQuery()

	candidates, err := s.getReadyForBatchingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve batching candidates",
		})
	}

	response := make([]BatchingCandidate, len(candidates))
	for i, c := range candidates {
		response[i] = BatchingCandidate{
			ID:                c.ID.String(),
			WorkspaceID:       c.WorkspaceID.String(),
			RoundedSlotDemand: c.RoundedSlotDemand,
			TotalWeightKg:     c.TotalWeightKg.String(),
			TotalVolumeM3:     c.TotalVolumeM3.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PreviewPackaging handles POST /api/v1/packaging/preview - computes the
// packaging figures a set of items would produce, without persisting anything.
func (s *Server) PreviewPackaging(ctx echo.Context) error {
	var body PackagingPreviewRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := parseItems(body.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid preview items: " + err.Error(),
		})
	}

	query, err := queries.NewPreviewPackagingQuery(items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid preview data: " + err.Error(),
		})
	}

	preview, err := s.previewPackagingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := PackagingPreview{
		Items:             make([]PackagingPreviewItem, len(preview.Items)),
		TotalSlotDemand:   preview.TotalSlotDemand.String(),
		RoundedSlotDemand: preview.RoundedSlotDemand,
		TotalWeightKg:     preview.TotalWeightKg.String(),
		TotalVolumeM3:     preview.TotalVolumeM3.String(),
	}
	for i, item := range preview.Items {
		response.Items[i] = PackagingPreviewItem{
			ItemID:        item.ItemID.String(),
			PackagingType: item.PackagingType.String(),
			SlotShare:     item.SlotShare.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// parseItems converts payload items into domain line items.
func parseItems(payload []RequisitionItem) ([]requisition.Item, error) {
	items := make([]requisition.Item, 0, len(payload))
	for _, p := range payload {
		itemID, err := kernel.UUIDFromString(p.ItemID)
		if err != nil {
			return nil, err
		}

		unitWeightKg, err := decimal.NewFromString(p.UnitWeightKg)
		if err != nil {
			return nil, err
		}

		unitVolumeM3, err := decimal.NewFromString(p.UnitVolumeM3)
		if err != nil {
			return nil, err
		}

		packagingType, err := packaging.TypeFromString(p.PackagingType)
		if err != nil {
			return nil, err
		}

		item, err := requisition.NewItem(itemID, p.Quantity, unitWeightKg, unitVolumeM3, packagingType)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// writeError maps application errors onto HTTP status codes.
// Not-found is 404, concurrency and lifecycle conflicts are 409, and domain
// validation failures are 422; anything else is a 500.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	var versionErr *errs.VersionIsInvalidError
	var transitionErr *errs.InvalidTransitionError
	var unknownTypeErr *errs.UnknownPackagingTypeError
	var requirementErr *errs.MissingRequirementError
	var invalidErr *errs.ValueIsInvalidError
	var requiredErr *errs.ValueIsRequiredError

	switch {
	case errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &versionErr), errors.As(err, &transitionErr):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.As(err, &unknownTypeErr),
		errors.As(err, &requirementErr),
		errors.As(err, &invalidErr),
		errors.As(err, &requiredErr):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
