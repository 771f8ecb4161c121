package http

// Error is the common error payload returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RequisitionItem is one requested line item. Weight and volume travel as
// decimal strings so no precision is lost in transit.
type RequisitionItem struct {
	ItemID        string `json:"item_id"`
	Quantity      int    `json:"quantity"`
	UnitWeightKg  string `json:"unit_weight_kg"`
	UnitVolumeM3  string `json:"unit_volume_m3"`
	PackagingType string `json:"packaging_type"`
}

// NewRequisition is the request body for submitting a requisition.
type NewRequisition struct {
	WorkspaceID string            `json:"workspace_id"`
	Items       []RequisitionItem `json:"items"`
}

// RequisitionCreated is the response body for a successful submission.
type RequisitionCreated struct {
	ID string `json:"id"`
}

// NewTransition is the request body for transitioning a requisition.
// BatchID is required for assignment edges; RejectionReason for rejection.
type NewTransition struct {
	Target          string  `json:"target"`
	BatchID         *string `json:"batch_id,omitempty"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
}

// TransitionOutcome reports what the workflow decided for a transition
// request. A denied transition is a valid outcome, not a transport error;
// Error carries the rule that denied it.
type TransitionOutcome struct {
	Success   bool   `json:"success"`
	From      string `json:"from"`
	To        string `json:"to"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// Requisition is one in-flight requisition in listing responses.
type Requisition struct {
	ID                string  `json:"id"`
	WorkspaceID       string  `json:"workspace_id"`
	Status            string  `json:"status"`
	RoundedSlotDemand *int64  `json:"rounded_slot_demand,omitempty"`
	BatchID           *string `json:"batch_id,omitempty"`
}

// BatchingCandidate is one dispatch-ready requisition with the demand
// figures batch planners size against.
type BatchingCandidate struct {
	ID                string `json:"id"`
	WorkspaceID       string `json:"workspace_id"`
	RoundedSlotDemand int64  `json:"rounded_slot_demand"`
	TotalWeightKg     string `json:"total_weight_kg"`
	TotalVolumeM3     string `json:"total_volume_m3"`
}

// PackagingPreviewRequest is the request body for a packaging preview.
type PackagingPreviewRequest struct {
	Items []RequisitionItem `json:"items"`
}

// PackagingPreviewItem is one item's share of a packaging preview.
type PackagingPreviewItem struct {
	ItemID        string `json:"item_id"`
	PackagingType string `json:"packaging_type"`
	SlotShare     string `json:"slot_share"`
}

// PackagingPreview is the computed packaging figures for a preview request.
type PackagingPreview struct {
	Items             []PackagingPreviewItem `json:"items"`
	TotalSlotDemand   string                 `json:"total_slot_demand"`
	RoundedSlotDemand int64                  `json:"rounded_slot_demand"`
	TotalWeightKg     string                 `json:"total_weight_kg"`
	TotalVolumeM3     string                 `json:"total_volume_m3"`
}
