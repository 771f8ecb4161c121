package requisition

import (
	"errors"
	"fmt"
	"time"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/pkg/errs"
)

var (
	// ErrRequisitionIsNotConstructed is returned when a Requisition instance was
	// not created through NewRequisition or RestoreRequisition.
	ErrRequisitionIsNotConstructed = errors.New(
		"Requisition must be created via NewRequisition or RestoreRequisition constructor")

	// ErrPackagingAlreadyComputed is returned when packaging is attached to a
	// requisition that already carries a packaging artifact. Packaging is
	// computed exactly once; a second attach is a programming error, not a
	// recoverable workflow outcome.
	ErrPackagingAlreadyComputed = errors.New("packaging is already computed for this requisition")
)

// Timestamps groups the write-once lifecycle timestamps of a requisition.
// Each field is stamped by the transition that reaches the corresponding
// state and never cleared or overwritten afterwards.
type Timestamps struct {
	ApprovedAt         *time.Time
	PackagedAt         *time.Time
	ReadyForDispatchAt *time.Time
	AssignedToBatchAt  *time.Time
	InTransitAt        *time.Time
	CompletedAt        *time.Time
}

// Requisition is the aggregate root of the supply workflow. It owns its line
// items and its packaging snapshot by composition and carries a weak reference
// to the delivery batch it is assigned to.
//
// Requisition follows these invariants:
//   - Must have valid requisition and workspace identifiers
//   - Must hold at least one line item; items are immutable once submitted
//   - Status is mutated only through the guarded transition methods
//   - Packaging is attached exactly once, at the approved-to-packaged edge,
//     and is immutable afterwards
//   - Status fully determines which optional fields may be populated
//   - Lifecycle timestamps are write-once
//
// The version field supports optimistic-concurrency writes at the persistence
// boundary; the aggregate itself never assumes exclusivity.
type Requisition struct {
	id          kernel.UUID
	workspaceID kernel.UUID

	// version is the optimistic-concurrency counter of the persisted row
	version int

	status Status
	items  []Item

	// pkg is the frozen packaging artifact, nil until the requisition is packaged
	pkg *Packaging

	// batchID is a weak reference to the delivery batch, nil while unassigned
	batchID *kernel.UUID

	stamps          Timestamps
	rejectionReason string

	guard kernel.ConstructorGuard
}

// NewRequisition creates a new requisition in Pending status with validation.
// The item list must be non-empty and every item constructed via NewItem.
func NewRequisition(id, workspaceID kernel.UUID, items []Item) (*Requisition, error) {
	r := &Requisition{
		status:  Pending,
		version: 1,
		guard:   kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setWorkspaceID(workspaceID),
		r.setItems(items),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequisition reconstructs a requisition from persistence, revalidating
// the consistency between status and optional fields: a packaged-or-later
// requisition must carry packaging, an assigned-or-later one must carry a
// batch reference, and neither may appear earlier than its transition.
func RestoreRequisition(
	id, workspaceID kernel.UUID,
	version int,
	status Status,
	items []Item,
	pkg *Packaging,
	batchID *kernel.UUID,
	stamps Timestamps,
	rejectionReason string,
) (*Requisition, error) {
	r := &Requisition{
		stamps:          stamps,
		rejectionReason: rejectionReason,
		guard:           kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setWorkspaceID(workspaceID),
		r.setVersion(version),
		r.setStatus(status),
		r.setItems(items),
		r.setPackaging(pkg),
		r.setBatchID(batchID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Requisition was created through a constructor.
func (r *Requisition) Validate() error {
	if r == nil {
		return ErrRequisitionIsNotConstructed
	}
	return r.guard.Validate(ErrRequisitionIsNotConstructed)
}

// IsEqual compares two requisitions by their unique identifiers.
func (r *Requisition) IsEqual(other *Requisition) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the requisition's unique identifier.
func (r *Requisition) ID() kernel.UUID {
	return r.id
}

// WorkspaceID returns the workspace the requisition belongs to.
func (r *Requisition) WorkspaceID() kernel.UUID {
	return r.workspaceID
}

// Version returns the optimistic-concurrency counter of the persisted row.
func (r *Requisition) Version() int {
	return r.version
}

// Status returns the current lifecycle status.
func (r *Requisition) Status() Status {
	return r.status
}

// Items returns a copy of the requisition's line items.
func (r *Requisition) Items() []Item {
	return append([]Item(nil), r.items...)
}

// Packaging returns the frozen packaging artifact.
// Returns nil until the requisition reaches Packaged.
func (r *Requisition) Packaging() *Packaging {
	return r.pkg
}

// BatchID returns the assigned delivery batch's ID.
// Returns nil while the requisition is unassigned.
func (r *Requisition) BatchID() *kernel.UUID {
	return r.batchID
}

// Stamps returns the lifecycle timestamps recorded so far.
func (r *Requisition) Stamps() Timestamps {
	return r.stamps
}

// RejectionReason returns the reason recorded on the Pending->Rejected edge,
// empty for requisitions that were never rejected.
func (r *Requisition) RejectionReason() string {
	return r.rejectionReason
}

// IsReadyForBatching reports whether the requisition can be picked up by batch
// planning: dispatch-ready, with a final packaging artifact, and not yet
// assigned to a batch. Derived on demand, never stored.
func (r *Requisition) IsReadyForBatching() bool {
	return r.status == ReadyForDispatch && r.pkg.IsFinal() && r.batchID == nil
}

// Clone returns a deep copy of the requisition. The workflow mutates the copy
// and returns it, leaving the caller's value untouched so a failed persistence
// write can be retried from the original.
func (r *Requisition) Clone() *Requisition {
	clone := *r
	clone.items = append([]Item(nil), r.items...)
	clone.batchID = copyUUID(r.batchID)
	clone.stamps = Timestamps{
		ApprovedAt:         copyTime(r.stamps.ApprovedAt),
		PackagedAt:         copyTime(r.stamps.PackagedAt),
		ReadyForDispatchAt: copyTime(r.stamps.ReadyForDispatchAt),
		AssignedToBatchAt:  copyTime(r.stamps.AssignedToBatchAt),
		InTransitAt:        copyTime(r.stamps.InTransitAt),
		CompletedAt:        copyTime(r.stamps.CompletedAt),
	}
	// pkg is shared: the artifact is immutable once constructed.
	return &clone
}

// Approve moves a pending requisition to Approved and stamps approvedAt.
func (r *Requisition) Approve(at time.Time) error {
	if err := r.status.ValidateTransition(Approved); err != nil {
		return err
	}

	r.status = Approved
	stampOnce(&r.stamps.ApprovedAt, at)
	return nil
}

// Reject declines a pending requisition. The reason is mandatory: a rejection
// the requester cannot read is useless.
func (r *Requisition) Reject(reason string, _ time.Time) error {
	if err := r.status.ValidateTransition(Rejected); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewMissingRequirementError("rejection reason")
	}

	r.status = Rejected
	r.rejectionReason = reason
	return nil
}

// Cancel withdraws the requisition. Allowed from Pending, Approved, Packaged,
// and ReadyForDispatch; once batched the requisition must run to an outcome.
func (r *Requisition) Cancel(_ time.Time) error {
	if err := r.status.ValidateTransition(Cancelled); err != nil {
		return err
	}

	r.status = Cancelled
	return nil
}

// AttachPackaging freezes the computed packaging artifact onto an approved
// requisition and moves it to Packaged.
//
// Packaging existing before this edge is a programming error: the workflow
// computes it exactly once, during this transition. The check fails fast so
// the violation surfaces at the guilty call site.
func (r *Requisition) AttachPackaging(pkg *Packaging, at time.Time) error {
	if err := r.status.ValidateTransition(Packaged); err != nil {
		return err
	}
	if r.pkg != nil {
		return ErrPackagingAlreadyComputed
	}
	if err := pkg.Validate(); err != nil {
		return err
	}

	r.status = Packaged
	r.pkg = pkg
	stampOnce(&r.stamps.PackagedAt, at)
	return nil
}

// MarkReadyForDispatch releases a packaged requisition for batch planning.
func (r *Requisition) MarkReadyForDispatch(at time.Time) error {
	if err := r.status.ValidateTransition(ReadyForDispatch); err != nil {
		return err
	}

	r.status = ReadyForDispatch
	stampOnce(&r.stamps.ReadyForDispatchAt, at)
	return nil
}

// AssignToBatch binds the requisition to a delivery batch. The batch ID is
// required guard data; the batch's internal state is not validated here.
func (r *Requisition) AssignToBatch(batchID kernel.UUID, at time.Time) error {
	if err := r.status.ValidateTransition(AssignedToBatch); err != nil {
		return err
	}
	if err := batchID.Validate(); err != nil {
		return errs.NewMissingRequirementErrorWithCause("batch id", err)
	}

	r.status = AssignedToBatch
	r.batchID = &batchID
	stampOnce(&r.stamps.AssignedToBatchAt, at)
	return nil
}

// Unassign removes the requisition from its batch, returning it to
// ReadyForDispatch. This is the single reverse edge in the lifecycle.
// The assignedToBatchAt stamp survives; timestamps are never cleared.
func (r *Requisition) Unassign(_ time.Time) error {
	if err := r.status.ValidateTransition(ReadyForDispatch); err != nil {
		return err
	}

	r.status = ReadyForDispatch
	r.batchID = nil
	return nil
}

// StartTransit marks the batched requisition as having left the facility.
func (r *Requisition) StartTransit(at time.Time) error {
	if err := r.status.ValidateTransition(InTransit); err != nil {
		return err
	}

	r.status = InTransit
	stampOnce(&r.stamps.InTransitAt, at)
	return nil
}

// CompleteDelivery settles an in-transit requisition with one of the delivery
// outcomes: Fulfilled, PartiallyDelivered, or Failed.
func (r *Requisition) CompleteDelivery(outcome Status, at time.Time) error {
	if err := r.status.ValidateTransition(outcome); err != nil {
		return err
	}

	r.status = outcome
	stampOnce(&r.stamps.CompletedAt, at)
	return nil
}

func (r *Requisition) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Requisition) setWorkspaceID(workspaceID kernel.UUID) error {
	if err := workspaceID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("workspace id", err)
	}
	r.workspaceID = workspaceID
	return nil
}

func (r *Requisition) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsInvalidErrorWithCause("version is invalid",
			fmt.Errorf("%d is not greater than 0", version))
	}
	r.version = version
	return nil
}

func (r *Requisition) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Requisition) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	r.items = append([]Item(nil), items...)
	return nil
}

func (r *Requisition) setPackaging(pkg *Packaging) error {
	if pkg != nil {
		if err := pkg.Validate(); err != nil {
			return err
		}
	}

	if statusRequiresPackaging(r.status) && pkg == nil {
		return errs.NewValueIsRequiredErrorWithCause("packaging",
			fmt.Errorf("requisitions in %s status must carry packaging", r.status))
	}
	if statusForbidsPackaging(r.status) && pkg != nil {
		return errs.NewValueIsInvalidErrorWithCause("packaging is invalid",
			fmt.Errorf("requisitions in %s status cannot carry packaging", r.status))
	}

	r.pkg = pkg
	return nil
}

func (r *Requisition) setBatchID(batchID *kernel.UUID) error {
	if batchID != nil {
		if err := batchID.Validate(); err != nil {
			return err
		}
	}

	if statusRequiresBatch(r.status) && batchID == nil {
		return errs.NewValueIsRequiredErrorWithCause("batch id",
			fmt.Errorf("requisitions in %s status must reference a batch", r.status))
	}
	if !statusRequiresBatch(r.status) && batchID != nil {
		return errs.NewValueIsInvalidErrorWithCause("batch id is invalid",
			fmt.Errorf("requisitions in %s status cannot reference a batch", r.status))
	}

	r.batchID = batchID
	return nil
}

// statusRequiresPackaging reports whether the status implies the packaging
// artifact has been computed and must be present.
func statusRequiresPackaging(s Status) bool {
	switch s {
	case Packaged, ReadyForDispatch, AssignedToBatch, InTransit,
		Fulfilled, PartiallyDelivered, Failed:
		return true
	default:
		return false
	}
}

// statusForbidsPackaging reports whether the status precedes the packaging
// edge, meaning packaging must not exist yet. Cancelled is neither required
// nor forbidden: cancellation is reachable both before and after packaging.
func statusForbidsPackaging(s Status) bool {
	switch s {
	case Pending, Approved, Rejected:
		return true
	default:
		return false
	}
}

// statusRequiresBatch reports whether the status implies an active batch
// reference. ReadyForDispatch is excluded: unassignment clears the reference.
func statusRequiresBatch(s Status) bool {
	switch s {
	case AssignedToBatch, InTransit, Fulfilled, PartiallyDelivered, Failed:
		return true
	default:
		return false
	}
}

func stampOnce(field **time.Time, at time.Time) {
	if *field == nil {
		*field = &at
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func copyUUID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
