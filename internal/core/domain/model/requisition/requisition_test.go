package requisition_test

import (
	"testing"
	"time"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/packaging"
	"requisition/internal/core/domain/model/requisition"
	"requisition/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []requisition.Item {
	t.Helper()

	item, err := requisition.NewItem(
		kernel.NewUUID(),
		2,
		decimal.RequireFromString("1.5"),
		decimal.RequireFromString("0.2"),
		packaging.Parcel,
	)
	require.NoError(t, err)
	return []requisition.Item{item}
}

func testPackaging(t *testing.T) *requisition.Packaging {
	t.Helper()

	entry, err := requisition.NewPackagingItem(
		kernel.NewUUID(), packaging.Parcel, decimal.RequireFromString("0.4"))
	require.NoError(t, err)

	pkg, err := requisition.NewPackaging(
		[]requisition.PackagingItem{entry},
		decimal.RequireFromString("0.4"),
		decimal.RequireFromString("3"),
		decimal.RequireFromString("0.4"),
	)
	require.NoError(t, err)
	return pkg
}

func pendingRequisition(t *testing.T) *requisition.Requisition {
	t.Helper()

	r, err := requisition.NewRequisition(kernel.NewUUID(), kernel.NewUUID(), testItems(t))
	require.NoError(t, err)
	return r
}

// inTransitRequisition walks a fresh requisition up to InTransit through the
// guarded mutators, returning it together with its batch ID.
func inTransitRequisition(t *testing.T, at time.Time) (*requisition.Requisition, kernel.UUID) {
	t.Helper()

	r := pendingRequisition(t)
	batchID := kernel.NewUUID()

	require.NoError(t, r.Approve(at))
	require.NoError(t, r.AttachPackaging(testPackaging(t), at))
	require.NoError(t, r.MarkReadyForDispatch(at))
	require.NoError(t, r.AssignToBatch(batchID, at))
	require.NoError(t, r.StartTransit(at))
	return r, batchID
}

func TestNewRequisition(t *testing.T) {
	validID := kernel.NewUUID()
	validWorkspace := kernel.NewUUID()

	t.Run("should create pending requisition with valid parameters", func(t *testing.T) {
		items := testItems(t)

		r, err := requisition.NewRequisition(validID, validWorkspace, items)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(validID))
		assert.True(t, r.WorkspaceID().IsEqual(validWorkspace))
		assert.Equal(t, requisition.Pending, r.Status())
		assert.Equal(t, 1, r.Version())
		assert.Len(t, r.Items(), 1)
		assert.Nil(t, r.Packaging())
		assert.Nil(t, r.BatchID())
		assert.Empty(t, r.RejectionReason())
	})

	t.Run("should fail with invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		r, err := requisition.NewRequisition(invalidID, validWorkspace, testItems(t))

		require.Error(t, err)
		assert.Nil(t, r)
	})

	t.Run("should fail with invalid workspace ID", func(t *testing.T) {
		var invalidWorkspace kernel.UUID

		r, err := requisition.NewRequisition(validID, invalidWorkspace, testItems(t))

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "workspace id")
	})

	t.Run("should fail with empty item list", func(t *testing.T) {
		r, err := requisition.NewRequisition(validID, validWorkspace, nil)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with default-constructed item", func(t *testing.T) {
		r, err := requisition.NewRequisition(
			validID, validWorkspace, []requisition.Item{{}})

		require.Error(t, err)
		assert.Nil(t, r)
	})

	t.Run("should copy the item slice", func(t *testing.T) {
		items := testItems(t)

		r, err := requisition.NewRequisition(validID, validWorkspace, items)
		require.NoError(t, err)

		items[0] = requisition.Item{}
		assert.NoError(t, r.Items()[0].Validate())
	})

	t.Run("should fail validation for default-constructed requisition", func(t *testing.T) {
		var r requisition.Requisition

		require.Error(t, r.Validate())
	})
}

func TestRestoreRequisition(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should restore pending requisition", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := requisition.RestoreRequisition(
			id, kernel.NewUUID(), 3, requisition.Pending, testItems(t),
			nil, nil, requisition.Timestamps{}, "")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, 3, r.Version())
		assert.Equal(t, requisition.Pending, r.Status())
	})

	t.Run("should restore in-transit requisition with packaging and batch", func(t *testing.T) {
		batchID := kernel.NewUUID()

		r, err := requisition.RestoreRequisition(
			kernel.NewUUID(), kernel.NewUUID(), 5, requisition.InTransit, testItems(t),
			testPackaging(t), &batchID,
			requisition.Timestamps{ApprovedAt: &now, PackagedAt: &now}, "")

		require.NoError(t, err)
		assert.NotNil(t, r.Packaging())
		require.NotNil(t, r.BatchID())
		assert.True(t, r.BatchID().IsEqual(batchID))
	})

	t.Run("should fail with zero version", func(t *testing.T) {
		_, err := requisition.RestoreRequisition(
			kernel.NewUUID(), kernel.NewUUID(), 0, requisition.Pending, testItems(t),
			nil, nil, requisition.Timestamps{}, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "version is invalid")
	})

	t.Run("should fail with unknown status", func(t *testing.T) {
		_, err := requisition.RestoreRequisition(
			kernel.NewUUID(), kernel.NewUUID(), 1, requisition.Unknown, testItems(t),
			nil, nil, requisition.Timestamps{}, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should require packaging from packaged status onwards", func(t *testing.T) {
		_, err := requisition.RestoreRequisition(
			kernel.NewUUID(), kernel.NewUUID(), 1, requisition.Packaged, testItems(t),
			nil, nil, requisition.Timestamps{}, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must carry packaging")
	})

	t.Run("should forbid packaging before the packaged status", func(t *testing.T) {
		_, err := requisition.RestoreRequisition(
			kernel.NewUUID(), kernel.NewUUID(), 1, requisition.Approved, testItems(t),
			testPackaging(t), nil, requisition.Timestamps{}, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot carry packaging")
	})

	t.Run("should allow cancelled requisition with or without packaging", func(t *testing.T) {
		_, err := requisition.RestoreRequisition(
			kernel.NewUUID(), kernel.NewUUID(), 1, requisition.Cancelled, testItems(t),
			nil, nil, requisition.Timestamps{}, "")
		require.NoError(t, err)

		_, err = requisition.RestoreRequisition(
			kernel.NewUUID(), kernel.NewUUID(), 2, requisition.Cancelled, testItems(t),
			testPackaging(t), nil, requisition.Timestamps{}, "")
		require.NoError(t, err)
	})

	t.Run("should require batch reference for assigned status", func(t *testing.T) {
		_, err := requisition.RestoreRequisition(
			kernel.NewUUID(), kernel.NewUUID(), 1, requisition.AssignedToBatch, testItems(t),
			testPackaging(t), nil, requisition.Timestamps{}, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must reference a batch")
	})

	t.Run("should forbid batch reference for dispatch-ready status", func(t *testing.T) {
		batchID := kernel.NewUUID()

		_, err := requisition.RestoreRequisition(
			kernel.NewUUID(), kernel.NewUUID(), 1, requisition.ReadyForDispatch, testItems(t),
			testPackaging(t), &batchID, requisition.Timestamps{}, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot reference a batch")
	})
}

func TestRequisitionApprove(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should move pending requisition to approved", func(t *testing.T) {
		r := pendingRequisition(t)

		err := r.Approve(now)

		require.NoError(t, err)
		assert.Equal(t, requisition.Approved, r.Status())
		require.NotNil(t, r.Stamps().ApprovedAt)
		assert.True(t, r.Stamps().ApprovedAt.Equal(now))
	})

	t.Run("should fail from approved", func(t *testing.T) {
		r := pendingRequisition(t)
		require.NoError(t, r.Approve(now))

		err := r.Approve(now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "from Approved to Approved")
	})
}

func TestRequisitionReject(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should reject pending requisition with reason", func(t *testing.T) {
		r := pendingRequisition(t)

		err := r.Reject("item out of stock", now)

		require.NoError(t, err)
		assert.Equal(t, requisition.Rejected, r.Status())
		assert.Equal(t, "item out of stock", r.RejectionReason())
		assert.True(t, r.Status().IsTerminal())
	})

	t.Run("should fail without a reason", func(t *testing.T) {
		r := pendingRequisition(t)

		err := r.Reject("", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrMissingRequirement)
		assert.Contains(t, err.Error(), "rejection reason")
		assert.Equal(t, requisition.Pending, r.Status())
	})

	t.Run("should fail from approved", func(t *testing.T) {
		r := pendingRequisition(t)
		require.NoError(t, r.Approve(now))

		err := r.Reject("too late", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRequisitionCancel(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should cancel from every pre-batch status", func(t *testing.T) {
		r := pendingRequisition(t)
		require.NoError(t, r.Cancel(now))
		assert.Equal(t, requisition.Cancelled, r.Status())

		r = pendingRequisition(t)
		require.NoError(t, r.Approve(now))
		require.NoError(t, r.Cancel(now))

		r = pendingRequisition(t)
		require.NoError(t, r.Approve(now))
		require.NoError(t, r.AttachPackaging(testPackaging(t), now))
		require.NoError(t, r.Cancel(now))

		r = pendingRequisition(t)
		require.NoError(t, r.Approve(now))
		require.NoError(t, r.AttachPackaging(testPackaging(t), now))
		require.NoError(t, r.MarkReadyForDispatch(now))
		require.NoError(t, r.Cancel(now))
	})

	t.Run("should fail once assigned to a batch", func(t *testing.T) {
		r := pendingRequisition(t)
		require.NoError(t, r.Approve(now))
		require.NoError(t, r.AttachPackaging(testPackaging(t), now))
		require.NoError(t, r.MarkReadyForDispatch(now))
		require.NoError(t, r.AssignToBatch(kernel.NewUUID(), now))

		err := r.Cancel(now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRequisitionAttachPackaging(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should attach packaging to approved requisition", func(t *testing.T) {
		r := pendingRequisition(t)
		require.NoError(t, r.Approve(now))
		pkg := testPackaging(t)

		err := r.AttachPackaging(pkg, now)

		require.NoError(t, err)
		assert.Equal(t, requisition.Packaged, r.Status())
		require.NotNil(t, r.Packaging())
		assert.True(t, r.Packaging().IsEqual(pkg))
		assert.True(t, r.Packaging().IsFinal())
		require.NotNil(t, r.Stamps().PackagedAt)
		assert.True(t, r.Stamps().PackagedAt.Equal(now))
	})

	t.Run("should fail from pending", func(t *testing.T) {
		r := pendingRequisition(t)

		err := r.AttachPackaging(testPackaging(t), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "from Pending to Packaged")
		assert.Nil(t, r.Packaging())
	})

	t.Run("should fail with nil packaging", func(t *testing.T) {
		r := pendingRequisition(t)
		require.NoError(t, r.Approve(now))

		err := r.AttachPackaging(nil, now)

		require.Error(t, err)
		assert.Equal(t, requisition.Approved, r.Status())
	})

	t.Run("should fail when packaging already computed", func(t *testing.T) {
		batchID := kernel.NewUUID()
		r, err := requisition.RestoreRequisition(
			kernel.NewUUID(), kernel.NewUUID(), 2, requisition.AssignedToBatch, testItems(t),
			testPackaging(t), &batchID, requisition.Timestamps{}, "")
		require.NoError(t, err)
		require.NoError(t, r.Unassign(now))

		// walk the reverse edge and try to re-enter the packaging edge
		err = r.AttachPackaging(testPackaging(t), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRequisitionAssignToBatch(t *testing.T) {
	now := time.Now().UTC()

	readyRequisition := func(t *testing.T) *requisition.Requisition {
		t.Helper()
		r := pendingRequisition(t)
		require.NoError(t, r.Approve(now))
		require.NoError(t, r.AttachPackaging(testPackaging(t), now))
		require.NoError(t, r.MarkReadyForDispatch(now))
		return r
	}

	t.Run("should assign dispatch-ready requisition to batch", func(t *testing.T) {
		r := readyRequisition(t)
		batchID := kernel.NewUUID()

		err := r.AssignToBatch(batchID, now)

		require.NoError(t, err)
		assert.Equal(t, requisition.AssignedToBatch, r.Status())
		require.NotNil(t, r.BatchID())
		assert.True(t, r.BatchID().IsEqual(batchID))
		require.NotNil(t, r.Stamps().AssignedToBatchAt)
	})

	t.Run("should fail with zero batch ID", func(t *testing.T) {
		r := readyRequisition(t)
		var batchID kernel.UUID

		err := r.AssignToBatch(batchID, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrMissingRequirement)
		assert.Contains(t, err.Error(), "batch id")
		assert.Equal(t, requisition.ReadyForDispatch, r.Status())
		assert.Nil(t, r.BatchID())
	})

	t.Run("should fail from packaged", func(t *testing.T) {
		r := pendingRequisition(t)
		require.NoError(t, r.Approve(now))
		require.NoError(t, r.AttachPackaging(testPackaging(t), now))

		err := r.AssignToBatch(kernel.NewUUID(), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRequisitionUnassign(t *testing.T) {
	now := time.Now().UTC()
	later := now.Add(10 * time.Minute)

	t.Run("should return assigned requisition to dispatch-ready", func(t *testing.T) {
		r := pendingRequisition(t)
		require.NoError(t, r.Approve(now))
		require.NoError(t, r.AttachPackaging(testPackaging(t), now))
		require.NoError(t, r.MarkReadyForDispatch(now))
		require.NoError(t, r.AssignToBatch(kernel.NewUUID(), now))

		err := r.Unassign(later)

		require.NoError(t, err)
		assert.Equal(t, requisition.ReadyForDispatch, r.Status())
		assert.Nil(t, r.BatchID())
	})

	t.Run("should keep timestamps across unassignment and reassignment", func(t *testing.T) {
		r := pendingRequisition(t)
		require.NoError(t, r.Approve(now))
		require.NoError(t, r.AttachPackaging(testPackaging(t), now))
		require.NoError(t, r.MarkReadyForDispatch(now))
		require.NoError(t, r.AssignToBatch(kernel.NewUUID(), now))
		require.NoError(t, r.Unassign(later))

		// assignedToBatchAt survives unassignment
		require.NotNil(t, r.Stamps().AssignedToBatchAt)
		assert.True(t, r.Stamps().AssignedToBatchAt.Equal(now))

		// and is not overwritten by a later reassignment
		require.NoError(t, r.AssignToBatch(kernel.NewUUID(), later))
		assert.True(t, r.Stamps().AssignedToBatchAt.Equal(now))
	})

	t.Run("should keep packaging across unassignment", func(t *testing.T) {
		r := pendingRequisition(t)
		require.NoError(t, r.Approve(now))
		pkg := testPackaging(t)
		require.NoError(t, r.AttachPackaging(pkg, now))
		require.NoError(t, r.MarkReadyForDispatch(now))
		require.NoError(t, r.AssignToBatch(kernel.NewUUID(), now))
		require.NoError(t, r.Unassign(later))

		require.NotNil(t, r.Packaging())
		assert.True(t, r.Packaging().IsEqual(pkg))
		assert.True(t, r.IsReadyForBatching())
	})

	t.Run("should fail from in-transit", func(t *testing.T) {
		r, _ := inTransitRequisition(t, now)

		err := r.Unassign(later)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRequisitionStartTransit(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should move assigned requisition to in-transit", func(t *testing.T) {
		r, batchID := inTransitRequisition(t, now)

		assert.Equal(t, requisition.InTransit, r.Status())
		require.NotNil(t, r.BatchID())
		assert.True(t, r.BatchID().IsEqual(batchID))
		require.NotNil(t, r.Stamps().InTransitAt)
	})

	t.Run("should fail from dispatch-ready", func(t *testing.T) {
		r := pendingRequisition(t)
		require.NoError(t, r.Approve(now))
		require.NoError(t, r.AttachPackaging(testPackaging(t), now))
		require.NoError(t, r.MarkReadyForDispatch(now))

		err := r.StartTransit(now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRequisitionCompleteDelivery(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should settle in-transit requisition with each outcome", func(t *testing.T) {
		for _, outcome := range requisition.DeliveryOutcomes() {
			r, _ := inTransitRequisition(t, now)

			err := r.CompleteDelivery(outcome, now)

			require.NoError(t, err, outcome.String())
			assert.Equal(t, outcome, r.Status())
			assert.True(t, r.Status().IsTerminal())
			require.NotNil(t, r.Stamps().CompletedAt)
		}
	})

	t.Run("should keep batch reference after settlement", func(t *testing.T) {
		r, batchID := inTransitRequisition(t, now)

		require.NoError(t, r.CompleteDelivery(requisition.Fulfilled, now))

		require.NotNil(t, r.BatchID())
		assert.True(t, r.BatchID().IsEqual(batchID))
	})

	t.Run("should fail with non-outcome target", func(t *testing.T) {
		r, _ := inTransitRequisition(t, now)

		err := r.CompleteDelivery(requisition.Cancelled, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "from InTransit to Cancelled")
	})

	t.Run("should fail from a terminal status", func(t *testing.T) {
		r, _ := inTransitRequisition(t, now)
		require.NoError(t, r.CompleteDelivery(requisition.Failed, now))

		err := r.CompleteDelivery(requisition.Fulfilled, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRequisitionIsReadyForBatching(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should be false until dispatch-ready", func(t *testing.T) {
		r := pendingRequisition(t)
		assert.False(t, r.IsReadyForBatching())

		require.NoError(t, r.Approve(now))
		assert.False(t, r.IsReadyForBatching())

		require.NoError(t, r.AttachPackaging(testPackaging(t), now))
		assert.False(t, r.IsReadyForBatching())

		require.NoError(t, r.MarkReadyForDispatch(now))
		assert.True(t, r.IsReadyForBatching())
	})

	t.Run("should be false once assigned", func(t *testing.T) {
		r := pendingRequisition(t)
		require.NoError(t, r.Approve(now))
		require.NoError(t, r.AttachPackaging(testPackaging(t), now))
		require.NoError(t, r.MarkReadyForDispatch(now))
		require.NoError(t, r.AssignToBatch(kernel.NewUUID(), now))

		assert.False(t, r.IsReadyForBatching())
	})
}

func TestRequisitionClone(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should leave the original untouched when the clone advances", func(t *testing.T) {
		original := pendingRequisition(t)

		clone := original.Clone()
		require.NoError(t, clone.Approve(now))

		assert.Equal(t, requisition.Pending, original.Status())
		assert.Equal(t, requisition.Approved, clone.Status())
		assert.Nil(t, original.Stamps().ApprovedAt)
		assert.NotNil(t, clone.Stamps().ApprovedAt)
	})

	t.Run("should deep copy batch reference and timestamps", func(t *testing.T) {
		r := pendingRequisition(t)
		require.NoError(t, r.Approve(now))
		require.NoError(t, r.AttachPackaging(testPackaging(t), now))
		require.NoError(t, r.MarkReadyForDispatch(now))
		require.NoError(t, r.AssignToBatch(kernel.NewUUID(), now))

		clone := r.Clone()
		require.NoError(t, clone.Unassign(now))

		assert.Equal(t, requisition.AssignedToBatch, r.Status())
		assert.NotNil(t, r.BatchID())
		assert.Nil(t, clone.BatchID())
		assert.NotSame(t, r.Stamps().ApprovedAt, clone.Stamps().ApprovedAt)
	})

	t.Run("should share the identity", func(t *testing.T) {
		r := pendingRequisition(t)

		clone := r.Clone()

		assert.True(t, r.IsEqual(clone))
		assert.Equal(t, r.Version(), clone.Version())
	})
}
