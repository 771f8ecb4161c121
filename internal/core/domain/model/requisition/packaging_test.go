package requisition_test

import (
	"testing"

	"requisition/internal/core/domain/model/kernel"
	"requisition/internal/core/domain/model/packaging"
	"requisition/internal/core/domain/model/requisition"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPackagingItem(t *testing.T, slotShare string) requisition.PackagingItem {
	t.Helper()

	item, err := requisition.NewPackagingItem(
		kernel.NewUUID(), packaging.Parcel, decimal.RequireFromString(slotShare))
	require.NoError(t, err)
	return item
}

func TestNewPackagingItem(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid entry", func(t *testing.T) {
		item, err := requisition.NewPackagingItem(
			validID, packaging.Crate, decimal.RequireFromString("1.25"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ItemID().IsEqual(validID))
		assert.Equal(t, packaging.Crate, item.PackagingType())
		assert.True(t, item.SlotShare().Equal(decimal.RequireFromString("1.25")))
	})

	t.Run("should fail with invalid item ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := requisition.NewPackagingItem(
			invalidID, packaging.Crate, decimal.RequireFromString("1"))

		require.Error(t, err)
	})

	t.Run("should fail with unknown packaging type", func(t *testing.T) {
		_, err := requisition.NewPackagingItem(
			validID, packaging.Unknown, decimal.RequireFromString("1"))

		require.Error(t, err)
	})

	t.Run("should fail with zero slot share", func(t *testing.T) {
		_, err := requisition.NewPackagingItem(validID, packaging.Crate, decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "slot share is invalid")
	})
}

func TestNewPackaging(t *testing.T) {
	t.Run("should create artifact and derive rounded slot demand", func(t *testing.T) {
		items := []requisition.PackagingItem{mustPackagingItem(t, "2.3")}

		pkg, err := requisition.NewPackaging(
			items,
			decimal.RequireFromString("2.3"),
			decimal.RequireFromString("10"),
			decimal.RequireFromString("2.3"),
		)

		require.NoError(t, err)
		require.NoError(t, pkg.Validate())
		assert.True(t, pkg.TotalSlotDemand().Equal(decimal.RequireFromString("2.3")))
		assert.Equal(t, int64(3), pkg.RoundedSlotDemand())
		assert.Equal(t, 1, pkg.ItemCount())
		assert.True(t, pkg.IsFinal())
	})

	t.Run("should not round an exact integer demand", func(t *testing.T) {
		items := []requisition.PackagingItem{mustPackagingItem(t, "2")}

		pkg, err := requisition.NewPackaging(
			items,
			decimal.RequireFromString("2"),
			decimal.RequireFromString("8"),
			decimal.RequireFromString("1.5"),
		)

		require.NoError(t, err)
		assert.Equal(t, int64(2), pkg.RoundedSlotDemand())
	})

	t.Run("should round tiny fractional demand up to one slot", func(t *testing.T) {
		items := []requisition.PackagingItem{mustPackagingItem(t, "0.05")}

		pkg, err := requisition.NewPackaging(
			items,
			decimal.RequireFromString("0.05"),
			decimal.RequireFromString("0.1"),
			decimal.RequireFromString("0.01"),
		)

		require.NoError(t, err)
		assert.Equal(t, int64(1), pkg.RoundedSlotDemand())
	})

	t.Run("should fail with no items", func(t *testing.T) {
		_, err := requisition.NewPackaging(
			nil,
			decimal.RequireFromString("1"),
			decimal.RequireFromString("1"),
			decimal.RequireFromString("1"),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "packaging items")
	})

	t.Run("should fail with default-constructed item entry", func(t *testing.T) {
		_, err := requisition.NewPackaging(
			[]requisition.PackagingItem{{}},
			decimal.RequireFromString("1"),
			decimal.RequireFromString("1"),
			decimal.RequireFromString("1"),
		)

		require.Error(t, err)
	})

	t.Run("should fail with non-positive totals", func(t *testing.T) {
		items := []requisition.PackagingItem{mustPackagingItem(t, "1")}

		_, err := requisition.NewPackaging(items, decimal.Zero, decimal.Zero, decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "total slot demand is invalid")
		assert.Contains(t, err.Error(), "total weight is invalid")
		assert.Contains(t, err.Error(), "total volume is invalid")
	})

	t.Run("should copy the item slice", func(t *testing.T) {
		items := []requisition.PackagingItem{mustPackagingItem(t, "1")}

		pkg, err := requisition.NewPackaging(
			items,
			decimal.RequireFromString("1"),
			decimal.RequireFromString("1"),
			decimal.RequireFromString("1"),
		)
		require.NoError(t, err)

		items[0] = requisition.PackagingItem{}
		got := pkg.Items()
		require.Len(t, got, 1)
		assert.NoError(t, got[0].Validate())
	})
}

func TestPackagingIsFinal(t *testing.T) {
	t.Run("should be false for nil artifact", func(t *testing.T) {
		var pkg *requisition.Packaging

		assert.False(t, pkg.IsFinal())
	})

	t.Run("should be false for default-constructed artifact", func(t *testing.T) {
		pkg := &requisition.Packaging{}

		assert.False(t, pkg.IsFinal())
		assert.Error(t, pkg.Validate())
	})
}

func TestPackagingIsEqual(t *testing.T) {
	itemID := kernel.NewUUID()

	build := func(t *testing.T) *requisition.Packaging {
		t.Helper()
		entry, err := requisition.NewPackagingItem(
			itemID, packaging.Pallet, decimal.RequireFromString("1.4"))
		require.NoError(t, err)

		pkg, err := requisition.NewPackaging(
			[]requisition.PackagingItem{entry},
			decimal.RequireFromString("1.4"),
			decimal.RequireFromString("120"),
			decimal.RequireFromString("1.4"),
		)
		require.NoError(t, err)
		return pkg
	}

	t.Run("should be equal when built from identical inputs", func(t *testing.T) {
		assert.True(t, build(t).IsEqual(build(t)))
	})

	t.Run("should not be equal to nil", func(t *testing.T) {
		assert.False(t, build(t).IsEqual(nil))
	})

	t.Run("should detect differing totals", func(t *testing.T) {
		entry, err := requisition.NewPackagingItem(
			itemID, packaging.Pallet, decimal.RequireFromString("1.4"))
		require.NoError(t, err)

		other, err := requisition.NewPackaging(
			[]requisition.PackagingItem{entry},
			decimal.RequireFromString("1.5"),
			decimal.RequireFromString("120"),
			decimal.RequireFromString("1.4"),
		)
		require.NoError(t, err)

		assert.False(t, build(t).IsEqual(other))
	})
}
