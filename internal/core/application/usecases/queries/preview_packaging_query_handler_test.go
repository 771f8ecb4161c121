package queries_test

import (
	"context"
	"errors"
	"testing"

	"requisition/internal/core/application/usecases/queries"
	"requisition/internal/core/domain/model/packaging"
	"requisition/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPreviewCatalogRepository is a mock implementation of ports.CatalogRepository.
type MockPreviewCatalogRepository struct {
	mock.Mock
}

func (m *MockPreviewCatalogRepository) Get(ctx context.Context) (packaging.Catalog, error) {
	args := m.Called(ctx)
	return args.Get(0).(packaging.Catalog), args.Error(1)
}

// previewTestCatalog builds a catalog where a parcel slot holds 10 kg / 0.5 m³.
func previewTestCatalog(t *testing.T) packaging.Catalog {
	t.Helper()
	cost, err := packaging.NewSlotCost(
		packaging.Parcel,
		decimal.RequireFromString("10"),
		decimal.RequireFromString("0.5"),
	)
	require.NoError(t, err)
	catalog, err := packaging.NewCatalog([]packaging.SlotCost{cost})
	require.NoError(t, err)
	return catalog
}

func TestPreviewPackagingQueryHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	catalogRepo := new(MockPreviewCatalogRepository)
	catalogRepo.On("Get", ctx).Return(previewTestCatalog(t), nil).Once()

	handler := queries.NewPreviewPackagingQueryHandler(catalogRepo)

	// 2 units of 4 kg / 0.2 m³: 8 kg of 10 kg and 0.4 m³ of 0.5 m³, both 0.8
	query, err := queries.NewPreviewPackagingQuery(queryTestItems())
	require.NoError(t, err)

	preview, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.True(t, preview.TotalSlotDemand.Equal(decimal.RequireFromString("0.8")))
	assert.Equal(t, int64(1), preview.RoundedSlotDemand)
	assert.True(t, preview.TotalWeightKg.Equal(decimal.RequireFromString("8")))
	assert.True(t, preview.TotalVolumeM3.Equal(decimal.RequireFromString("0.4")))

	require.Len(t, preview.Items, 1)
	assert.Equal(t, packaging.Parcel, preview.Items[0].PackagingType)
	assert.True(t, preview.Items[0].SlotShare.Equal(decimal.RequireFromString("0.8")))

	catalogRepo.AssertExpectations(t)
}

func TestPreviewPackagingQueryHandler_Handle_CatalogNotSeeded_ReturnsError(t *testing.T) {
	ctx := context.Background()
	catalogRepo := new(MockPreviewCatalogRepository)
	notFound := errs.NewObjectNotFoundError("slot cost catalog", "slot_costs")
	catalogRepo.On("Get", ctx).Return(packaging.Catalog{}, notFound).Once()

	handler := queries.NewPreviewPackagingQueryHandler(catalogRepo)
	query, err := queries.NewPreviewPackagingQuery(queryTestItems())
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.Error(t, err)

	var notFoundErr *errs.ObjectNotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	catalogRepo.AssertExpectations(t)
}

func TestPreviewPackagingQueryHandler_Handle_UnknownPackagingType_ReturnsError(t *testing.T) {
	ctx := context.Background()
	catalogRepo := new(MockPreviewCatalogRepository)

	// Catalog only covers crates; the parcel items cannot be priced
	crateCost, err := packaging.NewSlotCost(
		packaging.Crate,
		decimal.RequireFromString("100"),
		decimal.RequireFromString("2"),
	)
	require.NoError(t, err)
	crateOnly, err := packaging.NewCatalog([]packaging.SlotCost{crateCost})
	require.NoError(t, err)
	catalogRepo.On("Get", ctx).Return(crateOnly, nil).Once()

	handler := queries.NewPreviewPackagingQueryHandler(catalogRepo)
	query, err := queries.NewPreviewPackagingQuery(queryTestItems())
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.Error(t, err)

	var unknownTypeErr *errs.UnknownPackagingTypeError
	assert.ErrorAs(t, err, &unknownTypeErr)
	catalogRepo.AssertExpectations(t)
}

func TestPreviewPackagingQueryHandler_Handle_InvalidQuery_ReturnsError(t *testing.T) {
	catalogRepo := new(MockPreviewCatalogRepository)
	handler := queries.NewPreviewPackagingQueryHandler(catalogRepo)

	_, err := handler.Handle(context.Background(), queries.PreviewPackagingQuery{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, queries.ErrPreviewPackagingQueryIsNotConstructed))
	catalogRepo.AssertExpectations(t)
}
