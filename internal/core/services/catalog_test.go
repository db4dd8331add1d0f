package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/testutil"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/validation"
)

func newCatalogFixture() (*testutil.MockComponentRepo, *testutil.MockConfigurationRepo, *ComponentCatalogService) {
	components := new(testutil.MockComponentRepo)
	configs := new(testutil.MockConfigurationRepo)
	return components, configs, NewComponentCatalogService(components, configs, validation.New())
}

func TestComponentCatalogService_List_PublishedOnly(t *testing.T) {
	components, _, svc := newCatalogFixture()

	published := []domain.Component{
		&domain.Engine{ID: uuid.New(), Name: "Inline Four 998", DisplacementCC: 998},
	}
	components.On("List", mock.Anything, domain.ComponentEngine, true).Return(published, nil)

	list, err := svc.List(context.Background(), domain.ComponentEngine, true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	for _, c := range list {
		assert.False(t, c.Draft())
	}
}

func TestComponentCatalogService_List_InvalidType(t *testing.T) {
	_, _, svc := newCatalogFixture()

	_, err := svc.List(context.Background(), "exhaust", true)
	assert.ErrorIs(t, err, domain.ErrInvalidComponentType)
}

func TestComponentCatalogService_Create(t *testing.T) {
	components, _, svc := newCatalogFixture()

	engine := &domain.Engine{ID: uuid.New(), Name: "Parallel Twin 649", DisplacementCC: 649}
	components.On("Create", mock.Anything, engine).Return(nil)
	components.On("GetByID", mock.Anything, domain.ComponentEngine, engine.ID).Return(engine, nil)

	created, err := svc.Create(context.Background(), engine)
	require.NoError(t, err)
	assert.Equal(t, domain.ComponentEngine, created.Kind())
	components.AssertExpectations(t)
}

func TestComponentCatalogService_Create_SchemaValidation(t *testing.T) {
	components, _, svc := newCatalogFixture()

	// Missing name, non-positive displacement, out-of-range cylinders.
	bad := &domain.Engine{ID: uuid.New(), DisplacementCC: 0, CylinderCount: func() *int { v := 12; return &v }()}

	_, err := svc.Create(context.Background(), bad)
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.GreaterOrEqual(t, len(ve.Fields), 3)
	components.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestComponentCatalogService_Create_FrameRakeRange(t *testing.T) {
	components, _, svc := newCatalogFixture()

	rake := 95.0
	bad := &domain.Frame{ID: uuid.New(), Type: "Trellis", RakeDegrees: &rake}

	_, err := svc.Create(context.Background(), bad)
	require.Error(t, err)
	components.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	ok := &domain.Frame{ID: uuid.New(), Type: "Trellis"}
	okRake := 24.0
	ok.RakeDegrees = &okRake
	components.On("Create", mock.Anything, ok).Return(nil)
	components.On("GetByID", mock.Anything, domain.ComponentFrame, ok.ID).Return(ok, nil)

	_, err = svc.Create(context.Background(), ok)
	assert.NoError(t, err)
}

func TestComponentCatalogService_Delete_InUse(t *testing.T) {
	components, configs, svc := newCatalogFixture()

	id := uuid.New()
	configs.On("CountReferencing", mock.Anything, domain.ComponentEngine, id).Return(2, nil)

	err := svc.Delete(context.Background(), domain.ComponentEngine, id)
	assert.ErrorIs(t, err, domain.ErrComponentInUse)
	components.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestComponentCatalogService_Delete_Unreferenced(t *testing.T) {
	components, configs, svc := newCatalogFixture()

	id := uuid.New()
	configs.On("CountReferencing", mock.Anything, domain.ComponentWheel, id).Return(0, nil)
	components.On("Delete", mock.Anything, domain.ComponentWheel, id).Return(nil)

	err := svc.Delete(context.Background(), domain.ComponentWheel, id)
	assert.NoError(t, err)
	components.AssertExpectations(t)
}

func TestComponentCatalogService_Delete_StoreError(t *testing.T) {
	components, configs, svc := newCatalogFixture()

	id := uuid.New()
	storeErr := errors.New("delete engines: foreign key violation")
	configs.On("CountReferencing", mock.Anything, domain.ComponentEngine, id).Return(0, nil)
	components.On("Delete", mock.Anything, domain.ComponentEngine, id).Return(storeErr)

	err := svc.Delete(context.Background(), domain.ComponentEngine, id)
	assert.ErrorIs(t, err, storeErr)
}
