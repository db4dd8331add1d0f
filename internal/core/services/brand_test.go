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
)

func newBrandFixture() (*testutil.MockBrandRepo, *testutil.MockModelRepo, *BrandService) {
	brands := new(testutil.MockBrandRepo)
	models := new(testutil.MockModelRepo)
	return brands, models, NewBrandService(brands, models)
}

func TestBrandService_Create_GeneratesSlug(t *testing.T) {
	brands, _, svc := newBrandFixture()

	brands.On("Create", mock.Anything, mock.AnythingOfType("*domain.Brand")).Return(nil)
	brands.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(&domain.Brand{Name: "Moto Guzzi", Slug: "moto-guzzi"}, nil)

	_, err := svc.Create(context.Background(), "Moto Guzzi", "Italy", nil, "")
	require.NoError(t, err)

	var created *domain.Brand
	for _, call := range brands.Calls {
		if call.Method == "Create" {
			created = call.Arguments.Get(1).(*domain.Brand)
		}
	}
	require.NotNil(t, created)
	assert.Equal(t, "moto-guzzi", created.Slug)
}

func TestBrandService_Create_RejectsMalformedSlug(t *testing.T) {
	brands, _, svc := newBrandFixture()

	_, err := svc.Create(context.Background(), "Ducati", "Italy", nil, "Not A Valid Slug!!")
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "slug", ve.Fields[0].Field)
	brands.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBrandService_Update_RejectsMalformedSlug(t *testing.T) {
	brands, _, svc := newBrandFixture()

	id := uuid.New()
	brands.On("GetByID", mock.Anything, id).
		Return(&domain.Brand{ID: id, Name: "Ducati", Slug: "ducati"}, nil)

	_, err := svc.Update(context.Background(), id, map[string]interface{}{
		"slug": "DUCATI corse",
	})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	brands.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestBrandService_Delete_BlockedWhileModelsExist(t *testing.T) {
	brands, models, svc := newBrandFixture()

	id := uuid.New()
	brands.On("GetByID", mock.Anything, id).Return(&domain.Brand{ID: id}, nil)
	models.On("List", mock.Anything, mock.AnythingOfType("output.ModelListFilter")).
		Return([]*domain.Model{{ID: uuid.New()}}, 3, nil)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrBrandHasModels)
	brands.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
