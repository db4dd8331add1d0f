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

func newTrimFixture() (*testutil.MockConfigurationRepo, *testutil.MockModelYearRepo, *testutil.FakeViewCache, *TrimService) {
	configs := new(testutil.MockConfigurationRepo)
	years := new(testutil.MockModelYearRepo)
	cache := testutil.NewFakeViewCache()
	return configs, years, cache, NewTrimService(configs, years, cache)
}

func TestTrimService_AssignTrimToYears(t *testing.T) {
	configs, years, cache, svc := newTrimFixture()

	sourceID := uuid.New()
	year1 := uuid.New()
	year2 := uuid.New()
	msrp := 9999.0
	source := &domain.Configuration{
		ID:          sourceID,
		ModelYearID: uuid.New(),
		Name:        "Sport",
		TrimLevel:   "SE",
		MSRP:        &msrp,
		IsDefault:   true,
	}

	configs.On("GetByID", mock.Anything, sourceID).Return(source, nil)
	years.On("GetByID", mock.Anything, year1).Return(&domain.ModelYear{ID: year1}, nil)
	years.On("GetByID", mock.Anything, year2).Return(&domain.ModelYear{ID: year2}, nil)
	configs.On("FindByYearAndName", mock.Anything, year1, "Sport").Return(nil, domain.ErrConfigurationNotFound)
	configs.On("FindByYearAndName", mock.Anything, year2, "Sport").Return(nil, domain.ErrConfigurationNotFound)
	configs.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]*domain.Configuration")).
		Return(func(cfgs []*domain.Configuration) []uuid.UUID {
			ids := make([]uuid.UUID, 0, len(cfgs))
			for _, c := range cfgs {
				ids = append(ids, c.ID)
			}
			return ids
		}, nil)

	result, err := svc.AssignTrimToYears(context.Background(), sourceID, []uuid.UUID{year1, year2})
	require.NoError(t, err)
	assert.Len(t, result.CreatedIDs, 2)
	assert.Empty(t, result.SkippedYearIDs)

	var batch []*domain.Configuration
	for _, call := range configs.Calls {
		if call.Method == "CreateBatch" {
			batch = call.Arguments.Get(1).([]*domain.Configuration)
		}
	}
	require.Len(t, batch, 2)
	for _, cp := range batch {
		assert.Equal(t, "Sport", cp.Name)
		assert.Equal(t, "SE", cp.TrimLevel)
		require.NotNil(t, cp.MSRP)
		assert.Equal(t, 9999.0, *cp.MSRP)
		assert.False(t, cp.IsDefault, "default-ness is not transferable")
		assert.NotEqual(t, sourceID, cp.ID)
	}

	assert.ElementsMatch(t, []uuid.UUID{year1, year2}, cache.Invalidated)
}

func TestTrimService_AssignTrimToYears_SkipsExistingName(t *testing.T) {
	configs, years, _, svc := newTrimFixture()

	sourceID := uuid.New()
	yearA := uuid.New()
	yearB := uuid.New()
	source := &domain.Configuration{ID: sourceID, Name: "Sport"}

	configs.On("GetByID", mock.Anything, sourceID).Return(source, nil)
	years.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(&domain.ModelYear{}, nil)
	configs.On("FindByYearAndName", mock.Anything, yearA, "Sport").
		Return(&domain.Configuration{ID: uuid.New(), Name: "Sport"}, nil)
	configs.On("FindByYearAndName", mock.Anything, yearB, "Sport").
		Return(nil, domain.ErrConfigurationNotFound)
	configs.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]*domain.Configuration")).
		Return(func(cfgs []*domain.Configuration) []uuid.UUID {
			return []uuid.UUID{cfgs[0].ID}
		}, nil)

	result, err := svc.AssignTrimToYears(context.Background(), sourceID, []uuid.UUID{yearA, yearB})
	require.NoError(t, err)
	assert.Len(t, result.CreatedIDs, 1)
	assert.Equal(t, []uuid.UUID{yearA}, result.SkippedYearIDs)
}

func TestTrimService_AssignTrimToYears_Idempotent(t *testing.T) {
	configs, years, _, svc := newTrimFixture()

	sourceID := uuid.New()
	yearID := uuid.New()
	source := &domain.Configuration{ID: sourceID, Name: "Sport"}

	configs.On("GetByID", mock.Anything, sourceID).Return(source, nil)
	years.On("GetByID", mock.Anything, yearID).Return(&domain.ModelYear{ID: yearID}, nil)
	// Second run finds the copy created by the first and skips it.
	configs.On("FindByYearAndName", mock.Anything, yearID, "Sport").
		Return(&domain.Configuration{ID: uuid.New(), Name: "Sport"}, nil)

	result, err := svc.AssignTrimToYears(context.Background(), sourceID, []uuid.UUID{yearID})
	require.NoError(t, err)
	assert.Empty(t, result.CreatedIDs)
	assert.Equal(t, []uuid.UUID{yearID}, result.SkippedYearIDs)
	configs.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestTrimService_AssignTrimToYears_SourceNotFound(t *testing.T) {
	configs, _, _, svc := newTrimFixture()

	sourceID := uuid.New()
	configs.On("GetByID", mock.Anything, sourceID).Return(nil, domain.ErrConfigurationNotFound)

	_, err := svc.AssignTrimToYears(context.Background(), sourceID, []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, domain.ErrConfigurationNotFound)
}

func TestTrimService_AssignTrimToYears_NoTargets(t *testing.T) {
	_, _, _, svc := newTrimFixture()

	_, err := svc.AssignTrimToYears(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, domain.ErrNoTargetYears)
}

func TestTrimService_AssignTrimToYears_BatchFailureRollsBack(t *testing.T) {
	configs, years, cache, svc := newTrimFixture()

	sourceID := uuid.New()
	yearID := uuid.New()
	source := &domain.Configuration{ID: sourceID, Name: "Sport"}
	storeErr := errors.New("insert model_configurations: connection reset")

	configs.On("GetByID", mock.Anything, sourceID).Return(source, nil)
	years.On("GetByID", mock.Anything, yearID).Return(&domain.ModelYear{ID: yearID}, nil)
	configs.On("FindByYearAndName", mock.Anything, yearID, "Sport").
		Return(nil, domain.ErrConfigurationNotFound)
	configs.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]*domain.Configuration")).
		Return(nil, storeErr)

	_, err := svc.AssignTrimToYears(context.Background(), sourceID, []uuid.UUID{yearID})
	assert.ErrorIs(t, err, storeErr)
	assert.Empty(t, cache.Invalidated, "failed writes must not touch the cache")
}

func TestTrimService_CreateTrimForYears(t *testing.T) {
	configs, years, _, svc := newTrimFixture()

	yearA := uuid.New()
	yearB := uuid.New()

	years.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(&domain.ModelYear{}, nil)
	// yearA already has a "Sport" trim.
	configs.On("FindByYearAndName", mock.Anything, yearA, "Sport").
		Return(&domain.Configuration{ID: uuid.New(), Name: "Sport"}, nil)
	configs.On("FindByYearAndName", mock.Anything, yearB, "Sport").
		Return(nil, domain.ErrConfigurationNotFound)
	configs.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]*domain.Configuration")).
		Return(func(cfgs []*domain.Configuration) []uuid.UUID {
			return []uuid.UUID{cfgs[0].ID}
		}, nil)

	result, err := svc.CreateTrimForYears(context.Background(), []uuid.UUID{yearA, yearB}, domain.TrimData{
		Name:      "Sport",
		TrimLevel: "S",
	})
	require.NoError(t, err)
	assert.Len(t, result.CreatedIDs, 1)
	assert.Equal(t, []uuid.UUID{yearA}, result.SkippedYearIDs)

	var batch []*domain.Configuration
	for _, call := range configs.Calls {
		if call.Method == "CreateBatch" {
			batch = call.Arguments.Get(1).([]*domain.Configuration)
		}
	}
	require.Len(t, batch, 1)
	assert.Equal(t, yearB, batch[0].ModelYearID)
	assert.Equal(t, "Sport", batch[0].Name)
	assert.False(t, batch[0].IsDefault)
}

func TestTrimService_CreateTrimForYears_NameRequired(t *testing.T) {
	_, _, _, svc := newTrimFixture()

	_, err := svc.CreateTrimForYears(context.Background(), []uuid.UUID{uuid.New()}, domain.TrimData{})
	require.Error(t, err)

	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
}
