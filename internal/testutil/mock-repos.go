package testutil

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	ports "github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/ports/output"
)

// MockBrandRepo is a mock of BrandRepository.
type MockBrandRepo struct {
	mock.Mock
}

func (m *MockBrandRepo) Create(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *MockBrandRepo) GetBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *MockBrandRepo) Update(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBrandRepo) List(ctx context.Context, filter ports.BrandListFilter) ([]*domain.Brand, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Brand), args.Int(1), args.Error(2)
}

// MockModelRepo is a mock of ModelRepository.
type MockModelRepo struct {
	mock.Mock
}

func (m *MockModelRepo) Create(ctx context.Context, model *domain.Model) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockModelRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Model, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Model), args.Error(1)
}

func (m *MockModelRepo) GetBySlug(ctx context.Context, slug string) (*domain.Model, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Model), args.Error(1)
}

func (m *MockModelRepo) Update(ctx context.Context, model *domain.Model) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockModelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockModelRepo) List(ctx context.Context, filter ports.ModelListFilter) ([]*domain.Model, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Model), args.Int(1), args.Error(2)
}

// MockModelYearRepo is a mock of ModelYearRepository.
type MockModelYearRepo struct {
	mock.Mock
}

func (m *MockModelYearRepo) Create(ctx context.Context, year *domain.ModelYear) error {
	args := m.Called(ctx, year)
	return args.Error(0)
}

func (m *MockModelYearRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelYear, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelYear), args.Error(1)
}

func (m *MockModelYearRepo) Update(ctx context.Context, year *domain.ModelYear) error {
	args := m.Called(ctx, year)
	return args.Error(0)
}

func (m *MockModelYearRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockModelYearRepo) ListByModel(ctx context.Context, modelID uuid.UUID) ([]*domain.ModelYear, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ModelYear), args.Error(1)
}

// MockConfigurationRepo is a mock of ConfigurationRepository.
type MockConfigurationRepo struct {
	mock.Mock
}

func (m *MockConfigurationRepo) Create(ctx context.Context, cfg *domain.Configuration) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockConfigurationRepo) CreateBatch(ctx context.Context, cfgs []*domain.Configuration) ([]uuid.UUID, error) {
	args := m.Called(ctx, cfgs)
	// Service-generated row ids are not known to the test up front, so a
	// test may return a function computing ids from the batch it was given.
	switch v := args.Get(0).(type) {
	case func([]*domain.Configuration) []uuid.UUID:
		return v(cfgs), args.Error(1)
	case []uuid.UUID:
		return v, args.Error(1)
	default:
		return nil, args.Error(1)
	}
}

func (m *MockConfigurationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Configuration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Configuration), args.Error(1)
}

func (m *MockConfigurationRepo) ListForYear(ctx context.Context, modelYearID uuid.UUID) ([]*domain.Configuration, error) {
	args := m.Called(ctx, modelYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Configuration), args.Error(1)
}

func (m *MockConfigurationRepo) FindByYearAndName(ctx context.Context, modelYearID uuid.UUID, name string) (*domain.Configuration, error) {
	args := m.Called(ctx, modelYearID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Configuration), args.Error(1)
}

func (m *MockConfigurationRepo) Update(ctx context.Context, cfg *domain.Configuration) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockConfigurationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockConfigurationRepo) GetDefault(ctx context.Context, modelYearID uuid.UUID) (*domain.Configuration, error) {
	args := m.Called(ctx, modelYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Configuration), args.Error(1)
}

func (m *MockConfigurationRepo) SetDefault(ctx context.Context, modelYearID uuid.UUID, configurationID uuid.UUID) error {
	args := m.Called(ctx, modelYearID, configurationID)
	return args.Error(0)
}

func (m *MockConfigurationRepo) SetComponent(ctx context.Context, configurationID uuid.UUID, componentType domain.ComponentType, componentID *uuid.UUID) error {
	args := m.Called(ctx, configurationID, componentType, componentID)
	return args.Error(0)
}

func (m *MockConfigurationRepo) CountReferencing(ctx context.Context, componentType domain.ComponentType, componentID uuid.UUID) (int, error) {
	args := m.Called(ctx, componentType, componentID)
	return args.Int(0), args.Error(1)
}

// MockComponentRepo is a mock of ComponentRepository.
type MockComponentRepo struct {
	mock.Mock
}

func (m *MockComponentRepo) List(ctx context.Context, componentType domain.ComponentType, publishedOnly bool) ([]domain.Component, error) {
	args := m.Called(ctx, componentType, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Component), args.Error(1)
}

func (m *MockComponentRepo) GetByID(ctx context.Context, componentType domain.ComponentType, id uuid.UUID) (domain.Component, error) {
	args := m.Called(ctx, componentType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Component), args.Error(1)
}

func (m *MockComponentRepo) Create(ctx context.Context, component domain.Component) error {
	args := m.Called(ctx, component)
	return args.Error(0)
}

func (m *MockComponentRepo) Update(ctx context.Context, component domain.Component) error {
	args := m.Called(ctx, component)
	return args.Error(0)
}

func (m *MockComponentRepo) Delete(ctx context.Context, componentType domain.ComponentType, id uuid.UUID) error {
	args := m.Called(ctx, componentType, id)
	return args.Error(0)
}

// MockAssignmentRepo is a mock of AssignmentRepository.
type MockAssignmentRepo struct {
	mock.Mock
}

func (m *MockAssignmentRepo) Upsert(ctx context.Context, assignment *domain.ModelComponentAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepo) Delete(ctx context.Context, modelID uuid.UUID, componentType domain.ComponentType) error {
	args := m.Called(ctx, modelID, componentType)
	return args.Error(0)
}

func (m *MockAssignmentRepo) ListByModel(ctx context.Context, modelID uuid.UUID) ([]*domain.ModelComponentAssignment, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ModelComponentAssignment), args.Error(1)
}

// FakeViewCache is an in-memory ViewCache that records invalidations, so
// tests can assert on invalidation ordering without a real cache.
type FakeViewCache struct {
	mu          sync.Mutex
	summaries   map[uuid.UUID]*domain.ComponentSummary
	Invalidated []uuid.UUID
}

func NewFakeViewCache() *FakeViewCache {
	return &FakeViewCache{summaries: make(map[uuid.UUID]*domain.ComponentSummary)}
}

func (c *FakeViewCache) Summary(modelID uuid.UUID) (*domain.ComponentSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.summaries[modelID]
	return s, ok
}

func (c *FakeViewCache) StoreSummary(summary *domain.ComponentSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summaries[summary.ModelID] = summary
}

func (c *FakeViewCache) Invalidate(ids ...uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		delete(c.summaries, id)
		c.Invalidated = append(c.Invalidated, id)
	}
}
