package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	ports "github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/ports/output"
)

// AssignmentService links shared components to models and configurations.
// Cached views are invalidated only after a write commits; a failed write
// leaves both the store and the cache untouched. Concurrent assignments to
// the same slot are last-write-wins.
type AssignmentService struct {
	assignments ports.AssignmentRepository
	components  ports.ComponentRepository
	configs     ports.ConfigurationRepository
	models      ports.ModelRepository
	cache       ports.ViewCache
}

func NewAssignmentService(
	assignments ports.AssignmentRepository,
	components ports.ComponentRepository,
	configs ports.ConfigurationRepository,
	models ports.ModelRepository,
	cache ports.ViewCache,
) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		components:  components,
		configs:     configs,
		models:      models,
		cache:       cache,
	}
}

// AssignToModel links a component as the model-level default for its kind,
// replacing any previous assignment of that kind.
func (s *AssignmentService) AssignToModel(ctx context.Context, modelID uuid.UUID, ref domain.ComponentRef) (*domain.ComponentSummary, error) {
	if !ref.Type.Valid() {
		return nil, domain.ErrInvalidComponentType
	}
	if _, err := s.models.GetByID(ctx, modelID); err != nil {
		return nil, err
	}
	component, err := s.components.GetByID(ctx, ref.Type, ref.ID)
	if err != nil {
		return nil, err
	}
	if component.Draft() {
		return nil, domain.ErrComponentDraft
	}

	now := time.Now()
	assignment := &domain.ModelComponentAssignment{
		ID:            uuid.New(),
		CreatedAt:     now,
		UpdatedAt:     now,
		ModelID:       modelID,
		ComponentType: ref.Type,
		ComponentID:   ref.ID,
	}
	if err := s.assignments.Upsert(ctx, assignment); err != nil {
		return nil, err
	}

	s.cache.Invalidate(modelID)
	return s.ModelSummary(ctx, modelID)
}

// RemoveFromModel clears the model-level assignment for a component kind.
func (s *AssignmentService) RemoveFromModel(ctx context.Context, modelID uuid.UUID, componentType domain.ComponentType) (*domain.ComponentSummary, error) {
	if !componentType.Valid() {
		return nil, domain.ErrInvalidComponentType
	}
	if _, err := s.models.GetByID(ctx, modelID); err != nil {
		return nil, err
	}
	if err := s.assignments.Delete(ctx, modelID, componentType); err != nil {
		return nil, err
	}

	s.cache.Invalidate(modelID)
	return s.ModelSummary(ctx, modelID)
}

// ModelSummary is the cache-backed completeness view for a model.
func (s *AssignmentService) ModelSummary(ctx context.Context, modelID uuid.UUID) (*domain.ComponentSummary, error) {
	if summary, ok := s.cache.Summary(modelID); ok {
		return summary, nil
	}
	assignments, err := s.assignments.ListByModel(ctx, modelID)
	if err != nil {
		return nil, err
	}
	summary := domain.NewComponentSummary(modelID, assignments)
	s.cache.StoreSummary(summary)
	return summary, nil
}

// AssignToConfiguration writes one of the configuration's five component
// slots.
func (s *AssignmentService) AssignToConfiguration(ctx context.Context, configurationID uuid.UUID, ref domain.ComponentRef) (*domain.Configuration, error) {
	if !ref.Type.Valid() {
		return nil, domain.ErrInvalidComponentType
	}
	cfg, err := s.configs.GetByID(ctx, configurationID)
	if err != nil {
		return nil, err
	}
	component, err := s.components.GetByID(ctx, ref.Type, ref.ID)
	if err != nil {
		return nil, err
	}
	if component.Draft() {
		return nil, domain.ErrComponentDraft
	}

	id := ref.ID
	if err := s.configs.SetComponent(ctx, configurationID, ref.Type, &id); err != nil {
		return nil, err
	}

	s.cache.Invalidate(configurationID, cfg.ModelYearID)
	return s.configs.GetByID(ctx, configurationID)
}

// RemoveFromConfiguration nulls the slot for a component kind.
func (s *AssignmentService) RemoveFromConfiguration(ctx context.Context, configurationID uuid.UUID, componentType domain.ComponentType) (*domain.Configuration, error) {
	if !componentType.Valid() {
		return nil, domain.ErrInvalidComponentType
	}
	cfg, err := s.configs.GetByID(ctx, configurationID)
	if err != nil {
		return nil, err
	}
	if err := s.configs.SetComponent(ctx, configurationID, componentType, nil); err != nil {
		return nil, err
	}

	s.cache.Invalidate(configurationID, cfg.ModelYearID)
	return s.configs.GetByID(ctx, configurationID)
}
