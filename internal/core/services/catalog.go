package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	ports "github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/ports/output"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/validation"
)

// ComponentCatalogService manages the five shared component catalogs.
// Drafts exist in the catalog but are excluded from published listings and
// can never be assigned.
type ComponentCatalogService struct {
	components ports.ComponentRepository
	configs    ports.ConfigurationRepository
	validate   *validation.Validator
}

func NewComponentCatalogService(components ports.ComponentRepository, configs ports.ConfigurationRepository, validate *validation.Validator) *ComponentCatalogService {
	return &ComponentCatalogService{components: components, configs: configs, validate: validate}
}

func (s *ComponentCatalogService) List(ctx context.Context, componentType domain.ComponentType, publishedOnly bool) ([]domain.Component, error) {
	if !componentType.Valid() {
		return nil, domain.ErrInvalidComponentType
	}
	return s.components.List(ctx, componentType, publishedOnly)
}

func (s *ComponentCatalogService) Get(ctx context.Context, componentType domain.ComponentType, id uuid.UUID) (domain.Component, error) {
	if !componentType.Valid() {
		return nil, domain.ErrInvalidComponentType
	}
	return s.components.GetByID(ctx, componentType, id)
}

// Create validates the component's field schema before any write. Every
// violated field is reported in one error.
func (s *ComponentCatalogService) Create(ctx context.Context, component domain.Component) (domain.Component, error) {
	if component == nil || !component.Kind().Valid() {
		return nil, domain.ErrInvalidComponentType
	}
	if err := s.validate.Validate(component); err != nil {
		return nil, err
	}
	if err := s.components.Create(ctx, component); err != nil {
		return nil, err
	}
	return s.components.GetByID(ctx, component.Kind(), component.ComponentID())
}

func (s *ComponentCatalogService) Update(ctx context.Context, component domain.Component) (domain.Component, error) {
	if component == nil || !component.Kind().Valid() {
		return nil, domain.ErrInvalidComponentType
	}
	if err := s.validate.Validate(component); err != nil {
		return nil, err
	}
	if err := s.components.Update(ctx, component); err != nil {
		return nil, err
	}
	return s.components.GetByID(ctx, component.Kind(), component.ComponentID())
}

// Delete refuses to remove a component that any configuration still
// references. The store's foreign keys back this up, but checking first
// gives the caller a clear error instead of a constraint message.
func (s *ComponentCatalogService) Delete(ctx context.Context, componentType domain.ComponentType, id uuid.UUID) error {
	if !componentType.Valid() {
		return domain.ErrInvalidComponentType
	}
	refs, err := s.configs.CountReferencing(ctx, componentType, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrComponentInUse
	}
	return s.components.Delete(ctx, componentType, id)
}
