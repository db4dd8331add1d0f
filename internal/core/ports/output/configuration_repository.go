package output

import (
	"context"

	"github.com/google/uuid"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
)

type ConfigurationRepository interface {
	Create(ctx context.Context, cfg *domain.Configuration) error

	// CreateBatch inserts all configurations in one transaction. Rows whose
	// (model_year_id, name) already exists are silently skipped; the ids of
	// the rows actually inserted are returned. A store failure rolls the
	// whole batch back.
	CreateBatch(ctx context.Context, cfgs []*domain.Configuration) ([]uuid.UUID, error)

	// GetByID resolves the five component slots via joins.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Configuration, error)

	// ListForYear returns the year's configurations with components
	// resolved, ordered default-first then by name.
	ListForYear(ctx context.Context, modelYearID uuid.UUID) ([]*domain.Configuration, error)

	// FindByYearAndName returns ErrConfigurationNotFound when no
	// configuration with that name exists for the year.
	FindByYearAndName(ctx context.Context, modelYearID uuid.UUID, name string) (*domain.Configuration, error)

	Update(ctx context.Context, cfg *domain.Configuration) error
	Delete(ctx context.Context, id uuid.UUID) error

	// GetDefault returns (nil, nil) when the year has no default.
	GetDefault(ctx context.Context, modelYearID uuid.UUID) (*domain.Configuration, error)

	// SetDefault clears any other default for the year and marks the given
	// configuration in a single transaction, so the one-default-per-year
	// invariant holds even under concurrent or interrupted updates.
	SetDefault(ctx context.Context, modelYearID uuid.UUID, configurationID uuid.UUID) error

	// SetComponent writes one component slot; componentID nil clears it.
	SetComponent(ctx context.Context, configurationID uuid.UUID, componentType domain.ComponentType, componentID *uuid.UUID) error

	// CountReferencing reports how many configurations reference the
	// component, used to guard catalog deletes.
	CountReferencing(ctx context.Context, componentType domain.ComponentType, componentID uuid.UUID) (int, error)
}
