package output

import (
	"context"

	"github.com/google/uuid"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
)

// ComponentRepository gives typed access to the five component tables.
// The concrete row type is selected by domain.ComponentType; Create and
// Update dispatch on the Kind of the value they are given.
type ComponentRepository interface {
	List(ctx context.Context, componentType domain.ComponentType, publishedOnly bool) ([]domain.Component, error)
	GetByID(ctx context.Context, componentType domain.ComponentType, id uuid.UUID) (domain.Component, error)
	Create(ctx context.Context, component domain.Component) error
	Update(ctx context.Context, component domain.Component) error
	Delete(ctx context.Context, componentType domain.ComponentType, id uuid.UUID) error
}

type AssignmentRepository interface {
	// Upsert replaces any existing assignment for (model_id, component_type).
	Upsert(ctx context.Context, assignment *domain.ModelComponentAssignment) error
	Delete(ctx context.Context, modelID uuid.UUID, componentType domain.ComponentType) error
	ListByModel(ctx context.Context, modelID uuid.UUID) ([]*domain.ModelComponentAssignment, error)
}
