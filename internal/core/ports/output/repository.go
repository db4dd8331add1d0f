package output

import (
	"context"

	"github.com/google/uuid"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
)

type BrandListFilter struct {
	Country string
	Search  string
	SortBy  string
	Order   string
	Limit   int
	Offset  int
}

type ModelListFilter struct {
	BrandID  uuid.UUID
	Category string
	Search   string
	SortBy   string
	Order    string
	Limit    int
	Offset   int
}

type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter BrandListFilter) ([]*domain.Brand, int, error)
}

type ModelRepository interface {
	Create(ctx context.Context, model *domain.Model) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Model, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Model, error)
	Update(ctx context.Context, model *domain.Model) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ModelListFilter) ([]*domain.Model, int, error)
}

type ModelYearRepository interface {
	Create(ctx context.Context, year *domain.ModelYear) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelYear, error)
	Update(ctx context.Context, year *domain.ModelYear) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByModel(ctx context.Context, modelID uuid.UUID) ([]*domain.ModelYear, error)
}
