package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	ports "github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/ports/output"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/validation"
)

type ModelService struct {
	models ports.ModelRepository
	brands ports.BrandRepository
	years  ports.ModelYearRepository
}

func NewModelService(models ports.ModelRepository, brands ports.BrandRepository, years ports.ModelYearRepository) *ModelService {
	return &ModelService{models: models, brands: brands, years: years}
}

func (s *ModelService) Create(ctx context.Context, brandID uuid.UUID, name string, category domain.ModelCategory, productionStart, productionEnd *int, slug string) (*domain.Model, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidModelName
	}
	if _, err := s.brands.GetByID(ctx, brandID); err != nil {
		return nil, err
	}
	if slug == "" {
		slug = generateSlug(name)
	}
	if err := validation.CheckSlug(slug); err != nil {
		return nil, err
	}

	now := time.Now()
	model := &domain.Model{
		ID:              uuid.New(),
		CreatedAt:       now,
		UpdatedAt:       now,
		BrandID:         brandID,
		Name:            name,
		Category:        category,
		ProductionStart: productionStart,
		ProductionEnd:   productionEnd,
		Slug:            slug,
	}
	if err := s.models.Create(ctx, model); err != nil {
		return nil, err
	}
	return s.models.GetByID(ctx, model.ID)
}

func (s *ModelService) Get(ctx context.Context, id uuid.UUID) (*domain.Model, error) {
	return s.models.GetByID(ctx, id)
}

func (s *ModelService) List(ctx context.Context, filter ports.ModelListFilter) ([]*domain.Model, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.models.List(ctx, filter)
}

func (s *ModelService) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*domain.Model, error) {
	model, err := s.models.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		model.Name = v.(string)
	}
	if v, ok := updates["category"]; ok && v != nil {
		model.Category = domain.ModelCategory(v.(string))
	}
	if v, ok := updates["production_start"]; ok && v != nil {
		year := v.(int)
		model.ProductionStart = &year
	}
	if v, ok := updates["production_end"]; ok && v != nil {
		year := v.(int)
		model.ProductionEnd = &year
	}
	if v, ok := updates["slug"]; ok && v != nil {
		slug := v.(string)
		if err := validation.CheckSlug(slug); err != nil {
			return nil, err
		}
		model.Slug = slug
	}
	model.UpdatedAt = time.Now()

	if err := s.models.Update(ctx, model); err != nil {
		return nil, err
	}
	return s.models.GetByID(ctx, id)
}

func (s *ModelService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.models.GetByID(ctx, id); err != nil {
		return err
	}
	return s.models.Delete(ctx, id)
}

// Model years.

func (s *ModelService) CreateYear(ctx context.Context, modelID uuid.UUID, year int, msrp *float64, tagline string, available bool) (*domain.ModelYear, error) {
	if year < 1000 || year > 9999 {
		return nil, domain.ErrInvalidYear
	}
	if _, err := s.models.GetByID(ctx, modelID); err != nil {
		return nil, err
	}

	now := time.Now()
	my := &domain.ModelYear{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		ModelID:     modelID,
		Year:        year,
		MSRP:        msrp,
		Tagline:     tagline,
		IsAvailable: available,
	}
	if err := s.years.Create(ctx, my); err != nil {
		return nil, err
	}
	return s.years.GetByID(ctx, my.ID)
}

func (s *ModelService) GetYear(ctx context.Context, id uuid.UUID) (*domain.ModelYear, error) {
	return s.years.GetByID(ctx, id)
}

func (s *ModelService) ListYears(ctx context.Context, modelID uuid.UUID) ([]*domain.ModelYear, error) {
	if _, err := s.models.GetByID(ctx, modelID); err != nil {
		return nil, err
	}
	return s.years.ListByModel(ctx, modelID)
}

func (s *ModelService) UpdateYear(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*domain.ModelYear, error) {
	my, err := s.years.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["year"]; ok && v != nil {
		y := v.(int)
		if y < 1000 || y > 9999 {
			return nil, domain.ErrInvalidYear
		}
		my.Year = y
	}
	if v, ok := updates["msrp"]; ok && v != nil {
		msrp := v.(float64)
		my.MSRP = &msrp
	}
	if v, ok := updates["tagline"]; ok && v != nil {
		my.Tagline = v.(string)
	}
	if v, ok := updates["is_available"]; ok && v != nil {
		my.IsAvailable = v.(bool)
	}
	if v, ok := updates["marketing_tag"]; ok && v != nil {
		my.MarketingTag = v.(string)
	}
	my.UpdatedAt = time.Now()

	if err := s.years.Update(ctx, my); err != nil {
		return nil, err
	}
	return s.years.GetByID(ctx, id)
}

func (s *ModelService) DeleteYear(ctx context.Context, id uuid.UUID) error {
	if _, err := s.years.GetByID(ctx, id); err != nil {
		return err
	}
	return s.years.Delete(ctx, id)
}
