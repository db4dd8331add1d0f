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

type BrandService struct {
	brands ports.BrandRepository
	models ports.ModelRepository
}

func NewBrandService(brands ports.BrandRepository, models ports.ModelRepository) *BrandService {
	return &BrandService{brands: brands, models: models}
}

func (s *BrandService) Create(ctx context.Context, name, country string, foundedYear *int, slug string) (*domain.Brand, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidBrandName
	}
	if slug == "" {
		slug = generateSlug(name)
	}
	if err := validation.CheckSlug(slug); err != nil {
		return nil, err
	}

	now := time.Now()
	brand := &domain.Brand{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        name,
		Country:     country,
		FoundedYear: foundedYear,
		Slug:        slug,
	}
	if err := s.brands.Create(ctx, brand); err != nil {
		return nil, err
	}
	return s.brands.GetByID(ctx, brand.ID)
}

func (s *BrandService) Get(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	return s.brands.GetByID(ctx, id)
}

func (s *BrandService) GetBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	return s.brands.GetBySlug(ctx, slug)
}

func (s *BrandService) List(ctx context.Context, filter ports.BrandListFilter) ([]*domain.Brand, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.brands.List(ctx, filter)
}

func (s *BrandService) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*domain.Brand, error) {
	brand, err := s.brands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		brand.Name = v.(string)
	}
	if v, ok := updates["country"]; ok && v != nil {
		brand.Country = v.(string)
	}
	if v, ok := updates["founded_year"]; ok && v != nil {
		year := v.(int)
		brand.FoundedYear = &year
	}
	if v, ok := updates["slug"]; ok && v != nil {
		slug := v.(string)
		if err := validation.CheckSlug(slug); err != nil {
			return nil, err
		}
		brand.Slug = slug
	}
	brand.UpdatedAt = time.Now()

	if err := s.brands.Update(ctx, brand); err != nil {
		return nil, err
	}
	return s.brands.GetByID(ctx, id)
}

// Delete refuses to remove a brand that still owns models.
func (s *BrandService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.brands.GetByID(ctx, id); err != nil {
		return err
	}
	_, total, err := s.models.List(ctx, ports.ModelListFilter{BrandID: id, Limit: 1})
	if err != nil {
		return err
	}
	if total > 0 {
		return domain.ErrBrandHasModels
	}
	return s.brands.Delete(ctx, id)
}

func generateSlug(name string) string {
	slug := ""
	for _, ch := range name {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '-' {
			slug += string(ch)
		} else if ch >= 'A' && ch <= 'Z' {
			slug += string(ch + 32)
		} else if ch == ' ' || ch == '_' {
			slug += "-"
		}
	}
	if len(slug) > 60 {
		slug = slug[:60]
	}
	return slug
}
