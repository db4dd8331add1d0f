package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	ports "github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/ports/output"
)

// TrimService fans a trim definition out across model years. Years that
// already carry a same-named trim are skipped, which makes both operations
// idempotent. The inserts for one call run in a single store transaction,
// so a mid-batch failure rolls the whole fan-out back instead of leaving
// half the years written.
type TrimService struct {
	configs ports.ConfigurationRepository
	years   ports.ModelYearRepository
	cache   ports.ViewCache
}

func NewTrimService(configs ports.ConfigurationRepository, years ports.ModelYearRepository, cache ports.ViewCache) *TrimService {
	return &TrimService{configs: configs, years: years, cache: cache}
}

// AssignTrimToYears copies an existing configuration into each target year.
// Every field is copied except identity, timestamps and default-ness;
// copies are never the default for their year.
func (s *TrimService) AssignTrimToYears(ctx context.Context, sourceConfigurationID uuid.UUID, targetYearIDs []uuid.UUID) (*domain.PropagationResult, error) {
	if len(targetYearIDs) == 0 {
		return nil, domain.ErrNoTargetYears
	}

	source, err := s.configs.GetByID(ctx, sourceConfigurationID)
	if err != nil {
		return nil, err
	}

	candidates, result, err := s.prepare(ctx, targetYearIDs, source.Name, func(yearID uuid.UUID) *domain.Configuration {
		return source.CopyForYear(yearID)
	})
	if err != nil {
		return nil, err
	}
	return s.insert(ctx, candidates, result)
}

// CreateTrimForYears creates a brand-new named trim in each target year
// from the supplied fields alone.
func (s *TrimService) CreateTrimForYears(ctx context.Context, yearIDs []uuid.UUID, trim domain.TrimData) (*domain.PropagationResult, error) {
	if len(yearIDs) == 0 {
		return nil, domain.ErrNoTargetYears
	}
	name := strings.TrimSpace(trim.Name)
	if name == "" {
		return nil, (&domain.ValidationError{}).Add("name", "is required")
	}

	candidates, result, err := s.prepare(ctx, yearIDs, name, func(yearID uuid.UUID) *domain.Configuration {
		return &domain.Configuration{
			ModelYearID:       yearID,
			Name:              name,
			Description:       trim.Description,
			TrimLevel:         trim.TrimLevel,
			MarketRegion:      trim.MarketRegion,
			Notes:             trim.Notes,
			SpecialFeatures:   []string{},
			OptionalEquipment: []string{},
		}
	})
	if err != nil {
		return nil, err
	}
	return s.insert(ctx, candidates, result)
}

// prepare resolves each target year, splitting them into skip (same-named
// trim already present) and insert candidates built by build.
func (s *TrimService) prepare(ctx context.Context, yearIDs []uuid.UUID, name string, build func(uuid.UUID) *domain.Configuration) ([]*domain.Configuration, *domain.PropagationResult, error) {
	result := &domain.PropagationResult{
		CreatedIDs:     []uuid.UUID{},
		SkippedYearIDs: []uuid.UUID{},
	}
	var candidates []*domain.Configuration

	now := time.Now()
	for _, yearID := range yearIDs {
		if _, err := s.years.GetByID(ctx, yearID); err != nil {
			return nil, nil, err
		}

		_, err := s.configs.FindByYearAndName(ctx, yearID, name)
		switch {
		case err == nil:
			result.SkippedYearIDs = append(result.SkippedYearIDs, yearID)
			continue
		case !errors.Is(err, domain.ErrConfigurationNotFound):
			return nil, nil, err
		}

		cfg := build(yearID)
		cfg.ID = uuid.New()
		cfg.CreatedAt = now
		cfg.UpdatedAt = now
		candidates = append(candidates, cfg)
	}
	return candidates, result, nil
}

func (s *TrimService) insert(ctx context.Context, candidates []*domain.Configuration, result *domain.PropagationResult) (*domain.PropagationResult, error) {
	if len(candidates) == 0 {
		return result, nil
	}

	createdIDs, err := s.configs.CreateBatch(ctx, candidates)
	if err != nil {
		return nil, err
	}
	result.CreatedIDs = createdIDs

	// A candidate that raced a concurrent same-named insert conflicts
	// inside the batch and counts as skipped, not failed.
	created := make(map[uuid.UUID]bool, len(createdIDs))
	for _, id := range createdIDs {
		created[id] = true
	}
	invalidate := make([]uuid.UUID, 0, len(candidates))
	for _, cfg := range candidates {
		if created[cfg.ID] {
			invalidate = append(invalidate, cfg.ModelYearID)
		} else {
			result.SkippedYearIDs = append(result.SkippedYearIDs, cfg.ModelYearID)
		}
	}
	if len(invalidate) > 0 {
		s.cache.Invalidate(invalidate...)
	}
	return result, nil
}
