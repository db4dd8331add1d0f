package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	ports "github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/ports/output"
)

// ConfigurationInput carries the editable fields of a trim. Numeric fields
// arrive as strings from the admin forms: empty means NULL, anything that
// does not parse as a number is a collected validation error.
type ConfigurationInput struct {
	Name         string
	Description  string
	Notes        string
	TrimLevel    string
	MarketRegion string
	IsDefault    bool

	SeatHeightMM      string
	WeightKG          string
	WheelbaseMM       string
	FuelCapacityL     string
	GroundClearanceMM string
	MSRP              string
	PricePremium      string

	SpecialFeatures   []string
	OptionalEquipment []string
}

type ConfigurationService struct {
	configs ports.ConfigurationRepository
	years   ports.ModelYearRepository
}

func NewConfigurationService(configs ports.ConfigurationRepository, years ports.ModelYearRepository) *ConfigurationService {
	return &ConfigurationService{configs: configs, years: years}
}

// ListForYear returns the year's trims with all five components resolved,
// default first, then by name.
func (s *ConfigurationService) ListForYear(ctx context.Context, modelYearID uuid.UUID) ([]*domain.Configuration, error) {
	if _, err := s.years.GetByID(ctx, modelYearID); err != nil {
		return nil, err
	}
	return s.configs.ListForYear(ctx, modelYearID)
}

func (s *ConfigurationService) Get(ctx context.Context, id uuid.UUID) (*domain.Configuration, error) {
	return s.configs.GetByID(ctx, id)
}

func (s *ConfigurationService) Create(ctx context.Context, modelYearID uuid.UUID, input ConfigurationInput) (*domain.Configuration, error) {
	if _, err := s.years.GetByID(ctx, modelYearID); err != nil {
		return nil, err
	}

	cfg, err := s.buildConfiguration(modelYearID, input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cfg.ID = uuid.New()
	cfg.CreatedAt = now
	cfg.UpdatedAt = now

	if err := s.configs.Create(ctx, cfg); err != nil {
		return nil, err
	}

	// Default-ness is applied as a separate atomic swap so the
	// one-default-per-year invariant can never be violated by the insert.
	if input.IsDefault {
		if err := s.configs.SetDefault(ctx, modelYearID, cfg.ID); err != nil {
			return nil, err
		}
	}
	return s.configs.GetByID(ctx, cfg.ID)
}

func (s *ConfigurationService) Update(ctx context.Context, id uuid.UUID, input ConfigurationInput) (*domain.Configuration, error) {
	existing, err := s.configs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cfg, err := s.buildConfiguration(existing.ModelYearID, input)
	if err != nil {
		return nil, err
	}

	cfg.ID = existing.ID
	cfg.CreatedAt = existing.CreatedAt
	cfg.UpdatedAt = time.Now()
	cfg.IsDefault = existing.IsDefault
	cfg.EngineID = existing.EngineID
	cfg.BrakeSystemID = existing.BrakeSystemID
	cfg.FrameID = existing.FrameID
	cfg.SuspensionID = existing.SuspensionID
	cfg.WheelID = existing.WheelID

	if err := s.configs.Update(ctx, cfg); err != nil {
		return nil, err
	}

	if input.IsDefault && !existing.IsDefault {
		if err := s.configs.SetDefault(ctx, existing.ModelYearID, id); err != nil {
			return nil, err
		}
	}
	return s.configs.GetByID(ctx, id)
}

// CheckForExistingDefault returns the year's current default trim, or nil.
// The admin UI uses it to warn before replacing a default.
func (s *ConfigurationService) CheckForExistingDefault(ctx context.Context, modelYearID uuid.UUID) (*domain.Configuration, error) {
	return s.configs.GetDefault(ctx, modelYearID)
}

// SetDefault atomically makes the given configuration the year's only
// default.
func (s *ConfigurationService) SetDefault(ctx context.Context, modelYearID, configurationID uuid.UUID) error {
	cfg, err := s.configs.GetByID(ctx, configurationID)
	if err != nil {
		return err
	}
	if cfg.ModelYearID != modelYearID {
		return domain.ErrConfigurationNotFound
	}
	return s.configs.SetDefault(ctx, modelYearID, configurationID)
}

func (s *ConfigurationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.configs.GetByID(ctx, id); err != nil {
		return err
	}
	return s.configs.Delete(ctx, id)
}

// buildConfiguration validates the input in one pass and reports every
// violated field together.
func (s *ConfigurationService) buildConfiguration(modelYearID uuid.UUID, input ConfigurationInput) (*domain.Configuration, error) {
	ve := &domain.ValidationError{}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		ve.Add("name", "is required")
	}

	cfg := &domain.Configuration{
		ModelYearID:       modelYearID,
		Name:              name,
		Description:       input.Description,
		Notes:             input.Notes,
		TrimLevel:         input.TrimLevel,
		MarketRegion:      input.MarketRegion,
		SeatHeightMM:      parseNullableNumber(ve, "seat_height_mm", input.SeatHeightMM),
		WeightKG:          parseNullableNumber(ve, "weight_kg", input.WeightKG),
		WheelbaseMM:       parseNullableNumber(ve, "wheelbase_mm", input.WheelbaseMM),
		FuelCapacityL:     parseNullableNumber(ve, "fuel_capacity_l", input.FuelCapacityL),
		GroundClearanceMM: parseNullableNumber(ve, "ground_clearance_mm", input.GroundClearanceMM),
		MSRP:              parseNullableNumber(ve, "msrp", input.MSRP),
		PricePremium:      parseNullableNumber(ve, "price_premium", input.PricePremium),
		SpecialFeatures:   input.SpecialFeatures,
		OptionalEquipment: input.OptionalEquipment,
	}
	if cfg.SpecialFeatures == nil {
		cfg.SpecialFeatures = []string{}
	}
	if cfg.OptionalEquipment == nil {
		cfg.OptionalEquipment = []string{}
	}

	if err := ve.OrNil(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseNullableNumber(ve *domain.ValidationError, field, raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		ve.Add(field, "must be a number")
		return nil
	}
	return &v
}
