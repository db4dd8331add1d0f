package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/services"
)

// ConfigurationRequest carries the editable trim fields for create and
// update. Numeric fields are strings: the admin forms submit raw text and
// the service decides between NULL, a value and a field error.
type ConfigurationRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Notes        string `json:"notes"`
	TrimLevel    string `json:"trim_level"`
	MarketRegion string `json:"market_region"`
	IsDefault    bool   `json:"is_default"`

	SeatHeightMM      string `json:"seat_height_mm"`
	WeightKG          string `json:"weight_kg"`
	WheelbaseMM       string `json:"wheelbase_mm"`
	FuelCapacityL     string `json:"fuel_capacity_l"`
	GroundClearanceMM string `json:"ground_clearance_mm"`
	MSRP              string `json:"msrp"`
	PricePremium      string `json:"price_premium"`

	SpecialFeatures   []string `json:"special_features"`
	OptionalEquipment []string `json:"optional_equipment"`
}

// ToConfigurationInput converts the request to the service input
func (r ConfigurationRequest) ToConfigurationInput() services.ConfigurationInput {
	return services.ConfigurationInput{
		Name:              r.Name,
		Description:       r.Description,
		Notes:             r.Notes,
		TrimLevel:         r.TrimLevel,
		MarketRegion:      r.MarketRegion,
		IsDefault:         r.IsDefault,
		SeatHeightMM:      r.SeatHeightMM,
		WeightKG:          r.WeightKG,
		WheelbaseMM:       r.WheelbaseMM,
		FuelCapacityL:     r.FuelCapacityL,
		GroundClearanceMM: r.GroundClearanceMM,
		MSRP:              r.MSRP,
		PricePremium:      r.PricePremium,
		SpecialFeatures:   r.SpecialFeatures,
		OptionalEquipment: r.OptionalEquipment,
	}
}

// ConfigurationResponse represents a trim with its resolved components
type ConfigurationResponse struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ModelYearID  uuid.UUID `json:"model_year_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	TrimLevel    string    `json:"trim_level,omitempty"`
	MarketRegion string    `json:"market_region,omitempty"`
	IsDefault    bool      `json:"is_default"`

	EngineID      *uuid.UUID `json:"engine_id,omitempty"`
	BrakeSystemID *uuid.UUID `json:"brake_system_id,omitempty"`
	FrameID       *uuid.UUID `json:"frame_id,omitempty"`
	SuspensionID  *uuid.UUID `json:"suspension_id,omitempty"`
	WheelID       *uuid.UUID `json:"wheel_id,omitempty"`

	SeatHeightMM      *float64 `json:"seat_height_mm,omitempty"`
	WeightKG          *float64 `json:"weight_kg,omitempty"`
	WheelbaseMM       *float64 `json:"wheelbase_mm,omitempty"`
	FuelCapacityL     *float64 `json:"fuel_capacity_l,omitempty"`
	GroundClearanceMM *float64 `json:"ground_clearance_mm,omitempty"`
	MSRP              *float64 `json:"msrp,omitempty"`
	PricePremium      *float64 `json:"price_premium,omitempty"`

	SpecialFeatures   []string `json:"special_features"`
	OptionalEquipment []string `json:"optional_equipment"`

	Engine      *domain.Engine      `json:"engine,omitempty"`
	BrakeSystem *domain.BrakeSystem `json:"brake_system,omitempty"`
	Frame       *domain.Frame       `json:"frame,omitempty"`
	Suspension  *domain.Suspension  `json:"suspension,omitempty"`
	Wheel       *domain.Wheel       `json:"wheel,omitempty"`
}

// ListConfigurationsResponse represents a year's trims, default first
type ListConfigurationsResponse struct {
	Items []ConfigurationResponse `json:"items"`
	Total int                     `json:"total"`
}

// ToConfigurationResponse converts a domain Configuration to response DTO
func ToConfigurationResponse(cfg *domain.Configuration) ConfigurationResponse {
	return ConfigurationResponse{
		ID:                cfg.ID,
		CreatedAt:         cfg.CreatedAt,
		UpdatedAt:         cfg.UpdatedAt,
		ModelYearID:       cfg.ModelYearID,
		Name:              cfg.Name,
		Description:       cfg.Description,
		Notes:             cfg.Notes,
		TrimLevel:         cfg.TrimLevel,
		MarketRegion:      cfg.MarketRegion,
		IsDefault:         cfg.IsDefault,
		EngineID:          cfg.EngineID,
		BrakeSystemID:     cfg.BrakeSystemID,
		FrameID:           cfg.FrameID,
		SuspensionID:      cfg.SuspensionID,
		WheelID:           cfg.WheelID,
		SeatHeightMM:      cfg.SeatHeightMM,
		WeightKG:          cfg.WeightKG,
		WheelbaseMM:       cfg.WheelbaseMM,
		FuelCapacityL:     cfg.FuelCapacityL,
		GroundClearanceMM: cfg.GroundClearanceMM,
		MSRP:              cfg.MSRP,
		PricePremium:      cfg.PricePremium,
		SpecialFeatures:   cfg.SpecialFeatures,
		OptionalEquipment: cfg.OptionalEquipment,
		Engine:            cfg.Engine,
		BrakeSystem:       cfg.BrakeSystem,
		Frame:             cfg.Frame,
		Suspension:        cfg.Suspension,
		Wheel:             cfg.Wheel,
	}
}
