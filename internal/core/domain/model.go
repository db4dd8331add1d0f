package domain

import (
	"time"

	"github.com/google/uuid"
)

type ModelCategory string

const (
	CategorySport     ModelCategory = "Sport"
	CategoryCruiser   ModelCategory = "Cruiser"
	CategoryTouring   ModelCategory = "Touring"
	CategoryAdventure ModelCategory = "Adventure"
	CategoryNaked     ModelCategory = "Naked"
	CategoryStandard  ModelCategory = "Standard"
	CategoryScooter   ModelCategory = "Scooter"
	CategoryOffRoad   ModelCategory = "Off-road"
)

// Model is a motorcycle product line owned by a Brand (e.g. "Ninja 300").
type Model struct {
	ID              uuid.UUID     `json:"id"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	BrandID         uuid.UUID     `json:"brand_id"`
	Name            string        `json:"name"`
	Category        ModelCategory `json:"category"`
	ProductionStart *int          `json:"production_start"`
	ProductionEnd   *int          `json:"production_end"`
	Slug            string        `json:"slug"`
}

// ModelYear is one production year of a Model. (model_id, year) is unique
// by convention; the store carries year-specific pricing and availability.
type ModelYear struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ModelID      uuid.UUID `json:"model_id"`
	Year         int       `json:"year"`
	MSRP         *float64  `json:"msrp"`
	Tagline      string    `json:"tagline"`
	IsAvailable  bool      `json:"is_available"`
	MarketingTag string    `json:"marketing_tag"`
}
