package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
)

// CreateModelRequest represents a request to create a model under a brand
type CreateModelRequest struct {
	BrandID         uuid.UUID `json:"brand_id" binding:"required"`
	Name            string    `json:"name" binding:"required"`
	Category        string    `json:"category"`
	ProductionStart *int      `json:"production_start"`
	ProductionEnd   *int      `json:"production_end"`
	Slug            string    `json:"slug"`
}

// UpdateModelRequest represents a partial model update
type UpdateModelRequest struct {
	Name            *string `json:"name"`
	Category        *string `json:"category"`
	ProductionStart *int    `json:"production_start"`
	ProductionEnd   *int    `json:"production_end"`
	Slug            *string `json:"slug"`
}

// ModelResponse represents a model response
type ModelResponse struct {
	ID              uuid.UUID `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	BrandID         uuid.UUID `json:"brand_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category,omitempty"`
	ProductionStart *int      `json:"production_start,omitempty"`
	ProductionEnd   *int      `json:"production_end,omitempty"`
	Slug            string    `json:"slug"`
}

// ListModelsResponse represents a paged list of models
type ListModelsResponse struct {
	Items      []ModelResponse `json:"items"`
	Total      int             `json:"total"`
	PageSize   int             `json:"page_size"`
	NextOffset int             `json:"next_offset"`
}

// CreateModelYearRequest represents a request to add a production year
type CreateModelYearRequest struct {
	Year        int      `json:"year" binding:"required"`
	MSRP        *float64 `json:"msrp"`
	Tagline     string   `json:"tagline"`
	IsAvailable bool     `json:"is_available"`
}

// UpdateModelYearRequest represents a partial model year update
type UpdateModelYearRequest struct {
	MSRP         *float64 `json:"msrp"`
	Tagline      *string  `json:"tagline"`
	IsAvailable  *bool    `json:"is_available"`
	MarketingTag *string  `json:"marketing_tag"`
}

// ModelYearResponse represents a model year response
type ModelYearResponse struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ModelID      uuid.UUID `json:"model_id"`
	Year         int       `json:"year"`
	MSRP         *float64  `json:"msrp,omitempty"`
	Tagline      string    `json:"tagline,omitempty"`
	IsAvailable  bool      `json:"is_available"`
	MarketingTag string    `json:"marketing_tag,omitempty"`
}

// ListModelYearsResponse represents a model's production years
type ListModelYearsResponse struct {
	Items []ModelYearResponse `json:"items"`
	Total int                 `json:"total"`
}

// ToModelResponse converts a domain Model to response DTO
func ToModelResponse(m *domain.Model) ModelResponse {
	return ModelResponse{
		ID:              m.ID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		BrandID:         m.BrandID,
		Name:            m.Name,
		Category:        string(m.Category),
		ProductionStart: m.ProductionStart,
		ProductionEnd:   m.ProductionEnd,
		Slug:            m.Slug,
	}
}

// ToModelYearResponse converts a domain ModelYear to response DTO
func ToModelYearResponse(y *domain.ModelYear) ModelYearResponse {
	return ModelYearResponse{
		ID:           y.ID,
		CreatedAt:    y.CreatedAt,
		UpdatedAt:    y.UpdatedAt,
		ModelID:      y.ModelID,
		Year:         y.Year,
		MSRP:         y.MSRP,
		Tagline:      y.Tagline,
		IsAvailable:  y.IsAvailable,
		MarketingTag: y.MarketingTag,
	}
}
