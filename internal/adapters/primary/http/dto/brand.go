package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
)

// CreateBrandRequest represents a request to create a brand
type CreateBrandRequest struct {
	Name        string `json:"name" binding:"required"`
	Country     string `json:"country"`
	FoundedYear *int   `json:"founded_year"`
	Slug        string `json:"slug"` // generated from name when omitted
}

// UpdateBrandRequest represents a partial brand update
type UpdateBrandRequest struct {
	Name        *string `json:"name"`
	Country     *string `json:"country"`
	FoundedYear *int    `json:"founded_year"`
	Slug        *string `json:"slug"`
}

// BrandResponse represents a brand response
type BrandResponse struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Country     string    `json:"country,omitempty"`
	FoundedYear *int      `json:"founded_year,omitempty"`
	Slug        string    `json:"slug"`
}

// ListBrandsResponse represents a paged list of brands
type ListBrandsResponse struct {
	Items      []BrandResponse `json:"items"`
	Total      int             `json:"total"`
	PageSize   int             `json:"page_size"`
	NextOffset int             `json:"next_offset"`
}

// ToBrandResponse converts a domain Brand to response DTO
func ToBrandResponse(b *domain.Brand) BrandResponse {
	return BrandResponse{
		ID:          b.ID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		Name:        b.Name,
		Country:     b.Country,
		FoundedYear: b.FoundedYear,
		Slug:        b.Slug,
	}
}
