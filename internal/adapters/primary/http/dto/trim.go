package dto

import (
	"github.com/google/uuid"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
)

// PropagateTrimRequest fans an existing trim out to other production years
type PropagateTrimRequest struct {
	TargetYearIDs []uuid.UUID `json:"target_year_ids" binding:"required,min=1"`
}

// CreateTrimRequest creates a minimal trim on several years at once
type CreateTrimRequest struct {
	YearIDs      []uuid.UUID `json:"year_ids" binding:"required,min=1"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	TrimLevel    string      `json:"trim_level"`
	MarketRegion string      `json:"market_region"`
	Notes        string      `json:"notes"`
}

// PropagationResponse reports where the trim landed and which years
// already had a same-named trim
type PropagationResponse struct {
	CreatedIDs     []uuid.UUID `json:"created_ids"`
	SkippedYearIDs []uuid.UUID `json:"skipped_year_ids"`
	CreatedCount   int         `json:"created_count"`
	SkippedCount   int         `json:"skipped_count"`
}

// ToPropagationResponse converts a domain PropagationResult to response DTO
func ToPropagationResponse(r *domain.PropagationResult) PropagationResponse {
	resp := PropagationResponse{
		CreatedIDs:     r.CreatedIDs,
		SkippedYearIDs: r.SkippedYearIDs,
		CreatedCount:   len(r.CreatedIDs),
		SkippedCount:   len(r.SkippedYearIDs),
	}
	if resp.CreatedIDs == nil {
		resp.CreatedIDs = []uuid.UUID{}
	}
	if resp.SkippedYearIDs == nil {
		resp.SkippedYearIDs = []uuid.UUID{}
	}
	return resp
}
