package domain

import "github.com/google/uuid"

// TrimData is the minimal field set for creating a new named trim across
// several model years.
type TrimData struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	TrimLevel    string `json:"trim_level"`
	MarketRegion string `json:"market_region"`
	Notes        string `json:"notes"`
}

// PropagationResult reports the outcome of a cross-year trim fan-out.
// Skipped years already had a same-named configuration and are not errors.
type PropagationResult struct {
	CreatedIDs     []uuid.UUID `json:"created_ids"`
	SkippedYearIDs []uuid.UUID `json:"skipped_year_ids"`
}
