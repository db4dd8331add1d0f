package domain

import "errors"

// ============================================================================
// Not found errors
// ============================================================================

var (
	ErrBrandNotFound         = errors.New("brand not found")
	ErrModelNotFound         = errors.New("model not found")
	ErrModelYearNotFound     = errors.New("model year not found")
	ErrConfigurationNotFound = errors.New("configuration not found")
	ErrComponentNotFound     = errors.New("component not found")
	ErrAssignmentNotFound    = errors.New("component assignment not found")
)

// ============================================================================
// Conflict errors
// ============================================================================

var (
	ErrBrandSlugConflict         = errors.New("brand with this slug already exists")
	ErrModelSlugConflict         = errors.New("model with this slug already exists")
	ErrConfigurationNameConflict = errors.New("configuration with this name already exists for this model year")
	ErrComponentInUse            = errors.New("component is referenced by one or more configurations")
	ErrBrandHasModels            = errors.New("brand still owns models")
)

// ============================================================================
// Validation errors
// ============================================================================

var (
	ErrInvalidBrandName         = errors.New("brand name is required")
	ErrInvalidModelName         = errors.New("model name is required")
	ErrInvalidConfigurationName = errors.New("configuration name is required")
	ErrInvalidComponentType     = errors.New("invalid component type")
	ErrInvalidYear              = errors.New("year must be a four-digit year")
	ErrNoTargetYears            = errors.New("at least one target model year is required")
)

// ============================================================================
// Business rule errors
// ============================================================================

var (
	ErrComponentDraft = errors.New("draft components cannot be assigned")
)
