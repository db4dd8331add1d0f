package handlers

import (
	"errors"
	"net/http"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	// Batch validation reports every violated field in one payload.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": ve.Fields,
		})
		return
	}

	switch {
	// Not found errors
	case errors.Is(err, domain.ErrBrandNotFound),
		errors.Is(err, domain.ErrModelNotFound),
		errors.Is(err, domain.ErrModelYearNotFound),
		errors.Is(err, domain.ErrConfigurationNotFound),
		errors.Is(err, domain.ErrComponentNotFound),
		errors.Is(err, domain.ErrAssignmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrBrandSlugConflict),
		errors.Is(err, domain.ErrModelSlugConflict),
		errors.Is(err, domain.ErrConfigurationNameConflict),
		errors.Is(err, domain.ErrComponentInUse),
		errors.Is(err, domain.ErrBrandHasModels):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidBrandName),
		errors.Is(err, domain.ErrInvalidModelName),
		errors.Is(err, domain.ErrInvalidConfigurationName),
		errors.Is(err, domain.ErrInvalidComponentType),
		errors.Is(err, domain.ErrInvalidYear),
		errors.Is(err, domain.ErrNoTargetYears),
		errors.Is(err, domain.ErrComponentDraft):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
