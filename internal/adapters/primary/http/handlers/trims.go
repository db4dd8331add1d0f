package handlers

import (
	"net/http"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/adapters/primary/http/dto"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// PropagateTrim copies an existing trim onto other production years. Years
// that already carry a same-named trim are skipped and reported, not
// treated as failures.
func (h *Handler) PropagateTrim(c *gin.Context) {
	sourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid configuration id"})
		return
	}

	var req dto.PropagateTrimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.trimSvc.AssignTrimToYears(c.Request.Context(), sourceID, req.TargetYearIDs)
	if err != nil {
		log.WithError(err).Error("propagate trim failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPropagationResponse(result))
}

func (h *Handler) CreateTrim(c *gin.Context) {
	var req dto.CreateTrimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.trimSvc.CreateTrimForYears(c.Request.Context(), req.YearIDs, domain.TrimData{
		Name:         req.Name,
		Description:  req.Description,
		TrimLevel:    req.TrimLevel,
		MarketRegion: req.MarketRegion,
		Notes:        req.Notes,
	})
	if err != nil {
		log.WithError(err).Error("create trim failed")
		mapDomainError(c, err)
		return
	}

	// All-skipped runs created nothing, so they report as a plain 200.
	status := http.StatusCreated
	if len(result.CreatedIDs) == 0 {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToPropagationResponse(result))
}
