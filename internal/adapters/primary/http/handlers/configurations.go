package handlers

import (
	"net/http"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/adapters/primary/http/dto"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListConfigurations(c *gin.Context) {
	yearID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model year id"})
		return
	}

	cfgs, err := h.configSvc.ListForYear(c.Request.Context(), yearID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ConfigurationResponse, 0, len(cfgs))
	for _, cfg := range cfgs {
		items = append(items, dto.ToConfigurationResponse(cfg))
	}

	c.JSON(http.StatusOK, dto.ListConfigurationsResponse{
		Items: items,
		Total: len(items),
	})
}

func (h *Handler) GetConfiguration(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid configuration id"})
		return
	}

	cfg, err := h.configSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConfigurationResponse(cfg))
}

func (h *Handler) CreateConfiguration(c *gin.Context) {
	yearID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model year id"})
		return
	}

	var req dto.ConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := h.configSvc.Create(c.Request.Context(), yearID, req.ToConfigurationInput())
	if err != nil {
		log.WithError(err).Error("create configuration failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToConfigurationResponse(cfg))
}

func (h *Handler) UpdateConfiguration(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid configuration id"})
		return
	}

	var req dto.ConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := h.configSvc.Update(c.Request.Context(), id, req.ToConfigurationInput())
	if err != nil {
		log.WithError(err).Error("update configuration failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConfigurationResponse(cfg))
}

func (h *Handler) DeleteConfiguration(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid configuration id"})
		return
	}

	if err := h.configSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete configuration failed")
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetDefaultConfiguration returns 200 with null when the year has no
// default, so admin forms can distinguish "no default yet" from an error.
func (h *Handler) GetDefaultConfiguration(c *gin.Context) {
	yearID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model year id"})
		return
	}

	cfg, err := h.configSvc.CheckForExistingDefault(c.Request.Context(), yearID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	if cfg == nil {
		c.JSON(http.StatusOK, gin.H{"default": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"default": dto.ToConfigurationResponse(cfg)})
}

func (h *Handler) SetDefaultConfiguration(c *gin.Context) {
	yearID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model year id"})
		return
	}
	configID, err := uuid.Parse(c.Param("config_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid configuration id"})
		return
	}

	if err := h.configSvc.SetDefault(c.Request.Context(), yearID, configID); err != nil {
		log.WithError(err).Error("set default configuration failed")
		mapDomainError(c, err)
		return
	}

	cfg, err := h.configSvc.Get(c.Request.Context(), configID)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToConfigurationResponse(cfg))
}

// GetConfigurationMetrics runs the pure metric formulas over the joined
// configuration. Missing inputs yield zeroed metrics, never an error.
func (h *Handler) GetConfigurationMetrics(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid configuration id"})
		return
	}

	cfg, err := h.configSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"configuration_id": cfg.ID,
		"metrics":          services.CalculateAllMetrics(cfg),
	})
}
