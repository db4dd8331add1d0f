package handlers

import (
	"net/http"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/adapters/primary/http/dto"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type assignComponentRequest struct {
	ComponentID uuid.UUID `json:"component_id" binding:"required"`
}

func (h *Handler) GetModelComponentSummary(c *gin.Context) {
	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model id"})
		return
	}

	summary, err := h.assignmentSvc.ModelSummary(c.Request.Context(), modelID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) AssignComponentToModel(c *gin.Context) {
	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model id"})
		return
	}
	componentType, err := domain.ParseComponentType(c.Param("type"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	var req assignComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.assignmentSvc.AssignToModel(c.Request.Context(), modelID, domain.ComponentRef{
		Type: componentType,
		ID:   req.ComponentID,
	})
	if err != nil {
		log.WithError(err).Error("assign component to model failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) RemoveComponentFromModel(c *gin.Context) {
	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model id"})
		return
	}
	componentType, err := domain.ParseComponentType(c.Param("type"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	summary, err := h.assignmentSvc.RemoveFromModel(c.Request.Context(), modelID, componentType)
	if err != nil {
		log.WithError(err).Error("remove component from model failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) AssignComponentToConfiguration(c *gin.Context) {
	configID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid configuration id"})
		return
	}
	componentType, err := domain.ParseComponentType(c.Param("type"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	var req assignComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := h.assignmentSvc.AssignToConfiguration(c.Request.Context(), configID, domain.ComponentRef{
		Type: componentType,
		ID:   req.ComponentID,
	})
	if err != nil {
		log.WithError(err).Error("assign component to configuration failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConfigurationResponse(cfg))
}

func (h *Handler) RemoveComponentFromConfiguration(c *gin.Context) {
	configID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid configuration id"})
		return
	}
	componentType, err := domain.ParseComponentType(c.Param("type"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	cfg, err := h.assignmentSvc.RemoveFromConfiguration(c.Request.Context(), configID, componentType)
	if err != nil {
		log.WithError(err).Error("remove component from configuration failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConfigurationResponse(cfg))
}
