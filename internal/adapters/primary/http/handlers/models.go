package handlers

import (
	"net/http"
	"strconv"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/adapters/primary/http/dto"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	ports "github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListModels(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.ModelListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sort_by"),
		Order:    c.Query("order"),
		Limit:    limit,
		Offset:   offset,
	}
	if raw := c.Query("brand_id"); raw != "" {
		brandID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand_id"})
			return
		}
		filter.BrandID = brandID
	}

	models, total, err := h.modelSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list models failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ModelResponse, 0, len(models))
	for _, m := range models {
		items = append(items, dto.ToModelResponse(m))
	}

	c.JSON(http.StatusOK, dto.ListModelsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetModel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model id"})
		return
	}

	model, err := h.modelSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelResponse(model))
}

func (h *Handler) CreateModel(c *gin.Context) {
	var req dto.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model, err := h.modelSvc.Create(c.Request.Context(), req.BrandID, req.Name,
		domain.ModelCategory(req.Category), req.ProductionStart, req.ProductionEnd, req.Slug)
	if err != nil {
		log.WithError(err).Error("create model failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToModelResponse(model))
}

func (h *Handler) UpdateModel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model id"})
		return
	}

	var req dto.UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.ProductionStart != nil {
		updates["production_start"] = *req.ProductionStart
	}
	if req.ProductionEnd != nil {
		updates["production_end"] = *req.ProductionEnd
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}

	model, err := h.modelSvc.Update(c.Request.Context(), id, updates)
	if err != nil {
		log.WithError(err).Error("update model failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelResponse(model))
}

func (h *Handler) DeleteModel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model id"})
		return
	}

	if err := h.modelSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete model failed")
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ============================================================================
// Model Years
// ============================================================================

func (h *Handler) ListModelYears(c *gin.Context) {
	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model id"})
		return
	}

	years, err := h.modelSvc.ListYears(c.Request.Context(), modelID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ModelYearResponse, 0, len(years))
	for _, y := range years {
		items = append(items, dto.ToModelYearResponse(y))
	}

	c.JSON(http.StatusOK, dto.ListModelYearsResponse{
		Items: items,
		Total: len(items),
	})
}

func (h *Handler) CreateModelYear(c *gin.Context) {
	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model id"})
		return
	}

	var req dto.CreateModelYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	year, err := h.modelSvc.CreateYear(c.Request.Context(), modelID, req.Year, req.MSRP, req.Tagline, req.IsAvailable)
	if err != nil {
		log.WithError(err).Error("create model year failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToModelYearResponse(year))
}

func (h *Handler) GetModelYear(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model year id"})
		return
	}

	year, err := h.modelSvc.GetYear(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelYearResponse(year))
}

func (h *Handler) UpdateModelYear(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model year id"})
		return
	}

	var req dto.UpdateModelYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.MSRP != nil {
		updates["msrp"] = *req.MSRP
	}
	if req.Tagline != nil {
		updates["tagline"] = *req.Tagline
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.MarketingTag != nil {
		updates["marketing_tag"] = *req.MarketingTag
	}

	year, err := h.modelSvc.UpdateYear(c.Request.Context(), id, updates)
	if err != nil {
		log.WithError(err).Error("update model year failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelYearResponse(year))
}

func (h *Handler) DeleteModelYear(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model year id"})
		return
	}

	if err := h.modelSvc.DeleteYear(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete model year failed")
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
