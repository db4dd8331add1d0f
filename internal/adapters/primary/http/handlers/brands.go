package handlers

import (
	"net/http"
	"strconv"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/adapters/primary/http/dto"
	ports "github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListBrands(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.BrandListFilter{
		Country: c.Query("country"),
		Search:  c.Query("search"),
		SortBy:  c.Query("sort_by"),
		Order:   c.Query("order"),
		Limit:   limit,
		Offset:  offset,
	}

	brands, total, err := h.brandSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list brands failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		items = append(items, dto.ToBrandResponse(b))
	}

	c.JSON(http.StatusOK, dto.ListBrandsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand id"})
		return
	}

	brand, err := h.brandSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBrandResponse(brand))
}

func (h *Handler) GetBrandBySlug(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug query parameter is required"})
		return
	}

	brand, err := h.brandSvc.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBrandResponse(brand))
}

func (h *Handler) CreateBrand(c *gin.Context) {
	var req dto.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brand, err := h.brandSvc.Create(c.Request.Context(), req.Name, req.Country, req.FoundedYear, req.Slug)
	if err != nil {
		log.WithError(err).Error("create brand failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBrandResponse(brand))
}

func (h *Handler) UpdateBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand id"})
		return
	}

	var req dto.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.FoundedYear != nil {
		updates["founded_year"] = *req.FoundedYear
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}

	brand, err := h.brandSvc.Update(c.Request.Context(), id, updates)
	if err != nil {
		log.WithError(err).Error("update brand failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBrandResponse(brand))
}

func (h *Handler) DeleteBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand id"})
		return
	}

	if err := h.brandSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete brand failed")
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
