package handlers

import (
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	brandSvc      *services.BrandService
	modelSvc      *services.ModelService
	configSvc     *services.ConfigurationService
	catalogSvc    *services.ComponentCatalogService
	assignmentSvc *services.AssignmentService
	trimSvc       *services.TrimService
}

func New(
	brandSvc *services.BrandService,
	modelSvc *services.ModelService,
	configSvc *services.ConfigurationService,
	catalogSvc *services.ComponentCatalogService,
	assignmentSvc *services.AssignmentService,
	trimSvc *services.TrimService,
) *Handler {
	return &Handler{
		brandSvc:      brandSvc,
		modelSvc:      modelSvc,
		configSvc:     configSvc,
		catalogSvc:    catalogSvc,
		assignmentSvc: assignmentSvc,
		trimSvc:       trimSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Brands
	r.GET("/brands", h.ListBrands)
	r.GET("/brands/:id", h.GetBrand)
	r.GET("/brand", h.GetBrandBySlug)
	r.POST("/brands", h.CreateBrand)
	r.PATCH("/brands/:id", h.UpdateBrand)
	r.DELETE("/brands/:id", h.DeleteBrand)

	// Models
	r.GET("/models", h.ListModels)
	r.GET("/models/:id", h.GetModel)
	r.POST("/models", h.CreateModel)
	r.PATCH("/models/:id", h.UpdateModel)
	r.DELETE("/models/:id", h.DeleteModel)

	// Model Years (nested under model)
	r.GET("/models/:id/years", h.ListModelYears)
	r.POST("/models/:id/years", h.CreateModelYear)
	r.GET("/model_years/:id", h.GetModelYear)
	r.PATCH("/model_years/:id", h.UpdateModelYear)
	r.DELETE("/model_years/:id", h.DeleteModelYear)

	// Configurations (trims, nested under model year)
	r.GET("/model_years/:id/configurations", h.ListConfigurations)
	r.POST("/model_years/:id/configurations", h.CreateConfiguration)
	r.GET("/model_years/:id/default", h.GetDefaultConfiguration)
	r.POST("/model_years/:id/configurations/:config_id/default", h.SetDefaultConfiguration)
	r.GET("/configurations/:id", h.GetConfiguration)
	r.PATCH("/configurations/:id", h.UpdateConfiguration)
	r.DELETE("/configurations/:id", h.DeleteConfiguration)

	// Component Catalogs
	r.GET("/components/:type", h.ListComponents)
	r.POST("/components/:type", h.CreateComponent)
	r.GET("/components/:type/:id", h.GetComponent)
	r.PATCH("/components/:type/:id", h.UpdateComponent)
	r.DELETE("/components/:type/:id", h.DeleteComponent)

	// Assignment Engine
	r.GET("/models/:id/components", h.GetModelComponentSummary)
	r.PUT("/models/:id/components/:type", h.AssignComponentToModel)
	r.DELETE("/models/:id/components/:type", h.RemoveComponentFromModel)
	r.PUT("/configurations/:id/components/:type", h.AssignComponentToConfiguration)
	r.DELETE("/configurations/:id/components/:type", h.RemoveComponentFromConfiguration)

	// Trim Propagation
	r.POST("/configurations/:id/propagate", h.PropagateTrim)
	r.POST("/trims", h.CreateTrim)

	// Derived Metrics
	r.GET("/configurations/:id/metrics", h.GetConfigurationMetrics)
}
