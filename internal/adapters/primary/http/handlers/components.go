package handlers

import (
	"net/http"
	"time"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListComponents(c *gin.Context) {
	componentType, err := domain.ParseComponentType(c.Param("type"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	publishedOnly := c.DefaultQuery("published_only", "false") == "true"

	components, err := h.catalogSvc.List(c.Request.Context(), componentType, publishedOnly)
	if err != nil {
		log.WithError(err).Error("list components failed")
		mapDomainError(c, err)
		return
	}

	if components == nil {
		components = []domain.Component{}
	}
	c.JSON(http.StatusOK, gin.H{
		"component_type": componentType,
		"items":          components,
		"total":          len(components),
	})
}

func (h *Handler) GetComponent(c *gin.Context) {
	componentType, err := domain.ParseComponentType(c.Param("type"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component id"})
		return
	}

	component, err := h.catalogSvc.Get(c.Request.Context(), componentType, id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

func (h *Handler) CreateComponent(c *gin.Context) {
	componentType, err := domain.ParseComponentType(c.Param("type"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	component, err := bindComponent(c, componentType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.catalogSvc.Create(c.Request.Context(), component)
	if err != nil {
		log.WithError(err).Error("create component failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateComponent(c *gin.Context) {
	componentType, err := domain.ParseComponentType(c.Param("type"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component id"})
		return
	}

	component, err := bindComponent(c, componentType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	setComponentID(component, id)

	updated, err := h.catalogSvc.Update(c.Request.Context(), component)
	if err != nil {
		log.WithError(err).Error("update component failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteComponent(c *gin.Context) {
	componentType, err := domain.ParseComponentType(c.Param("type"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component id"})
		return
	}

	if err := h.catalogSvc.Delete(c.Request.Context(), componentType, id); err != nil {
		log.WithError(err).Error("delete component failed")
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// bindComponent decodes the request body into the right component kind and
// stamps identity. Field schemas are validated by the catalog service, so
// all violations come back in one payload rather than one per bind.
func bindComponent(c *gin.Context, componentType domain.ComponentType) (domain.Component, error) {
	now := time.Now()

	switch componentType {
	case domain.ComponentEngine:
		e := &domain.Engine{}
		if err := c.ShouldBindJSON(e); err != nil {
			return nil, err
		}
		e.ID, e.CreatedAt, e.UpdatedAt = uuid.New(), now, now
		return e, nil
	case domain.ComponentBrakeSystem:
		b := &domain.BrakeSystem{}
		if err := c.ShouldBindJSON(b); err != nil {
			return nil, err
		}
		b.ID, b.CreatedAt, b.UpdatedAt = uuid.New(), now, now
		return b, nil
	case domain.ComponentFrame:
		f := &domain.Frame{}
		if err := c.ShouldBindJSON(f); err != nil {
			return nil, err
		}
		f.ID, f.CreatedAt, f.UpdatedAt = uuid.New(), now, now
		return f, nil
	case domain.ComponentSuspension:
		s := &domain.Suspension{}
		if err := c.ShouldBindJSON(s); err != nil {
			return nil, err
		}
		s.ID, s.CreatedAt, s.UpdatedAt = uuid.New(), now, now
		return s, nil
	case domain.ComponentWheel:
		w := &domain.Wheel{}
		if err := c.ShouldBindJSON(w); err != nil {
			return nil, err
		}
		w.ID, w.CreatedAt, w.UpdatedAt = uuid.New(), now, now
		return w, nil
	}
	return nil, domain.ErrInvalidComponentType
}

func setComponentID(component domain.Component, id uuid.UUID) {
	switch c := component.(type) {
	case *domain.Engine:
		c.ID = id
	case *domain.BrakeSystem:
		c.ID = id
	case *domain.Frame:
		c.ID = id
	case *domain.Suspension:
		c.ID = id
	case *domain.Wheel:
		c.ID = id
	}
}
