package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateEngine(t *testing.T) {
	m, r := setupRouter()

	m.components.On("Create", mock.Anything, mock.AnythingOfType("*domain.Engine")).Return(nil)
	m.components.On("GetByID", mock.Anything, domain.ComponentEngine, mock.AnythingOfType("uuid.UUID")).
		Return(&domain.Engine{ID: uuid.New(), Name: "parallel twin", DisplacementCC: 649}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"name":            "parallel twin",
		"displacement_cc": 649,
		"cylinder_count":  2,
	})
	req, _ := http.NewRequest("POST", "/api/v1/reference/components/engine", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateEngineReportsAllSchemaViolations(t *testing.T) {
	m, r := setupRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"name":            "",
		"displacement_cc": -100,
		"cylinder_count":  12,
	})
	req, _ := http.NewRequest("POST", "/api/v1/reference/components/engine", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields []domain.FieldError `json:"fields"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Fields, 3)
	m.components.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateComponentUnknownType(t *testing.T) {
	_, r := setupRouter()

	body, _ := json.Marshal(map[string]interface{}{"name": "x"})
	req, _ := http.NewRequest("POST", "/api/v1/reference/components/exhaust", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteComponentInUse(t *testing.T) {
	m, r := setupRouter()

	id := uuid.New()
	m.configs.On("CountReferencing", mock.Anything, domain.ComponentFrame, id).Return(3, nil)

	req, _ := http.NewRequest("DELETE", "/api/v1/reference/components/frame/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	m.components.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignDraftComponentToModelRejected(t *testing.T) {
	m, r := setupRouter()

	modelID := uuid.New()
	componentID := uuid.New()
	m.models.On("GetByID", mock.Anything, modelID).Return(&domain.Model{
		ID: modelID, Name: "Ninja 650", CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}, nil)
	m.components.On("GetByID", mock.Anything, domain.ComponentEngine, componentID).
		Return(&domain.Engine{ID: componentID, Name: "prototype", DisplacementCC: 649, IsDraft: true}, nil)

	body, _ := json.Marshal(map[string]interface{}{"component_id": componentID.String()})
	req, _ := http.NewRequest("PUT", "/api/v1/reference/models/"+modelID.String()+"/components/engine", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	m.assignments.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestAssignComponentToModel(t *testing.T) {
	m, r := setupRouter()

	modelID := uuid.New()
	componentID := uuid.New()
	m.models.On("GetByID", mock.Anything, modelID).Return(&domain.Model{
		ID: modelID, Name: "Ninja 650", CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}, nil)
	m.components.On("GetByID", mock.Anything, domain.ComponentEngine, componentID).
		Return(&domain.Engine{ID: componentID, Name: "parallel twin", DisplacementCC: 649}, nil)
	m.assignments.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.ModelComponentAssignment")).Return(nil)
	m.assignments.On("ListByModel", mock.Anything, modelID).Return([]*domain.ModelComponentAssignment{
		{ID: uuid.New(), ModelID: modelID, ComponentType: domain.ComponentEngine, ComponentID: componentID},
	}, nil)

	body, _ := json.Marshal(map[string]interface{}{"component_id": componentID.String()})
	req, _ := http.NewRequest("PUT", "/api/v1/reference/models/"+modelID.String()+"/components/engine", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.ComponentSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.AssignedCount)
	assert.False(t, resp.Complete)
}
