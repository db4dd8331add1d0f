package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPropagateTrim(t *testing.T) {
	m, r := setupRouter()

	sourceID := uuid.New()
	sourceYearID := uuid.New()
	targetA := uuid.New()
	targetB := uuid.New()
	source := &domain.Configuration{
		ID: sourceID, ModelYearID: sourceYearID, Name: "SP", TrimLevel: "Premium",
	}

	m.configs.On("GetByID", mock.Anything, sourceID).Return(source, nil)
	m.years.On("GetByID", mock.Anything, targetA).Return(testModelYear(targetA), nil)
	m.years.On("GetByID", mock.Anything, targetB).Return(testModelYear(targetB), nil)
	// targetA already carries an SP trim, targetB does not.
	m.configs.On("FindByYearAndName", mock.Anything, targetA, "SP").
		Return(&domain.Configuration{ID: uuid.New(), ModelYearID: targetA, Name: "SP"}, nil)
	m.configs.On("FindByYearAndName", mock.Anything, targetB, "SP").
		Return(nil, domain.ErrConfigurationNotFound)
	m.configs.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]*domain.Configuration")).
		Return(func(cfgs []*domain.Configuration) []uuid.UUID {
			ids := make([]uuid.UUID, 0, len(cfgs))
			for _, cfg := range cfgs {
				ids = append(ids, cfg.ID)
			}
			return ids
		}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"target_year_ids": []string{targetA.String(), targetB.String()},
	})
	req, _ := http.NewRequest("POST", "/api/v1/reference/configurations/"+sourceID.String()+"/propagate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CreatedIDs     []uuid.UUID `json:"created_ids"`
		SkippedYearIDs []uuid.UUID `json:"skipped_year_ids"`
		CreatedCount   int         `json:"created_count"`
		SkippedCount   int         `json:"skipped_count"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.CreatedCount)
	assert.Equal(t, 1, resp.SkippedCount)
	assert.Equal(t, []uuid.UUID{targetA}, resp.SkippedYearIDs)
}

func TestPropagateTrimSourceMissing(t *testing.T) {
	m, r := setupRouter()

	sourceID := uuid.New()
	m.configs.On("GetByID", mock.Anything, sourceID).Return(nil, domain.ErrConfigurationNotFound)

	body, _ := json.Marshal(map[string]interface{}{
		"target_year_ids": []string{uuid.New().String()},
	})
	req, _ := http.NewRequest("POST", "/api/v1/reference/configurations/"+sourceID.String()+"/propagate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	m.configs.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestPropagateTrimRequiresTargets(t *testing.T) {
	_, r := setupRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"target_year_ids": []string{},
	})
	req, _ := http.NewRequest("POST", "/api/v1/reference/configurations/"+uuid.New().String()+"/propagate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTrim(t *testing.T) {
	m, r := setupRouter()

	yearID := uuid.New()
	m.years.On("GetByID", mock.Anything, yearID).Return(testModelYear(yearID), nil)
	m.configs.On("FindByYearAndName", mock.Anything, yearID, "Touring Pack").
		Return(nil, domain.ErrConfigurationNotFound)
	m.configs.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]*domain.Configuration")).
		Return(func(cfgs []*domain.Configuration) []uuid.UUID {
			ids := make([]uuid.UUID, 0, len(cfgs))
			for _, cfg := range cfgs {
				ids = append(ids, cfg.ID)
			}
			return ids
		}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"year_ids":   []string{yearID.String()},
		"name":       "Touring Pack",
		"trim_level": "Touring",
	})
	req, _ := http.NewRequest("POST", "/api/v1/reference/trims", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		CreatedCount int `json:"created_count"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.CreatedCount)
}

func TestCreateTrimAllYearsSkipped(t *testing.T) {
	m, r := setupRouter()

	yearID := uuid.New()
	m.years.On("GetByID", mock.Anything, yearID).Return(testModelYear(yearID), nil)
	m.configs.On("FindByYearAndName", mock.Anything, yearID, "Touring Pack").
		Return(&domain.Configuration{ID: uuid.New(), ModelYearID: yearID, Name: "Touring Pack"}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"year_ids": []string{yearID.String()},
		"name":     "Touring Pack",
	})
	req, _ := http.NewRequest("POST", "/api/v1/reference/trims", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Nothing was created, so the no-op reports as a plain 200.
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CreatedCount   int         `json:"created_count"`
		SkippedYearIDs []uuid.UUID `json:"skipped_year_ids"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.CreatedCount)
	assert.Equal(t, []uuid.UUID{yearID}, resp.SkippedYearIDs)
	m.configs.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestCreateTrimRequiresName(t *testing.T) {
	m, r := setupRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"year_ids": []string{uuid.New().String()},
		"name":     "  ",
	})
	req, _ := http.NewRequest("POST", "/api/v1/reference/trims", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	m.configs.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}
