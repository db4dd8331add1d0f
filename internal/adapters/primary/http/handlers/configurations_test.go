package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/services"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/testutil"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerMocks struct {
	brands      *testutil.MockBrandRepo
	models      *testutil.MockModelRepo
	years       *testutil.MockModelYearRepo
	configs     *testutil.MockConfigurationRepo
	components  *testutil.MockComponentRepo
	assignments *testutil.MockAssignmentRepo
	cache       *testutil.FakeViewCache
}

func setupRouter() (*handlerMocks, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	m := &handlerMocks{
		brands:      new(testutil.MockBrandRepo),
		models:      new(testutil.MockModelRepo),
		years:       new(testutil.MockModelYearRepo),
		configs:     new(testutil.MockConfigurationRepo),
		components:  new(testutil.MockComponentRepo),
		assignments: new(testutil.MockAssignmentRepo),
		cache:       testutil.NewFakeViewCache(),
	}

	validate := validation.New()
	brandSvc := services.NewBrandService(m.brands, m.models)
	modelSvc := services.NewModelService(m.models, m.brands, m.years)
	configSvc := services.NewConfigurationService(m.configs, m.years)
	catalogSvc := services.NewComponentCatalogService(m.components, m.configs, validate)
	assignmentSvc := services.NewAssignmentService(m.assignments, m.components, m.configs, m.models, m.cache)
	trimSvc := services.NewTrimService(m.configs, m.years, m.cache)

	h := New(brandSvc, modelSvc, configSvc, catalogSvc, assignmentSvc, trimSvc)
	r := gin.New()
	api := r.Group("/api/v1/reference")
	h.RegisterRoutes(api)

	return m, r
}

func testModelYear(id uuid.UUID) *domain.ModelYear {
	return &domain.ModelYear{
		ID: id, ModelID: uuid.New(), Year: 2024,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
}

func TestListConfigurations(t *testing.T) {
	m, r := setupRouter()

	yearID := uuid.New()
	m.years.On("GetByID", mock.Anything, yearID).Return(testModelYear(yearID), nil)
	m.configs.On("ListForYear", mock.Anything, yearID).Return([]*domain.Configuration{
		{ID: uuid.New(), ModelYearID: yearID, Name: "SP", IsDefault: true},
		{ID: uuid.New(), ModelYearID: yearID, Name: "Standard"},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/reference/model_years/"+yearID.String()+"/configurations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []struct {
			Name      string `json:"name"`
			IsDefault bool   `json:"is_default"`
		} `json:"items"`
		Total int `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.True(t, resp.Items[0].IsDefault)
}

func TestListConfigurationsUnknownYear(t *testing.T) {
	m, r := setupRouter()

	yearID := uuid.New()
	m.years.On("GetByID", mock.Anything, yearID).Return(nil, domain.ErrModelYearNotFound)

	req, _ := http.NewRequest("GET", "/api/v1/reference/model_years/"+yearID.String()+"/configurations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateConfiguration(t *testing.T) {
	m, r := setupRouter()

	yearID := uuid.New()
	m.years.On("GetByID", mock.Anything, yearID).Return(testModelYear(yearID), nil)
	m.configs.On("Create", mock.Anything, mock.AnythingOfType("*domain.Configuration")).Return(nil)
	m.configs.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(&domain.Configuration{
		ID: uuid.New(), ModelYearID: yearID, Name: "SP",
		SpecialFeatures: []string{}, OptionalEquipment: []string{},
	}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"name":           "SP",
		"seat_height_mm": "820",
		"weight_kg":      "",
	})
	req, _ := http.NewRequest("POST", "/api/v1/reference/model_years/"+yearID.String()+"/configurations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateConfigurationReportsAllFieldErrors(t *testing.T) {
	m, r := setupRouter()

	yearID := uuid.New()
	m.years.On("GetByID", mock.Anything, yearID).Return(testModelYear(yearID), nil)

	body, _ := json.Marshal(map[string]interface{}{
		"name":           "",
		"seat_height_mm": "tall",
		"msrp":           "cheap",
	})
	req, _ := http.NewRequest("POST", "/api/v1/reference/model_years/"+yearID.String()+"/configurations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields []domain.FieldError `json:"fields"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Fields, 3)
	m.configs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetDefaultConfigurationWhenNoneExists(t *testing.T) {
	m, r := setupRouter()

	yearID := uuid.New()
	m.configs.On("GetDefault", mock.Anything, yearID).Return(nil, nil)

	req, _ := http.NewRequest("GET", "/api/v1/reference/model_years/"+yearID.String()+"/default", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp["default"])
}

func TestSetDefaultConfiguration(t *testing.T) {
	m, r := setupRouter()

	yearID := uuid.New()
	configID := uuid.New()
	cfg := &domain.Configuration{ID: configID, ModelYearID: yearID, Name: "SP"}

	m.configs.On("GetByID", mock.Anything, configID).Return(cfg, nil)
	m.configs.On("SetDefault", mock.Anything, yearID, configID).Return(nil)

	req, _ := http.NewRequest("POST",
		"/api/v1/reference/model_years/"+yearID.String()+"/configurations/"+configID.String()+"/default", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	m.configs.AssertCalled(t, "SetDefault", mock.Anything, yearID, configID)
}

func TestSetDefaultConfigurationWrongYear(t *testing.T) {
	m, r := setupRouter()

	yearID := uuid.New()
	configID := uuid.New()
	cfg := &domain.Configuration{ID: configID, ModelYearID: uuid.New(), Name: "SP"}

	m.configs.On("GetByID", mock.Anything, configID).Return(cfg, nil)

	req, _ := http.NewRequest("POST",
		"/api/v1/reference/model_years/"+yearID.String()+"/configurations/"+configID.String()+"/default", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	m.configs.AssertNotCalled(t, "SetDefault", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetConfigurationMetrics(t *testing.T) {
	m, r := setupRouter()

	configID := uuid.New()
	power := 100.0
	torque := 90.0
	weight := 200.0
	displacement := 998.0
	cylinders := 4
	cfg := &domain.Configuration{
		ID: configID, ModelYearID: uuid.New(), Name: "SP",
		WeightKG: &weight,
		Engine: &domain.Engine{
			ID: uuid.New(), Name: "inline four", DisplacementCC: displacement,
			PowerHP: &power, TorqueNM: &torque, CylinderCount: &cylinders,
		},
	}
	m.configs.On("GetByID", mock.Anything, configID).Return(cfg, nil)

	req, _ := http.NewRequest("GET", "/api/v1/reference/configurations/"+configID.String()+"/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Metrics services.Metrics `json:"metrics"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.23, resp.Metrics.PowerToWeight)
	assert.Equal(t, 249.5, resp.Metrics.DisplacementPerCylinder)
	assert.Equal(t, "Sport Performance", resp.Metrics.PerformanceCategory)
}

func TestGetConfigurationInvalidID(t *testing.T) {
	_, r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/v1/reference/configurations/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
