package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordapi/models"
	"recordapi/services"
)

func newTestRouter(c *Controller) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", c.IndexHandler).Methods("GET")
	router.HandleFunc("/get_data", c.GetDataHandler).Methods("GET")
	router.HandleFunc("/add_row", c.AddRowHandler).Methods("POST")
	router.HandleFunc("/analytics", c.AnalyticsHandler).Methods("GET")
	router.HandleFunc("/data-quality", c.DataQualityHandler).Methods("GET")
	router.HandleFunc("/export/{format}", c.ExportHandler).Methods("GET")
	router.HandleFunc("/health", c.HealthHandler).Methods("GET")
	return router
}

func TestGetDataHandler(t *testing.T) {
	router := newTestRouter(seededController(t))

	req := httptest.NewRequest(http.MethodGet, "/get_data", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var records []models.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Alice Smith", records[0].Name)
}

func TestIndexHandler_SameAsGetData(t *testing.T) {
	router := newTestRouter(seededController(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var records []models.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Len(t, records, 2)
}

func TestAddRowHandler(t *testing.T) {
	store := services.NewMemoryStore()
	router := newTestRouter(NewController(store))

	body := `{"Name":"Alice Smith","City":"Paris","Age":"30","Email":"a@b.com","Phone":"12345678"}`
	req := httptest.NewRequest(http.MethodPost, "/add_row", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response models.AddRowResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, models.StatusSuccess, response.Status)
	assert.Equal(t, "Row added successfully.", response.Message)

	rows, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestAddRowHandler_NumericAge(t *testing.T) {
	store := services.NewMemoryStore()
	router := newTestRouter(NewController(store))

	// A JSON number for Age is coerced the same way the envelope
	// surface coerces it.
	body := `{"Name":"Alice Smith","City":"Paris","Age":30,"Email":"a@b.com","Phone":"12345678"}`
	req := httptest.NewRequest(http.MethodPost, "/add_row", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	rows, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "30", rows[0]["Age"])
}

func TestAddRowHandler_ValidationFailure(t *testing.T) {
	router := newTestRouter(NewController(services.NewMemoryStore()))

	body := `{"Name":"A","City":"London","Age":"200","Email":"bad","Phone":"123"}`
	req := httptest.NewRequest(http.MethodPost, "/add_row", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var response models.AddRowResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, models.StatusError, response.Status)
	assert.Equal(t, "Validation failed", response.Message)
	assert.Len(t, response.Errors, 4)
}

func TestAddRowHandler_InvalidJSON(t *testing.T) {
	router := newTestRouter(NewController(services.NewMemoryStore()))

	req := httptest.NewRequest(http.MethodPost, "/add_row", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsHandler(t *testing.T) {
	router := newTestRouter(seededController(t))

	req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var summary models.AnalyticsSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.TotalRecords)
	require.NotNil(t, summary.AgeStatistics)
	assert.Equal(t, 42, summary.AgeStatistics.MedianAge)
}

func TestDataQualityHandler(t *testing.T) {
	router := newTestRouter(seededController(t))

	req := httptest.NewRequest(http.MethodGet, "/data-quality", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var report models.QualityReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.InDelta(t, 100.0, report.OverallScore, 0.001)
}

func TestExportHandler_CSVHeaders(t *testing.T) {
	router := newTestRouter(seededController(t))

	req := httptest.NewRequest(http.MethodGet, "/export/csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	disposition := rec.Header().Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(disposition, "attachment; filename=records_"))
	assert.True(t, strings.HasSuffix(disposition, ".csv"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Name,City,Age,Email,Phone\n"))
}

func TestExportHandler_JSON(t *testing.T) {
	router := newTestRouter(seededController(t))

	req := httptest.NewRequest(http.MethodGet, "/export/json", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var records []models.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Len(t, records, 2)
}

func TestExportHandler_UnknownFormat(t *testing.T) {
	router := newTestRouter(seededController(t))

	req := httptest.NewRequest(http.MethodGet, "/export/xml", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	router := newTestRouter(NewController(services.NewMemoryStore()))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var health map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, "memory", health["store"])
}

func TestGetDataHandler_StoreFailure(t *testing.T) {
	router := newTestRouter(NewController(failingStore{}))

	req := httptest.NewRequest(http.MethodGet, "/get_data", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var response models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, models.StatusError, response.Status)
	assert.Contains(t, response.Message, "Error fetching data")
}
