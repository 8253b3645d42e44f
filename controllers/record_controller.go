package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"recordapi/models"
	"recordapi/services"
)

// GetDataHandler returns the full normalized record sequence.
func (c *Controller) GetDataHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := c.store.ListAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Status:  models.StatusError,
			Message: fmt.Sprintf("Error fetching data: %v", err),
		})
		return
	}

	writeJSON(w, http.StatusOK, services.NormalizeRecords(rows))
}

// AddRowHandler validates the submitted record and appends it to the store.
func (c *Controller) AddRowHandler(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload == nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Status:  models.StatusError,
			Message: "Invalid JSON format",
		})
		return
	}
	record := recordFromParams(payload)

	if violations := services.ValidateRecord(record); len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, models.AddRowResponse{
			Status:  models.StatusError,
			Message: "Validation failed",
			Errors:  violations,
		})
		return
	}

	if err := c.store.AppendRow(r.Context(), record); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Status:  models.StatusError,
			Message: fmt.Sprintf("Error: %v", err),
		})
		return
	}

	writeJSON(w, http.StatusOK, models.AddRowResponse{
		Status:  models.StatusSuccess,
		Message: "Row added successfully.",
	})
}

// AnalyticsHandler returns the analytics summary over all records.
func (c *Controller) AnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := c.store.ListAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Status:  models.StatusError,
			Message: fmt.Sprintf("Error fetching data: %v", err),
		})
		return
	}

	writeJSON(w, http.StatusOK, services.ComputeAnalytics(services.NormalizeRecords(rows)))
}

// DataQualityHandler returns the data-quality report over all records.
func (c *Controller) DataQualityHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := c.store.ListAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Status:  models.StatusError,
			Message: fmt.Sprintf("Error fetching data: %v", err),
		})
		return
	}

	writeJSON(w, http.StatusOK, services.AssessDataQuality(services.NormalizeRecords(rows)))
}

// ExportHandler serves the record sequence as a JSON body or a CSV
// attachment, selected by the {format} path variable.
func (c *Controller) ExportHandler(w http.ResponseWriter, r *http.Request) {
	format := mux.Vars(r)["format"]
	if !services.IsSupportedFormat(format) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Status:  models.StatusError,
			Message: fmt.Sprintf("Unsupported export format '%s'", format),
		})
		return
	}

	rows, err := c.store.ListAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Status:  models.StatusError,
			Message: fmt.Sprintf("Error fetching data: %v", err),
		})
		return
	}
	records := services.NormalizeRecords(rows)

	if format == services.FormatCSV {
		filename := fmt.Sprintf("records_%s.csv", time.Now().Format("20060102_150405"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, services.ExportCSV(records))
		return
	}

	writeJSON(w, http.StatusOK, records)
}
