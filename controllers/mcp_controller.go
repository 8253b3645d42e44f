package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"recordapi/models"
	"recordapi/services"
)

// MCPHandler is the single envelope-protocol endpoint. It parses the
// request envelope, routes by method name and translates every failure
// into the fixed error table. One transition per call, no state kept
// between calls.
func (c *Controller) MCPHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeMCPError(w, nil, models.NewMCPErrorf(models.CodeInternalError, err.Error()))
		return
	}

	// Empty and unparseable bodies both report INTERNAL_ERROR; the
	// PARSE_ERROR code stays reserved in the table.
	if len(bytes.TrimSpace(body)) == 0 {
		writeMCPError(w, nil, models.NewMCPErrorf(models.CodeInternalError, "Empty request"))
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		writeMCPError(w, nil, models.NewMCPErrorf(models.CodeInternalError, err.Error()))
		return
	}
	if len(raw) == 0 {
		// A JSON null or bare {} carries no envelope at all.
		writeMCPError(w, nil, models.NewMCPErrorf(models.CodeInternalError, "Empty request"))
		return
	}

	// The id is opaque and echoed verbatim from here on, null included.
	var id interface{}
	if rawID, ok := raw["id"]; ok {
		json.Unmarshal(rawID, &id)
	}

	for _, key := range []string{"jsonrpc", "method", "params"} {
		if _, ok := raw[key]; !ok {
			writeMCPError(w, id, models.NewMCPError(models.CodeInvalidRequest))
			return
		}
	}

	var method string
	json.Unmarshal(raw["method"], &method)

	// A non-object params leaves the map nil; handlers that require
	// specific keys report INVALID_PARAMS on their own.
	var params map[string]interface{}
	json.Unmarshal(raw["params"], &params)

	var result interface{}
	var mcpErr *models.MCPError

	switch method {
	case "add_row":
		result, mcpErr = c.mcpAddRow(r.Context(), params)
	case "get_data":
		result, mcpErr = c.mcpGetData(r.Context())
	case "get_row_count":
		result, mcpErr = c.mcpGetRowCount(r.Context())
	case "search_records":
		result, mcpErr = c.mcpSearchRecords(r.Context(), params)
	case "get_analytics":
		result, mcpErr = c.mcpGetAnalytics(r.Context())
	case "get_data_quality":
		result, mcpErr = c.mcpGetDataQuality(r.Context())
	case "export_data":
		result, mcpErr = c.mcpExportData(r.Context(), params)
	default:
		mcpErr = models.NewMCPError(models.CodeMethodNotFound)
	}

	if mcpErr != nil {
		writeMCPError(w, id, mcpErr)
		return
	}

	writeJSON(w, http.StatusOK, models.MCPResponse{
		JSONRPC: "2.0",
		Result:  result,
		ID:      id,
	})
}

// mcpAddRow validates the record in params and appends it to the store.
func (c *Controller) mcpAddRow(ctx context.Context, params map[string]interface{}) (interface{}, *models.MCPError) {
	if !hasParamKeys(params, "Name", "City") {
		return nil, models.NewMCPError(models.CodeInvalidParams)
	}

	record := recordFromParams(params)

	if violations := services.ValidateRecord(record); len(violations) > 0 {
		return nil, models.NewMCPError(models.CodeValidationError).WithData(violations)
	}

	if err := c.store.AppendRow(ctx, record); err != nil {
		return nil, models.NewMCPErrorf(models.CodeSheetError, err.Error())
	}

	return map[string]interface{}{
		"status":     models.StatusSuccess,
		"rows_added": 1,
	}, nil
}

// mcpGetData returns the full normalized record sequence, no pagination.
func (c *Controller) mcpGetData(ctx context.Context) (interface{}, *models.MCPError) {
	records, mcpErr := c.listNormalized(ctx)
	if mcpErr != nil {
		return nil, mcpErr
	}
	return records, nil
}

func (c *Controller) mcpGetRowCount(ctx context.Context) (interface{}, *models.MCPError) {
	records, mcpErr := c.listNormalized(ctx)
	if mcpErr != nil {
		return nil, mcpErr
	}
	return map[string]interface{}{"count": len(records)}, nil
}

// mcpSearchRecords filters the stored records by case-insensitive
// substring match. Every supplied param that names a record field must
// match; params naming no record field are ignored.
func (c *Controller) mcpSearchRecords(ctx context.Context, params map[string]interface{}) (interface{}, *models.MCPError) {
	if !hasAnyParamKey(params, "Name", "City", "Email") {
		return nil, models.NewMCPError(models.CodeInvalidParams)
	}

	records, mcpErr := c.listNormalized(ctx)
	if mcpErr != nil {
		return nil, mcpErr
	}

	var matched []models.Record
	for _, record := range records {
		if matchesParams(record, params) {
			matched = append(matched, record)
		}
	}

	if len(matched) == 0 {
		return nil, models.NewMCPError(models.CodeDataNotFound)
	}
	return matched, nil
}

func (c *Controller) mcpGetAnalytics(ctx context.Context) (interface{}, *models.MCPError) {
	records, mcpErr := c.listNormalized(ctx)
	if mcpErr != nil {
		return nil, mcpErr
	}
	return services.ComputeAnalytics(records), nil
}

func (c *Controller) mcpGetDataQuality(ctx context.Context) (interface{}, *models.MCPError) {
	records, mcpErr := c.listNormalized(ctx)
	if mcpErr != nil {
		return nil, mcpErr
	}
	return services.AssessDataQuality(records), nil
}

func (c *Controller) mcpExportData(ctx context.Context, params map[string]interface{}) (interface{}, *models.MCPError) {
	format := services.FormatJSON
	if v, ok := params["format"]; ok {
		s, isString := v.(string)
		if !isString {
			return nil, models.NewMCPError(models.CodeInvalidParams)
		}
		format = s
	}

	records, mcpErr := c.listNormalized(ctx)
	if mcpErr != nil {
		return nil, mcpErr
	}

	result, ok := services.ExportRecords(records, format)
	if !ok {
		return nil, models.NewMCPError(models.CodeInvalidParams)
	}
	return result, nil
}

// listNormalized wraps the store read shared by every read-path handler,
// relabeling store failures as SHEET_ERROR.
func (c *Controller) listNormalized(ctx context.Context) ([]models.Record, *models.MCPError) {
	rows, err := c.store.ListAll(ctx)
	if err != nil {
		return nil, models.NewMCPErrorf(models.CodeSheetError, err.Error())
	}
	return services.NormalizeRecords(rows), nil
}

// matchesParams reports whether every string-valued param naming a record
// field is a case-insensitive substring of that field's value.
func matchesParams(record models.Record, params map[string]interface{}) bool {
	for field, value := range params {
		fieldValue, isField := record.Field(field)
		if !isField {
			continue
		}
		needle, isString := value.(string)
		if !isString {
			continue
		}
		if !strings.Contains(strings.ToLower(fieldValue), strings.ToLower(needle)) {
			return false
		}
	}
	return true
}

func hasParamKeys(params map[string]interface{}, keys ...string) bool {
	for _, key := range keys {
		if _, ok := params[key]; !ok {
			return false
		}
	}
	return true
}

func hasAnyParamKey(params map[string]interface{}, keys ...string) bool {
	for _, key := range keys {
		if _, ok := params[key]; ok {
			return true
		}
	}
	return false
}

// recordFromParams builds a candidate record from a decoded JSON object,
// coercing each field through paramString. Both write surfaces use it so a
// numeric Age is accepted identically on either path.
func recordFromParams(params map[string]interface{}) models.Record {
	return models.Record{
		Name:  paramString(params, "Name"),
		City:  paramString(params, "City"),
		Age:   paramString(params, "Age"),
		Email: paramString(params, "Email"),
		Phone: paramString(params, "Phone"),
	}
}

// paramString coerces a param value to its string form. Age in particular
// may arrive as a JSON number and must keep its integer rendering.
func paramString(params map[string]interface{}, key string) string {
	switch v := params[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// httpStatusForCode mirrors the error class onto the HTTP status.
func httpStatusForCode(code int) int {
	switch code {
	case models.CodeInvalidRequest, models.CodeInvalidParams, models.CodeValidationError:
		return http.StatusBadRequest
	case models.CodeMethodNotFound, models.CodeDataNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeMCPError(w http.ResponseWriter, id interface{}, mcpErr *models.MCPError) {
	writeJSON(w, httpStatusForCode(mcpErr.Code), models.MCPResponse{
		JSONRPC: "2.0",
		Error:   mcpErr,
		ID:      id,
	})
}
