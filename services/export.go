package services

import (
	"strings"

	"recordapi/models"
)

// Export formats accepted by the export surfaces.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// IsSupportedFormat reports whether format is an accepted export format.
func IsSupportedFormat(format string) bool {
	return format == FormatJSON || format == FormatCSV
}

// ExportCSV renders the record sequence as CSV with the fixed header
// Name,City,Age,Email,Phone. The only escaping performed is replacing
// embedded commas with semicolons; embedded newlines and quotes pass
// through untouched, which is a known limitation of the wire contract and
// why encoding/csv is not used here.
func ExportCSV(records []models.Record) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(models.CanonicalFields, ","))
	sb.WriteString("\n")

	for _, record := range records {
		values := record.Values()
		for i, value := range values {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(strings.ReplaceAll(value, ",", ";"))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ExportRecords serializes the sequence in the requested format. JSON mode
// passes the records through for the caller's encoder; CSV mode produces
// the rendered string. ok is false for an unsupported format.
func ExportRecords(records []models.Record, format string) (models.ExportResult, bool) {
	switch format {
	case FormatJSON:
		return models.ExportResult{
			Format:      FormatJSON,
			Data:        records,
			RecordCount: len(records),
		}, true
	case FormatCSV:
		return models.ExportResult{
			Format:      FormatCSV,
			Data:        ExportCSV(records),
			RecordCount: len(records),
		}, true
	}
	return models.ExportResult{}, false
}
