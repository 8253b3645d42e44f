package models

import "encoding/json"

// AgeStatistics summarizes the numeric ages in the dataset.
// Median uses the value at sorted index n/2 (upper median for even counts).
type AgeStatistics struct {
	AverageAge float64        `json:"average_age"`
	MedianAge  int            `json:"median_age"`
	MinAge     int            `json:"min_age"`
	MaxAge     int            `json:"max_age"`
	AgeGroups  map[string]int `json:"age_groups"`
}

// AnalyticsSummary is the full analytics payload. On an empty dataset only
// TotalRecords appears on the wire; on a non-empty dataset every field is
// present even when its value is zero. AgeStatistics is nil when no record
// carries a numeric age.
type AnalyticsSummary struct {
	TotalRecords     int            `json:"total_records"`
	UniqueCities     int            `json:"unique_cities"`
	TopCities        map[string]int `json:"top_cities"`
	AgeStatistics    *AgeStatistics `json:"age_statistics,omitempty"`
	DataCompleteness float64        `json:"data_completeness"`
}

// MarshalJSON keeps the minimal {"total_records":0} shape for an empty
// dataset while serializing the full shape otherwise, zero values included.
func (s AnalyticsSummary) MarshalJSON() ([]byte, error) {
	if s.TotalRecords == 0 {
		return json.Marshal(map[string]int{"total_records": 0})
	}
	type full AnalyticsSummary
	return json.Marshal(full(s))
}

// QualityReport is the data-quality payload. Scores and rates are
// percentages rounded to one decimal. On an empty dataset only
// OverallScore and Issues appear on the wire.
type QualityReport struct {
	OverallScore    float64            `json:"overall_score"`
	TotalRecords    int                `json:"total_records"`
	CompleteRecords int                `json:"complete_records"`
	FieldCompletion map[string]float64 `json:"field_completion"`
	Issues          []string           `json:"issues"`
	Recommendations []string           `json:"recommendations"`
}

// MarshalJSON keeps the minimal {"overall_score":0,"issues":[...]} shape
// for an empty dataset; non-empty reports carry every field, a zero score
// and zero complete-record count included.
func (r QualityReport) MarshalJSON() ([]byte, error) {
	if r.TotalRecords == 0 {
		return json.Marshal(struct {
			OverallScore float64  `json:"overall_score"`
			Issues       []string `json:"issues"`
		}{r.OverallScore, r.Issues})
	}
	type full QualityReport
	return json.Marshal(full(r))
}

// ExportResult wraps an export_data payload with its format tag and size.
type ExportResult struct {
	Format      string      `json:"format"`
	Data        interface{} `json:"data"`
	RecordCount int         `json:"record_count"`
}
