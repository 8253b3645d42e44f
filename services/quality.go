package services

import (
	"fmt"
	"math"
	"strings"

	"recordapi/models"
)

// AssessDataQuality scores completeness over a normalized record sequence.
// A field counts as present when it is non-empty after trimming; a record
// is complete only when all five fields are present. Pure function, no
// randomness: every issue and recommendation comes from a fixed template.
func AssessDataQuality(records []models.Record) models.QualityReport {
	if len(records) == 0 {
		return models.QualityReport{
			OverallScore: 0,
			Issues:       []string{"No data available"},
		}
	}

	total := len(records)
	presentCounts := make(map[string]int, len(models.CanonicalFields))
	completeRecords := 0

	for _, record := range records {
		complete := true
		for _, field := range models.CanonicalFields {
			value, _ := record.Field(field)
			if isPresent(value) {
				presentCounts[field]++
			} else {
				complete = false
			}
		}
		if complete {
			completeRecords++
		}
	}

	overallScore := roundOneDecimal(100 * float64(completeRecords) / float64(total))

	fieldCompletion := make(map[string]float64, len(models.CanonicalFields))
	for _, field := range models.CanonicalFields {
		fieldCompletion[field] = roundOneDecimal(100 * float64(presentCounts[field]) / float64(total))
	}

	return models.QualityReport{
		OverallScore:    overallScore,
		TotalRecords:    total,
		CompleteRecords: completeRecords,
		FieldCompletion: fieldCompletion,
		Issues:          collectIssues(overallScore, fieldCompletion),
		Recommendations: buildRecommendations(overallScore, fieldCompletion),
	}
}

func collectIssues(score float64, fieldCompletion map[string]float64) []string {
	var issues []string

	if score < 70 {
		issues = append(issues, fmt.Sprintf("Overall completeness is below 70%% (%.1f%%)", score))
	}

	for _, field := range models.CanonicalFields {
		rate := fieldCompletion[field]
		if rate < 80 {
			issues = append(issues, fmt.Sprintf("Field '%s' is incomplete in %.1f%% of records", field, roundOneDecimal(100-rate)))
		}
	}

	if len(issues) == 0 {
		issues = []string{"No major data quality issues found"}
	}
	return issues
}

func buildRecommendations(score float64, fieldCompletion map[string]float64) []string {
	var recs []string

	switch {
	case score >= 90:
		recs = append(recs, "Excellent data quality - maintain current entry practices")
	case score >= 70:
		recs = append(recs, "Good data quality - minor improvements possible")
	default:
		recs = append(recs, "Data quality needs improvement - enforce required fields")
	}

	for _, field := range models.CanonicalFields {
		rate := fieldCompletion[field]
		switch {
		case rate < 60:
			recs = append(recs, fmt.Sprintf("Critical: make %s a required field", field))
		case rate < 80:
			recs = append(recs, fmt.Sprintf("Consider improving %s collection", field))
		}
	}

	recs = append(recs, "Implement real-time validation at data entry")
	return recs
}

func isPresent(value string) bool {
	return strings.TrimSpace(value) != ""
}

func roundOneDecimal(x float64) float64 {
	return math.Round(x*10) / 10
}
