package services

import (
	"sort"
	"strconv"

	"recordapi/models"
)

// ageGroupLabels in display order.
var ageGroupLabels = []string{"18-25", "26-35", "36-45", "46+"}

// ComputeAnalytics builds the distribution/statistics summary over a
// normalized record sequence. It is a pure function; concurrent calls are
// safe. An empty sequence short-circuits to {total_records: 0}.
func ComputeAnalytics(records []models.Record) models.AnalyticsSummary {
	if len(records) == 0 {
		return models.AnalyticsSummary{TotalRecords: 0}
	}

	cityCounts := make(map[string]int)
	var ages []int

	for _, record := range records {
		if record.City != "" {
			cityCounts[record.City]++
		}
		// Ages participate only when the raw value is a non-empty
		// all-digit string that fits in an int; absurdly long digit
		// runs from the sheet are skipped rather than wrapped.
		if isAllDigits(record.Age) {
			if age, err := strconv.Atoi(record.Age); err == nil {
				ages = append(ages, age)
			}
		}
	}

	summary := models.AnalyticsSummary{
		TotalRecords:     len(records),
		UniqueCities:     len(cityCounts),
		TopCities:        topCities(cityCounts, 10),
		DataCompleteness: AssessDataQuality(records).OverallScore,
	}

	if len(ages) > 0 {
		summary.AgeStatistics = computeAgeStatistics(ages)
	}

	return summary
}

// topCities keeps the limit highest-count cities. Count descending, name
// ascending on ties so output is deterministic; the tie order itself is
// not a contract.
func topCities(counts map[string]int, limit int) map[string]int {
	type cityCount struct {
		city  string
		count int
	}

	ranked := make([]cityCount, 0, len(counts))
	for city, count := range counts {
		ranked = append(ranked, cityCount{city, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].city < ranked[j].city
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	top := make(map[string]int, len(ranked))
	for _, cc := range ranked {
		top[cc.city] = cc.count
	}
	return top
}

func computeAgeStatistics(ages []int) *models.AgeStatistics {
	sorted := make([]int, len(ages))
	copy(sorted, ages)
	sort.Ints(sorted)

	sum := 0
	groups := map[string]int{}
	for _, label := range ageGroupLabels {
		groups[label] = 0
	}

	for _, age := range sorted {
		sum += age
		switch {
		case age >= 18 && age <= 25:
			groups["18-25"]++
		case age >= 26 && age <= 35:
			groups["26-35"]++
		case age >= 36 && age <= 45:
			groups["36-45"]++
		case age >= 46:
			groups["46+"]++
		}
	}

	return &models.AgeStatistics{
		AverageAge: float64(sum) / float64(len(sorted)),
		// Upper median: the value at sorted index n/2, not the
		// interpolated middle for even counts.
		MedianAge: sorted[len(sorted)/2],
		MinAge:    sorted[0],
		MaxAge:    sorted[len(sorted)-1],
		AgeGroups: groups,
	}
}
