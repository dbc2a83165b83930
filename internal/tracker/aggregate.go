// ABOUTME: Aggregation engine summing daily records into per-metric totals.
// ABOUTME: Pure function; tolerant of any input order, including empty input.
package tracker

import (
	"github.com/harperreed/fitpace/internal/models"
)

// Sum reduces a set of daily records to one total per tracked metric.
// An empty input yields explicit zeros for every metric. Input order is
// irrelevant; records are never mutated.
func Sum(records []models.DailyRecord) models.Totals {
	totals := make(models.Totals, len(models.AllMetrics))
	for _, m := range models.AllMetrics {
		totals[m] = 0
	}
	for _, rec := range records {
		for _, m := range models.AllMetrics {
			totals[m] += rec.Value(m)
		}
	}
	return totals
}
