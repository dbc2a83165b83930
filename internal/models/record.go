// ABOUTME: DailyRecord model and Metric enum for daily exercise tracking.
// ABOUTME: One record per (user, date); four metrics summed toward annual goals.
package models

import (
	"math"
	"time"
)

// DateLayout is the canonical ISO 8601 day format used everywhere:
// store keys, query parameters, JSON payloads, CSV rows.
const DateLayout = "2006-01-02"

// Metric identifies one of the tracked exercise quantities.
type Metric string

const (
	MetricPushups      Metric = "pushups"
	MetricPullups      Metric = "pullups"
	MetricDips         Metric = "dips"
	MetricPlankSeconds Metric = "plank_seconds"
)

// AllMetrics lists every tracked metric in display order.
var AllMetrics = []Metric{
	MetricPushups,
	MetricPullups,
	MetricDips,
	MetricPlankSeconds,
}

// MetricLabels maps metrics to their dashboard labels.
var MetricLabels = map[Metric]string{
	MetricPushups:      "Pushups",
	MetricPullups:      "Pull-ups",
	MetricDips:         "Dips",
	MetricPlankSeconds: "Plank",
}

// GoalSet maps each metric to its annual target. Plank is counted in
// seconds; the other metrics in repetitions. Fixed at startup.
type GoalSet map[Metric]int

// Totals holds per-metric sums over a set of records. Derived per
// request; never persisted.
type Totals map[Metric]int

// DailyRecord is one day's logged counts for the single tracked user.
// Absent dates count as all zeros for aggregation purposes.
type DailyRecord struct {
	UserID       string `json:"user_id"`
	Date         string `json:"date"`
	Pushups      int    `json:"pushups"`
	Pullups      int    `json:"pullups"`
	Dips         int    `json:"dips"`
	PlankSeconds int    `json:"plank_seconds"`
}

// Value returns the record's count for the given metric.
func (r DailyRecord) Value(m Metric) int {
	switch m {
	case MetricPushups:
		return r.Pushups
	case MetricPullups:
		return r.Pullups
	case MetricDips:
		return r.Dips
	case MetricPlankSeconds:
		return r.PlankSeconds
	}
	return 0
}

// Row is the display/API projection of a DailyRecord: plank exposed in
// minutes rather than seconds.
type Row struct {
	Date         string  `json:"date"`
	Pushups      int     `json:"pushups"`
	Pullups      int     `json:"pullups"`
	Dips         int     `json:"dips"`
	PlankMinutes float64 `json:"plank_minutes"`
}

// ToRow converts a stored record to its display projection.
func (r DailyRecord) ToRow() Row {
	return Row{
		Date:         r.Date,
		Pushups:      r.Pushups,
		Pullups:      r.Pullups,
		Dips:         r.Dips,
		PlankMinutes: SecondsToMinutes(r.PlankSeconds),
	}
}

// MinutesToSeconds converts plank minutes to stored seconds.
// Canonical rounding rule: truncate. 1.99 min stores as 119 s.
func MinutesToSeconds(minutes float64) int {
	if minutes <= 0 {
		return 0
	}
	return int(minutes * 60)
}

// SecondsToMinutes converts stored seconds to display minutes.
// Canonical rounding rule: round to one decimal. 120 s reads as 2.0 min.
func SecondsToMinutes(seconds int) float64 {
	return math.Round(float64(seconds)/60*10) / 10
}

// ParseDate parses an ISO day string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// PaceReport captures where totals stand against linear annual pace.
// Derived fresh per request; no hidden state.
type PaceReport struct {
	ElapsedDays int
	Expected    map[Metric]float64
	OnTrack     map[Metric]bool
	Remaining   map[Metric]int
}
