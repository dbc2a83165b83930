// ABOUTME: Pacing calculator: expected-by-now, on-track, remaining, and quota targets.
// ABOUTME: Pure calendar arithmetic over a fixed 365-day year; no hidden state.
package tracker

import (
	"math"
	"time"

	"github.com/harperreed/fitpace/internal/models"
)

// yearDays is the pacing denominator. Always 365, even across leap years;
// the linear pace is a convention, not calendar truth.
const yearDays = 365.0

// ElapsedDays counts days from start through today, inclusive. A today
// before start clamps to 1 so pre-campaign state still has a valid,
// non-zero denominator.
func ElapsedDays(start, today time.Time) int {
	if today.Before(start) {
		return 1
	}
	return int(today.Sub(start).Hours()/24) + 1
}

// Pace computes the full pace report for all-time totals against goals.
func Pace(totals models.Totals, goals models.GoalSet, start, today time.Time) models.PaceReport {
	elapsed := ElapsedDays(start, today)

	report := models.PaceReport{
		ElapsedDays: elapsed,
		Expected:    make(map[models.Metric]float64, len(models.AllMetrics)),
		OnTrack:     make(map[models.Metric]bool, len(models.AllMetrics)),
		Remaining:   make(map[models.Metric]int, len(models.AllMetrics)),
	}

	for _, m := range models.AllMetrics {
		goal := goals[m]
		expected := float64(goal) * float64(elapsed) / yearDays
		report.Expected[m] = expected
		report.OnTrack[m] = float64(totals[m]) >= expected
		remaining := goal - totals[m]
		if remaining < 0 {
			remaining = 0
		}
		report.Remaining[m] = remaining
	}

	return report
}

// WeeklyTarget is the linear quota for one Monday-to-Sunday week.
func WeeklyTarget(goal int) float64 {
	return float64(goal) / yearDays * 7.0
}

// MonthlyTarget is the linear quota for the calendar month containing today.
func MonthlyTarget(goal int, today time.Time) float64 {
	return float64(goal) / yearDays * float64(DaysInMonth(today))
}

// DaysInMonth returns the day count of the month containing d, derived
// from first-of-next-month minus first-of-month so leap Februaries and
// the December rollover come out right.
func DaysInMonth(d time.Time) int {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextFirst := first.AddDate(0, 1, 0)
	return int(nextFirst.Sub(first).Hours() / 24)
}

// Percent reports done/goal as a whole percentage clamped to [0, 100].
// A goal of zero or less reports 0.
func Percent(done, goal int) int {
	if goal <= 0 {
		return 0
	}
	pct := int(math.Round(float64(done) / float64(goal) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// WeekBounds returns the Monday and Sunday of the week containing d.
func WeekBounds(d time.Time) (time.Time, time.Time) {
	// time.Weekday has Sunday = 0; shift so Monday = 0.
	offset := (int(d.Weekday()) + 6) % 7
	monday := d.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}
