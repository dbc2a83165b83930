// ABOUTME: Tests for the pacing calculator.
// ABOUTME: Elapsed days, calendar month lengths, percent clamping, week bounds.
package tracker

import (
	"math"
	"testing"
	"time"

	"github.com/harperreed/fitpace/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestElapsedDays(t *testing.T) {
	start := day(2026, time.January, 1)

	tests := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"same day", day(2026, time.January, 1), 1},
		{"ten days in", day(2026, time.January, 10), 10},
		{"before start clamps to one", day(2025, time.December, 20), 1},
		{"full year", day(2026, time.December, 31), 365},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElapsedDays(start, tt.today); got != tt.want {
				t.Errorf("ElapsedDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		d    time.Time
		want int
	}{
		{day(2026, time.January, 15), 31},
		{day(2026, time.February, 10), 28},
		{day(2028, time.February, 1), 29},
		{day(2026, time.April, 30), 30},
		{day(2026, time.December, 31), 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.d); got != tt.want {
			t.Errorf("DaysInMonth(%s) = %d, want %d", tt.d.Format("2006-01"), got, tt.want)
		}
	}
}

func TestPercentClampedAndMonotonic(t *testing.T) {
	if Percent(0, 0) != 0 || Percent(500, 0) != 0 {
		t.Error("zero goal must report 0")
	}
	if Percent(-5, 100) != 0 {
		t.Error("negative done must clamp to 0")
	}
	if Percent(250, 100) != 100 {
		t.Error("overshoot must clamp to 100")
	}
	if Percent(50, 100) != 50 {
		t.Errorf("Percent(50, 100) = %d", Percent(50, 100))
	}
	if Percent(1, 3) != 33 {
		t.Errorf("Percent(1, 3) = %d, want 33", Percent(1, 3))
	}

	prev := 0
	for done := 0; done <= 1200; done += 25 {
		pct := Percent(done, 1000)
		if pct < prev {
			t.Fatalf("percent not monotonic at done=%d: %d < %d", done, pct, prev)
		}
		prev = pct
	}
}

func TestPaceExpectedAndRemaining(t *testing.T) {
	goals := models.GoalSet{
		models.MetricPushups:      15000,
		models.MetricPullups:      2000,
		models.MetricDips:         5000,
		models.MetricPlankSeconds: 90000,
	}
	totals := models.Totals{
		models.MetricPushups:      500,
		models.MetricPullups:      10,
		models.MetricDips:         200,
		models.MetricPlankSeconds: 100000,
	}
	start := day(2026, time.January, 1)
	today := day(2026, time.January, 10)

	report := Pace(totals, goals, start, today)

	if report.ElapsedDays != 10 {
		t.Fatalf("ElapsedDays = %d, want 10", report.ElapsedDays)
	}

	wantPushups := 15000.0 * 10 / 365
	if math.Abs(report.Expected[models.MetricPushups]-wantPushups) > 1e-9 {
		t.Errorf("expected pushups = %v, want %v", report.Expected[models.MetricPushups], wantPushups)
	}

	// 500 done vs ~411 expected: on track. 10 pullups vs ~55: not.
	if !report.OnTrack[models.MetricPushups] {
		t.Error("pushups should be on track")
	}
	if report.OnTrack[models.MetricPullups] {
		t.Error("pullups should be off track")
	}

	if report.Remaining[models.MetricPushups] != 14500 {
		t.Errorf("remaining pushups = %d, want 14500", report.Remaining[models.MetricPushups])
	}
	// Overshot plank goal floors at zero, never negative.
	if report.Remaining[models.MetricPlankSeconds] != 0 {
		t.Errorf("remaining plank = %d, want 0", report.Remaining[models.MetricPlankSeconds])
	}
}

func TestWeeklyAndMonthlyTargets(t *testing.T) {
	if got, want := WeeklyTarget(365), 7.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("WeeklyTarget(365) = %v, want %v", got, want)
	}
	if got, want := MonthlyTarget(365, day(2026, time.April, 12)), 30.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("MonthlyTarget(365, april) = %v, want %v", got, want)
	}
	if got, want := MonthlyTarget(365, day(2028, time.February, 3)), 29.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("MonthlyTarget(365, leap feb) = %v, want %v", got, want)
	}
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		d         time.Time
		wantStart string
		wantEnd   string
	}{
		{"wednesday", day(2026, time.January, 7), "2026-01-05", "2026-01-11"},
		{"monday", day(2026, time.January, 5), "2026-01-05", "2026-01-11"},
		{"sunday", day(2026, time.January, 11), "2026-01-05", "2026-01-11"},
		{"across month edge", day(2026, time.February, 1), "2026-01-26", "2026-02-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekBounds(tt.d)
			if got := start.Format(models.DateLayout); got != tt.wantStart {
				t.Errorf("week start = %s, want %s", got, tt.wantStart)
			}
			if got := end.Format(models.DateLayout); got != tt.wantEnd {
				t.Errorf("week end = %s, want %s", got, tt.wantEnd)
			}
		})
	}
}
