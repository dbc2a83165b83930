// ABOUTME: Tests for the tracker service over a real (temp) sqlite store.
// ABOUTME: Uses a pinned clock so window math is deterministic.
package tracker

import (
	"testing"
	"time"

	"github.com/harperreed/fitpace/internal/config"
	"github.com/harperreed/fitpace/internal/models"
	"github.com/harperreed/fitpace/internal/store"
)

func newTestService(t *testing.T, today time.Time) *Service {
	t.Helper()

	st, err := store.OpenSQLite(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	cfg := &config.Config{
		UserID:    "kyle",
		StartDate: "2026-01-01",
		Timezone:  "UTC",
		Goals: models.GoalSet{
			models.MetricPushups:      15000,
			models.MetricPullups:      2000,
			models.MetricDips:         5000,
			models.MetricPlankSeconds: 90000,
		},
	}

	svc := NewService(st, cfg)
	svc.now = func() time.Time { return today }
	return svc
}

func TestSaveDayAndDay(t *testing.T) {
	svc := newTestService(t, day(2026, time.January, 7))

	entry := DayEntry{Pushups: 10, Pullups: 5, Dips: 3, PlankMinutes: 2.0}
	if err := svc.SaveDay("2026-01-05", entry); err != nil {
		t.Fatalf("SaveDay: %v", err)
	}

	rec, err := svc.Day("2026-01-05")
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record")
	}
	if rec.PlankSeconds != 120 {
		t.Errorf("PlankSeconds = %d, want 120", rec.PlankSeconds)
	}
}

func TestSaveDayRejectsBadDate(t *testing.T) {
	svc := newTestService(t, day(2026, time.January, 7))

	if err := svc.SaveDay("01/05/2026", DayEntry{}); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDeleteDay(t *testing.T) {
	svc := newTestService(t, day(2026, time.January, 7))

	if err := svc.SaveDay("2026-01-05", DayEntry{Pushups: 1}); err != nil {
		t.Fatalf("SaveDay: %v", err)
	}
	if err := svc.DeleteDay("2026-01-05"); err != nil {
		t.Fatalf("DeleteDay: %v", err)
	}
	rec, err := svc.Day("2026-01-05")
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil after delete, got %+v", rec)
	}
}

func TestListRowsIncludesFutureDates(t *testing.T) {
	svc := newTestService(t, day(2026, time.January, 7))

	for _, d := range []string{"2026-01-02", "2026-01-04", "2026-06-01"} {
		if err := svc.SaveDay(d, DayEntry{Pushups: 1}); err != nil {
			t.Fatalf("SaveDay %s: %v", d, err)
		}
	}

	rows, err := svc.ListRows(true)
	if err != nil {
		t.Fatalf("ListRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len = %d, want 3 (future dates must be listed)", len(rows))
	}
	if rows[0].Date != "2026-06-01" || rows[2].Date != "2026-01-02" {
		t.Errorf("descending order broken: %+v", rows)
	}

	asc, err := svc.ListRows(false)
	if err != nil {
		t.Fatalf("ListRows asc: %v", err)
	}
	if asc[0].Date != "2026-01-02" {
		t.Errorf("ascending order broken: %+v", asc)
	}
}

func TestHistoryWindow(t *testing.T) {
	svc := newTestService(t, day(2026, time.March, 1))

	// Inside the 30-day window, at its edge, and just outside it.
	if err := svc.SaveDay("2026-02-20", DayEntry{Pushups: 1}); err != nil {
		t.Fatal(err)
	}
	if err := svc.SaveDay("2026-01-31", DayEntry{Pushups: 1}); err != nil {
		t.Fatal(err)
	}
	if err := svc.SaveDay("2026-01-30", DayEntry{Pushups: 1}); err != nil {
		t.Fatal(err)
	}

	rows, err := svc.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(rows), rows)
	}
	if rows[0].Date != "2026-02-20" {
		t.Errorf("newest first expected, got %+v", rows)
	}
}

func TestSummarizeWindows(t *testing.T) {
	// Wednesday 2026-01-07: week is Mon 01-05 .. Sun 01-11.
	svc := newTestService(t, day(2026, time.January, 7))

	// All-time only (before this week).
	if err := svc.SaveDay("2026-01-02", DayEntry{Pushups: 100}); err != nil {
		t.Fatal(err)
	}
	// This week and this month.
	if err := svc.SaveDay("2026-01-06", DayEntry{Pushups: 40, PlankMinutes: 10}); err != nil {
		t.Fatal(err)
	}

	sum, err := svc.Summarize()
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if sum.Today != "2026-01-07" {
		t.Errorf("Today = %s", sum.Today)
	}
	if sum.WeekStart != "2026-01-05" || sum.WeekEnd != "2026-01-11" {
		t.Errorf("week bounds = %s..%s", sum.WeekStart, sum.WeekEnd)
	}
	if sum.ElapsedDays != 7 {
		t.Errorf("ElapsedDays = %d, want 7", sum.ElapsedDays)
	}
	if sum.DaysInMonth != 31 {
		t.Errorf("DaysInMonth = %d, want 31", sum.DaysInMonth)
	}

	if sum.Week[models.MetricPushups] != 40 {
		t.Errorf("week pushups = %d, want 40", sum.Week[models.MetricPushups])
	}
	if sum.Month[models.MetricPushups] != 140 {
		t.Errorf("month pushups = %d, want 140", sum.Month[models.MetricPushups])
	}
	if sum.All[models.MetricPushups] != 140 {
		t.Errorf("all pushups = %d, want 140", sum.All[models.MetricPushups])
	}
	if sum.Week[models.MetricPlankSeconds] != 600 {
		t.Errorf("week plank = %d, want 600", sum.Week[models.MetricPlankSeconds])
	}

	// Weekly need = goal/365*7 - 40 for pushups.
	wantNeed := 15000.0/365*7 - 40
	if got := sum.WeeklyNeed[models.MetricPushups]; got < wantNeed-1e-9 || got > wantNeed+1e-9 {
		t.Errorf("weekly need = %v, want %v", got, wantNeed)
	}

	if sum.Percent[models.MetricPushups] != 1 {
		t.Errorf("percent = %d, want 1", sum.Percent[models.MetricPushups])
	}
}
