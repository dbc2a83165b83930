// ABOUTME: Tests for the aggregation engine.
// ABOUTME: Empty input yields explicit zeros; order never matters.
package tracker

import (
	"testing"

	"github.com/harperreed/fitpace/internal/models"
)

func TestSumEmptyYieldsZeros(t *testing.T) {
	totals := Sum(nil)

	if len(totals) != len(models.AllMetrics) {
		t.Fatalf("len = %d, want %d", len(totals), len(models.AllMetrics))
	}
	for _, m := range models.AllMetrics {
		if totals[m] != 0 {
			t.Errorf("%s = %d, want 0", m, totals[m])
		}
	}
}

func TestSum(t *testing.T) {
	records := []models.DailyRecord{
		{Date: "2026-01-01", Pushups: 10, Pullups: 5, Dips: 3, PlankSeconds: 60},
		{Date: "2026-01-02", Pushups: 20, Pullups: 0, Dips: 7, PlankSeconds: 120},
		{Date: "2026-01-03"},
	}

	totals := Sum(records)
	if totals[models.MetricPushups] != 30 {
		t.Errorf("pushups = %d, want 30", totals[models.MetricPushups])
	}
	if totals[models.MetricPullups] != 5 {
		t.Errorf("pullups = %d, want 5", totals[models.MetricPullups])
	}
	if totals[models.MetricDips] != 10 {
		t.Errorf("dips = %d, want 10", totals[models.MetricDips])
	}
	if totals[models.MetricPlankSeconds] != 180 {
		t.Errorf("plank_seconds = %d, want 180", totals[models.MetricPlankSeconds])
	}
}

func TestSumOrderIndependent(t *testing.T) {
	a := []models.DailyRecord{
		{Date: "2026-01-01", Pushups: 1},
		{Date: "2026-01-02", Pushups: 2},
		{Date: "2026-01-03", Pushups: 4},
	}
	b := []models.DailyRecord{a[2], a[0], a[1]}

	ta, tb := Sum(a), Sum(b)
	for _, m := range models.AllMetrics {
		if ta[m] != tb[m] {
			t.Errorf("%s: %d != %d", m, ta[m], tb[m])
		}
	}
}
