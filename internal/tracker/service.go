// ABOUTME: Tracker service tying the record store to aggregation and pacing.
// ABOUTME: Shared by the HTTP handlers, the CLI commands, and the MCP tools.
package tracker

import (
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/fitpace/internal/config"
	"github.com/harperreed/fitpace/internal/models"
	"github.com/harperreed/fitpace/internal/store"
)

// listEndSentinel bounds open-ended listings. Future-dated entries are
// deliberately included.
const listEndSentinel = "9999-12-31"

// historyDays is the window shown on the dashboard history tab.
const historyDays = 30

// DayEntry carries the user-supplied counts for one day, with plank in
// minutes. Every entry point (JSON API, log form, legacy edit form, CLI,
// MCP) parses into this one shape before saving.
type DayEntry struct {
	Pushups      int     `json:"pushups"`
	Pullups      int     `json:"pullups"`
	Dips         int     `json:"dips"`
	PlankMinutes float64 `json:"plank_minutes"`
}

// Record converts the entry to its stored form.
func (e DayEntry) Record() models.DailyRecord {
	return models.DailyRecord{
		Pushups:      e.Pushups,
		Pullups:      e.Pullups,
		Dips:         e.Dips,
		PlankSeconds: models.MinutesToSeconds(e.PlankMinutes),
	}
}

// Summary is everything the dashboard needs: totals over the three
// windows, the pace report, and the weekly/monthly quota math.
type Summary struct {
	Today       string
	StartDate   string
	ElapsedDays int
	DaysInMonth int
	WeekStart   string
	WeekEnd     string

	Week  models.Totals
	Month models.Totals
	All   models.Totals

	Report models.PaceReport

	WeeklyTarget  map[models.Metric]float64
	WeeklyNeed    map[models.Metric]float64
	MonthlyTarget map[models.Metric]float64
	MonthlyNeed   map[models.Metric]float64
	Percent       map[models.Metric]int
}

// Service exposes the tracker's operations over one store and one config.
type Service struct {
	store store.Store
	cfg   *config.Config
	now   func() time.Time
}

// NewService creates a tracker service.
func NewService(st store.Store, cfg *config.Config) *Service {
	return &Service{store: st, cfg: cfg, now: cfg.Now}
}

// Day returns the record for a date, or nil when absent.
func (s *Service) Day(date string) (*models.DailyRecord, error) {
	return s.store.Get(s.cfg.UserID, date)
}

// SaveDay overwrites the record for a date from a parsed entry.
func (s *Service) SaveDay(date string, entry DayEntry) error {
	if _, err := models.ParseDate(date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	return s.store.Put(s.cfg.UserID, date, entry.Record())
}

// DeleteDay removes the record for a date.
func (s *Service) DeleteDay(date string) error {
	return s.store.Delete(s.cfg.UserID, date)
}

// ListRows returns every row from the start date onward, newest first
// when desc is true.
func (s *Service) ListRows(desc bool) ([]models.Row, error) {
	start := s.cfg.StartDay().Format(models.DateLayout)
	records, err := s.store.QueryRange(s.cfg.UserID, start, listEndSentinel)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	return sortedRows(records, desc), nil
}

// History returns the last 30 days of rows, newest first.
func (s *Service) History() ([]models.Row, error) {
	today := s.today()
	start := today.AddDate(0, 0, -(historyDays - 1)).Format(models.DateLayout)
	records, err := s.store.QueryRange(s.cfg.UserID, start, today.Format(models.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return sortedRows(records, true), nil
}

// Summarize computes the dashboard summary. The week, month, and
// all-time windows are three independent range queries with no
// cross-query consistency guarantee; a write landing mid-request may be
// visible in some windows and not others. Accepted tradeoff.
func (s *Service) Summarize() (*Summary, error) {
	today := s.today()
	todayStr := today.Format(models.DateLayout)
	start := s.cfg.StartDay()

	weekStart, weekEnd := WeekBounds(today)
	weekRecords, err := s.store.QueryRange(s.cfg.UserID,
		weekStart.Format(models.DateLayout), weekEnd.Format(models.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("query week: %w", err)
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthRecords, err := s.store.QueryRange(s.cfg.UserID,
		monthStart.Format(models.DateLayout), todayStr)
	if err != nil {
		return nil, fmt.Errorf("query month: %w", err)
	}

	allRecords, err := s.store.QueryRange(s.cfg.UserID,
		start.Format(models.DateLayout), todayStr)
	if err != nil {
		return nil, fmt.Errorf("query all-time: %w", err)
	}

	sum := &Summary{
		Today:       todayStr,
		StartDate:   start.Format(models.DateLayout),
		DaysInMonth: DaysInMonth(today),
		WeekStart:   weekStart.Format(models.DateLayout),
		WeekEnd:     weekEnd.Format(models.DateLayout),

		Week:  Sum(weekRecords),
		Month: Sum(monthRecords),
		All:   Sum(allRecords),

		WeeklyTarget:  make(map[models.Metric]float64, len(models.AllMetrics)),
		WeeklyNeed:    make(map[models.Metric]float64, len(models.AllMetrics)),
		MonthlyTarget: make(map[models.Metric]float64, len(models.AllMetrics)),
		MonthlyNeed:   make(map[models.Metric]float64, len(models.AllMetrics)),
		Percent:       make(map[models.Metric]int, len(models.AllMetrics)),
	}

	sum.Report = Pace(sum.All, s.cfg.Goals, start, today)
	sum.ElapsedDays = sum.Report.ElapsedDays

	for _, m := range models.AllMetrics {
		goal := s.cfg.Goals[m]

		sum.WeeklyTarget[m] = WeeklyTarget(goal)
		sum.WeeklyNeed[m] = needOf(sum.WeeklyTarget[m], sum.Week[m])

		sum.MonthlyTarget[m] = MonthlyTarget(goal, today)
		sum.MonthlyNeed[m] = needOf(sum.MonthlyTarget[m], sum.Month[m])

		sum.Percent[m] = Percent(sum.All[m], goal)
	}

	return sum, nil
}

// today is the current date in the configured timezone, at midnight UTC
// so calendar arithmetic stays exact.
func (s *Service) today() time.Time {
	d, _ := models.ParseDate(s.now().In(s.cfg.Location()).Format(models.DateLayout))
	return d
}

// needOf floors the remaining quota at zero.
func needOf(target float64, done int) float64 {
	need := target - float64(done)
	if need < 0 {
		return 0
	}
	return need
}

func sortedRows(records []models.DailyRecord, desc bool) []models.Row {
	sort.Slice(records, func(i, j int) bool {
		if desc {
			return records[i].Date > records[j].Date
		}
		return records[i].Date < records[j].Date
	})
	rows := make([]models.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.ToRow())
	}
	return rows
}
