// ABOUTME: HTML handlers: the dashboard page and the legacy edit form.
// ABOUTME: POST to the root path saves the log form before rendering.
package server

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/harperreed/fitpace/internal/models"
	"github.com/harperreed/fitpace/internal/tracker"
)

// metricView is one summary row, with plank already converted to
// minutes for display.
type metricView struct {
	Key       string
	Label     string
	Goal      string
	Total     string
	Expected  string
	Percent   int
	OnTrack   bool
	Remaining string

	WeekDone      string
	WeeklyTarget  string
	WeeklyNeed    string
	MonthDone     string
	MonthlyTarget string
	MonthlyNeed   string
}

type pageData struct {
	User      string
	StartDate string
	Today     string
	Message   string

	ElapsedDays int
	WeekStart   string
	WeekEnd     string
	DaysInMonth int

	Metrics []metricView
	History []models.Row

	LogDate  string
	LogEntry tracker.DayEntry

	Token   string
	CSVLink string
}

// page renders the dashboard. A POST first saves the log form, then
// renders with a confirmation message so the page stays bookmarkable.
func (s *Server) page(c *fiber.Ctx) error {
	message := ""
	if c.Method() == fiber.MethodPost {
		date := c.FormValue("date")
		if err := s.svc.SaveDay(date, entryFromForm(c)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		message = fmt.Sprintf("Saved for %s.", date)
	}
	return s.renderPage(c, message)
}

// legacyEdit serves the pre-dashboard single-day edit form, kept so old
// bookmarks keep working. GET shows the form, POST saves and falls back
// to the dashboard.
func (s *Server) legacyEdit(c *fiber.Ctx) error {
	date := c.Query("edit")
	if _, err := models.ParseDate(date); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid date")
	}

	if c.Method() == fiber.MethodPost {
		if err := s.svc.SaveDay(date, entryFromForm(c)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return s.renderPage(c, fmt.Sprintf("Saved changes for %s.", date))
	}

	rec, err := s.svc.Day(date)
	if err != nil {
		return err
	}
	if rec == nil {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	}

	row := rec.ToRow()
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return s.tmpl.ExecuteTemplate(c.Response().BodyWriter(), "edit.html", fiber.Map{
		"Date":  date,
		"Row":   row,
		"Token": s.cfg.Token,
	})
}

func (s *Server) renderPage(c *fiber.Ctx, message string) error {
	sum, err := s.svc.Summarize()
	if err != nil {
		return err
	}
	history, err := s.svc.History()
	if err != nil {
		return err
	}

	logDate := c.Query("log_date")
	if logDate == "" {
		logDate = sum.Today
	}
	logEntry := tracker.DayEntry{}
	if rec, err := s.svc.Day(logDate); err == nil && rec != nil {
		row := rec.ToRow()
		logEntry = tracker.DayEntry{
			Pushups:      row.Pushups,
			Pullups:      row.Pullups,
			Dips:         row.Dips,
			PlankMinutes: row.PlankMinutes,
		}
	}

	data := pageData{
		User:        s.cfg.UserID,
		StartDate:   sum.StartDate,
		Today:       sum.Today,
		Message:     message,
		ElapsedDays: sum.ElapsedDays,
		WeekStart:   sum.WeekStart,
		WeekEnd:     sum.WeekEnd,
		DaysInMonth: sum.DaysInMonth,
		Metrics:     buildMetricViews(sum, s.cfg.Goals),
		History:     history,
		LogDate:     logDate,
		LogEntry:    logEntry,
		Token:       s.cfg.Token,
		CSVLink:     s.link("view", "csv"),
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return s.tmpl.ExecuteTemplate(c.Response().BodyWriter(), "page.html", data)
}

// link builds a same-page URL with the given query parameter, carrying
// the token along when one is configured.
func (s *Server) link(key, value string) string {
	q := url.Values{}
	q.Set(key, value)
	if s.cfg.Token != "" {
		q.Set("token", s.cfg.Token)
	}
	return "/?" + q.Encode()
}

func buildMetricViews(sum *tracker.Summary, goals models.GoalSet) []metricView {
	views := make([]metricView, 0, len(models.AllMetrics))
	for _, m := range models.AllMetrics {
		views = append(views, metricView{
			Key:       string(m),
			Label:     models.MetricLabels[m],
			Goal:      fmtCount(m, goals[m]),
			Total:     fmtCount(m, sum.All[m]),
			Expected:  fmtQuota(m, sum.Report.Expected[m]),
			Percent:   sum.Percent[m],
			OnTrack:   sum.Report.OnTrack[m],
			Remaining: fmtCount(m, sum.Report.Remaining[m]),

			WeekDone:      fmtCount(m, sum.Week[m]),
			WeeklyTarget:  fmtQuota(m, sum.WeeklyTarget[m]),
			WeeklyNeed:    fmtQuota(m, sum.WeeklyNeed[m]),
			MonthDone:     fmtCount(m, sum.Month[m]),
			MonthlyTarget: fmtQuota(m, sum.MonthlyTarget[m]),
			MonthlyNeed:   fmtQuota(m, sum.MonthlyNeed[m]),
		})
	}
	return views
}

// fmtCount renders a stored count for display. Plank counts are stored
// in seconds and shown in minutes.
func fmtCount(m models.Metric, v int) string {
	if m == models.MetricPlankSeconds {
		return fmt.Sprintf("%.1f min", models.SecondsToMinutes(v))
	}
	return strconv.Itoa(v)
}

// fmtQuota renders a fractional target the same way.
func fmtQuota(m models.Metric, v float64) string {
	if m == models.MetricPlankSeconds {
		return fmt.Sprintf("%.1f min", v/60)
	}
	return fmt.Sprintf("%.1f", v)
}
