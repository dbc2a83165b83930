// ABOUTME: MCP tool implementations for daily exercise records.
// ABOUTME: Provides day CRUD, listing, and pace reporting.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/fitpace/internal/models"
	"github.com/harperreed/fitpace/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_day",
		Description: "Log or overwrite one day's exercise counts",
	}, s.handleLogDay)

	// get_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day",
		Description: "Get the logged counts for one day",
	}, s.handleGetDay)

	// delete_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_day",
		Description: "Delete the record for one day",
	}, s.handleDeleteDay)

	// list_days
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_days",
		Description: "List all logged days, newest first",
	}, s.handleListDays)

	// get_pace
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_pace",
		Description: "Get progress against the annual goals with weekly and monthly quotas",
	}, s.handleGetPace)
}

// Tool input/output types

type logDayInput struct {
	Date         string  `json:"date" jsonschema:"Day to log (YYYY-MM-DD)"`
	Pushups      int     `json:"pushups,omitempty" jsonschema:"Pushup count"`
	Pullups      int     `json:"pullups,omitempty" jsonschema:"Pull-up count"`
	Dips         int     `json:"dips,omitempty" jsonschema:"Dip count"`
	PlankMinutes float64 `json:"plank_minutes,omitempty" jsonschema:"Plank time in minutes"`
}

type dayInput struct {
	Date string `json:"date" jsonschema:"Day (YYYY-MM-DD)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogDay(ctx context.Context, req *mcp.CallToolRequest, input logDayInput) (*mcp.CallToolResult, simpleOutput, error) {
	entry := tracker.DayEntry{
		Pushups:      input.Pushups,
		Pullups:      input.Pullups,
		Dips:         input.Dips,
		PlankMinutes: input.PlankMinutes,
	}
	if err := s.svc.SaveDay(input.Date, entry); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log day: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s: %d pushups, %d pull-ups, %d dips, %.1f min plank",
			input.Date, input.Pushups, input.Pullups, input.Dips, input.PlankMinutes),
	}, nil
}

func (s *Server) handleGetDay(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, any, error) {
	if _, err := models.ParseDate(input.Date); err != nil {
		return nil, nil, fmt.Errorf("invalid date: %s", input.Date)
	}

	rec, err := s.svc.Day(input.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get day: %w", err)
	}
	if rec == nil {
		return nil, map[string]interface{}{"message": fmt.Sprintf("Nothing logged for %s.", input.Date)}, nil
	}
	return nil, rec.ToRow(), nil
}

func (s *Server) handleDeleteDay(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.svc.DeleteDay(input.Date); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete day: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted record for %s", input.Date),
	}, nil
}

func (s *Server) handleListDays(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	rows, err := s.svc.ListRows(true)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list days: %w", err)
	}

	if len(rows) == 0 {
		return nil, map[string]interface{}{"message": "No days logged yet."}, nil
	}
	return nil, rows, nil
}

func (s *Server) handleGetPace(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	sum, err := s.svc.Summarize()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to summarize: %w", err)
	}

	metrics := make(map[string]interface{}, len(models.AllMetrics))
	for _, m := range models.AllMetrics {
		metrics[string(m)] = map[string]interface{}{
			"total":          sum.All[m],
			"expected":       sum.Report.Expected[m],
			"on_track":       sum.Report.OnTrack[m],
			"remaining":      sum.Report.Remaining[m],
			"percent":        sum.Percent[m],
			"weekly_target":  sum.WeeklyTarget[m],
			"weekly_need":    sum.WeeklyNeed[m],
			"monthly_target": sum.MonthlyTarget[m],
			"monthly_need":   sum.MonthlyNeed[m],
		}
	}

	return nil, map[string]interface{}{
		"today":        sum.Today,
		"start_date":   sum.StartDate,
		"elapsed_days": sum.ElapsedDays,
		"week_start":   sum.WeekStart,
		"week_end":     sum.WeekEnd,
		"metrics":      metrics,
	}, nil
}
