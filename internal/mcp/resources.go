// ABOUTME: MCP resource implementations for the fitness tracker.
// ABOUTME: Provides fitpace://summary and fitpace://history resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/fitpace/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fitpace://summary - pace dashboard snapshot
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitpace://summary",
		Name:        "Pace Summary",
		Description: "Totals, expected pace, and weekly/monthly quotas for every metric",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// fitpace://history - last 30 days of logged records
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitpace://history",
		Name:        "Recent History",
		Description: "Logged records from the last 30 days, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sum, err := s.svc.Summarize()
	if err != nil {
		return nil, fmt.Errorf("failed to summarize: %w", err)
	}

	metrics := make(map[string]interface{}, len(models.AllMetrics))
	for _, m := range models.AllMetrics {
		metrics[string(m)] = map[string]interface{}{
			"total":     sum.All[m],
			"expected":  sum.Report.Expected[m],
			"on_track":  sum.Report.OnTrack[m],
			"remaining": sum.Report.Remaining[m],
			"percent":   sum.Percent[m],
		}
	}

	result := map[string]interface{}{
		"today":        sum.Today,
		"start_date":   sum.StartDate,
		"elapsed_days": sum.ElapsedDays,
		"metrics":      metrics,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitpace://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	rows, err := s.svc.History()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	data, err := json.MarshalIndent(map[string]interface{}{
		"days": len(rows),
		"rows": rows,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitpace://history",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
