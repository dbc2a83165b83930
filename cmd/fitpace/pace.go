// ABOUTME: CLI command for the pace report.
// ABOUTME: Prints totals, expected pace, and weekly/monthly quotas per metric.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitpace/internal/models"
	"github.com/spf13/cobra"
)

var paceCmd = &cobra.Command{
	Use:     "pace",
	Aliases: []string{"p", "status"},
	Short:   "Show progress against the annual goals",
	Long: `Show progress against the annual goals.

For each metric: the all-time total, where a straight-line pace says you
should be by today, percent of goal, and what this week and this month
still need.

Examples:
  fitpace pace`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, err := svc.Summarize()
		if err != nil {
			return fmt.Errorf("failed to summarize: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("Day %d of 365 (started %s)\n\n", sum.ElapsedDays, sum.StartDate)

		for _, m := range models.AllMetrics {
			label := models.MetricLabels[m]
			if sum.Report.OnTrack[m] {
				color.Green("✓ %s", label)
			} else {
				color.Yellow("! %s", label)
			}

			fmt.Printf("  total %s of %s (%d%%), expected %s by today\n",
				fmtMetric(m, sum.All[m]), fmtMetric(m, cfg.Goals[m]),
				sum.Percent[m], fmtMetricF(m, sum.Report.Expected[m]))
			fmt.Printf("  %s\n", faint.Sprintf("week: %s done, %s target, %s to go",
				fmtMetric(m, sum.Week[m]),
				fmtMetricF(m, sum.WeeklyTarget[m]),
				fmtMetricF(m, sum.WeeklyNeed[m])))
			fmt.Printf("  %s\n\n", faint.Sprintf("month: %s done, %s target, %s to go",
				fmtMetric(m, sum.Month[m]),
				fmtMetricF(m, sum.MonthlyTarget[m]),
				fmtMetricF(m, sum.MonthlyNeed[m])))
		}
		return nil
	},
}

// fmtMetric renders a stored count, plank shown in minutes.
func fmtMetric(m models.Metric, v int) string {
	if m == models.MetricPlankSeconds {
		return fmt.Sprintf("%.1f min", models.SecondsToMinutes(v))
	}
	return fmt.Sprintf("%d", v)
}

func fmtMetricF(m models.Metric, v float64) string {
	if m == models.MetricPlankSeconds {
		return fmt.Sprintf("%.1f min", v/60)
	}
	return fmt.Sprintf("%.1f", v)
}

func init() {
	rootCmd.AddCommand(paceCmd)
}
