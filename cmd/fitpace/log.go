// ABOUTME: CLI command for logging one day's exercise counts.
// ABOUTME: Saving overwrites the whole day; omitted flags mean zero.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitpace/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	logPushups int
	logPullups int
	logDips    int
	logPlank   float64
)

var logCmd = &cobra.Command{
	Use:     "log [date]",
	Aliases: []string{"l"},
	Short:   "Log a day's exercise counts",
	Long: `Log one day's exercise counts. The date defaults to today.

Saving overwrites the whole day: any metric you leave out resets to
zero. Re-run with all values when correcting a day.

Examples:
  fitpace log --pushups 40 --pullups 8
  fitpace log 2026-01-05 --pushups 40 --dips 12 --plank 2.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := cfg.Today()
		if len(args) > 0 {
			date = args[0]
		}

		entry := tracker.DayEntry{
			Pushups:      logPushups,
			Pullups:      logPullups,
			Dips:         logDips,
			PlankMinutes: logPlank,
		}
		if err := svc.SaveDay(date, entry); err != nil {
			return fmt.Errorf("failed to save day: %w", err)
		}

		color.Green("✓ Logged %s", date)
		fmt.Printf("  %d pushups, %d pull-ups, %d dips, %.1f min plank\n",
			entry.Pushups, entry.Pullups, entry.Dips, entry.PlankMinutes)
		return nil
	},
}

func init() {
	logCmd.Flags().IntVar(&logPushups, "pushups", 0, "pushup count")
	logCmd.Flags().IntVar(&logPullups, "pullups", 0, "pull-up count")
	logCmd.Flags().IntVar(&logDips, "dips", 0, "dip count")
	logCmd.Flags().Float64Var(&logPlank, "plank", 0, "plank time in minutes")
	rootCmd.AddCommand(logCmd)
}
