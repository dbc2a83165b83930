// ABOUTME: CLI command for listing logged days.
// ABOUTME: Shows recent history newest first, or everything with --all.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showAll bool

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"ls", "history"},
	Short:   "Show logged days",
	Long: `Show logged days, newest first.

By default only the last 30 days appear. Use --all for every day since
the start date, including future-dated entries.

Examples:
  fitpace show
  fitpace show --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := svc.History()
		if showAll {
			rows, err = svc.ListRows(true)
		}
		if err != nil {
			return fmt.Errorf("failed to list days: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No days logged.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  %7s  %8s  %5s  %10s\n",
			faint.Sprint("date      "), "pushups", "pull-ups", "dips", "plank(min)")
		for _, row := range rows {
			fmt.Printf("%s  %7d  %8d  %5d  %10.1f\n",
				faint.Sprint(row.Date), row.Pushups, row.Pullups, row.Dips, row.PlankMinutes)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVarP(&showAll, "all", "a", false, "show every day since the start date")
	rootCmd.AddCommand(showCmd)
}
