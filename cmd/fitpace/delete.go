// ABOUTME: CLI command for deleting a day's record.
// ABOUTME: Deleting an absent day succeeds quietly.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <date>",
	Aliases: []string{"rm"},
	Short:   "Delete the record for a date",
	Long: `Delete the record for a date. Deleting a date with no record is
not an error.

Examples:
  fitpace delete 2026-01-05`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := args[0]
		if err := svc.DeleteDay(date); err != nil {
			return fmt.Errorf("failed to delete day: %w", err)
		}

		color.Green("✓ Deleted %s", date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
