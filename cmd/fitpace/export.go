// ABOUTME: CLI command for exporting tracker data.
// ABOUTME: Supports JSON, YAML, and CSV export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/fitpace/internal/export"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export tracker data",
	Long: `Export every logged day in various formats.

FORMATS:

  json   Full JSON export (suitable for backup)
  yaml   YAML export (human-readable)
  csv    CSV rows, same shape as the web CSV download

OPTIONS:

  --output, -o   Write to file instead of stdout

EXAMPLES:

  fitpace export json                  # Export all data as JSON
  fitpace export csv -o days.csv       # Save CSV to file`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "csv"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		rows, err := svc.ListRows(false)
		if err != nil {
			return fmt.Errorf("failed to list days: %w", err)
		}
		envelope := export.New(cfg.UserID, rows)

		var data []byte
		switch format {
		case "json":
			data, err = envelope.JSON()
		case "yaml":
			data, err = envelope.YAML()
		case "csv":
			data, err = envelope.CSV()
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or csv)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
