// ABOUTME: Root Cobra command for fitpace CLI.
// ABOUTME: Handles config loading and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/fitpace/internal/config"
	"github.com/harperreed/fitpace/internal/store"
	"github.com/harperreed/fitpace/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	st  store.Store
	svc *tracker.Service
)

var rootCmd = &cobra.Command{
	Use:   "fitpace",
	Short: "Single-user daily exercise tracker with annual pacing",
	Long: `Fitpace tracks four daily exercises against annual goals and tells you
whether you are on pace.

WHAT IT TRACKS:

  Pushups, pull-ups, dips (repetitions) and plank time (minutes).
  One record per day; saving a day overwrites it wholesale.

QUICK START:

  $ fitpace log 2026-01-05 --pushups 40 --plank 2.5   # Log a day
  $ fitpace show                                      # Recent history
  $ fitpace pace                                      # Pace against goals
  $ fitpace serve                                     # Web dashboard + JSON API

CONFIGURATION:

  Everything is environment variables (a .env file is honored):

  FITPACE_USER          tracked user id (default: kyle)
  FITPACE_START_DATE    campaign start, YYYY-MM-DD (default: 2026-01-01)
  FITPACE_TOKEN         shared secret for the HTTP surface (empty disables)
  FITPACE_TZ            timezone for "today" (default: America/Los_Angeles)
  FITPACE_BACKEND       storage backend: charm or sqlite (default: charm)
  FITPACE_GOAL_PUSHUPS  annual goal overrides, likewise PULLUPS, DIPS,
                        and PLANK_MINUTES

DATA STORAGE:

  The charm backend stores records in Charm KV and syncs automatically on
  each write. The sqlite backend keeps a local fitpace.db instead.

MCP INTEGRATION:

  Run 'fitpace mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fitpace": { "command": "fitpace", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		st, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		svc = tracker.NewService(st, cfg)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			return st.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
