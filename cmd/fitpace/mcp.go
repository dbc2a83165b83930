// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fitpace/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your exercise log
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "fitpace": {
        "command": "fitpace",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_day      Log or overwrite one day's counts
  get_day      Get the logged counts for one day
  delete_day   Delete the record for one day
  list_days    List all logged days
  get_pace     Progress against the annual goals

AVAILABLE RESOURCES:

  fitpace://summary    Pace dashboard snapshot
  fitpace://history    Last 30 days of records`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(svc)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
