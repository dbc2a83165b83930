// ABOUTME: CLI command for running the web dashboard and JSON API.
// ABOUTME: Serves until interrupted, then shuts the Fiber app down.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/harperreed/fitpace/internal/server"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web dashboard and JSON API",
	Long: `Run the HTTP server: an HTML dashboard plus a small JSON/CSV API,
all on a single path driven by query parameters.

ENDPOINTS (all on /):

  GET  /                     Dashboard
  GET  /?api=get&date=D      One day as JSON
  GET  /?api=data            All days as JSON, newest first
  POST /?api=upsert          Save a day from a JSON body
  POST /?api=delete          Delete a day from a JSON body
  GET  /?view=csv            CSV download
  GET  /?edit=D              Legacy single-day edit form

When FITPACE_TOKEN is set, every request needs ?token=<value>.

EXAMPLES:

  fitpace serve
  fitpace serve --port 9000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			cfg.Port = servePort
		}

		srv, err := server.New(svc, cfg)
		if err != nil {
			return fmt.Errorf("failed to build server: %w", err)
		}

		// Shut down cleanly on interrupt so the store closes.
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			_ = srv.App().Shutdown()
		}()

		color.Green("✓ Serving on http://localhost:%s", cfg.Port)
		return srv.Listen()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (default: FITPACE_PORT)")
	rootCmd.AddCommand(serveCmd)
}
