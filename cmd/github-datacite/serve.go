package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pdiddy/github-datacite/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST endpoint",
	Long: `Serve starts an HTTP server with a single POST /generate endpoint that
accepts a JSON repository reference and responds with the DataCite XML.
Tokens travel in the request body, so each request uses its own
credentials.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8090, "listen port")
	serveCmd.Flags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetInt("port")
	verbose, _ := cmd.Flags().GetBool("verbose")

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "github-datacite",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(logger).Run(ctx, fmt.Sprintf(":%d", port))
}
