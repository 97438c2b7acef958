package cmd

import (
	"fmt"

	"github.com/razmans/devlog/internal/aiclient"
	"github.com/razmans/devlog/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the compile proxy server",
	Long: `Run an HTTP server that proxies compile requests to the external
completion service. Clients POST {"apiKey", "prompt"} to /api/compile
and receive {"text"} back, so the API key never needs to live in a
browser or shared machine.

Usage:
  devlog serve                   Listen on the default address
  devlog serve --addr :9000      Listen on another address`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")

		logger, err := zap.NewProduction()
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to initialize logger: %v\n", err)
			deps.Exit(1)
			return
		}
		defer func() { _ = logger.Sync() }()

		srv := server.New(aiclient.NewClient(), logger)

		logger.Info("starting compile proxy", zap.String("addr", addr))
		if err := srv.ListenAndServe(addr); err != nil {
			logger.Error("server stopped", zap.Error(err))
			deps.Exit(1)
			return
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8787", "Address to listen on")
}
