package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/gopurlin/internal/config"
	"github.com/alexiusacademia/gopurlin/internal/logger"
	"github.com/alexiusacademia/gopurlin/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr     string
	serveEnvFiles []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the purlin design HTTP API",
	Long: `Serve purlin designs, PDF reports, batches and the section catalog
over HTTP as JSON.

Settings come from the environment, after loading .env files:
  PURLIN_ADDR        listen address (default :8080)
  PURLIN_RATE_LIMIT  requests per second per client (default 5)
  PURLIN_RATE_BURST  burst size per client (default 10)
  LOG_LEVEL          TRACE, DEBUG, INFO, WARN or ERROR (default INFO)

Endpoints:
  GET  /healthz
  GET  /api/sections
  GET  /api/sections/{table}
  GET  /api/sections/{table}/{row}
  POST /api/purlin/design
  POST /api/purlin/report
  POST /api/purlin/batch`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", config.DefaultAddr, "Listen address (overrides PURLIN_ADDR)")
	serveCmd.Flags().StringSliceVar(&serveEnvFiles, "env", nil, "Environment files to load (default .env)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServer(serveEnvFiles...)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}

	logger.Setup(logger.FormatJSON, os.Stderr)
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("invalid LOG_LEVEL", "value", cfg.LogLevel, "error", err)
	}
	logger.SetLevel(level)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg).ListenAndServe(ctx)
}
