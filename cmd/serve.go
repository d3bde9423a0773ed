package cmd

import (
	"fmt"

	"github.com/Taichi-iskw/media-catalog/internal/api"
	"github.com/Taichi-iskw/media-catalog/internal/app"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.HTTPPort = port
		}
		logger, err := newLogger(cmd, cfg)
		if err != nil {
			return err
		}

		a, err := app.New(cmd.Context(), cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		defer a.Close()

		handler := api.NewHandler(a, logger.With("component", "api"), cfg.MaxPageSize)
		server := api.NewServer(cfg.HTTPPort, api.NewRouter(handler), logger, cfg.ShutdownTimeout)

		logger.Info("starting catalog", "store", cfg.Store, "port", cfg.HTTPPort)
		return server.Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "HTTP port (overrides http_port)")
	rootCmd.AddCommand(serveCmd)
}
