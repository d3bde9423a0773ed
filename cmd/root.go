package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Taichi-iskw/media-catalog/internal/app"
	"github.com/Taichi-iskw/media-catalog/internal/config"
	"github.com/Taichi-iskw/media-catalog/internal/logging"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var storeFlag string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "catalog",
	Short:         "Media catalog of channels, videos and songs",
	Long:          `catalog stores YouTube channels, videos and songs and serves them over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "storage backend override (postgres or memory)")
}

// loadConfig reads the configuration and applies the --store override
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig(config.WithStore(storeFlag))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*log.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
}

// withApp builds the application for one command and releases it afterwards
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.Application) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}
	defer a.Close()

	return fn(ctx, a)
}

// printJSON writes v as indented JSON to the command output
func printJSON(cmd *cobra.Command, v any) error {
	result, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(result))
	return nil
}
