package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/media-catalog/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
	Long:  `Manage configuration settings for the media catalog.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init [DATABASE_URL]",
	Short: "Initialize configuration file",
	Long:  `Create a new configuration file with database connection and server settings.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var databaseURL string
		if len(args) > 0 {
			databaseURL = args[0]
		}

		if err := config.InitConfig(databaseURL); err != nil {
			return err
		}

		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created configuration file: %s\n", configPath)
		fmt.Fprintln(out, "Please edit the database_url in this file to match your PostgreSQL database.")

		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration file path and the effective settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Configuration file: %s\n\n", configPath)
		fmt.Fprintf(out, "DATABASE_URL:     %s\n", redact(cfg.DatabaseURL))
		fmt.Fprintf(out, "HTTP_PORT:        %d\n", cfg.HTTPPort)
		fmt.Fprintf(out, "LOG_LEVEL:        %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "LOG_FORMAT:       %s\n", cfg.LogFormat)
		fmt.Fprintf(out, "MAX_PAGE_SIZE:    %d\n", cfg.MaxPageSize)
		fmt.Fprintf(out, "SHUTDOWN_TIMEOUT: %s\n", cfg.ShutdownTimeout)
		fmt.Fprintf(out, "STORE:            %s\n", cfg.Store)

		return nil
	},
}

// redact hides the password of a database URL
func redact(databaseURL string) string {
	if databaseURL == "" {
		return "(not set)"
	}
	dbConfig, err := (&config.Config{DatabaseURL: databaseURL}).ParseDatabaseConfig()
	if err != nil || dbConfig.Password == "" {
		return databaseURL
	}
	return fmt.Sprintf("postgres://%s:***@%s:%d/%s?sslmode=%s",
		dbConfig.User, dbConfig.Host, dbConfig.Port, dbConfig.DBName, dbConfig.SSLMode)
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
