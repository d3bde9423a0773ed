package cmd

import (
	"fmt"

	"github.com/Taichi-iskw/media-catalog/internal/config"
	"github.com/Taichi-iskw/media-catalog/internal/database"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Manage the PostgreSQL schema",
}

// schemaApplyCmd creates the catalog tables
var schemaApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Create the catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchema(cmd, database.Migrate)
	},
}

// schemaDropCmd removes the catalog tables
var schemaDropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop the catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to drop the schema without --yes")
		}
		return runSchema(cmd, database.Drop)
	},
}

func runSchema(cmd *cobra.Command, step func(*config.DatabaseConfig, *log.Logger) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Store != config.StorePostgres {
		return fmt.Errorf("schema commands need the %s store, configured store is %s", config.StorePostgres, cfg.Store)
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	dbConfig, err := cfg.ParseDatabaseConfig()
	if err != nil {
		return err
	}
	return step(dbConfig, logger)
}

func init() {
	schemaDropCmd.Flags().Bool("yes", false, "Confirm dropping every catalog table")

	schemaCmd.AddCommand(schemaApplyCmd)
	schemaCmd.AddCommand(schemaDropCmd)
	rootCmd.AddCommand(schemaCmd)
}
