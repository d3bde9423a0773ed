// Package database opens the PostgreSQL pool, applies the embedded schema
// with golang-migrate and reports readiness.
package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/Taichi-iskw/media-catalog/internal/config"
	"github.com/charmbracelet/log"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Connect creates a new PostgreSQL connection pool and pings it
func Connect(ctx context.Context, dbConfig *config.DatabaseConfig, logger *log.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dbConfig.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Configure connection pool settings
	poolConfig.MaxConns = dbConfig.MaxConns
	poolConfig.MinConns = dbConfig.MinConns
	poolConfig.MaxConnLifetime = dbConfig.MaxConnLifetime
	poolConfig.MaxConnIdleTime = dbConfig.MaxConnIdleTime

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("connected to PostgreSQL", "host", dbConfig.Host, "port", dbConfig.Port, "database", dbConfig.DBName)
	return pool, nil
}

// Migrate applies every pending schema step. Running it on an up-to-date
// database is a no-op.
func Migrate(dbConfig *config.DatabaseConfig, logger *log.Logger) error {
	m, err := newMigrate(dbConfig)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.Info("schema applied", "version", version, "dirty", dirty)
	return nil
}

// Drop reverts every schema step
func Drop(dbConfig *config.DatabaseConfig, logger *log.Logger) error {
	m, err := newMigrate(dbConfig)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	logger.Info("schema dropped")
	return nil
}

func newMigrate(dbConfig *config.DatabaseConfig) (*migrate.Migrate, error) {
	source, err := iofs.New(schemaFS, "schema")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded schema: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, dbConfig.MigrateURL())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize schema migration: %w", err)
	}
	return m, nil
}

// Pinger is the part of *pgxpool.Pool readiness needs
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessChecker reports whether PostgreSQL answers a ping
type ReadinessChecker struct {
	pool    Pinger
	timeout time.Duration
}

// NewReadinessChecker creates a readiness check for the given pool
func NewReadinessChecker(pool Pinger) *ReadinessChecker {
	return &ReadinessChecker{pool: pool, timeout: 3 * time.Second}
}

// CheckReady returns nil when the database is reachable
func (c *ReadinessChecker) CheckReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.pool.Ping(ctx); err != nil {
		return fmt.Errorf("PostgreSQL is unavailable: %w", err)
	}
	return nil
}
