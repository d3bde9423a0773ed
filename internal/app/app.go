// Package app wires configuration, storage and repositories into one handle
// shared by the CLI commands and the HTTP server.
package app

import (
	"context"
	"fmt"

	"github.com/Taichi-iskw/media-catalog/internal/config"
	"github.com/Taichi-iskw/media-catalog/internal/database"
	"github.com/Taichi-iskw/media-catalog/internal/repository"
	"github.com/Taichi-iskw/media-catalog/internal/repository/memory"
	"github.com/charmbracelet/log"
)

// ReadinessChecker reports whether the storage backend can serve requests
type ReadinessChecker interface {
	CheckReady(ctx context.Context) error
}

// Application holds the repositories for one storage backend
type Application struct {
	Channels  repository.ChannelRepository
	Videos    repository.VideoRepository
	Songs     repository.SongRepository
	Readiness ReadinessChecker
	Logger    *log.Logger

	closers []func()
}

// New builds the application for the store selected in cfg
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Application, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return NewMemory(memory.NewStore(), logger), nil
	case config.StorePostgres, "":
		dbConfig, err := cfg.ParseDatabaseConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to parse database config: %w", err)
		}
		pool, err := database.Connect(ctx, dbConfig, logger)
		if err != nil {
			return nil, err
		}
		a := NewPostgres(pool, logger)
		a.Readiness = database.NewReadinessChecker(pool)
		a.closers = append(a.closers, pool.Close)
		return a, nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// NewPostgres builds the application over a PostgreSQL pool. The caller owns
// the pool.
func NewPostgres(pool repository.Pool, logger *log.Logger) *Application {
	return &Application{
		Channels:  repository.NewChannelRepository(pool, logger),
		Videos:    repository.NewVideoRepository(pool),
		Songs:     repository.NewSongRepository(pool),
		Readiness: alwaysReady{},
		Logger:    logger,
	}
}

// NewMemory builds the application over an in-memory store
func NewMemory(store *memory.Store, logger *log.Logger) *Application {
	return &Application{
		Channels:  memory.NewChannelRepository(store),
		Videos:    memory.NewVideoRepository(store),
		Songs:     memory.NewSongRepository(store),
		Readiness: alwaysReady{},
		Logger:    logger,
	}
}

// Close releases the storage backend
func (a *Application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

type alwaysReady struct{}

func (alwaysReady) CheckReady(context.Context) error { return nil }
