package repository

import (
	"context"

	"github.com/Taichi-iskw/media-catalog/internal/model"
	"github.com/samber/mo"
)

// ChannelRepository defines operations for Channel persistence
type ChannelRepository interface {
	// FindByID retrieves a channel by its channel_id. A missing row is mo.None, not an error.
	FindByID(ctx context.Context, channelID string) (mo.Option[model.Channel], error)

	// SearchByName returns channels whose name contains pattern, skipping rows that cannot be decoded
	SearchByName(ctx context.Context, pattern string) ([]model.Channel, error)

	// Create inserts a new channel row
	Create(ctx context.Context, draft model.DraftChannel) error
}
