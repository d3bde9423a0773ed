package repository

import (
	"context"

	"github.com/Taichi-iskw/media-catalog/internal/model"
)

// VideoRepository defines operations for Video persistence
type VideoRepository interface {
	// ListByChannel retrieves videos of one channel with pagination
	ListByChannel(ctx context.Context, channelID int64, limit, offset int) ([]model.Video, error)

	// List retrieves videos with pagination
	List(ctx context.Context, limit, offset int) ([]model.Video, error)

	// Create inserts a new video row
	Create(ctx context.Context, draft model.DraftVideo) error
}
