package repository

import (
	"context"

	"github.com/Taichi-iskw/media-catalog/internal/model"
	"github.com/samber/mo"
)

// SongRepository defines read operations for songs
type SongRepository interface {
	// Search filters by title substring and channel name; absent filters are not applied
	Search(ctx context.Context, title, channelName mo.Option[string], limit, offset int) ([]model.Song, error)
}
