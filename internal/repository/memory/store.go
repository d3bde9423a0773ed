// Package memory keeps the catalog in process memory. It honours the same
// repository contracts as the PostgreSQL adapter and backs tests and
// `--store memory` runs.
package memory

import (
	"context"
	"sync"

	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
	"github.com/Taichi-iskw/media-catalog/internal/model"
	"github.com/samber/lo"
)

// Store holds every entity. Rows are kept in insertion order, which is also
// id order.
type Store struct {
	mu       sync.RWMutex
	channels []model.Channel
	videos   []model.Video
	songs    []model.Song
	lastID   struct{ channel, video, song int64 }
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// AddSong inserts a song directly; songs have no create operation in the
// repository contract.
func (s *Store) AddSong(title, artist, channelName string, url model.URL) model.Song {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID.song++
	song := model.Song{
		ID:          s.lastID.song,
		Title:       title,
		Artist:      artist,
		ChannelName: channelName,
		URL:         url,
	}
	s.songs = append(s.songs, song)
	return song
}

// checkContext maps a done context the same way the PostgreSQL adapter does
func checkContext(ctx context.Context, operation string) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeStorageUnavailable, operation)
	}
	return nil
}

// page returns a copy of the limit/offset window of items
func page[T any](items []T, limit, offset int) []T {
	offset = min(offset, len(items))
	end := len(items)
	if limit < end-offset {
		end = offset + limit
	}
	window := lo.Slice(items, offset, end)
	return append(make([]T, 0, len(window)), window...)
}
