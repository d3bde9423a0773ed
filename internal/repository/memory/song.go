package memory

import (
	"context"
	"strings"

	"github.com/Taichi-iskw/media-catalog/internal/model"
	"github.com/Taichi-iskw/media-catalog/internal/repository"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type songRepository struct {
	store *Store
}

// NewSongRepository creates a SongRepository over store
func NewSongRepository(store *Store) repository.SongRepository {
	return &songRepository{store: store}
}

func (r *songRepository) Search(ctx context.Context, title, channelName mo.Option[string], limit, offset int) ([]model.Song, error) {
	if err := model.ValidatePage(limit, offset); err != nil {
		return nil, err
	}
	if err := checkContext(ctx, "failed to search songs"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := lo.Filter(r.store.songs, func(s model.Song, _ int) bool {
		if t, ok := title.Get(); ok && !strings.Contains(strings.ToLower(s.Title), strings.ToLower(t)) {
			return false
		}
		if name, ok := channelName.Get(); ok && !strings.EqualFold(s.ChannelName, name) {
			return false
		}
		return true
	})
	return page(matched, limit, offset), nil
}
