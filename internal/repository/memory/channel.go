package memory

import (
	"context"
	"strings"

	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
	"github.com/Taichi-iskw/media-catalog/internal/model"
	"github.com/Taichi-iskw/media-catalog/internal/repository"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type channelRepository struct {
	store *Store
}

// NewChannelRepository creates a ChannelRepository over store
func NewChannelRepository(store *Store) repository.ChannelRepository {
	return &channelRepository{store: store}
}

func (r *channelRepository) FindByID(ctx context.Context, channelID string) (mo.Option[model.Channel], error) {
	if err := checkContext(ctx, "failed to get channel"); err != nil {
		return mo.None[model.Channel](), err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	channel, ok := lo.Find(r.store.channels, func(c model.Channel) bool {
		return c.ChannelID == channelID
	})
	if !ok {
		return mo.None[model.Channel](), nil
	}
	return mo.Some(channel), nil
}

func (r *channelRepository) SearchByName(ctx context.Context, pattern string) ([]model.Channel, error) {
	if err := checkContext(ctx, "failed to search channels"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	needle := strings.ToLower(pattern)
	return lo.Filter(r.store.channels, func(c model.Channel, _ int) bool {
		return strings.Contains(strings.ToLower(c.Name), needle)
	}), nil
}

func (r *channelRepository) Create(ctx context.Context, draft model.DraftChannel) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	if err := checkContext(ctx, "failed to create channel"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if lo.ContainsBy(r.store.channels, func(c model.Channel) bool { return c.ChannelID == draft.ChannelID }) {
		return apperrors.New(apperrors.CodeWriteFailed, "channel with this channel_id already exists")
	}

	r.store.lastID.channel++
	r.store.channels = append(r.store.channels, model.Channel{
		ID:        r.store.lastID.channel,
		ChannelID: draft.ChannelID,
		Name:      draft.Name,
		IconURL:   draft.IconURL,
	})
	return nil
}
