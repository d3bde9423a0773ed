package memory

import (
	"context"

	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
	"github.com/Taichi-iskw/media-catalog/internal/model"
	"github.com/Taichi-iskw/media-catalog/internal/repository"
	"github.com/samber/lo"
)

type videoRepository struct {
	store *Store
}

// NewVideoRepository creates a VideoRepository over store
func NewVideoRepository(store *Store) repository.VideoRepository {
	return &videoRepository{store: store}
}

func (r *videoRepository) ListByChannel(ctx context.Context, channelID int64, limit, offset int) ([]model.Video, error) {
	if err := model.ValidatePage(limit, offset); err != nil {
		return nil, err
	}
	if err := checkContext(ctx, "failed to get videos by channel ID"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := lo.Filter(r.store.videos, func(v model.Video, _ int) bool {
		return v.ChannelID == channelID
	})
	return page(matched, limit, offset), nil
}

func (r *videoRepository) List(ctx context.Context, limit, offset int) ([]model.Video, error) {
	if err := model.ValidatePage(limit, offset); err != nil {
		return nil, err
	}
	if err := checkContext(ctx, "failed to list videos"); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return page(r.store.videos, limit, offset), nil
}

func (r *videoRepository) Create(ctx context.Context, draft model.DraftVideo) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	if err := checkContext(ctx, "failed to create video"); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !lo.ContainsBy(r.store.channels, func(c model.Channel) bool { return c.ID == draft.ChannelID }) {
		return apperrors.New(apperrors.CodeWriteFailed, "referenced channel does not exist")
	}
	if lo.ContainsBy(r.store.videos, func(v model.Video) bool { return v.VideoID == draft.VideoID }) {
		return apperrors.New(apperrors.CodeWriteFailed, "video with this video_id already exists")
	}

	r.store.lastID.video++
	r.store.videos = append(r.store.videos, model.Video{
		ID:          r.store.lastID.video,
		VideoID:     draft.VideoID,
		ChannelID:   draft.ChannelID,
		Title:       draft.Title,
		URL:         draft.URL,
		PublishedAt: draft.PublishedAt,
	})
	return nil
}
