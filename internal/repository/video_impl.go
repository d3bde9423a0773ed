package repository

import (
	"context"
	"fmt"

	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
	"github.com/Taichi-iskw/media-catalog/internal/model"
	"github.com/jackc/pgx/v5"
)

// videoRepository implements VideoRepository using PostgreSQL
type videoRepository struct {
	pool Pool
}

// NewVideoRepository creates a new instance of VideoRepository
func NewVideoRepository(pool Pool) VideoRepository {
	return &videoRepository{
		pool: pool,
	}
}

// ListByChannel retrieves videos by channel ID with pagination
func (r *videoRepository) ListByChannel(ctx context.Context, channelID int64, limit, offset int) (_ []model.Video, err error) {
	defer observe("video", "list_by_channel", &err)

	if err := model.ValidatePage(limit, offset); err != nil {
		return nil, err
	}

	sql := "SELECT " + videoColumns + " FROM videos WHERE channel_id = $1 ORDER BY id LIMIT $2 OFFSET $3"
	rows, err := r.pool.Query(ctx, sql, channelID, limit, offset)
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to get videos by channel ID", false)
	}
	return collectVideos(rows)
}

// List retrieves videos with pagination
func (r *videoRepository) List(ctx context.Context, limit, offset int) (_ []model.Video, err error) {
	defer observe("video", "list", &err)

	if err := model.ValidatePage(limit, offset); err != nil {
		return nil, err
	}

	sql := "SELECT " + videoColumns + " FROM videos ORDER BY id LIMIT $1 OFFSET $2"
	rows, err := r.pool.Query(ctx, sql, limit, offset)
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to list videos", false)
	}
	return collectVideos(rows)
}

// Create creates a new video record. An insert that affects no row is a failure.
func (r *videoRepository) Create(ctx context.Context, draft model.DraftVideo) (err error) {
	defer observe("video", "create", &err)

	if err := draft.Validate(); err != nil {
		return err
	}

	sql := "INSERT INTO videos (video_id, channel_id, title, url, published_at) VALUES ($1, $2, $3, $4, $5)"
	tag, err := r.pool.Exec(ctx, sql, draft.VideoID, draft.ChannelID, draft.Title, draft.URL.String(), draft.PublishedAt)
	if err != nil {
		return handlePostgreSQLError(err, "failed to create video", true)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeWriteFailed,
			fmt.Sprintf("failed to insert video %q: no rows affected", draft.VideoID))
	}
	return nil
}

// collectVideos decodes every row; the first undecodable row fails the call
func collectVideos(rows pgx.Rows) ([]model.Video, error) {
	defer rows.Close()

	videos := []model.Video{}
	for rows.Next() {
		row, err := scanVideo(rows)
		if err != nil {
			return nil, scanFailure(err, "failed to scan video row")
		}
		video, err := row.decode()
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, handlePostgreSQLError(err, "failed to iterate video rows", false)
	}

	return videos, nil
}
