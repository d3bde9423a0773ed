package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
	"github.com/Taichi-iskw/media-catalog/internal/model"
	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5"
	"github.com/samber/mo"
)

// channelRepository implements ChannelRepository using PostgreSQL
type channelRepository struct {
	pool   Pool
	logger *log.Logger
}

// NewChannelRepository creates a new instance of ChannelRepository
func NewChannelRepository(pool Pool, logger *log.Logger) ChannelRepository {
	if logger == nil {
		logger = log.Default()
	}
	return &channelRepository{
		pool:   pool,
		logger: logger.With("repository", "channel"),
	}
}

// FindByID retrieves a channel by its channel_id
func (r *channelRepository) FindByID(ctx context.Context, channelID string) (_ mo.Option[model.Channel], err error) {
	defer observe("channel", "find_by_id", &err)

	sql := "SELECT " + channelColumns + " FROM channels WHERE channel_id = $1"
	row, err := scanChannel(r.pool.QueryRow(ctx, sql, channelID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return mo.None[model.Channel](), nil
		}
		return mo.None[model.Channel](), scanFailure(err, "failed to get channel")
	}

	channel, err := row.decode()
	if err != nil {
		return mo.None[model.Channel](), err
	}
	return mo.Some(channel), nil
}

// SearchByName returns channels whose name contains pattern, case-insensitively.
// A row whose stored values fail validation is logged and left out; a scan
// failure ends the iteration and fails the call.
func (r *channelRepository) SearchByName(ctx context.Context, pattern string) (_ []model.Channel, err error) {
	defer observe("channel", "search_by_name", &err)

	sql := "SELECT " + channelColumns + " FROM channels WHERE name ILIKE $1 ORDER BY id"
	rows, err := r.pool.Query(ctx, sql, containsPattern(pattern))
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to search channels", false)
	}
	defer rows.Close()

	channels := []model.Channel{}
	for rows.Next() {
		row, err := scanChannel(rows)
		if err != nil {
			return nil, scanFailure(err, "failed to scan channel row")
		}
		channel, err := row.decode()
		if err != nil {
			r.logger.Warn("skipping undecodable channel row", "channel_id", row.ChannelID, "err", err)
			continue
		}
		channels = append(channels, channel)
	}

	if err := rows.Err(); err != nil {
		return nil, scanFailure(err, "failed to iterate channel rows")
	}

	return channels, nil
}

// Create creates a new channel record. An insert that affects no row is a failure.
func (r *channelRepository) Create(ctx context.Context, draft model.DraftChannel) (err error) {
	defer observe("channel", "create", &err)

	if err := draft.Validate(); err != nil {
		return err
	}

	sql := "INSERT INTO channels (channel_id, name, icon_url) VALUES ($1, $2, $3)"
	tag, err := r.pool.Exec(ctx, sql, draft.ChannelID, draft.Name, draft.IconURL.String())
	if err != nil {
		return handlePostgreSQLError(err, "failed to create channel", true)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeWriteFailed,
			fmt.Sprintf("failed to insert channel %q: no rows affected", draft.ChannelID))
	}
	return nil
}
