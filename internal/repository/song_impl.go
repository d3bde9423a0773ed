package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Taichi-iskw/media-catalog/internal/model"
	"github.com/samber/mo"
)

// songRepository implements SongRepository using PostgreSQL
type songRepository struct {
	pool Pool
}

// NewSongRepository creates a new instance of SongRepository
func NewSongRepository(pool Pool) SongRepository {
	return &songRepository{
		pool: pool,
	}
}

// Search retrieves songs matching the present filters with pagination
func (r *songRepository) Search(ctx context.Context, title, channelName mo.Option[string], limit, offset int) (_ []model.Song, err error) {
	defer observe("song", "search", &err)

	if err := model.ValidatePage(limit, offset); err != nil {
		return nil, err
	}

	where, args := buildSongWhere(title, channelName, 1)
	argNum := len(args) + 1

	parts := []string{"SELECT " + songColumns + " FROM songs"}
	if where != "" {
		parts = append(parts, where)
	}
	parts = append(parts, fmt.Sprintf("ORDER BY id LIMIT $%d OFFSET $%d", argNum, argNum+1))
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, strings.Join(parts, " "), args...)
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to search songs", false)
	}
	defer rows.Close()

	songs := []model.Song{}
	for rows.Next() {
		row, err := scanSong(rows)
		if err != nil {
			return nil, scanFailure(err, "failed to scan song row")
		}
		song, err := row.decode()
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, handlePostgreSQLError(err, "failed to iterate song rows", false)
	}

	return songs, nil
}

// buildSongWhere builds the WHERE clause and its arguments.
// startArg is the number of the first $ placeholder.
func buildSongWhere(title, channelName mo.Option[string], startArg int) (string, []any) {
	var conditions []string
	var args []any
	argNum := startArg

	if t, ok := title.Get(); ok {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", argNum))
		args = append(args, containsPattern(t))
		argNum++
	}

	if name, ok := channelName.Get(); ok {
		conditions = append(conditions, fmt.Sprintf("LOWER(channel_name) = LOWER($%d)", argNum))
		args = append(args, name)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
