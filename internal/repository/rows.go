package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
	"github.com/Taichi-iskw/media-catalog/internal/model"
	"github.com/jackc/pgx/v5"
)

// Column lists shared by every SELECT of a table.
const (
	channelColumns = "id, channel_id, name, icon_url"
	videoColumns   = "id, video_id, channel_id, title, url, published_at"
	songColumns    = "id, title, artist, channel_name, url"
)

// Rows are scanned into plain column structs first, then decoded into
// entities. Decoding is where stored values are re-validated.

type channelRow struct {
	ID        int64
	ChannelID string
	Name      string
	IconURL   string
}

func scanChannel(row pgx.Row) (channelRow, error) {
	var r channelRow
	err := row.Scan(&r.ID, &r.ChannelID, &r.Name, &r.IconURL)
	return r, err
}

func (r channelRow) decode() (model.Channel, error) {
	iconURL, err := model.ParseURL(r.IconURL)
	if err != nil {
		return model.Channel{}, apperrors.Wrap(err, apperrors.CodeDecodeFailed,
			fmt.Sprintf("stored icon_url of channel %q is invalid", r.ChannelID))
	}
	return model.Channel{
		ID:        r.ID,
		ChannelID: r.ChannelID,
		Name:      r.Name,
		IconURL:   iconURL,
	}, nil
}

type videoRow struct {
	ID          int64
	VideoID     string
	ChannelID   int64
	Title       string
	URL         string
	PublishedAt time.Time
}

func scanVideo(row pgx.Row) (videoRow, error) {
	var r videoRow
	err := row.Scan(&r.ID, &r.VideoID, &r.ChannelID, &r.Title, &r.URL, &r.PublishedAt)
	return r, err
}

func (r videoRow) decode() (model.Video, error) {
	u, err := model.ParseURL(r.URL)
	if err != nil {
		return model.Video{}, apperrors.Wrap(err, apperrors.CodeDecodeFailed,
			fmt.Sprintf("stored url of video %q is invalid", r.VideoID))
	}
	return model.Video{
		ID:          r.ID,
		VideoID:     r.VideoID,
		ChannelID:   r.ChannelID,
		Title:       r.Title,
		URL:         u,
		PublishedAt: r.PublishedAt,
	}, nil
}

type songRow struct {
	ID          int64
	Title       string
	Artist      string
	ChannelName string
	URL         string
}

func scanSong(row pgx.Row) (songRow, error) {
	var r songRow
	err := row.Scan(&r.ID, &r.Title, &r.Artist, &r.ChannelName, &r.URL)
	return r, err
}

func (r songRow) decode() (model.Song, error) {
	u, err := model.ParseURL(r.URL)
	if err != nil {
		return model.Song{}, apperrors.Wrap(err, apperrors.CodeDecodeFailed,
			fmt.Sprintf("stored url of song %d is invalid", r.ID))
	}
	return model.Song{
		ID:          r.ID,
		Title:       r.Title,
		Artist:      r.Artist,
		ChannelName: r.ChannelName,
		URL:         u,
	}, nil
}

// scanFailure maps a Scan error: value conversion problems are decode
// failures, everything else goes through the PostgreSQL error handler.
func scanFailure(err error, operation string) error {
	var argErr pgx.ScanArgError
	if errors.As(err, &argErr) {
		return apperrors.Wrap(err, apperrors.CodeDecodeFailed, operation)
	}
	return handlePostgreSQLError(err, operation, false)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE argument matching s as a literal substring
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
