package repository

import (
	"context"
	"io"
	"testing"
	"time"

	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
	"github.com/Taichi-iskw/media-catalog/internal/model"
	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var channelCols = []string{"id", "channel_id", "name", "icon_url"}

func newTestChannelRepository(mock pgxmock.PgxPoolIface) ChannelRepository {
	return NewChannelRepository(mock, log.New(io.Discard))
}

func TestChannelRepository_FindByID(t *testing.T) {
	tests := []struct {
		name      string
		channelID string
		setup     func(mock pgxmock.PgxPoolIface)
		want      *model.Channel
		wantCode  string
	}{
		{
			name:      "existing channel",
			channelID: "UC123",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(channelCols).
					AddRow(int64(1), "UC123", "Lofi Girl", "https://example.com/icon.png")
				mock.ExpectQuery("SELECT id, channel_id, name, icon_url FROM channels WHERE channel_id = \\$1").
					WithArgs("UC123").
					WillReturnRows(rows)
			},
			want: &model.Channel{
				ID:        1,
				ChannelID: "UC123",
				Name:      "Lofi Girl",
				IconURL:   model.MustParseURL("https://example.com/icon.png"),
			},
		},
		{
			name:      "missing channel is absent, not an error",
			channelID: "UC404",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("FROM channels WHERE channel_id").
					WithArgs("UC404").
					WillReturnRows(pgxmock.NewRows(channelCols))
			},
		},
		{
			name:      "stored icon url is invalid",
			channelID: "UC123",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(channelCols).
					AddRow(int64(1), "UC123", "Lofi Girl", "not a url")
				mock.ExpectQuery("FROM channels WHERE channel_id").
					WithArgs("UC123").
					WillReturnRows(rows)
			},
			wantCode: apperrors.CodeDecodeFailed,
		},
		{
			name:      "connection failure",
			channelID: "UC123",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("FROM channels WHERE channel_id").
					WithArgs("UC123").
					WillReturnError(assert.AnError)
			},
			wantCode: apperrors.CodeStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)
			repo := newTestChannelRepository(mock)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			got, err := repo.FindByID(ctx, tt.channelID)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
				assert.True(t, got.IsAbsent())
			} else {
				require.NoError(t, err)
				if tt.want == nil {
					assert.True(t, got.IsAbsent())
				} else {
					channel, ok := got.Get()
					require.True(t, ok)
					assert.Equal(t, *tt.want, channel)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "pgxmock expectations were not met")
		})
	}
}

func TestChannelRepository_SearchByName(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		setup    func(mock pgxmock.PgxPoolIface)
		wantIDs  []string
		wantCode string
	}{
		{
			name:    "matches are returned in id order",
			pattern: "lofi",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(channelCols).
					AddRow(int64(1), "UC1", "Lofi Girl", "https://example.com/1.png").
					AddRow(int64(2), "UC2", "lofi beats", "https://example.com/2.png")
				mock.ExpectQuery("FROM channels WHERE name ILIKE \\$1 ORDER BY id").
					WithArgs("%lofi%").
					WillReturnRows(rows)
			},
			wantIDs: []string{"UC1", "UC2"},
		},
		{
			name:    "wildcards in the pattern are literal",
			pattern: "100%_",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("FROM channels WHERE name ILIKE").
					WithArgs(`%100\%\_%`).
					WillReturnRows(pgxmock.NewRows(channelCols))
			},
			wantIDs: []string{},
		},
		{
			name:    "undecodable rows are skipped",
			pattern: "lofi",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(channelCols).
					AddRow(int64(1), "UC1", "Lofi Girl", "not a url").
					AddRow(int64(2), "UC2", "lofi beats", "https://example.com/2.png")
				mock.ExpectQuery("FROM channels WHERE name ILIKE").
					WithArgs("%lofi%").
					WillReturnRows(rows)
			},
			wantIDs: []string{"UC2"},
		},
		{
			name:    "no match returns empty list",
			pattern: "nothing",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("FROM channels WHERE name ILIKE").
					WithArgs("%nothing%").
					WillReturnRows(pgxmock.NewRows(channelCols))
			},
			wantIDs: []string{},
		},
		{
			name:    "query failure",
			pattern: "lofi",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("FROM channels WHERE name ILIKE").
					WithArgs("%lofi%").
					WillReturnError(assert.AnError)
			},
			wantCode: apperrors.CodeStorageUnavailable,
		},
		{
			name:    "iteration failure",
			pattern: "lofi",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(channelCols).
					AddRow(int64(1), "UC1", "Lofi Girl", "https://example.com/1.png").
					RowError(0, assert.AnError)
				mock.ExpectQuery("FROM channels WHERE name ILIKE").
					WithArgs("%lofi%").
					WillReturnRows(rows)
			},
			wantCode: apperrors.CodeStorageUnavailable,
		},
		{
			name:    "scan conversion failure is a decode failure",
			pattern: "lofi",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(channelCols).
					AddRow(int64(1), "UC1", "Lofi Girl", "https://example.com/1.png").
					RowError(0, pgx.ScanArgError{ColumnIndex: 3, Err: assert.AnError})
				mock.ExpectQuery("FROM channels WHERE name ILIKE").
					WithArgs("%lofi%").
					WillReturnRows(rows)
			},
			wantCode: apperrors.CodeDecodeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)
			repo := newTestChannelRepository(mock)

			got, err := repo.SearchByName(context.Background(), tt.pattern)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				ids := make([]string, 0, len(got))
				for _, c := range got {
					ids = append(ids, c.ChannelID)
				}
				assert.Equal(t, tt.wantIDs, ids)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "pgxmock expectations were not met")
		})
	}
}

func TestChannelRepository_Create(t *testing.T) {
	draft := model.DraftChannel{
		ChannelID: "UC123",
		Name:      "Lofi Girl",
		IconURL:   model.MustParseURL("https://example.com/icon.png"),
	}

	tests := []struct {
		name     string
		draft    model.DraftChannel
		setup    func(mock pgxmock.PgxPoolIface)
		wantCode string
	}{
		{
			name:  "successful creation",
			draft: draft,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO channels \\(channel_id, name, icon_url\\) VALUES \\(\\$1, \\$2, \\$3\\)").
					WithArgs("UC123", "Lofi Girl", "https://example.com/icon.png").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name:     "invalid draft never reaches the database",
			draft:    model.DraftChannel{Name: "Lofi Girl", IconURL: draft.IconURL},
			setup:    func(mock pgxmock.PgxPoolIface) {},
			wantCode: apperrors.CodeValidationFailed,
		},
		{
			name:  "duplicate channel_id",
			draft: draft,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO channels").
					WithArgs("UC123", "Lofi Girl", "https://example.com/icon.png").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "channels_channel_id_key"})
			},
			wantCode: apperrors.CodeWriteFailed,
		},
		{
			name:  "no rows affected",
			draft: draft,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO channels").
					WithArgs("UC123", "Lofi Girl", "https://example.com/icon.png").
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			wantCode: apperrors.CodeWriteFailed,
		},
		{
			name:  "connection failure",
			draft: draft,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO channels").
					WithArgs("UC123", "Lofi Girl", "https://example.com/icon.png").
					WillReturnError(assert.AnError)
			},
			wantCode: apperrors.CodeStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)
			repo := newTestChannelRepository(mock)

			err = repo.Create(context.Background(), tt.draft)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "pgxmock expectations were not met")
		})
	}
}

func TestChannelRepository_RecordsOutcome(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	counter := operationsTotal.WithLabelValues("channel", "find_by_id", "storage_unavailable")
	before := testutil.ToFloat64(counter)

	mock.ExpectQuery("FROM channels WHERE channel_id").
		WithArgs("UC123").
		WillReturnError(assert.AnError)

	_, err = newTestChannelRepository(mock).FindByID(context.Background(), "UC123")
	require.Error(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
