// Package api exposes the catalog repositories over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Taichi-iskw/media-catalog/internal/app"
	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
	"github.com/Taichi-iskw/media-catalog/internal/model"
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/samber/mo"
)

// DefaultPageSize is used when a request carries no limit
const DefaultPageSize = 20

// Handler serves the catalog endpoints
type Handler struct {
	app         *app.Application
	logger      *log.Logger
	maxPageSize int
}

// NewHandler creates a Handler. maxPageSize caps the limit query parameter.
func NewHandler(a *app.Application, logger *log.Logger, maxPageSize int) *Handler {
	if maxPageSize <= 0 {
		maxPageSize = DefaultPageSize
	}
	return &Handler{app: a, logger: logger, maxPageSize: maxPageSize}
}

// CreateChannel handles POST /channels
func (h *Handler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	var draft model.DraftChannel
	if err := decodeBody(r, &draft); err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	if err := h.app.Channels.Create(r.Context(), draft); err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct{}{})
}

// GetChannel handles GET /channels/{channelID}
func (h *Handler) GetChannel(w http.ResponseWriter, r *http.Request) {
	channelID := chi.URLParam(r, "channelID")

	found, err := h.app.Channels.FindByID(r.Context(), channelID)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	channel, ok := found.Get()
	if !ok {
		writeAppError(w, h.logger, apperrors.New(apperrors.CodeNotFound,
			fmt.Sprintf("channel %q not found", channelID)))
		return
	}
	writeJSON(w, http.StatusOK, channel)
}

// SearchChannels handles GET /channels?name=
func (h *Handler) SearchChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.app.Channels.SearchByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, channels)
}

// ListVideos handles GET /videos, optionally narrowed by channel_id
func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := h.page(r)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	var videos []model.Video
	if raw := r.URL.Query().Get("channel_id"); raw != "" {
		channelID, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil || channelID <= 0 {
			writeAppError(w, h.logger, apperrors.New(apperrors.CodeValidationFailed,
				"channel_id must be a positive integer"))
			return
		}
		videos, err = h.app.Videos.ListByChannel(r.Context(), channelID, limit, offset)
	} else {
		videos, err = h.app.Videos.List(r.Context(), limit, offset)
	}
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

// CreateVideo handles POST /videos
func (h *Handler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var draft model.DraftVideo
	if err := decodeBody(r, &draft); err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	if err := h.app.Videos.Create(r.Context(), draft); err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct{}{})
}

// SearchSongs handles GET /songs?title=&channel_name=
func (h *Handler) SearchSongs(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := h.page(r)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	query := r.URL.Query()
	songs, err := h.app.Songs.Search(r.Context(),
		mo.EmptyableToOption(query.Get("title")),
		mo.EmptyableToOption(query.Get("channel_name")),
		limit, offset)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, songs)
}

// page reads limit and offset, applying the default and the cap
func (h *Handler) page(r *http.Request) (limit, offset int, err error) {
	query := r.URL.Query()

	limit = DefaultPageSize
	if raw := query.Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return 0, 0, apperrors.New(apperrors.CodeValidationFailed, "limit must be an integer")
		}
	}
	if raw := query.Get("offset"); raw != "" {
		if offset, err = strconv.Atoi(raw); err != nil {
			return 0, 0, apperrors.New(apperrors.CodeValidationFailed, "offset must be an integer")
		}
	}

	if err := model.ValidatePage(limit, offset); err != nil {
		return 0, 0, err
	}
	return min(limit, h.maxPageSize), offset, nil
}

// decodeBody decodes a JSON request body. A URL field that fails to parse
// keeps its VALIDATION_FAILED error; any other problem is reported as a
// malformed body.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperrors.Wrap(err, apperrors.CodeValidationFailed, "invalid request body: "+err.Error())
	}
	return nil
}
