package model

import (
	"time"

	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
)

// Channel represents a persisted YouTube channel
type Channel struct {
	ID        int64  `json:"id" db:"id"`
	ChannelID string `json:"channel_id" db:"channel_id"` // natural key, unique
	Name      string `json:"name" db:"name"`
	IconURL   URL    `json:"icon_url" db:"icon_url"`
}

// DraftChannel holds the caller-supplied fields for a new channel
type DraftChannel struct {
	ChannelID string `json:"channel_id"`
	Name      string `json:"name"`
	IconURL   URL    `json:"icon_url"`
}

func (d DraftChannel) Validate() error {
	switch {
	case d.ChannelID == "":
		return apperrors.New(apperrors.CodeValidationFailed, "channel_id is required")
	case d.Name == "":
		return apperrors.New(apperrors.CodeValidationFailed, "name is required")
	case d.IconURL.IsZero():
		return apperrors.New(apperrors.CodeValidationFailed, "icon_url is required")
	}
	return nil
}

// Video represents a persisted video. ChannelID references Channel.ID.
type Video struct {
	ID          int64     `json:"id" db:"id"`
	VideoID     string    `json:"video_id" db:"video_id"`
	ChannelID   int64     `json:"channel_id" db:"channel_id"`
	Title       string    `json:"title" db:"title"`
	URL         URL       `json:"url" db:"url"`
	PublishedAt time.Time `json:"published_at" db:"published_at"`
}

// DraftVideo holds the caller-supplied fields for a new video
type DraftVideo struct {
	VideoID     string    `json:"video_id"`
	ChannelID   int64     `json:"channel_id"`
	Title       string    `json:"title"`
	URL         URL       `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

func (d DraftVideo) Validate() error {
	switch {
	case d.VideoID == "":
		return apperrors.New(apperrors.CodeValidationFailed, "video_id is required")
	case d.ChannelID <= 0:
		return apperrors.New(apperrors.CodeValidationFailed, "channel_id must be positive")
	case d.Title == "":
		return apperrors.New(apperrors.CodeValidationFailed, "title is required")
	case d.URL.IsZero():
		return apperrors.New(apperrors.CodeValidationFailed, "url is required")
	}
	return nil
}

// Song is a searchable track published on a channel
type Song struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Artist      string `json:"artist" db:"artist"`
	ChannelName string `json:"channel_name" db:"channel_name"`
	URL         URL    `json:"url" db:"url"`
}

// ValidatePage rejects negative pagination parameters
func ValidatePage(limit, offset int) error {
	if limit < 0 {
		return apperrors.New(apperrors.CodeValidationFailed, "limit must not be negative")
	}
	if offset < 0 {
		return apperrors.New(apperrors.CodeValidationFailed, "offset must not be negative")
	}
	return nil
}
