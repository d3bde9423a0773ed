package api

import (
	"net/http"

	"github.com/Taichi-iskw/media-catalog/internal/api/middleware"
	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts every catalog route behind the shared middleware
func NewRouter(h *Handler) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Metrics)
	router.Use(middleware.RequestLogger(h.logger))

	router.Route("/channels", func(r chi.Router) {
		r.Post("/", h.CreateChannel)
		r.Get("/", h.SearchChannels)
		r.Get("/{channelID}", h.GetChannel)
	})

	router.Route("/videos", func(r chi.Router) {
		r.Post("/", h.CreateVideo)
		r.Get("/", h.ListVideos)
	})

	router.Get("/songs", h.SearchSongs)

	router.Get("/health/live", h.HealthLive)
	router.Get("/health/ready", h.HealthReady)
	router.Handle("/metrics", promhttp.Handler())

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, apperrors.CodeNotFound, "route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	return router
}
