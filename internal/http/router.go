package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"nhl-feed-service/internal/http/handlers"
	"nhl-feed-service/internal/http/middleware"
	"nhl-feed-service/internal/metrics"
)

// NewRouter registers the query API on a chi router behind the logging middleware.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))

	r.Get("/health", handler.Health)
	r.Route("/games/{"+handlers.ParamGameID+"}", func(r chi.Router) {
		r.Get("/winning-team", handler.WinningTeam)
		r.Get("/player-score", handler.PlayerScore)
		r.Get("/winning-score", handler.WinningScore)
		r.Get("/total-goals", handler.TotalGoals)
		r.Get("/total-shots", handler.TotalShots)
		r.Get("/power-play", handler.PowerPlay)
	})
	return r
}
