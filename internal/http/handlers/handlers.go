package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"nhl-feed-service/internal/app/feed"
	"nhl-feed-service/internal/domain"
	"nhl-feed-service/internal/metrics"
)

// URL parameter holding the game identifier.
const ParamGameID = "gameID"

// Response is the success envelope for every game query.
type Response struct {
	GameID string `json:"gameId"`
	Result any    `json:"result"`
}

// Handler wires HTTP routes to per-game feed services.
type Handler struct {
	provider feed.Provider
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewHandler constructs a Handler reading from provider.
func NewHandler(provider feed.Provider, logger *slog.Logger, recorder *metrics.Recorder) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
		metrics:  recorder,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// WinningTeam answers with the team that scored first in period one.
func (h *Handler) WinningTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	svc, ok := h.service(w, r)
	if !ok {
		return
	}
	team, err := svc.WinningTeam(r.Context())
	h.respond(w, r, svc.GameID(), team, err)
}

// PlayerScore answers with the goals of the player named by ?name=.
func (h *Handler) PlayerScore(w nethttp.ResponseWriter, r *nethttp.Request) {
	svc, ok := h.service(w, r)
	if !ok {
		return
	}
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "name is required", h.logger)
		return
	}
	goals, err := svc.PlayerScore(r.Context(), name)
	h.respond(w, r, svc.GameID(), goals, err)
}

// WinningScore answers with every goal play of the game.
func (h *Handler) WinningScore(w nethttp.ResponseWriter, r *nethttp.Request) {
	svc, ok := h.service(w, r)
	if !ok {
		return
	}
	payload, err := svc.WinningScore(r.Context())
	h.respond(w, r, svc.GameID(), payload.Plays, err)
}

// TotalGoals answers with the score for ?side=, or the combined score without it.
func (h *Handler) TotalGoals(w nethttp.ResponseWriter, r *nethttp.Request) {
	svc, ok := h.service(w, r)
	if !ok {
		return
	}
	total, err := svc.TotalGoals(r.Context(), r.URL.Query().Get("side"))
	h.respond(w, r, svc.GameID(), total, err)
}

// TotalShots answers with a null result when the side is missing or unknown.
func (h *Handler) TotalShots(w nethttp.ResponseWriter, r *nethttp.Request) {
	svc, ok := h.service(w, r)
	if !ok {
		return
	}
	count, found, err := svc.TotalShots(r.Context(), r.URL.Query().Get("side"))
	var result any
	if found {
		result = count
	}
	h.respond(w, r, svc.GameID(), result, err)
}

// PowerPlay answers with the penalties taken by ?side=, which is required.
func (h *Handler) PowerPlay(w nethttp.ResponseWriter, r *nethttp.Request) {
	svc, ok := h.service(w, r)
	if !ok {
		return
	}
	count, err := svc.PowerPlay(r.Context(), r.URL.Query().Get("side"))
	h.respond(w, r, svc.GameID(), count, err)
}

func (h *Handler) service(w nethttp.ResponseWriter, r *nethttp.Request) (*feed.Service, bool) {
	gameID := domain.GameID(chi.URLParam(r, ParamGameID))
	if err := gameID.Validate(); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return nil, false
	}
	return feed.NewService(gameID, h.provider, loggerFromContext(r, h.logger), h.metrics), true
}

func (h *Handler) respond(w nethttp.ResponseWriter, r *nethttp.Request, gameID domain.GameID, result any, err error) {
	if err != nil {
		writeExtractionError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, Response{GameID: gameID.String(), Result: result}, h.logger)
}
