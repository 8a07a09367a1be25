package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"nhl-feed-service/internal/extract"
	"nhl-feed-service/internal/http/middleware"
	"nhl-feed-service/internal/logging"
	"nhl-feed-service/internal/providers"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// writeJSON encodes payload. Answers come from live feeds, so nothing is cacheable.
func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", logging.FieldError, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, ErrorResponse{Error: message, RequestID: requestID(r)}, logger)
}

// writeExtractionError maps err to a status and reports its kind alongside the message.
func writeExtractionError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	writeJSON(w, statusFor(err), ErrorResponse{
		Error:     err.Error(),
		Kind:      string(extract.KindOf(err)),
		RequestID: requestID(r),
	}, logger)
}

func statusFor(err error) int {
	switch extract.KindOf(err) {
	case extract.KindNotFound:
		return http.StatusNotFound
	case extract.KindInvalidSide:
		return http.StatusBadRequest
	case extract.KindUpstream:
		if _, ok := providers.AsRateLimitError(err); ok {
			return http.StatusTooManyRequests
		}
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

func requestID(r *http.Request) string {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return r.Header.Get("X-Request-ID")
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
