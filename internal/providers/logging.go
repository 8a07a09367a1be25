package providers

import (
	"context"
	"log/slog"

	"nhl-feed-service/internal/domain"
	"nhl-feed-service/internal/logging"
)

// warnFetch logs a fetch warning on the request logger when one is set, else on fallback.
// Entries always carry the provider and, when known, the game.
func warnFetch(ctx context.Context, fallback *slog.Logger, provider string, gameID domain.GameID, msg string, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	if gameID != "" {
		args = append(args, slog.String(logging.FieldGameID, gameID.String()))
	}
	logger.Log(ctx, slog.LevelWarn, msg, args...)
}
