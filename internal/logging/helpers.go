package logging

import (
	"context"
	"log/slog"
)

// FieldError is the key for attached errors.
const FieldError = "error"

// Debug logs on the context logger, or fallback, when one is configured.
func Debug(ctx context.Context, fallback *slog.Logger, msg string, args ...any) {
	if logger := FromContext(ctx, fallback); logger != nil {
		logger.DebugContext(ctx, msg, args...)
	}
}

// Info logs on the context logger, or fallback, when one is configured.
func Info(ctx context.Context, fallback *slog.Logger, msg string, args ...any) {
	if logger := FromContext(ctx, fallback); logger != nil {
		logger.InfoContext(ctx, msg, args...)
	}
}

// Warn logs a warning with err attached when non-nil.
func Warn(ctx context.Context, fallback *slog.Logger, msg string, err error, args ...any) {
	logWithError(ctx, fallback, slog.LevelWarn, msg, err, args)
}

// Error logs an error with err attached when non-nil.
func Error(ctx context.Context, fallback *slog.Logger, msg string, err error, args ...any) {
	logWithError(ctx, fallback, slog.LevelError, msg, err, args)
}

func logWithError(ctx context.Context, fallback *slog.Logger, level slog.Level, msg string, err error, args []any) {
	logger := FromContext(ctx, fallback)
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, slog.Any(FieldError, err))
	}
	logger.Log(ctx, level, msg, args...)
}
