package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/market-names/internal/logging"
)

// logWithSource emits a log entry if a logger is available and always includes the source name.
func logWithSource(ctx context.Context, logger *slog.Logger, level slog.Level, source string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldSource, source))
	logger.Log(ctx, level, msg, args...)
}
