package core

import (
	"context"
	"io"
	"log/slog"

	"github.com/ib-77/lazy3/pkg/lazy"
)

// DiscardLogger drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LogHandlers reports replay progress at debug level.
func LogHandlers(logger *slog.Logger) ReplayHandlers {
	if logger == nil {
		logger = slog.Default()
	}

	return ReplayHandlers{
		OnStep: func(ctx context.Context, index int, step lazy.Step, recv any) {
			logger.DebugContext(ctx, "replaying step",
				"index", index,
				"step", step.String(),
				"receiver", lazy.TypeName(recv))
		},
		OnSettled: func(ctx context.Context, index int, step lazy.Step, result any) {
			logger.DebugContext(ctx, "step settled",
				"index", index,
				"step", step.Name(),
				"result", lazy.TypeName(result))
		},
		OnFail: func(ctx context.Context, index int, step lazy.Step, err error) {
			logger.DebugContext(ctx, "replay stopped",
				"index", index,
				"step", step.Name(),
				"error", err)
		},
		OnDone: func(ctx context.Context, steps int, result any) {
			logger.DebugContext(ctx, "chain materialized",
				"steps", steps,
				"result", lazy.TypeName(result))
		},
	}
}
