package dynamic

import (
	"log/slog"

	"github.com/ib-77/lazy3/pkg/lazy/core"
)

type Option func(*options)

type options struct {
	logger        *slog.Logger
	handlers      []core.ReplayHandlers
	injectContext bool
}

func defaultOptions() *options {
	return &options{
		logger:        core.DiscardLogger(),
		injectContext: true,
	}
}

// WithLogger reports replay progress to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithHandlers adds replay observers.
func WithHandlers(h core.ReplayHandlers) Option {
	return func(o *options) {
		o.handlers = append(o.handlers, h)
	}
}

// WithoutContextInjection passes recorded arguments exactly as given, even
// to operations whose first parameter is a context.Context.
func WithoutContextInjection() Option {
	return func(o *options) {
		o.injectContext = false
	}
}
