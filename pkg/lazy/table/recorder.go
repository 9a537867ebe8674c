package table

import (
	"context"
	"log/slog"

	"github.com/ib-77/lazy3/pkg/lazy"
	"github.com/ib-77/lazy3/pkg/lazy/core"
)

type Option func(*options)

type options struct {
	logger   *slog.Logger
	handlers []core.ReplayHandlers
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithHandlers(h core.ReplayHandlers) Option {
	return func(o *options) {
		o.handlers = append(o.handlers, h)
	}
}

// Recorder holds the chain of a typed builder and replays it through a
// Table. Like dynamic.Proxy it is consumed by its first materialization.
type Recorder struct {
	target   any
	chain    *lazy.Chain
	table    *Table
	handlers core.ReplayHandlers
}

func NewRecorder(target any, t *Table, opts ...Option) *Recorder {
	o := &options{logger: core.DiscardLogger()}
	for _, opt := range opts {
		opt(o)
	}

	return &Recorder{
		target:   target,
		chain:    lazy.NewChain(),
		table:    t,
		handlers: core.JoinHandlers(append([]core.ReplayHandlers{core.LogHandlers(o.logger)}, o.handlers...)...),
	}
}

// Record appends a step. Steps recorded after materialization are dropped.
func (r *Recorder) Record(name string, args ...any) {
	_ = r.chain.Record(name, args...)
}

func (r *Recorder) Steps() []lazy.Step {
	return r.chain.Steps()
}

func (r *Recorder) Target() any {
	return r.target
}

func (r *Recorder) Value(ctx context.Context) (any, error) {
	steps, err := r.chain.Seal()
	if err != nil {
		return nil, err
	}
	return core.Replay(ctx, r.target, steps, r.table, r.handlers)
}

func (r *Recorder) Result(ctx context.Context) lazy.Result[any] {
	n := r.chain.Len()
	v, err := r.Value(ctx)
	return lazy.From(v, err, n)
}
