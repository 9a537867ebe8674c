package batch

import (
	"context"
	"errors"

	"github.com/ib-77/lazy3/pkg/lazy"
	"github.com/ib-77/lazy3/pkg/lazy/core"
)

// ErrStopped marks chains left unmaterialized after an earlier failure
// under StopOnFailure.
var ErrStopped = errors.New("batch stopped after a failed chain")

// Materializer is anything that replays a recorded chain once:
// *dynamic.Proxy, *table.Recorder or a generated builder.
type Materializer interface {
	Value(ctx context.Context) (any, error)
}

type Outcome struct {
	Index  int
	Result lazy.Result[any]
}

type job struct {
	index int
	m     Materializer
}

// Run materializes items on lines workers and streams outcomes in
// completion order. The channel is closed once every started chain is done.
func Run(ctx context.Context, items []Materializer, lines int) <-chan Outcome {
	lines = linesFrom(ctx, lines)
	policy := policyFrom(ctx)

	ctx, cancel := context.WithCancelCause(ctx)

	jobs := make([]job, len(items))
	for i, m := range items {
		jobs[i] = job{index: i, m: m}
	}

	handlers := core.CancellationHandlers[job, Outcome]{
		OnCancelUnprocessed: func(ctx context.Context, j job, outCh chan<- Outcome) {
			outCh <- Outcome{Index: j.index, Result: lazy.Fail[any](context.Cause(ctx))}
		},
	}

	onDone := func(ctx context.Context, o Outcome) {
		if !o.Result.IsSuccess() && policy == StopOnFailure {
			cancel(ErrStopped)
		}
	}

	out := core.Lines(ctx, core.ToChanMany(ctx, jobs), materialize, handlers, onDone, lines)

	res := make(chan Outcome)
	go func() {
		defer close(res)
		defer cancel(nil)
		for o := range out {
			res <- o
		}
	}()

	return res
}

// All runs every item and returns the outcomes in item order. Items never
// started fail with the cause of the cancellation.
func All(ctx context.Context, items []Materializer, lines int) []Outcome {
	results := make([]Outcome, len(items))
	seen := make([]bool, len(items))

	for o := range Run(ctx, items, lines) {
		results[o.Index] = o
		seen[o.Index] = true
	}

	for i := range results {
		if seen[i] {
			continue
		}
		cause := context.Cause(ctx)
		if cause == nil {
			cause = ErrStopped
		}
		results[i] = Outcome{Index: i, Result: lazy.Fail[any](cause)}
	}

	return results
}

func materialize(ctx context.Context, j job) <-chan Outcome {
	out := make(chan Outcome, 1)

	go func() {
		defer close(out)

		steps := 0
		if s, ok := j.m.(interface{ Steps() []lazy.Step }); ok {
			steps = len(s.Steps())
		}

		v, err := j.m.Value(ctx)
		if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			err = context.Cause(ctx)
		}
		out <- Outcome{Index: j.index, Result: lazy.From(v, err, steps)}
	}()

	return out
}
