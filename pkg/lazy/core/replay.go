package core

import (
	"context"

	"github.com/ib-77/lazy3/pkg/lazy"
)

// Invoker runs one recorded step against the current receiver and returns
// its raw, possibly asynchronous, outcome. A receiver lacking the step's
// operation yields a *lazy.NotCallableError.
type Invoker interface {
	Invoke(ctx context.Context, recv any, step lazy.Step, index int) (any, error)
}

type InvokerFunc func(ctx context.Context, recv any, step lazy.Step, index int) (any, error)

func (f InvokerFunc) Invoke(ctx context.Context, recv any, step lazy.Step, index int) (any, error) {
	return f(ctx, recv, step, index)
}

// ReplayHandlers observe a replay. They never change its outcome.
type ReplayHandlers struct {
	OnStep    func(ctx context.Context, index int, step lazy.Step, recv any)
	OnSettled func(ctx context.Context, index int, step lazy.Step, result any)
	OnFail    func(ctx context.Context, index int, step lazy.Step, err error)
	OnDone    func(ctx context.Context, steps int, result any)
}

// Replay applies steps in order, starting from target. Each step is invoked
// on the settled outcome of the previous one; the first error ends the
// replay and is returned as is.
func Replay(ctx context.Context, target any, steps []lazy.Step, inv Invoker,
	handlers ReplayHandlers) (any, error) {

	current := target
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			if handlers.OnFail != nil {
				handlers.OnFail(ctx, i, step, err)
			}
			return nil, err
		}

		if handlers.OnStep != nil {
			handlers.OnStep(ctx, i, step, current)
		}

		raw, err := inv.Invoke(ctx, current, step, i)
		if err == nil {
			raw, err = lazy.Settle(ctx, raw)
		}
		if err != nil {
			if handlers.OnFail != nil {
				handlers.OnFail(ctx, i, step, err)
			}
			return nil, err
		}

		if handlers.OnSettled != nil {
			handlers.OnSettled(ctx, i, step, raw)
		}
		current = raw
	}

	if handlers.OnDone != nil {
		handlers.OnDone(ctx, len(steps), current)
	}
	return current, nil
}

// JoinHandlers calls every non-nil handler in order.
func JoinHandlers(all ...ReplayHandlers) ReplayHandlers {
	return ReplayHandlers{
		OnStep: func(ctx context.Context, index int, step lazy.Step, recv any) {
			for _, h := range all {
				if h.OnStep != nil {
					h.OnStep(ctx, index, step, recv)
				}
			}
		},
		OnSettled: func(ctx context.Context, index int, step lazy.Step, result any) {
			for _, h := range all {
				if h.OnSettled != nil {
					h.OnSettled(ctx, index, step, result)
				}
			}
		},
		OnFail: func(ctx context.Context, index int, step lazy.Step, err error) {
			for _, h := range all {
				if h.OnFail != nil {
					h.OnFail(ctx, index, step, err)
				}
			}
		},
		OnDone: func(ctx context.Context, steps int, result any) {
			for _, h := range all {
				if h.OnDone != nil {
					h.OnDone(ctx, steps, result)
				}
			}
		},
	}
}
