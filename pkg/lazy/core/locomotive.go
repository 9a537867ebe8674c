package core

import (
	"context"
	"sync"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan In, outCh chan<- Out)
	OnCancelUnprocessed func(ctx context.Context, unprocessed In, outCh chan<- Out)
}

// Locomotive pulls inputs until the channel is closed or ctx is done, runs
// engine on each one and forwards the first value it produces.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	engine func(ctx context.Context, input In) <-chan Out,
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out Out), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				// the result is delivered even if ctx ended meanwhile,
				// consumers drain outCh until it is closed
				outCh <- pr
				if onSuccess != nil {
					onSuccess(ctx, pr)
				}
			}
		}
	}
}

// Lines starts n locomotives over inputCh and closes the returned channel
// once all of them stopped.
func Lines[In, Out any](ctx context.Context, inputCh <-chan In,
	engine func(ctx context.Context, input In) <-chan Out,
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out Out), lines int) <-chan Out {

	out := make(chan Out)
	wg := &sync.WaitGroup{}

	for n := max(lines, 1); n > 0; n-- {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
