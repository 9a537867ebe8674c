package lazy

import (
	"context"
)

// Future is a value computed asynchronously. A method that returns a
// *Future is awaited before the next step is replayed.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go starts fn in its own goroutine and returns a Future for its result.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = fn()
	}()
	return f
}

func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: v}
	close(f.done)
	return f
}

func Rejected[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Done is closed once the future is settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (f *Future[T]) Await(ctx context.Context) (any, error) {
	v, err := f.Get(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}
