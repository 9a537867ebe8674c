package core

import (
	"context"
)

// ToChanMany feeds values into a channel that is closed after the last one
// or when ctx is done.
func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChanMany drains out until it is closed.
func FromChanMany[T any](out <-chan T) []T {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res
}
