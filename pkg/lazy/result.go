package lazy

import (
	"time"

	"github.com/google/uuid"
)

// Result is the settled outcome of one materialization.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	steps     int
}

func Success[T any](r T, steps int) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		steps:     steps,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From builds a Result out of the (value, error) pair returned by a materialization.
func From[T any](v T, err error, steps int) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v, steps)
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// Steps is the number of steps applied to reach the result.
func (r Result[T]) Steps() int {
	return r.steps
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Outcome lets a Result returned by a chained method settle to its value or error.
func (r Result[T]) Outcome() (any, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}

var (
	_ WithError[int] = Result[int]{}
	_ Outcomer       = Result[int]{}
	_ Awaitable      = (*Future[int])(nil)
)
