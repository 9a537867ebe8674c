package lazy

import (
	"context"
	"time"
)

// Awaitable is a value that resolves later
type Awaitable interface {
	// Await blocks until the value is resolved or ctx is done
	Await(ctx context.Context) (any, error)
}

// Outcomer is an already settled value that may carry an error
type Outcomer interface {
	// Outcome returns the settled value and the error, if any
	Outcome() (any, error)
}

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if materialization failed
	Err() error
	// IsSuccess returns true if every step was applied
	IsSuccess() bool
}
