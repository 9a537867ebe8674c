package lazy

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCallable is matched by every *NotCallableError.
	ErrNotCallable = errors.New("not callable")
	// ErrConsumed is returned when a chain is materialized or extended after materialization.
	ErrConsumed = errors.New("chain already materialized")
	// ErrNoValue is returned when a channel outcome closes without producing a value.
	ErrNoValue = errors.New("channel closed without a value")

	ErrArguments = errors.New("argument mismatch")
	ErrType      = errors.New("unexpected result type")
)

// NotCallableError reports a step whose name does not resolve to an invocable
// member of the receiver it was replayed against.
type NotCallableError struct {
	Name     string
	Index    int
	Receiver string
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("step %d: %q is not callable on %s", e.Index, e.Name, e.Receiver)
}

func (e *NotCallableError) Is(target error) bool {
	return target == ErrNotCallable
}

// ArgumentError reports a recorded argument that cannot be passed to the
// operation it was recorded for.
type ArgumentError struct {
	Name     string
	Position int
	Reason   string
}

func (e *ArgumentError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("%s: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("%s: argument %d: %s", e.Name, e.Position, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrArguments
}

type TypeError struct {
	Want string
	Got  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("want %s, got %s", e.Want, e.Got)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrType
}
