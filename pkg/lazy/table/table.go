package table

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/ib-77/lazy3/pkg/lazy"
)

// Call runs one operation on recv with the recorded arguments.
type Call func(ctx context.Context, recv any, args []any) (any, error)

type Entry struct {
	Name string
	Call Call
}

// Table maps operation names to their dispatch functions.
type Table struct {
	entries map[string]Call
}

func New(entries ...Entry) *Table {
	t := &Table{entries: make(map[string]Call, len(entries))}
	for _, e := range entries {
		t.entries[e.Name] = e.Call
	}
	return t
}

func (t *Table) Lookup(name string) (Call, bool) {
	c, ok := t.entries[name]
	return c, ok
}

func (t *Table) Names() []string {
	out := make([]string, 0, len(t.entries))
	for name := range t.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Invoke satisfies core.Invoker.
func (t *Table) Invoke(ctx context.Context, recv any, step lazy.Step, index int) (any, error) {
	call, ok := t.entries[step.Name()]
	if !ok {
		return nil, notCallable(step.Name(), index, recv)
	}

	out, err := call(ctx, recv, step.Args())
	if err == errNotCallable {
		return nil, notCallable(step.Name(), index, recv)
	}
	return out, err
}

// errNotCallable is returned by entries whose receiver lacks the operation;
// Invoke replaces it with a *lazy.NotCallableError carrying the step index.
var errNotCallable = fmt.Errorf("table: %w", lazy.ErrNotCallable)

// NotCallable is what an Entry returns when recv does not have its operation.
func NotCallable() error {
	return errNotCallable
}

func notCallable(name string, index int, recv any) error {
	return &lazy.NotCallableError{Name: name, Index: index, Receiver: lazy.TypeName(recv)}
}

// Arg returns args[i] as T. A missing argument yields the zero T, as does
// nil when T can hold nil. Any other mismatch is a *lazy.ArgumentError.
func Arg[T any](name string, args []any, i int) (T, error) {
	var zero T
	if i >= len(args) {
		return zero, nil
	}
	if args[i] == nil {
		if nillable(reflect.TypeOf((*T)(nil)).Elem()) {
			return zero, nil
		}
		return zero, &lazy.ArgumentError{
			Name:     name,
			Position: i,
			Reason:   fmt.Sprintf("cannot use nil as %s", reflect.TypeOf((*T)(nil)).Elem()),
		}
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, &lazy.ArgumentError{
			Name:     name,
			Position: i,
			Reason:   fmt.Sprintf("cannot use %s as %T", lazy.TypeName(args[i]), zero),
		}
	}
	return v, nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// Arity reports a *lazy.ArgumentError unless len(args) == n.
func Arity(name string, args []any, n int) error {
	if len(args) == n {
		return nil
	}
	return &lazy.ArgumentError{
		Name:     name,
		Position: -1,
		Reason:   fmt.Sprintf("want %d arguments, got %d", n, len(args)),
	}
}

// Method adapts a typed function into a Call. The receiver is asserted to R.
func Method[R any](fn func(ctx context.Context, recv R, args []any) (any, error)) Call {
	return func(ctx context.Context, recv any, args []any) (any, error) {
		r, ok := recv.(R)
		if !ok {
			return nil, NotCallable()
		}
		return fn(ctx, r, args)
	}
}
