package lazy

import (
	"context"
	"reflect"
)

// Settle turns the raw outcome of an operation into a resolved value.
// Plain values are already resolved. Awaitables are awaited, Outcomers are
// unpacked and receive channels yield their first value. The result is
// settled again until a plain value remains.
func Settle(ctx context.Context, v any) (any, error) {
	for {
		if IsNil(v) {
			return v, nil
		}

		switch t := v.(type) {
		case Awaitable:
			next, err := t.Await(ctx)
			if err != nil {
				return nil, err
			}
			v = next
			continue
		case Outcomer:
			next, err := t.Outcome()
			if err != nil {
				return nil, err
			}
			v = next
			continue
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Chan || rv.Type().ChanDir()&reflect.RecvDir == 0 {
			return v, nil
		}

		next, err := receive(ctx, rv)
		if err != nil {
			return nil, err
		}
		v = next
	}
}

func receive(ctx context.Context, ch reflect.Value) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chosen, recv, ok := reflect.Select([]reflect.SelectCase{
		{Dir: reflect.SelectRecv, Chan: ch},
		{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(ctx.Done())},
	})
	if chosen == 1 {
		return nil, ctx.Err()
	}
	if !ok {
		return nil, ErrNoValue
	}
	return recv.Interface(), nil
}
