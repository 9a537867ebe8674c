package dynamic

import (
	"context"
	"fmt"
	"reflect"

	"github.com/ib-77/lazy3/pkg/lazy"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// invoker replays steps by reflection. It satisfies core.Invoker.
type invoker struct {
	injectContext bool
}

func (iv invoker) Invoke(ctx context.Context, recv any, step lazy.Step, index int) (any, error) {
	fn, ok := lookup(recv, step.Name())
	if !ok {
		return nil, &lazy.NotCallableError{
			Name:     step.Name(),
			Index:    index,
			Receiver: lazy.TypeName(recv),
		}
	}

	in, spread, err := iv.arguments(ctx, fn.Type(), step)
	if err != nil {
		return nil, err
	}

	var out []reflect.Value
	if spread {
		out = fn.CallSlice(in)
	} else {
		out = fn.Call(in)
	}
	return results(recv, fn.Type(), out)
}

// arguments converts the recorded arguments to the parameter types of fn.
// spread reports that the last argument already is the variadic slice.
func (iv invoker) arguments(ctx context.Context, fn reflect.Type, step lazy.Step) ([]reflect.Value, bool, error) {
	args := step.Args()
	numIn := fn.NumIn()

	if iv.injectContext && numIn > 0 && fn.In(0) == contextType {
		if len(args) == 0 {
			args = []any{ctx}
		} else if _, given := args[0].(context.Context); !given {
			args = append([]any{ctx}, args...)
		}
	}

	variadic := fn.IsVariadic()
	if (!variadic && len(args) != numIn) || (variadic && len(args) < numIn-1) {
		return nil, false, &lazy.ArgumentError{
			Name:     step.Name(),
			Position: -1,
			Reason:   fmt.Sprintf("want %d arguments, got %d", numIn, len(args)),
		}
	}

	spread := false
	if variadic && len(args) == numIn {
		last := args[numIn-1]
		if last != nil && reflect.TypeOf(last).AssignableTo(fn.In(numIn-1)) {
			spread = true
		}
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		want := paramType(fn, i, spread)
		v, ok := convert(arg, want)
		if !ok {
			return nil, false, &lazy.ArgumentError{
				Name:     step.Name(),
				Position: i,
				Reason:   fmt.Sprintf("cannot use %s as %s", lazy.TypeName(arg), want),
			}
		}
		in[i] = v
	}

	return in, spread, nil
}

func paramType(fn reflect.Type, i int, spread bool) reflect.Type {
	last := fn.NumIn() - 1
	if !fn.IsVariadic() || i < last || spread {
		return fn.In(i)
	}
	return fn.In(last).Elem()
}

func convert(arg any, want reflect.Type) (reflect.Value, bool) {
	if arg == nil {
		switch want.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(want), true
		}
		return reflect.Value{}, false
	}

	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(want) {
		return v, true
	}
	if !v.Type().ConvertibleTo(want) {
		return reflect.Value{}, false
	}
	if isNumeric(v.Kind()) && isNumeric(want.Kind()) {
		return convertNumber(v, want)
	}
	if v.Kind() == want.Kind() {
		return v.Convert(want), true
	}
	return reflect.Value{}, false
}

// convertNumber converts v to want only when the value survives: no
// truncated fractions, no wrapping, no sign flips. Between float kinds only
// overflow is rejected, so 0.1 still reaches a float32 parameter.
func convertNumber(v reflect.Value, want reflect.Type) (reflect.Value, bool) {
	if isFloat(v.Kind()) && isFloat(want.Kind()) {
		if reflect.Zero(want).OverflowFloat(v.Float()) {
			return reflect.Value{}, false
		}
		return v.Convert(want), true
	}
	out := v.Convert(want)
	if !out.Convert(v.Type()).Equal(v) {
		return reflect.Value{}, false
	}
	return out, true
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// results maps the returned values to one outcome. A trailing non-nil error
// is returned unchanged; no other value keeps the receiver current.
func results(recv any, fn reflect.Type, out []reflect.Value) (any, error) {
	if n := len(out); n > 0 && fn.Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			return nil, e.Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return recv, nil
	case 1:
		return out[0].Interface(), nil
	}

	tuple := make([]any, len(out))
	for i, v := range out {
		tuple[i] = v.Interface()
	}
	return tuple, nil
}
