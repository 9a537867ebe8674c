package lazy

import (
	"fmt"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// As views a materialized value as T.
func As[T any](v any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if t, ok := v.(T); ok {
		return t, nil
	}
	// a nil outcome is a valid T when T is an interface or pointer-like type
	if v == nil && IsNil(zero) {
		return zero, nil
	}
	return zero, &TypeError{Want: fmt.Sprintf("%T", zero), Got: fmt.Sprintf("%T", v)}
}

// TypeName describes a receiver for error messages.
func TypeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
