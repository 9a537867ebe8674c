package dynamic

import (
	"reflect"
	"sort"
)

// members splits the exported members of v into callable and plain ones.
type members struct {
	callable map[string]struct{}
	data     map[string]struct{}
}

func discover(target any) members {
	m := members{
		callable: map[string]struct{}{},
		data:     map[string]struct{}{},
	}
	if target == nil {
		return m
	}

	v := reflect.ValueOf(target)
	t := v.Type()
	for i := 0; i < t.NumMethod(); i++ {
		if meth := t.Method(i); meth.IsExported() {
			m.callable[meth.Name] = struct{}{}
		}
	}

	for name, fv := range plainMembers(v) {
		if _, isMethod := m.callable[name]; isMethod {
			continue
		}
		if isCallable(fv) {
			m.callable[name] = struct{}{}
		} else {
			m.data[name] = struct{}{}
		}
	}

	return m
}

// plainMembers lists exported struct fields, promoted ones included, or the
// entries of a string-keyed map.
func plainMembers(v reflect.Value) map[string]reflect.Value {
	out := map[string]reflect.Value{}
	v = indirect(v)
	if !v.IsValid() {
		return out
	}

	switch v.Kind() {
	case reflect.Struct:
		for _, f := range reflect.VisibleFields(v.Type()) {
			if !f.IsExported() {
				continue
			}
			fv, err := v.FieldByIndexErr(f.Index)
			if err != nil {
				continue
			}
			out[f.Name] = fv
		}
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return out
		}
		iter := v.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value()
		}
	}

	return out
}

// lookup resolves name on recv the way a replayed step sees it: methods
// first, then func-valued fields or map entries.
func lookup(recv any, name string) (reflect.Value, bool) {
	if recv == nil {
		return reflect.Value{}, false
	}

	v := reflect.ValueOf(recv)
	if meth := v.MethodByName(name); meth.IsValid() {
		return meth, true
	}

	fv, ok := plainMember(v, name)
	if !ok || !isCallable(fv) {
		return reflect.Value{}, false
	}
	if fv.Kind() == reflect.Interface {
		fv = fv.Elem()
	}
	return fv, true
}

func plainMember(v reflect.Value, name string) (reflect.Value, bool) {
	v = indirect(v)
	if !v.IsValid() {
		return reflect.Value{}, false
	}

	switch v.Kind() {
	case reflect.Struct:
		f, ok := v.Type().FieldByName(name)
		if !ok || !f.IsExported() {
			return reflect.Value{}, false
		}
		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			return reflect.Value{}, false
		}
		return fv, true
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		fv := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		return fv, fv.IsValid()
	}

	return reflect.Value{}, false
}

func isCallable(v reflect.Value) bool {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	return v.Kind() == reflect.Func && !v.IsNil()
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
