package slang

import (
	"math"
	"reflect"
)

// Truthy reports whether v classifies as a present value. Non-truthy values
// are nil (including typed nil pointers, maps, slices, chans, funcs and
// interfaces), the empty string, NaN and positive or negative infinity.
// Everything else is truthy, including 0, false and empty non-nil containers.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	switch x := v.(type) {
	case string:
		return x != ""
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	case float32:
		f := float64(x)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	case reflect.String:
		return rv.Len() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return true
}

// IsNil reports whether v is nil or wraps a typed nil reference.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
