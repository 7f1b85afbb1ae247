package slang

import (
	"reflect"
	"strconv"
)

// OptionCases holds the two handlers for MatchOption. Both fields are
// required; exhaustiveness is enforced by the struct shape and a nil field is
// the only runtime hole.
type OptionCases[T, R any] struct {
	Some func(v T) R
	None func() R
}

// MatchOption dispatches on the variant of o. Exactly one handler fires and
// its result is returned.
func MatchOption[T, R any](o Option[T], cases OptionCases[T, R]) R {
	if o.some {
		if cases.Some == nil {
			panic(nonExhaustive("Some"))
		}
		return cases.Some(o.value)
	}
	if cases.None == nil {
		panic(nonExhaustive("None"))
	}
	return cases.None()
}

// ResultCases holds the two handlers for MatchResult.
type ResultCases[T, R any] struct {
	Ok  func(v T) R
	Err func(err error) R
}

// MatchResult dispatches on the variant of r.
func MatchResult[T, R any](r Result[T], cases ResultCases[T, R]) R {
	if r.ok {
		if cases.Ok == nil {
			panic(nonExhaustive("Ok"))
		}
		return cases.Ok(r.value)
	}
	if cases.Err == nil {
		panic(nonExhaustive("Err"))
	}
	return cases.Err(r.err)
}

// MatchAll dispatches over an open key space. The value must be a string,
// number, boolean or Atom; anything else panics with ErrUnsupportedMatch.
// Atoms use their description as key, numbers and booleans are stringified
// ("0", "true"). A missing key falls through to the mandatory "_" handler,
// which always receives the original, unconverted value.
func MatchAll[R any](value any, patterns map[string]func(value any) R) R {
	key := matchKey(value)
	if h, ok := patterns[key]; ok {
		return h(value)
	}
	if h, ok := patterns["_"]; ok {
		return h(value)
	}
	panic(nonExhaustive("_"))
}

func matchKey(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case Atom:
		return v.desc
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}
	panic(ErrUnsupportedMatch)
}
