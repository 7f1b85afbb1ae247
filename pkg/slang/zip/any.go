package zip

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/Hussseinkizz/slang/pkg/slang"
)

// AnyOptions configures ZipAny and ZipAnyWith.
type AnyOptions struct {
	// Fill is the pad value; HasFill distinguishes an explicit nil fill from
	// no fill at all.
	Fill    any
	HasFill bool
	// IncludeValues admits maps and structs as inputs, contributing only
	// their values with keys discarded.
	IncludeValues bool
}

// ZipAny transposes mixed collections into rows of heterogeneous tuples.
// Each input must be a slice or array; with IncludeValues set, maps
// (values in formatted-key order) and structs (exported fields in
// declaration order) are accepted too. Anything else panics with
// slang.ErrOnlyArrays.
func ZipAny(inputs []any, opts AnyOptions) [][]any {
	seqs := make([][]any, len(inputs))
	for i, in := range inputs {
		seqs[i] = extractValues(in, opts.IncludeValues)
	}

	typed := Options[any]{}
	if opts.HasFill {
		fill := opts.Fill
		typed.Fill = &fill
	}
	return Zip(seqs, typed)
}

// ZipAnyWith maps each heterogeneous row through fn.
func ZipAnyWith[R any](inputs []any, fn func(row []any) R, opts AnyOptions) []R {
	rows := ZipAny(inputs, opts)
	out := make([]R, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(row))
	}
	return out
}

func extractValues(in any, includeValues bool) []any {
	rv := reflect.ValueOf(in)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Map:
		if !includeValues {
			panic(slang.ErrOnlyArrays)
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(a, b int) bool {
			return fmt.Sprint(keys[a].Interface()) < fmt.Sprint(keys[b].Interface())
		})
		out := make([]any, 0, len(keys))
		for _, k := range keys {
			out = append(out, rv.MapIndex(k).Interface())
		}
		return out
	case reflect.Struct:
		if !includeValues {
			panic(slang.ErrOnlyArrays)
		}
		t := rv.Type()
		out := make([]any, 0, rv.NumField())
		for i := 0; i < rv.NumField(); i++ {
			if t.Field(i).IsExported() {
				out = append(out, rv.Field(i).Interface())
			}
		}
		return out
	}
	panic(slang.ErrOnlyArrays)
}
