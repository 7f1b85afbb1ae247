package slang

import (
	"context"
	"fmt"
)

type tryOptions struct {
	rethrow bool
}

// TryOption configures SafeTry and SafeTryCtx.
type TryOption func(*tryOptions)

// Rethrow makes the boundary re-panic with the normalized error instead of
// folding it into an Err.
func Rethrow() TryOption {
	return func(o *tryOptions) { o.rethrow = true }
}

// SafeTry runs fn inside a panic boundary and folds the outcome into a
// Result. Panics are recovered and normalized: non-error payloads become an
// error carrying their string form.
func SafeTry[T any](fn func() (T, error), opts ...TryOption) Result[T] {
	return SafeTryCtx(context.Background(),
		func(context.Context) (T, error) { return fn() }, opts...)
}

// SafeTryCtx is SafeTry for context-aware functions. The boundary blocks for
// as long as fn runs; cancellation must happen inside fn itself.
func SafeTryCtx[T any](ctx context.Context, fn func(ctx context.Context) (T, error),
	opts ...TryOption) (res Result[T]) {

	var o tryOptions
	for _, opt := range opts {
		opt(&o)
	}

	defer func() {
		if r := recover(); r != nil {
			err := normalize(r)
			if o.rethrow {
				panic(err)
			}
			res = Err[T](err)
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		if o.rethrow {
			panic(err)
		}
		return Err[T](err)
	}
	return Ok(v)
}

func normalize(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return fmt.Errorf("%v", recovered)
}

// Panic unconditionally fails with message. It never returns.
func Panic(message string) {
	panic(Error(message))
}
