package chain

import (
	"context"

	"github.com/Hussseinkizz/slang/pkg/slang"
)

// Chain carries a Result through a fluent sequence of steps, short-circuiting
// after the first Err.
type Chain[T any] struct {
	ctx context.Context
	res slang.Result[T]
}

func Start[T any](ctx context.Context, r slang.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, slang.Ok(v))
}

func (c Chain[T]) Result() slang.Result[T] {
	return c.res
}

// Then composes functions that already return a Result.
func (c Chain[T]) Then(onOk func(ctx context.Context, v T) slang.Result[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onOk(c.ctx, c.res.Value())}
}

// ThenTry composes error-returning functions.
func (c Chain[T]) ThenTry(try func(ctx context.Context, v T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	v, err := try(c.ctx, c.res.Value())
	if err != nil {
		return Chain[T]{ctx: c.ctx, res: slang.Err[T](err)}
	}
	return Chain[T]{ctx: c.ctx, res: slang.Ok(v)}
}

// Map transforms the value on the Ok path.
func (c Chain[T]) Map(f func(ctx context.Context, v T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: slang.Ok(f(c.ctx, c.res.Value()))}
}

// Ensure triggers a side effect on the Ok path only.
func (c Chain[T]) Ensure(onOk func(ctx context.Context, v T)) Chain[T] {
	if c.res.IsOk() {
		onOk(c.ctx, c.res.Value())
	}
	return c
}

// OrElse switches to the alternative when the chain has failed.
func (c Chain[T]) OrElse(alt Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	return alt
}

// Handlers reduce a finished chain to a concrete value.
type Handlers[T, R any] struct {
	OnOk  func(ctx context.Context, v T) R
	OnErr func(ctx context.Context, err error) R
}

// Finally applies the handler matching the chain's final state.
func Finally[T, R any](c Chain[T], h Handlers[T, R]) R {
	if c.res.IsOk() {
		return h.OnOk(c.ctx, c.res.Value())
	}
	return h.OnErr(c.ctx, c.res.Err())
}
