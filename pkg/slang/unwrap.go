package slang

import "github.com/Hussseinkizz/slang/pkg/slang/core"

// OptionUnwrap is the obligation handle produced by Option.Unwrap. Exactly
// one Else or ElseFunc call is expected; a handle abandoned without one
// surfaces "Expected else" through the core miss handler.
type OptionUnwrap[T any] struct {
	opt Option[T]
	ob  *core.Obligation
}

// Unwrap starts an unwrap chain. The returned handle must be completed with
// Else or ElseFunc.
func (o Option[T]) Unwrap() *OptionUnwrap[T] {
	return &OptionUnwrap[T]{opt: o, ob: core.Require(ErrExpectedElse)}
}

// Else completes the chain with a literal fallback. On Some the fallback is
// ignored and the wrapped value returned. On None the fallback itself must
// classify as truthy, else Else panics with ErrFallbackNotTruthy.
func (u *OptionUnwrap[T]) Else(fallback T) T {
	u.ob.Fulfill()
	if u.opt.some {
		return u.opt.value
	}
	if !Truthy(fallback) {
		panic(ErrFallbackNotTruthy)
	}
	return fallback
}

// ElseFunc completes the chain with a computed fallback. On Some fn is never
// invoked. On None fn's return is subject to the same truthiness check as a
// literal fallback.
func (u *OptionUnwrap[T]) ElseFunc(fn func() T) T {
	u.ob.Fulfill()
	if u.opt.some {
		return u.opt.value
	}
	candidate := fn()
	if !Truthy(candidate) {
		panic(ErrFallbackNotTruthy)
	}
	return candidate
}

// ResultUnwrap is the obligation handle produced by Result.Unwrap. The Ok
// path never raises; only an abandoned Err handle is reported, with the same
// message Expect would have used.
type ResultUnwrap[T any] struct {
	res Result[T]
	ob  *core.Obligation
}

func (r Result[T]) Unwrap() *ResultUnwrap[T] {
	u := &ResultUnwrap[T]{res: r}
	if !r.ok {
		u.ob = core.Require(Error(r.errMessage()))
	}
	return u
}

// Else completes the chain with a literal fallback. No truthiness check
// applies on the Result path.
func (u *ResultUnwrap[T]) Else(fallback T) T {
	u.ob.Fulfill()
	if u.res.ok {
		return u.res.value
	}
	return fallback
}

// ElseFunc completes the chain with a fallback computed from the error
// payload. On Ok fn is never invoked.
func (u *ResultUnwrap[T]) ElseFunc(fn func(err error) T) T {
	u.ob.Fulfill()
	if u.res.ok {
		return u.res.value
	}
	return fn(u.res.err)
}
