package slang

import "fmt"

// Result represents success with a value or failure with an error. Unlike
// Option there is no truthiness classification: any payload, including zero
// values, is a valid Ok. Results are immutable after construction.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Errf builds an Err from a format string.
func Errf[T any](format string, args ...any) Result[T] {
	return Err[T](fmt.Errorf(format, args...))
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Value returns the success payload, zero on Err.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error, nil on Ok.
func (r Result[T]) Err() error {
	return r.err
}

// errMessage derives the display message from the error payload: the error
// text if present, else the fixed default.
func (r Result[T]) errMessage() string {
	if r.err != nil {
		return r.err.Error()
	}
	return string(ErrExpectedOk)
}

// Expect returns the payload of Ok. On Err it panics with msg if given, else
// with the message derived from the error payload.
func (r Result[T]) Expect(msg ...string) T {
	if r.ok {
		return r.value
	}
	if len(msg) > 0 {
		panic(Error(msg[0]))
	}
	panic(Error(r.errMessage()))
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%s)", r.errMessage())
}
