package slang

import "fmt"

// Option represents presence or absence of a value. The zero value is None.
// Options are immutable after construction.
type Option[T any] struct {
	value T
	some  bool
}

// NewOption classifies v once, at construction: non-truthy values (see
// Truthy) become None, everything else becomes Some(v).
func NewOption[T any](v T) Option[T] {
	if !Truthy(v) {
		return None[T]()
	}
	return Option[T]{value: v, some: true}
}

// Some wraps v as a present value. Wrapping a non-truthy value bypasses the
// NewOption classification and panics with ErrSomeNotTruthy.
func Some[T any](v T) Option[T] {
	if !Truthy(v) {
		panic(ErrSomeNotTruthy)
	}
	return Option[T]{value: v, some: true}
}

// None returns the absent variant.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Value returns the payload in comma-ok form.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.some
}

// Expect returns the payload of Some. On None it panics with msg if given,
// else with "Expected Some, got None".
func (o Option[T]) Expect(msg ...string) T {
	if o.some {
		return o.value
	}
	if len(msg) > 0 {
		panic(Error(msg[0]))
	}
	panic(ErrExpectedSome)
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
