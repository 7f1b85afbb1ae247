package slang

// Kind names a convertible slang value kind.
type Kind string

const (
	KindOption Kind = "option"
	KindAtom   Kind = "atom"
	KindResult Kind = "result"
)

// ToResult bridges an Option into a Result: Some becomes Ok, None becomes
// Err("Value is None").
func (o Option[T]) ToResult() Result[T] {
	if o.some {
		return Ok(o.value)
	}
	return Err[T](ErrValueIsNone)
}

// ToAtom allocates a fresh atom from a string Option payload. None and
// non-string payloads are forbidden conversions and panic.
func ToAtom[T any](o Option[T]) Atom {
	if !o.some {
		panic(ErrNoneToAtom)
	}
	s, ok := any(o.value).(string)
	if !ok {
		panic(ErrNonStringToAtom)
	}
	return NewAtom(s)
}

// ToOption wraps the atom's description; an empty description classifies as
// non-truthy and yields None.
func (a Atom) ToOption() Option[string] {
	return NewOption(a.desc)
}

// ToResult wraps the atom's description as Ok.
func (a Atom) ToResult() Result[string] {
	return Ok(a.desc)
}

// To is the conversion dead-end: a Result cannot be converted to any other
// kind, the target included. It panics unconditionally.
func (r Result[T]) To(Kind) any {
	panic(ErrResultConversion)
}
