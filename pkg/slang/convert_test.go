package slang

import (
	"errors"
	"testing"
)

func TestOptionToResult(t *testing.T) {
	t.Parallel()

	r := NewOption(5).ToResult()
	if !r.IsOk() || r.Value() != 5 {
		t.Fatalf("expected Ok(5), got %v", r)
	}

	absent := NewOption[any](nil).ToResult()
	if !absent.IsErr() || absent.Err().Error() != "Value is None" {
		t.Fatalf("expected Err(Value is None), got %v", absent)
	}
}

func TestOptionToAtom(t *testing.T) {
	t.Parallel()

	a := ToAtom(NewOption("sigil"))
	if a.Description() != "sigil" {
		t.Fatalf("expected description to carry the payload, got %q", a.Description())
	}

	mustPanic(t, ErrNoneToAtom, func() {
		ToAtom(None[string]())
	})
	mustPanic(t, ErrNonStringToAtom, func() {
		ToAtom(NewOption(42))
	})
}

func TestAtomConversions(t *testing.T) {
	t.Parallel()

	a := NewAtom("s")

	o := a.ToOption()
	if v, ok := o.Value(); !ok || v != "s" {
		t.Fatalf("expected Some(s), got %v", o)
	}

	r := a.ToResult()
	if !r.IsOk() || r.Value() != "s" {
		t.Fatalf("expected Ok(s), got %v", r)
	}
}

func TestResultIsConversionDeadEnd(t *testing.T) {
	t.Parallel()

	mustPanic(t, ErrResultConversion, func() {
		Ok(1).To(KindOption)
	})
	mustPanic(t, ErrResultConversion, func() {
		Err[int](errors.New("x")).To(KindResult)
	})
}
