package slang

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func mustPanic(t *testing.T, want Error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got none", want)
		}
		err, ok := r.(Error)
		if !ok || err != want {
			t.Fatalf("expected panic %q, got %v", want, r)
		}
	}()
	fn()
}
