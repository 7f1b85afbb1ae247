package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/Hussseinkizz/slang/pkg/slang"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, slang.Ok(5)).Result()
	if !out.IsOk() || out.Value() != 5 {
		t.Fatalf("expected Ok(5), got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 7).Result()
	if !out.IsOk() || out.Value() != 7 {
		t.Fatalf("expected Ok(7), got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Err())
	}
}

func TestThen_ShortCircuitOnErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := Start(ctx, slang.Err[int](errors.New("boom"))).
		Then(func(ctx context.Context, v int) slang.Result[int] {
			called = true
			return slang.Ok(v + 1)
		}).Result()

	if out.IsOk() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: ok=%v, err=%v", out.IsOk(), out.Err())
	}
	if called {
		t.Fatalf("onOk should not be called after a failure")
	}
}

func TestThen_OkPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 3).
		Then(func(ctx context.Context, v int) slang.Result[int] { return slang.Ok(v * 2) }).
		Result()
	if !out.IsOk() || out.Value() != 6 {
		t.Fatalf("expected Ok(6), got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Err())
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 10).
		ThenTry(func(ctx context.Context, v int) (int, error) {
			return 0, errors.New("try-error")
		}).Result()
	if out.IsOk() || out.Err() == nil || out.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: ok=%v, err=%v", out.IsOk(), out.Err())
	}
}

func TestThenTry_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 4).
		ThenTry(func(ctx context.Context, v int) (int, error) { return v * v, nil }).
		Result()
	if !out.IsOk() || out.Value() != 16 {
		t.Fatalf("expected Ok(16), got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Err())
	}
}

func TestMapAndEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	out := FromValue(ctx, 2).
		Map(func(ctx context.Context, v int) int { return v + 1 }).
		Ensure(func(ctx context.Context, v int) { seen = v }).
		Result()
	if !out.IsOk() || out.Value() != 3 || seen != 3 {
		t.Fatalf("expected Ok(3) observed by Ensure, got: val=%v seen=%v", out.Value(), seen)
	}

	seen = 0
	Start(ctx, slang.Err[int](errors.New("x"))).
		Ensure(func(ctx context.Context, v int) { seen = 1 })
	if seen != 0 {
		t.Fatalf("Ensure must not fire on the error path")
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, slang.Err[int](errors.New("x"))).
		OrElse(FromValue(ctx, 9)).
		Result()
	if !out.IsOk() || out.Value() != 9 {
		t.Fatalf("expected alternative Ok(9), got: ok=%v, val=%v", out.IsOk(), out.Value())
	}

	out = FromValue(ctx, 1).OrElse(FromValue(ctx, 9)).Result()
	if out.Value() != 1 {
		t.Fatalf("OrElse must keep the first success, got %v", out.Value())
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	h := Handlers[int, string]{
		OnOk:  func(ctx context.Context, v int) string { return "ok" },
		OnErr: func(ctx context.Context, err error) string { return "err:" + err.Error() },
	}

	if got := Finally(FromValue(ctx, 1), h); got != "ok" {
		t.Fatalf("got %q", got)
	}
	if got := Finally(Start(ctx, slang.Err[int](errors.New("down"))), h); got != "err:down" {
		t.Fatalf("got %q", got)
	}
}
