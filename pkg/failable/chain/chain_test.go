package chain

import (
	"strconv"
	"testing"

	"github.com/ib-77/failable/pkg/failable"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	c := Start(failable.Success[int, string](5))

	out := c.Result()
	if !out.IsSuccess() || out.Success() != 5 {
		t.Fatalf("expected success with 5, got: %v", out)
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](7).Result()

	if !out.IsSuccess() || out.Success() != 7 {
		t.Fatalf("expected success with 7, got: %v", out)
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](3).
		Then(func(v int) failable.Result[int, string] { return failable.Success[int, string](v * 2) }).
		Result()

	if !out.IsSuccess() || out.Success() != 6 {
		t.Fatalf("expected success with 6, got: %v", out)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	called := false
	out := Start(failable.Failure[int, string]("boom")).
		Then(func(v int) failable.Result[int, string] {
			called = true
			return failable.Success[int, string](v + 1)
		}).
		Result()

	if out.IsSuccess() || out.Failure() != "boom" {
		t.Fatalf("expected failure 'boom', got: %v", out)
	}
	if called {
		t.Fatalf("onSuccess should not be called when the chain carries a failure")
	}
}

func TestMap_Success(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](4).
		Map(func(v int) int { return v + 100 }).
		Result()

	if !out.IsSuccess() || out.Success() != 104 {
		t.Fatalf("expected success with 104, got: %v", out)
	}
}

func TestMap_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	out := Start(failable.Failure[int, string]("oops")).
		Map(func(v int) int { return v + 100 }).
		Result()

	if out.IsSuccess() || out.Failure() != "oops" {
		t.Fatalf("expected failure 'oops', got: %v", out)
	}
}

func TestEnsure_SideEffectOnSuccessOnly(t *testing.T) {
	t.Parallel()
	var seen []int

	FromValue[int, string](1).Ensure(func(v int) { seen = append(seen, v) })
	Start(failable.Failure[int, string]("e")).Ensure(func(v int) { seen = append(seen, v) })

	if len(seen) != 1 || seen[0] != 1 {
		t.Fatalf("expected side effect only for the success, saw: %v", seen)
	}
}

func TestWhile(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](1).
		While(func(v int) failable.Result[int, string] { return failable.Success[int, string](v * 2) },
			func(v int) bool { return v < 10 }).
		Result()

	if !out.IsSuccess() || out.Success() != 16 {
		t.Fatalf("expected success with 16, got: %v", out)
	}
}

func TestWhile_StopsOnFailure(t *testing.T) {
	t.Parallel()
	calls := 0
	out := FromValue[int, string](1).
		While(func(v int) failable.Result[int, string] {
			calls++
			return failable.Failure[int, string]("broke")
		},
			func(v int) bool { return true }).
		Result()

	if out.IsSuccess() || out.Failure() != "broke" {
		t.Fatalf("expected failure 'broke', got: %v", out)
	}
	if calls != 1 {
		t.Fatalf("loop must stop on the first failure, ran %d times", calls)
	}
}

func TestOr_PrefersFirstSuccess(t *testing.T) {
	t.Parallel()
	failed := Start(failable.Failure[int, string]("a"))
	winner := FromValue[int, string](2)

	out := failed.Or(Start(failable.Failure[int, string]("b")), winner).Result()
	if !out.IsSuccess() || out.Success() != 2 {
		t.Fatalf("expected the succeeding alternative, got: %v", out)
	}

	out = failed.Or(Start(failable.Failure[int, string]("b"))).Result()
	if out.IsSuccess() || out.Failure() != "a" {
		t.Fatalf("expected the first failure when none succeeds, got: %v", out)
	}
}

func TestAnd_StopsOnFirstFailure(t *testing.T) {
	t.Parallel()
	first := FromValue[int, string](1)
	second := Start(failable.Failure[int, string]("second"))
	third := FromValue[int, string](3)

	out := first.And(second, third).Result()
	if out.IsSuccess() || out.Failure() != "second" {
		t.Fatalf("expected failure 'second', got: %v", out)
	}

	out = first.And(third).Result()
	if !out.IsSuccess() || out.Success() != 3 {
		t.Fatalf("expected the last success when all succeed, got: %v", out)
	}
}

func TestFinally_Method(t *testing.T) {
	t.Parallel()
	got := FromValue[int, string](5).Finally(
		func(v int) int { return v * 10 },
		func(msg string) int { return -1 },
	)
	if got != 50 {
		t.Fatalf("expected 50, got: %d", got)
	}

	got = Start(failable.Failure[int, string]("e")).Finally(
		func(v int) int { return v * 10 },
		func(msg string) int { return -1 },
	)
	if got != -1 {
		t.Fatalf("expected -1, got: %d", got)
	}
}

func TestThenFree_SwitchesSuccessType(t *testing.T) {
	t.Parallel()
	out := Then(FromValue[string, string]("12"), func(s string) failable.Result[int, string] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return failable.Failure[int, string](err.Error())
		}
		return failable.Success[int, string](n)
	}).Result()

	if !out.IsSuccess() || out.Success() != 12 {
		t.Fatalf("expected success with 12, got: %v", out)
	}
}

func TestMapFree_SwitchesSuccessType(t *testing.T) {
	t.Parallel()
	out := Map(FromValue[int, string](3), strconv.Itoa).Result()

	if !out.IsSuccess() || out.Success() != "3" {
		t.Fatalf("expected success with \"3\", got: %v", out)
	}
}

func TestFinallyFree_CollapsesToOtherType(t *testing.T) {
	t.Parallel()
	got := Finally(FromValue[int, string](5),
		func(v int) string { return "ok" },
		func(msg string) string { return "bad:" + msg },
	)
	if got != "ok" {
		t.Fatalf("expected \"ok\", got: %q", got)
	}

	got = Finally(Start(failable.Failure[int, string]("e")),
		func(v int) string { return "ok" },
		func(msg string) string { return "bad:" + msg },
	)
	if got != "bad:e" {
		t.Fatalf("expected \"bad:e\", got: %q", got)
	}
}
