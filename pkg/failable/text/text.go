package text

import (
	"fmt"

	"github.com/ib-77/failable/pkg/failable"
)

// Result fixes the failure side of failable.Result to a text message, so
// call sites name only the success type.
type Result[S any] = failable.Result[S, string]

func Success[S any](v S) Result[S] {
	return failable.Success[S, string](v)
}

func Failure[S any](msg string) Result[S] {
	return failable.Failure[S, string](msg)
}

// Failuref builds the failure message with fmt.Sprintf.
func Failuref[S any](format string, args ...any) Result[S] {
	return failable.Failure[S, string](fmt.Sprintf(format, args...))
}

// Bind composes result-returning functions, keeping the text failure type
// through the chain.
func Bind[S, S2 any](r Result[S], onSuccess func(S) Result[S2]) Result[S2] {
	return failable.Bind(r, onSuccess)
}

// Map transforms the success payload, keeping the text failure type through
// the chain.
func Map[S, S2 any](r Result[S], onSuccess func(S) S2) Result[S2] {
	return failable.Map(r, onSuccess)
}

// Validate applies a check to a bare value, producing a failure carrying the
// check's message on invalid input.
func Validate[S any](v S, check func(S) (valid bool, errMsg string)) Result[S] {
	if valid, errMsg := check(v); !valid {
		return Failure[S](errMsg)
	}
	return Success(v)
}

// Try calls a function returning (Out, error), converting an error into a
// text failure via its Error message.
func Try[S, S2 any](r Result[S], onTryExecute func(S) (S2, error)) Result[S2] {
	if !r.IsSuccess() {
		return Failure[S2](r.Failure())
	}

	out, err := onTryExecute(r.Success())
	if err != nil {
		return Failure[S2](err.Error())
	}
	return Success(out)
}
