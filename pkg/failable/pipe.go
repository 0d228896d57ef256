package failable

// Bind composes a result with a function that itself returns a result. On
// success the function's result is returned directly; on failure the same
// failure payload is carried into a new Result[S2, F] and the function is
// not invoked.
func Bind[S, S2, F any](r Result[S, F], onSuccess func(S) Result[S2, F]) Result[S2, F] {
	if r.isSuccess {
		return onSuccess(r.success)
	}
	return Failure[S2, F](r.failure)
}

// Map transforms the success payload with a plain function, wrapping the
// return value as a new success. A failure propagates unchanged.
func Map[S, S2, F any](r Result[S, F], onSuccess func(S) S2) Result[S2, F] {
	if r.isSuccess {
		return Success[S2, F](onSuccess(r.success))
	}
	return Failure[S2, F](r.failure)
}

// Tee triggers a side effect on success without changing the result.
func Tee[S, F any](r Result[S, F], onSuccess func(S)) Result[S, F] {
	if r.isSuccess {
		onSuccess(r.success)
	}
	return r
}

// Fold collapses a result to a final value via a handler per variant. Reading
// the failure payload this way is deliberate and explicit; there is no
// failure-side Bind or Map.
func Fold[S, F, Out any](r Result[S, F], onSuccess func(S) Out, onFailure func(F) Out) Out {
	if r.isSuccess {
		return onSuccess(r.success)
	}
	return onFailure(r.failure)
}

// Try calls a function returning (Out, error), converting an error into a
// failure, for results whose failure side is error.
func Try[S, S2 any](r Result[S, error], onTryExecute func(S) (S2, error)) Result[S2, error] {
	if !r.isSuccess {
		return Failure[S2, error](r.failure)
	}

	out, err := onTryExecute(r.success)
	if err != nil {
		return Failure[S2, error](err)
	}
	return Success[S2, error](out)
}
