package chain

import "github.com/ib-77/failable/pkg/failable"

// Chain wraps a failable.Result to enable fluent chaining.
type Chain[S, F any] struct {
	res failable.Result[S, F]
}

// Start creates a new chain from a failable.Result
func Start[S, F any](r failable.Result[S, F]) Chain[S, F] {
	return Chain[S, F]{res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[S, F any](v S) Chain[S, F] {
	return Start(failable.Success[S, F](v))
}

// Result returns the underlying failable.Result
func (c Chain[S, F]) Result() failable.Result[S, F] {
	return c.res
}

// Then composes functions that already return a failable.Result
func (c Chain[S, F]) Then(onSuccess func(S) failable.Result[S, F]) Chain[S, F] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[S, F]{res: onSuccess(c.res.Success())}
}

// Map transforms the successful value to a new value
func (c Chain[S, F]) Map(onSuccess func(S) S) Chain[S, F] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[S, F]{res: failable.Success[S, F](onSuccess(c.res.Success()))}
}

// Ensure triggers a side effect on success without changing the result
func (c Chain[S, F]) Ensure(onSuccess func(S)) Chain[S, F] {
	return Chain[S, F]{res: failable.Tee(c.res, onSuccess)}
}

// While keeps applying onSuccess as long as the chain succeeds and the
// condition holds for the current value.
func (c Chain[S, F]) While(onSuccess func(S) failable.Result[S, F],
	while func(S) bool) Chain[S, F] {

	for c.res.IsSuccess() && while(c.res.Success()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first succeeding chain among c and the alternatives; when
// none succeeds the first failure is returned.
func (c Chain[S, F]) Or(alternatives ...Chain[S, F]) Chain[S, F] {
	if c.res.IsSuccess() {
		return c
	}

	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failing chain among c and the required ones; when
// all succeed the last chain is returned.
func (c Chain[S, F]) And(required ...Chain[S, F]) Chain[S, F] {
	if !c.res.IsSuccess() {
		return c
	}

	for i, req := range required {
		if !req.res.IsSuccess() || i == len(required)-1 {
			return req
		}
	}
	return c
}

// Finally collapses the chain to a final value of the success type; for a
// different output type use the free function Finally.
func (c Chain[S, F]) Finally(onSuccess func(S) S, onFailure func(F) S) S {
	return failable.Fold(c.res, onSuccess, onFailure)
}

// Then chains a function that switches the success type
func Then[S, S2, F any](c Chain[S, F], onSuccess func(S) failable.Result[S2, F]) Chain[S2, F] {
	return Chain[S2, F]{res: failable.Bind(c.res, onSuccess)}
}

// Map chains a pure transformation to a new success type
func Map[S, S2, F any](c Chain[S, F], onSuccess func(S) S2) Chain[S2, F] {
	return Chain[S2, F]{res: failable.Map(c.res, onSuccess)}
}

// Finally collapses a chain into a final value using failable.Fold
func Finally[S, F, Out any](c Chain[S, F], onSuccess func(S) Out, onFailure func(F) Out) Out {
	return failable.Fold(c.res, onSuccess, onFailure)
}
