// Package failable provides Result[S, F], an immutable two-variant container
// holding either a success payload of type S or a failure payload of type F.
//
// Highlights:
// - Success/Failure: construct either variant
// - IsSuccess/Success/Failure: inspect; wrong-variant access panics with *Misuse
// - Bind/Map: short-circuiting composition into a new success type
// - Tee/Fold/Try: side effects, collapsing to a value, (Out, error) adaption
// - Equal/Hash: tag-then-active-payload equality and a hash consistent with it
//
// Failure payloads pass through Bind and Map untouched; enriching a failure
// requires an explicit IsSuccess branch and a new Failure construction.
package failable
