// Package text specializes failable.Result to a string failure payload.
//
// Highlights:
// - Success/Failure/Failuref: construct without restating the failure type
// - Bind/Map: composition that keeps the text failure type inferred
// - Validate: check a bare value, failing with the check's message
// - Try: adapt (Out, error) calls, failing with err.Error()
//
// The alias adds no state; inspection, equality and misuse panics are the
// core type's behavior unchanged.
package text
