// Package chain provides a minimal fluent Chain[S, F] for synchronous
// composition of failable.Result values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/Map: compose result-returning or plain transforms
// - Free-function Then/Map/Finally: links that switch the success type
// - Ensure: trigger side effects on success only
// - While/Or/And: loop and combine chains
// - Finally: reduce to a concrete value via handlers
//
// Chaining is ideal for small services or tests where lightweight synchronous
// composition improves readability.
package chain
