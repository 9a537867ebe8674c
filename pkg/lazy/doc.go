// Package lazy holds the data model of deferred call chains: the recorded
// Step, the append-only Chain, settled Results and asynchronous Futures.
//
// A chain records method calls instead of running them. Materialization
// replays the steps in order, each one against the settled outcome of the
// previous one, so methods may return plain values, *Future values,
// Result values or receive channels interchangeably.
//
// Key pieces:
// - Step/Chain: what was recorded and in which order
// - Settle: unify sync and async outcomes into one resolved value
// - Future/Go/Resolved/Rejected: a minimal asynchronous value
// - Result: the settled outcome of a materialization
// - As: typed view of a materialized value
//
// The executor lives in package core, the interceptors in packages dynamic
// (reflection) and table (static dispatch, generated by chaingen).
package lazy
