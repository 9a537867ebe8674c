// Package dynamic builds chain-recording interceptors by reflection.
//
// Wrap discovers the callable members of any value: exported methods
// (promoted ones from embedded types included), exported func-valued
// fields and func-valued entries of string-keyed maps. Calling one of them
// through Proxy.Call records a step and returns the proxy; Value replays
// the steps, each against the settled outcome of the previous one.
//
//	v, err := dynamic.Wrap(account).
//		Call("Deposit", 100).
//		Call("Statement").
//		Value(ctx)
//
// Non-callable members are never intercepted and stay readable through
// Proxy.Field. Use package table and the chaingen generator when a
// statically typed builder is preferred.
package dynamic
