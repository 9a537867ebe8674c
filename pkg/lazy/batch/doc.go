// Package batch materializes many independent chains on a fixed number of
// worker lines. Every chain is still replayed strictly in order by one
// worker; only different chains run side by side, so two items must not
// wrap the same underlying object.
//
// Worker count and failure policy may be carried by the context, see
// WithLines and WithFailurePolicy.
package batch
