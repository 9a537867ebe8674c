// Package table replays chains through a static dispatch table instead of
// reflection. Each Entry knows how to call one named operation on a
// receiver and reports NotCallable when the receiver lacks it.
//
// Recorder is the piece typed builders embed: the chaingen command
// generates, for a capability interface, a builder with one method per
// operation that records a step and returns the builder, plus the table
// that replays it.
package table
