// Package gen generates typed chain builders for capability interfaces.
//
// Given an interface, the generated builder has one method per operation
// of the interface's full method set (embedded interfaces included). Each
// method records a step and returns the builder; Value replays the steps
// through a static table.Table. A leading context.Context parameter is not
// recorded: the replay context is passed in its place.
package gen
