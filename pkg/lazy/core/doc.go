// Package core contains the deferred executor and its plumbing: Replay
// drains a recorded chain against an Invoker, ReplayHandlers observe it,
// and the channel helpers, Locomotive and context options drive batch
// materialization. It does not discover methods itself; packages dynamic
// and table provide the Invokers.
package core
