// Package events defines the solve-lifecycle events emitted on the event bus.
//
// Available event types:
//   - SolveStartedEvent: a day's solve begins
//   - DSSRCycleEvent: the DSSR outer loop tightened an activity's memory
//   - SolveCompletedEvent: a day's solve reached a fixed point
package events
