package events

import "time"

// SolveStartedEvent is published when a day's solve begins.
type SolveStartedEvent struct {
	RunID string
	Day   int
	Time  time.Time
}

// DSSRCycleEvent is published each time the DSSR outer loop detects a cycle
// and tightens an activity's forbidden-group memory.
type DSSRCycleEvent struct {
	RunID      string
	Iteration  int
	Group      int
	ActivityID int
	Time       time.Time
}

// SolveCompletedEvent is published when a day's solve reaches a fixed point,
// feasible or not.
type SolveCompletedEvent struct {
	RunID                 string
	Day                   int
	Feasible              bool
	UtilityBest           float64
	ChargeCostTotal       float64
	DSSRIterations        int
	PossiblyNonElementary bool
	Duration              time.Duration
	Time                  time.Time
}
