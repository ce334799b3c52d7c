package metrics

import "time"

// SolveMetrics summarises the outcome of one solve: whether it found a
// feasible schedule, the objective it reached, and how much work the DSSR
// outer loop did to get there.
type SolveMetrics struct {
	RunID                 string
	Day                   int
	Feasible              bool
	UtilityBest           float64
	ChargeCostTotal       float64
	DSSRIterations        int
	PossiblyNonElementary bool
	DurationMs            int64
	Time                  time.Time
}

// SolveRecorder is implemented by sinks able to record a completed solve.
type SolveRecorder interface {
	RecordSolve(m SolveMetrics) error
}

// DSSREvent captures one DSSR iteration: the group and activity that had
// forbidden-group memory attached to break a detected cycle.
type DSSREvent struct {
	RunID      string
	Iteration  int
	Group      int
	ActivityID int
	Time       time.Time
}

// DSSRRecorder is implemented by sinks that want finer-grained observability
// than one aggregate SolveMetrics per solve.
type DSSRRecorder interface {
	RecordDSSRIteration(ev DSSREvent) error
}

// MetricsSink records solve outcomes for observability purposes. Every sink
// implements at least RecordSolve; DSSR-level detail is optional.
type MetricsSink interface {
	SolveRecorder
}

// NopSink implements MetricsSink with no-op methods. It is the default when
// no sink is configured.
type NopSink struct{}

func (NopSink) RecordSolve(SolveMetrics) error      { return nil }
func (NopSink) RecordDSSRIteration(DSSREvent) error { return nil }
