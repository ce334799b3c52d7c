package metrics

// Package metrics defines interfaces and implementations for collecting
// solve metrics. PromSink records SolveMetrics; InfluxSink records both
// SolveMetrics and DSSREvent. Sinks can be combined with NewMultiSink. The factory helpers
// return a MultiSink automatically when multiple sinks are configured.
