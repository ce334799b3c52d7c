package metrics

// MultiSink fans solve outcomes out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSolve forwards the record to all sinks, returning the first error encountered.
func (m *MultiSink) RecordSolve(rec SolveMetrics) error {
	for _, s := range m.Sinks {
		if err := s.RecordSolve(rec); err != nil {
			return err
		}
	}
	return nil
}

// RecordDSSRIteration forwards the event to sinks that support DSSR-level detail.
func (m *MultiSink) RecordDSSRIteration(ev DSSREvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(DSSRRecorder); ok {
			if err := rec.RecordDSSRIteration(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
