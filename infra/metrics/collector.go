package metrics

import (
	"context"

	"github.com/kilianp07/daystep/core/events"
	coremetrics "github.com/kilianp07/daystep/core/metrics"
	"github.com/kilianp07/daystep/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records metrics for
// solve lifecycle events. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.MetricsSink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case events.SolveCompletedEvent:
					_ = sink.RecordSolve(coremetrics.SolveMetrics{
						RunID:                 e.RunID,
						Day:                   e.Day,
						Feasible:              e.Feasible,
						UtilityBest:           e.UtilityBest,
						ChargeCostTotal:       e.ChargeCostTotal,
						DSSRIterations:        e.DSSRIterations,
						PossiblyNonElementary: e.PossiblyNonElementary,
						DurationMs:            e.Duration.Milliseconds(),
						Time:                  e.Time,
					})
				case events.DSSRCycleEvent:
					if r, ok := sink.(coremetrics.DSSRRecorder); ok {
						_ = r.RecordDSSRIteration(coremetrics.DSSREvent{
							RunID:      e.RunID,
							Iteration:  e.Iteration,
							Group:      e.Group,
							ActivityID: e.ActivityID,
							Time:       e.Time,
						})
					}
				}
			}
		}
	}()
}
