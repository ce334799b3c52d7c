package metrics

import (
	coremetrics "github.com/kilianp07/daystep/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records solve outcomes in Prometheus metrics.
type PromSink struct {
	solves        *prometheus.CounterVec
	utility       prometheus.Histogram
	chargeCost    prometheus.Histogram
	dssrRounds    prometheus.Histogram
	nonElementary prometheus.Counter
}

// NewPromSink registers solve metrics on the default Prometheus registerer.
// The Prometheus server should be started separately with StartPromServer.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	solves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "solve_total",
		Help: "Total number of solves, labelled by feasibility",
	}, []string{"feasible"})
	utility := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "solve_utility_best",
		Help:    "Objective value of the best terminal label per solve",
		Buckets: prometheus.DefBuckets,
	})
	chargeCost := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "solve_charge_cost_total",
		Help:    "Total charging cost of the best schedule per solve",
		Buckets: prometheus.DefBuckets,
	})
	dssrRounds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "solve_dssr_iterations",
		Help:    "Number of DSSR outer-loop iterations per solve",
		Buckets: prometheus.LinearBuckets(0, 1, 10),
	})
	nonElementary := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solve_possibly_non_elementary_total",
		Help: "Number of solves that hit the DSSR iteration cap with a cycle still present",
	})

	for _, c := range []prometheus.Collector{solves, utility, chargeCost, dssrRounds, nonElementary} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}

	return &PromSink{
		solves:        solves,
		utility:       utility,
		chargeCost:    chargeCost,
		dssrRounds:    dssrRounds,
		nonElementary: nonElementary,
	}, nil
}

// RecordSolve updates the solve counters and histograms.
func (s *PromSink) RecordSolve(m coremetrics.SolveMetrics) error {
	feasibleLabel := "true"
	if !m.Feasible {
		feasibleLabel = "false"
	}
	s.solves.WithLabelValues(feasibleLabel).Inc()
	if m.Feasible {
		s.utility.Observe(m.UtilityBest)
		s.chargeCost.Observe(m.ChargeCostTotal)
	}
	s.dssrRounds.Observe(float64(m.DSSRIterations))
	if m.PossiblyNonElementary {
		s.nonElementary.Inc()
	}
	return nil
}
