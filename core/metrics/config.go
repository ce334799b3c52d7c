package metrics

import "github.com/kilianp07/daystep/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// PrometheusAddr, if non-empty, starts an HTTP server exposing the
	// registered prometheus sink's metrics. Separate from Sinks because the
	// prometheus sink itself has no notion of a listen address.
	PrometheusAddr string `json:"prometheus_addr"`
}
