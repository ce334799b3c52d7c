package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/daystep/core/metrics"
	"github.com/kilianp07/daystep/infra/logger"
)

// InfluxSink writes per-day solve KPIs to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordSolve writes one solve's outcome as a line protocol point.
func (s *InfluxSink) RecordSolve(m coremetrics.SolveMetrics) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("solve").
		AddTag("run_id", m.RunID).
		AddTag("day", strconv.Itoa(m.Day)).
		AddTag("feasible", strconv.FormatBool(m.Feasible)).
		AddTag("possibly_non_elementary", strconv.FormatBool(m.PossiblyNonElementary)).
		AddField("utility_best", round3(m.UtilityBest)).
		AddField("charge_cost_total", round3(m.ChargeCostTotal)).
		AddField("dssr_iterations", m.DSSRIterations).
		AddField("duration_ms", m.DurationMs).
		SetTime(m.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordDSSRIteration writes one DSSR cycle-elimination step.
func (s *InfluxSink) RecordDSSRIteration(ev coremetrics.DSSREvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("dssr_iteration").
		AddTag("run_id", ev.RunID).
		AddTag("iteration", strconv.Itoa(ev.Iteration)).
		AddField("group", ev.Group).
		AddField("activity_id", ev.ActivityID).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
