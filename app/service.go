package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/daystep/config"
	"github.com/kilianp07/daystep/core/carryover"
	"github.com/kilianp07/daystep/core/dp"
	"github.com/kilianp07/daystep/core/events"
	coremetrics "github.com/kilianp07/daystep/core/metrics"
	"github.com/kilianp07/daystep/core/model"
	"github.com/kilianp07/daystep/core/rng"
	"github.com/kilianp07/daystep/core/schedulelog"
	"github.com/kilianp07/daystep/infra/logger"
	inframetrics "github.com/kilianp07/daystep/infra/metrics"
	"github.com/kilianp07/daystep/internal/eventbus"
)

// Service orchestrates day-by-day solves for one person: it carries SoC
// forward between days, publishes lifecycle events, records metrics and
// persists each day's schedule.
type Service struct {
	cfg   *config.Config
	sink  coremetrics.MetricsSink
	log   logger.Logger
	bus   eventbus.EventBus
	store schedulelog.Store
	carry carryover.Store
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	store, err := schedulelog.New(schedulelog.Config{Backend: cfg.Logging.Backend, Path: cfg.Logging.Path})
	if err != nil {
		return nil, fmt.Errorf("schedule log store: %w", err)
	}

	return &Service{
		cfg:   cfg,
		sink:  sink,
		log:   logg,
		bus:   eventbus.New(),
		store: store,
		carry: carryover.NewMemoryStore(),
	}, nil
}

// DayOutcome is the published result of solving one day for one person.
type DayOutcome struct {
	Day       int
	Feasible  bool
	Result    *dp.Result
	Schedule  []dp.ScheduleEntry
	RelaxedAt bool // true if the infeasible-day retry with a raised starting SoC was used
}

// RunMultiDay solves personID's activity pool over cfg.MultiDay.NumDays
// consecutive days, feeding each day's terminal SoC forward as the next
// day's starting SoC. A day that comes back infeasible is retried once with
// its starting SoC raised by cfg.MultiDay.MinSoCRelaxStep; if that retry also
// fails, the day is abandoned and the next day starts from the prior day's
// carried-over SoC unchanged.
func (s *Service) RunMultiDay(ctx context.Context, personID string, activities []model.Activity, profile model.EVProfile) ([]DayOutcome, error) {
	if s.cfg.Metrics.PrometheusAddr != "" {
		go func() {
			if err := inframetrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	inframetrics.StartEventCollector(ctx, s.bus, s.sink)

	runID := uuid.NewString()
	soc := profile.InitialSoC
	if e, ok := s.carry.Get(personID); ok {
		soc = e.SoC
	} else if s.cfg.MultiDay.RandomSeed != 0 {
		src := rng.NewSource(s.cfg.MultiDay.RandomSeed)
		soc = clampSoC01(src.Normal(profile.InitialSoC, s.cfg.MultiDay.InitialSoCStdDev))
	}

	outcomes := make([]DayOutcome, 0, s.cfg.MultiDay.NumDays)
	for day := 0; day < s.cfg.MultiDay.NumDays; day++ {
		select {
		case <-ctx.Done():
			return outcomes, ctx.Err()
		default:
		}

		out, newSoC, err := s.solveDay(ctx, runID, personID, day, activities, profile, soc)
		if err != nil {
			return outcomes, fmt.Errorf("day %d: %w", day, err)
		}
		if out.Feasible {
			soc = newSoC
		}
		s.carry.Set(carryover.Entry{PersonID: personID, Day: day, SoC: soc, Feasible: out.Feasible})
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

// solveDay runs one day's solve, retrying once with a relaxed starting SoC
// on infeasibility. It returns the outcome and the SoC to carry forward
// (unchanged from startSoC if the day never became feasible).
func (s *Service) solveDay(ctx context.Context, runID, personID string, day int, activities []model.Activity, profile model.EVProfile, startSoC float64) (DayOutcome, float64, error) {
	attemptSoC := startSoC
	relaxed := false

	for attempt := 0; attempt < 2; attempt++ {
		started := time.Now()
		p := profile
		p.InitialSoC = attemptSoC

		s.bus.Publish(events.SolveStartedEvent{RunID: runID, Day: day, Time: started})

		dpCtx, err := dp.NewContext(s.cfg.Solver, activities, runID)
		if err != nil {
			return DayOutcome{}, startSoC, err
		}
		dpCtx = dpCtx.WithProfile(p)
		dpCtx.OnDSSRCycle = func(iteration, group, activityID int) {
			s.bus.Publish(events.DSSRCycleEvent{
				RunID: runID, Iteration: iteration, Group: group, ActivityID: activityID, Time: time.Now(),
			})
		}

		res, solveErr := dp.Solve(dpCtx)
		feasible := solveErr == nil
		duration := time.Since(started)

		var schedule []dp.ScheduleEntry
		var utilityBest, chargeCost float64
		var iterations int
		var nonElementary bool
		if feasible {
			schedule = dp.ExtractSchedule(res.Best)
			utilityBest = res.Best.Utility
			chargeCost = res.Best.ChargeCost
			iterations = res.Iterations
			nonElementary = res.PossiblyNonElementary
		}

		s.bus.Publish(events.SolveCompletedEvent{
			RunID: runID, Day: day, Feasible: feasible,
			UtilityBest: utilityBest, ChargeCostTotal: chargeCost,
			DSSRIterations: iterations, PossiblyNonElementary: nonElementary,
			Duration: duration, Time: time.Now(),
		})

		if feasible {
			rec := schedulelog.Record{
				Timestamp: time.Now(), RunID: runID, PersonID: personID, Day: day,
				Feasible: true, UtilityBest: utilityBest, ChargeCostTotal: chargeCost,
				DSSRIterations: iterations, PossiblyNonElementary: nonElementary,
				Schedule: schedule,
			}
			if err := s.store.Append(ctx, rec); err != nil {
				s.log.Errorf("schedule log append: %v", err)
			}
			return DayOutcome{Day: day, Feasible: true, Result: res, Schedule: schedule, RelaxedAt: relaxed},
				schedule[len(schedule)-1].SoCEnd, nil
		}

		if attempt == 0 && s.cfg.MultiDay.MinSoCRelaxStep > 0 {
			attemptSoC = clampSoC(attemptSoC + s.cfg.MultiDay.MinSoCRelaxStep)
			relaxed = true
			continue
		}
		break
	}

	if err := s.store.Append(ctx, schedulelog.Record{
		Timestamp: time.Now(), RunID: runID, PersonID: personID, Day: day, Feasible: false,
	}); err != nil {
		s.log.Errorf("schedule log append: %v", err)
	}
	return DayOutcome{Day: day, Feasible: false, RelaxedAt: relaxed}, startSoC, nil
}

func clampSoC(x float64) float64 {
	if x > 1 {
		return 1
	}
	return x
}

func clampSoC01(x float64) float64 {
	if x < 0 {
		return 0
	}
	return clampSoC(x)
}

// Close releases resources held by the service.
func (s *Service) Close() error { return s.store.Close() }
