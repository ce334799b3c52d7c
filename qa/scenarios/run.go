package scenarios

import (
	"errors"
	"testing"

	"github.com/kilianp07/daystep/core/dp"
)

// RunScenario builds a dp.Context from sc, solves it, and checks the
// outcome against sc.Expected.
func RunScenario(t *testing.T, sc *Scenario) {
	activities := toActivities(sc.Activities)

	ctx, err := dp.NewContext(sc.Config.ToModel(), activities, sc.Name)
	if err != nil {
		t.Fatalf("scenario %s: NewContext: %v", sc.Name, err)
	}
	ctx.WithProfile(sc.Profile.ToModel())

	res, err := dp.Solve(ctx)
	if sc.Expected.Feasible {
		if err != nil {
			t.Fatalf("scenario %s: expected feasible, got %v", sc.Name, err)
		}
		if sc.Expected.BestActivityID != 0 && res.Best.ActID != sc.Expected.BestActivityID {
			t.Errorf("scenario %s: expected best activity %d, got %d", sc.Name, sc.Expected.BestActivityID, res.Best.ActID)
		}
		if res.Iterations < sc.Expected.MinDSSRIterations {
			t.Errorf("scenario %s: expected at least %d DSSR iterations, got %d", sc.Name, sc.Expected.MinDSSRIterations, res.Iterations)
		}
		return
	}
	if !errors.Is(err, dp.ErrInfeasible) {
		t.Fatalf("scenario %s: expected ErrInfeasible, got %v", sc.Name, err)
	}
}
