package dp

import (
	"errors"
	"math"
	"testing"

	"github.com/kilianp07/daystep/core/energy"
	"github.com/kilianp07/daystep/core/model"
)

func baseConfig() Config {
	return Config{
		Horizon:           288,
		IntervalMinutes:   5,
		SpeedMPerMin:      500,
		TravelTimePenalty: 0.01,
		Tariff: energy.TariffConfig{
			PeakStart: 12, PeakEnd: 18,
			Midpeak1Start: 8, Midpeak1End: 12,
			Midpeak2Start: 18, Midpeak2End: 21,
			PeakFactor: 1.5, MidpeakFactor: 2.5, OffpeakFactor: 1,
		},
		WorkGroup:      6,
		GammaChargeWork:    -0.1,
		GammaChargeHome:    -0.05,
		GammaChargeNonWork: -0.2,
		ThetaSoC:           -5,
		SoCThreshold:       0.2,
		BetaDeltaSoC:       1,
		BetaChargeCost:     -1,
	}
}

func baseProfile() model.EVProfile {
	return model.EVProfile{
		BatteryCapacityKWh:  60,
		ConsumptionKWhPerKm: 0.2,
		InitialSoC:          0.8,
		SlowChargePowerKW:   7,
		FastChargePowerKW:   22,
		RapidChargePowerKW:  50,
		HomeSlowChargePrice: 0.26,
		ACChargePrice:       0.52,
		PublicDCChargePrice: 0.79,
	}
}

// S1: two activities at the same location, DAWN and DUSK only.
func TestScenarioMinimal(t *testing.T) {
	acts := []model.Activity{
		{ID: 0, X: 454070, Y: 382249, Group: 0, EarliestStart: 0, LatestStart: 0, MinDuration: 1, MaxDuration: 286},
		{ID: 1, X: 454070, Y: 382249, Group: 0, EarliestStart: 0, LatestStart: 287, MinDuration: 1, MaxDuration: 288},
	}
	ctx, err := NewContext(baseConfig(), acts, "s1")
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	ctx.WithProfile(baseProfile())

	res, err := Solve(ctx)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Best.ActID != 1 {
		t.Fatalf("expected best to end at DUSK (id 1), got %d", res.Best.ActID)
	}
	if res.Best.ChargeCost != 0 {
		t.Fatalf("expected zero charge cost, got %f", res.Best.ChargeCost)
	}
}

// S2: DAWN -> work with slow charging -> DUSK.
func TestScenarioWorkWithSlowCharge(t *testing.T) {
	acts := []model.Activity{
		{ID: 0, X: 454070, Y: 382249, Group: 0, EarliestStart: 0, LatestStart: 0, MinDuration: 1, MaxDuration: 286},
		{
			ID: 1, X: 474270, Y: 381532, Group: 6,
			EarliestStart: 60, LatestStart: 276, MinDuration: 10, MaxDuration: 144,
			DesStartTime: 98, DesDuration: 80,
			ChargeMode: model.ChargeSlow, IsCharging: true,
		},
		{ID: 2, X: 454070, Y: 382249, Group: 0, EarliestStart: 0, LatestStart: 287, MinDuration: 1, MaxDuration: 288},
	}
	// Work needs a positive alternative-specific constant to outweigh its
	// travel and charging cost; with every ASC at zero, DAWN->DUSK scores higher.
	cfg := baseConfig()
	cfg.ASC[6] = 10.6
	ctx, err := NewContext(cfg, acts, "s2")
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	ctx.WithProfile(baseProfile())

	res, err := Solve(ctx)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Best.ActID != 2 {
		t.Fatalf("expected best to end at DUSK (id 2), got %d", res.Best.ActID)
	}

	schedule := ExtractSchedule(res.Best)
	var work *ScheduleEntry
	for i := range schedule {
		if schedule[i].ActivityID == 1 {
			work = &schedule[i]
		}
	}
	if work == nil {
		t.Fatalf("expected a work entry in the schedule")
	}
	if work.StartTime < 60 || work.StartTime > 276 {
		t.Fatalf("work start_time %d out of window", work.StartTime)
	}
	if work.Duration < 10 || work.Duration > 144 {
		t.Fatalf("work duration %d out of bounds", work.Duration)
	}
}

// S3: an activity whose window cannot be reached feasibly.
func TestScenarioInfeasibleWindow(t *testing.T) {
	acts := []model.Activity{
		{ID: 0, X: 0, Y: 0, Group: 0, EarliestStart: 0, LatestStart: 0, MinDuration: 1, MaxDuration: 286},
		{ID: 1, X: 0, Y: 0, Group: 3, EarliestStart: 280, LatestStart: 281, MinDuration: 50, MaxDuration: 60},
		{ID: 2, X: 0, Y: 0, Group: 0, EarliestStart: 0, LatestStart: 287, MinDuration: 1, MaxDuration: 288},
	}
	ctx, err := NewContext(baseConfig(), acts, "s3")
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	ctx.WithProfile(baseProfile())

	_, err = Solve(ctx)
	if !errors.Is(err, ErrInfeasible) {
		t.Fatalf("expected ErrInfeasible, got %v", err)
	}
}

// S5: dominance keeps incomparable labels, one with higher utility and a
// smaller group-memory set, the other with lower utility but a memory
// superset relationship that does not hold either way.
func TestDominanceIncomparableLabelsSurvive(t *testing.T) {
	act := &model.Activity{ID: 1, Group: 1}
	l1 := &model.Label{ActID: 1, Act: act, Time: 10, Utility: 100, Mem: model.NewGroupSet(1)}
	l2 := &model.Label{ActID: 1, Act: act, Time: 10, Utility: 90, Mem: model.NewGroupSet(1, 2)}

	if Dominates(l1, l2) {
		t.Fatalf("l1 should not dominate l2: l2.mem is not a subset of l1.mem")
	}
	if Dominates(l2, l1) {
		t.Fatalf("l2 should not dominate l1: l2.utility < l1.utility")
	}

	b := NewBucket(20, 2)
	if !b.Insert(10, 1, l1) {
		t.Fatalf("expected l1 to be inserted")
	}
	if !b.Insert(10, 1, l2) {
		t.Fatalf("expected l2 to survive insertion alongside l1")
	}
	if got := len(b.Labels(10, 1)); got != 2 {
		t.Fatalf("expected both labels to survive, got %d", got)
	}
}

// S4: eleven activities spanning several groups, two charging stops, and
// three home visits, run through DSSR until the chain is elementary.
func TestScenarioMultiActivityDSSR(t *testing.T) {
	cfg := baseConfig()
	cfg.ASC = [NumUtilityGroups]float64{0, 17.4, 16.1, 6.76, 12, 11.3, 10.6, 0, 0}
	cfg.Early = [NumUtilityGroups]float64{0, -2.56, -1.73, -2.55, -0.031, -2.51, -1.37, 0, 0}
	cfg.Late = [NumUtilityGroups]float64{0, -1.54, -3.42, -0.578, -1.58, -0.993, -0.79, 0, 0}
	cfg.Long = [NumUtilityGroups]float64{0, -0.0783, -0.597, -0.0267, -0.209, -0.133, -0.201, 0, 0}
	cfg.Short = [NumUtilityGroups]float64{0, -0.783, -5.63, 0.134, -0.00764, 0.528, -4.78, 0, 0}

	acts := []model.Activity{
		{ID: 0, X: 454070, Y: 382249, Group: 0, EarliestStart: 0, LatestStart: 0, MinDuration: 1, MaxDuration: 286},
		{ID: 1, X: 454070, Y: 382249, Group: 0, EarliestStart: 0, LatestStart: 288, MinDuration: 2, MaxDuration: 288},
		{ID: 2, X: 452811, Y: 385797, Group: 8, EarliestStart: 108, LatestStart: 216, MinDuration: 2, MaxDuration: 120},
		{ID: 3, X: 452551, Y: 385259, Group: 4, EarliestStart: 84, LatestStart: 276, MinDuration: 2, MaxDuration: 120},
		{ID: 4, X: 452211, Y: 383737, Group: 8, EarliestStart: 108, LatestStart: 216, MinDuration: 2, MaxDuration: 120},
		{ID: 5, X: 454070, Y: 382249, Group: 0, EarliestStart: 0, LatestStart: 288, MinDuration: 2, MaxDuration: 288, DesDuration: 138},
		{ID: 6, X: 456492, Y: 382027, Group: 8, EarliestStart: 108, LatestStart: 216, MinDuration: 2, MaxDuration: 120},
		{
			ID: 7, X: 474270, Y: 381532, Group: 2,
			EarliestStart: 60, LatestStart: 276, MinDuration: 10, MaxDuration: 144,
			DesStartTime: 98, DesDuration: 80,
			ChargeMode: model.ChargeSlow, IsCharging: true,
		},
		{
			ID: 8, X: 467941, Y: 378919, Group: 4,
			EarliestStart: 84, LatestStart: 276, MinDuration: 2, MaxDuration: 120,
			DesStartTime: 200, DesDuration: 15,
			ChargeMode: model.ChargeFast, IsCharging: true,
		},
		{ID: 9, X: 454070, Y: 382249, Group: 0, EarliestStart: 0, LatestStart: 288, MinDuration: 2, MaxDuration: 288},
		{ID: 10, X: 454070, Y: 382249, Group: 0, EarliestStart: 0, LatestStart: 287, MinDuration: 1, MaxDuration: 288},
	}

	ctx, err := NewContext(cfg, acts, "s4")
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	ctx.WithProfile(baseProfile())

	res, err := Solve(ctx)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Best.Utility <= math.Inf(-1) {
		t.Fatalf("expected finite utility, got %f", res.Best.Utility)
	}
	if res.Best.ActID != 10 {
		t.Fatalf("expected best to end at DUSK (id 10), got %d", res.Best.ActID)
	}
	if res.PossiblyNonElementary {
		t.Fatalf("expected DSSR to have produced an elementary chain")
	}

	seen := make(map[int]bool)
	for _, entry := range ExtractSchedule(res.Best) {
		if entry.ActivityID == 0 || entry.ActivityID == 10 {
			continue
		}
		act := acts[entry.ActivityID]
		if act.Group == 0 {
			continue
		}
		if seen[act.Group] {
			t.Fatalf("group %d visited more than once in the chain", act.Group)
		}
		seen[act.Group] = true
	}
}

// S6: a starting SoC too low to reach the first reachable activity.
func TestScenarioSoCFloorInfeasible(t *testing.T) {
	acts := []model.Activity{
		{ID: 0, X: 0, Y: 0, Group: 0, EarliestStart: 0, LatestStart: 0, MinDuration: 1, MaxDuration: 286},
		{ID: 1, X: 30000, Y: 0, Group: 3, EarliestStart: 0, LatestStart: 287, MinDuration: 1, MaxDuration: 10},
		{ID: 2, X: 30000, Y: 0, Group: 0, EarliestStart: 0, LatestStart: 287, MinDuration: 1, MaxDuration: 288},
	}
	// Energy to reach activity 1 is 0.2 kWh/km * 30km / 60kWh = 0.1 of
	// battery capacity: more than the 0.05 floor but well within 0.8.
	ctx, err := NewContext(baseConfig(), acts, "s6")
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	profile := baseProfile()
	profile.InitialSoC = 0.05
	ctx.WithProfile(profile)

	_, err = Solve(ctx)
	if !errors.Is(err, ErrInfeasible) {
		t.Fatalf("expected ErrInfeasible from SoC floor, got %v", err)
	}
}
