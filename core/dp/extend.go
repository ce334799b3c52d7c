package dp

import "github.com/kilianp07/daystep/core/model"

// Extend produces the successor of L onto activity a. Feasible(ctx, L, a)
// must already hold; Extend does not re-check it.
func Extend(ctx *Context, L *model.Label, a model.Activity) *model.Label {
	if a.ID == L.ActID {
		return extendStay(ctx, L, a)
	}
	return extendTransition(ctx, L, a)
}

// extendStay advances L by one interval without leaving its activity.
// next.Previous is L's own Previous, not L: the back-chain records one
// label per activity occupied, so intermediate stay-steps collapse into the
// final stay label's fields rather than piling up as chain entries.
func extendStay(ctx *Context, L *model.Label, a model.Activity) *model.Label {
	next := &model.Label{
		ActID:              L.ActID,
		Act:                L.Act,
		StartTime:          L.StartTime,
		Time:               L.Time + 1,
		Duration:           L.Duration + 1,
		SoCAtActivityStart: L.SoCAtActivityStart,
		CurrentSoC:         L.CurrentSoC,
		ChargeDuration:     L.ChargeDuration,
		ChargeCost:         L.ChargeCost,
		Utility:            L.Utility,
		Mem:                L.Mem,
		Previous:           L.Previous,
	}
	if a.IsCharging && L.CurrentSoC < 1 {
		applyCharging(ctx, next, a)
	} else {
		next.DeltaSoC = 0
	}
	return next
}

func extendTransition(ctx *Context, L *model.Label, a model.Activity) *model.Label {
	tt := ctx.Kernel.TravelTime(*L.Act, a)
	next := &model.Label{
		ActID:      a.ID,
		Act:        &ctx.Activities[a.ID],
		StartTime:  L.Time + tt,
		ChargeCost: L.ChargeCost,
		Mem:        L.Mem.Add(a.Group).Union(a.Memory),
		Previous:   L,
	}
	if a.ID == ctx.DuskID() {
		next.Time = ctx.Config.Horizon - 1
		next.Duration = next.Time - next.StartTime
	} else {
		next.Duration = a.MinDuration
		next.Time = next.StartTime + next.Duration
	}
	consumed := ctx.Kernel.EnergyConsumed(*L.Act, a)
	next.SoCAtActivityStart = L.CurrentSoC - consumed
	next.CurrentSoC = next.SoCAtActivityStart

	if a.IsCharging {
		applyCharging(ctx, next, a)
	}

	next.Utility = L.Utility + transitionUtilityDelta(ctx, L, a, tt, next.StartTime)
	return next
}

// applyCharging runs one interval of charging at activity a, updating
// next.CurrentSoC, next.DeltaSoC, next.ChargeDuration and next.ChargeCost.
func applyCharging(ctx *Context, next *model.Label, a model.Activity) {
	rate, price := ctx.Kernel.ChargeRateAndPrice(a)
	delta := 1 - next.CurrentSoC
	if rate < delta {
		delta = rate
	}
	next.CurrentSoC += delta
	next.DeltaSoC = delta
	next.ChargeDuration += ctx.Config.IntervalMinutes
	tou := ctx.Kernel.TOUFactor(next.Time)
	next.ChargeCost += price * tou * delta * ctx.Kernel.Profile.BatteryCapacityKWh
}

// transitionUtilityDelta computes the utility added by leaving p=L.Act and
// starting a at startTime after tt intervals of travel.
func transitionUtilityDelta(ctx *Context, L *model.Label, a model.Activity, tt, startTime int) float64 {
	cfg := ctx.Config
	W := float64(cfg.IntervalMinutes)
	p := L.Act

	delta := groupCoef(cfg.ASC, a.Group) - cfg.TravelTimePenalty*float64(tt)

	if p.Group != 0 && !p.IsServiceStation {
		shortfall := float64(p.DesDuration - L.Duration)
		overrun := float64(L.Duration - p.DesDuration)
		if shortfall > 0 {
			delta += groupCoef(cfg.Short, p.Group) * W * shortfall
		}
		if overrun > 0 {
			delta += groupCoef(cfg.Long, p.Group) * W * overrun
		}
	}
	if a.Group != 0 && !a.IsServiceStation {
		early := float64(a.DesStartTime - startTime)
		late := float64(startTime - a.DesStartTime)
		if early > 0 {
			delta += groupCoef(cfg.Early, a.Group) * W * early
		}
		if late > 0 {
			delta += groupCoef(cfg.Late, a.Group) * W * late
		}
	}
	if p.IsCharging {
		delta += chargingInconvenience(cfg, *p)
		if cfg.SoCThreshold > L.SoCAtActivityStart {
			delta += cfg.ThetaSoC * (cfg.SoCThreshold - L.SoCAtActivityStart)
		}
		delta += cfg.BetaDeltaSoC * (L.CurrentSoC - L.SoCAtActivityStart)
		prevCost := 0.0
		if L.Previous != nil {
			prevCost = L.Previous.ChargeCost
		}
		delta += cfg.BetaChargeCost * (L.ChargeCost - prevCost)
	}
	return delta
}

func chargingInconvenience(cfg Config, p model.Activity) float64 {
	switch {
	case p.Group == 0:
		return cfg.GammaChargeHome
	case p.Group == cfg.WorkGroup:
		return cfg.GammaChargeWork
	default:
		return cfg.GammaChargeNonWork
	}
}

func groupCoef(arr [NumUtilityGroups]float64, group int) float64 {
	if group < 0 || group >= len(arr) {
		return 0
	}
	return arr[group]
}
