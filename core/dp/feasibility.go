package dp

import "github.com/kilianp07/daystep/core/model"

// Feasible reports whether label L may be extended onto activity a. It
// implements the two disjoint cases of the extension rule: staying another
// interval on the activity L already occupies, or transitioning onto a
// different one.
func Feasible(ctx *Context, L *model.Label, a model.Activity) bool {
	if L == nil {
		return false
	}
	if L.ActID != DawnID && a.ID == DawnID {
		return false
	}
	if a.ID == L.ActID {
		return feasibleStay(ctx, L, a)
	}
	return feasibleTransition(ctx, L, a)
}

func feasibleStay(ctx *Context, L *model.Label, a model.Activity) bool {
	if L.Duration+1 > a.MaxDuration {
		return false
	}
	if a.IsServiceStation && !a.IsCharging {
		return false
	}
	if a.IsCharging {
		if a.ChargeMode == model.ChargeNone {
			return false
		}
		if L.Act.ChargeMode != a.ChargeMode {
			return false
		}
		rate, _ := ctx.Kernel.ChargeRateAndPrice(a)
		if L.CurrentSoC+rate > 1 {
			return false
		}
	}
	return true
}

func feasibleTransition(ctx *Context, L *model.Label, a model.Activity) bool {
	if L.Previous != nil && L.Previous.ActID == a.ID {
		return false
	}
	duskID := ctx.DuskID()
	if L.ActID == duskID {
		return false
	}
	if L.Duration < L.Act.MinDuration {
		return false
	}
	t := L.Time
	tt := ctx.Kernel.TravelTime(*L.Act, a)
	toDusk := ctx.Kernel.TravelTime(a, ctx.Activities[duskID])
	if t+tt+a.MinDuration+toDusk >= ctx.Config.Horizon-1 {
		return false
	}
	arrival := t + tt
	if arrival < a.EarliestStart || arrival > a.LatestStart {
		return false
	}
	if a.Group != 0 && L.Mem.Contains(a.Group) {
		return false
	}
	consumed := ctx.Kernel.EnergyConsumed(*L.Act, a)
	if L.CurrentSoC-consumed < 0 {
		return false
	}
	if a.IsServiceStation && !a.IsCharging {
		return false
	}
	if a.IsCharging && a.ChargeMode == model.ChargeNone {
		return false
	}
	return true
}
