package dp

import (
	"errors"

	"github.com/kilianp07/daystep/core/model"
)

// ErrInfeasible is returned when no label reaches the terminal cell
// (H-1, DUSK). It carries no detail beyond its identity; callers that need
// to know why should inspect the activity table and config themselves.
var ErrInfeasible = errors.New("dp: no feasible schedule")

// runSweep performs one forward pass of the label-setting DP over bucket,
// starting from a fresh DAWN root label. It mutates bucket in place and
// never touches Activity.Memory; DSSR is the only caller allowed to do that,
// and only between sweeps.
func runSweep(ctx *Context, bucket *Bucket) {
	dawn := &ctx.Activities[DawnID]
	initialSoC := ctx.Kernel.Profile.InitialSoC
	root := &model.Label{
		ActID:              DawnID,
		Act:                dawn,
		StartTime:          0,
		Time:               dawn.MinDuration,
		Duration:           dawn.MinDuration,
		SoCAtActivityStart: initialSoC,
		CurrentSoC:         initialSoC,
		Mem:                model.NewGroupSet(),
	}
	bucket.Insert(root.Time, DawnID, root)

	h := bucket.Horizon()
	n := bucket.Activities()
	for t := root.Time; t <= h-2; t++ {
		for aFrom := 0; aFrom < n; aFrom++ {
			labels := bucket.Labels(t, aFrom)
			for _, L := range labels {
				for aTo := 0; aTo < n; aTo++ {
					candidate := ctx.Activities[aTo]
					if !Feasible(ctx, L, candidate) {
						continue
					}
					successor := Extend(ctx, L, candidate)
					bucket.Insert(successor.Time, aTo, successor)
				}
			}
		}
	}
}

// findBest returns the highest-utility label in the terminal cell, or nil if
// none survived.
func findBest(ctx *Context, bucket *Bucket) *model.Label {
	duskID := ctx.DuskID()
	candidates := bucket.Labels(ctx.Config.Horizon-1, duskID)
	var best *model.Label
	for _, L := range candidates {
		if best == nil || L.Utility > best.Utility {
			best = L
		}
	}
	return best
}
