package dp

import (
	"errors"

	"github.com/kilianp07/daystep/core/model"
)

// ErrDSSRCapExceeded describes a solve whose outer loop hit MaxDSSRIterations
// while a cycle was still present. Solve never returns it: such a solve still
// returns its current best label and reports the condition through
// Result.PossiblyNonElementary.
var ErrDSSRCapExceeded = errors.New("dp: DSSR iteration cap exceeded, schedule may be non-elementary")

// Result is the outcome of a full solve: the DP sweep plus the DSSR outer
// loop run to a fixed point (or to the iteration cap).
type Result struct {
	Best                  *model.Label
	Iterations            int
	PossiblyNonElementary bool
}

// Solve runs the DP sweep and the DSSR outer loop to a fixed point,
// returning the terminal best label. It returns ErrInfeasible if no label
// ever reaches the terminal cell, even after exhausting DSSR iterations
// (a cycle-free but infeasible instance stays infeasible regardless of how
// much elementarity memory DSSR adds).
func Solve(ctx *Context) (*Result, error) {
	bucket := NewBucket(ctx.Config.Horizon, len(ctx.Activities))
	for i := range ctx.Activities {
		ctx.Activities[i].Memory = 0
	}

	var best *model.Label
	iterations := 0
	nonElementary := false

	for {
		bucket.Reset()
		runSweep(ctx, bucket)
		best = findBest(ctx, bucket)
		if best == nil {
			return nil, ErrInfeasible
		}

		p1, p2, cycleFound := findCycle(best)
		if !cycleFound {
			break
		}
		iterations++
		if iterations > ctx.Config.MaxDSSRIterations {
			nonElementary = true
			break
		}
		tightenMemory(ctx, best, p1, p2, iterations)
	}

	return &Result{Best: best, Iterations: iterations, PossiblyNonElementary: nonElementary}, nil
}

// findCycle scans best's back-chain for the most recent pair of distinct
// activities sharing a non-home group, excluding DAWN (group 0, never
// flagged) and DUSK (never part of a cycle by construction). It returns the
// chain indices of the earlier (p2) and later (p1) occurrence.
func findCycle(best *model.Label) (p1, p2 int, found bool) {
	chain := best.Chain()
	if len(chain) < 3 {
		return 0, 0, false
	}
	last := len(chain) - 1 // DUSK
	for i := last - 1; i >= 1; i-- {
		gi := chain[i].Act.Group
		if gi == 0 {
			continue
		}
		for j := i - 1; j >= 1; j-- {
			gj := chain[j].Act.Group
			if gj == gi && chain[j].ActID != chain[i].ActID {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// tightenMemory adds the group of chain[p1] to the Memory of every activity
// occupied strictly between chain[p2] and chain[p1], forbidding the cycle
// path through them on the next sweep. It reports each tightened activity
// through ctx.OnDSSRCycle, if set.
func tightenMemory(ctx *Context, best *model.Label, p1, p2, iteration int) {
	chain := best.Chain()
	forbidden := chain[p1].Act.Group
	for k := p2 + 1; k < p1; k++ {
		actID := chain[k].ActID
		ctx.Activities[actID].Memory = ctx.Activities[actID].Memory.Add(forbidden)
		if ctx.OnDSSRCycle != nil {
			ctx.OnDSSRCycle(iteration, forbidden, actID)
		}
	}
}
