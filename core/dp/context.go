package dp

import (
	"fmt"

	"github.com/kilianp07/daystep/core/energy"
	"github.com/kilianp07/daystep/core/model"
)

// DawnID and DuskID are the fixed positions every activity table must carry:
// DAWN is forced first, DUSK is forced last.
const DawnID = 0

// Context bundles everything one Solve call needs: the validated config, the
// geometry/tariff kernel it drives, and the activity table the sweep walks.
// Passing Context explicitly (rather than reading process globals) is the
// concurrency model described for this engine: independent solves use
// independent Contexts and never share a bucket.
type Context struct {
	Config     Config
	Kernel     energy.Kernel
	Activities []model.Activity
	RunID      string

	// OnDSSRCycle, if set, is invoked by each DSSR iteration once for every
	// activity whose forbidden-group memory it tightens, with the iteration
	// number (1-based), the forbidden group and that activity's id.
	// Solve never reads its return value; it exists purely for a caller to
	// observe DSSR's progress without polling Result after the fact.
	OnDSSRCycle func(iteration, group, activityID int)
}

// DuskID returns the index of the DUSK activity: the last entry of the table.
func (c *Context) DuskID() int {
	return len(c.Activities) - 1
}

// NewContext validates cfg and activities and returns a ready-to-solve
// Context. Activity memory sets are reset to empty here: DSSR mutates them
// between sweeps of the same solve, but a fresh solve must never inherit
// marks left by a previous one.
func NewContext(cfg Config, activities []model.Activity, runID string) (*Context, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(activities) < 2 {
		return nil, fmt.Errorf("%w: activity table needs at least DAWN and DUSK, got %d entries", ErrParameter, len(activities))
	}
	acts := make([]model.Activity, len(activities))
	copy(acts, activities)
	for i := range acts {
		a := &acts[i]
		if a.ID != i {
			return nil, fmt.Errorf("%w: activity at index %d has id %d, table must be dense", ErrParameter, i, a.ID)
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("%w: activity %d: %v", ErrParameter, a.ID, err)
		}
		a.Memory = 0
	}
	if acts[DawnID].Group != 0 {
		return nil, fmt.Errorf("%w: DAWN (id 0) must be in group 0", ErrParameter)
	}
	kernel := energy.Kernel{
		IntervalMinutes: cfg.IntervalMinutes,
		SpeedMPerMin:    cfg.SpeedMPerMin,
		Tariff:          cfg.Tariff,
	}
	return &Context{
		Config:     cfg,
		Kernel:     kernel,
		Activities: acts,
		RunID:      runID,
	}, nil
}

// WithProfile attaches an EVProfile to the context's kernel. Kept separate
// from NewContext because the profile (battery, charge powers, prices)
// varies per vehicle while Config is shared across a fleet's solves.
func (c *Context) WithProfile(p model.EVProfile) *Context {
	c.Kernel.Profile = p
	return c
}
