package model

import "fmt"

// Activity is a candidate item in the daily pool, immutable once loaded
// except for Memory, which the DSSR outer loop tightens between the DP
// sweeps of one solve.
//
// id 0 is the synthetic DAWN activity, forced first in every schedule; the
// last id is the synthetic DUSK activity, forced last. Charging variants of
// the same physical place (e.g. "work, no charging" vs "work, slow charge")
// appear as distinct Activity entries sharing the same Group.
type Activity struct {
	ID    int
	Label string       // human-readable name, for logs/CSV only
	Kind  ActivityKind // human-readable category mirroring Group, for logs/CSV only

	X, Y float64 // planar coordinates, metres

	Group int // activity-type tag; 0 = home/dawn/dusk

	EarliestStart int // interval index, inclusive
	LatestStart   int // interval index, inclusive
	MinDuration   int // interval count
	MaxDuration   int // interval count

	DesStartTime int // desired start, interval index
	DesDuration  int // desired duration, interval count

	ChargeMode       ChargeMode
	IsCharging       bool
	IsServiceStation bool

	// Memory accumulates group tags that DSSR has forbidden an extension
	// through this activity from carrying forward. It grows monotonically
	// across DSSR iterations within one solve and is cleared at the start
	// of a fresh solve.
	Memory GroupSet
}

// Validate checks the structural invariants spec.md requires of every
// Activity before it is handed to the solver.
func (a Activity) Validate() error {
	if a.MinDuration > a.MaxDuration {
		return fmt.Errorf("activity %d: min_duration %d exceeds max_duration %d", a.ID, a.MinDuration, a.MaxDuration)
	}
	if a.EarliestStart > a.LatestStart {
		return fmt.Errorf("activity %d: earliest_start %d exceeds latest_start %d", a.ID, a.EarliestStart, a.LatestStart)
	}
	if a.IsServiceStation && (!a.IsCharging || a.ChargeMode == ChargeNone) {
		return fmt.Errorf("activity %d: service station must charge", a.ID)
	}
	if a.IsCharging && a.ChargeMode == ChargeNone {
		return fmt.Errorf("activity %d: charging activity needs a charge mode", a.ID)
	}
	return nil
}

// IsDawn reports whether this is the forced first activity.
func (a Activity) IsDawn() bool { return a.ID == 0 }
