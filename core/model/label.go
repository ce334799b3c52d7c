package model

// Label is one DP state: a partial schedule ending at a given activity and
// time, together with the resource values needed to check feasibility and
// dominance against other labels at the same (time, activity) cell.
//
// Invariants (see dp package for where they are enforced):
//
//	I1: 0 <= CurrentSoC <= 1
//	I2: StartTime <= Time, Duration = Time - StartTime for non-terminal labels
//	I3: if ActID's group g != 0 then g is in Mem
//	I4: Mem grows monotonically along Previous chains
//	I5: ChargeCost and Utility are monotone along the chain (mod sign of utility terms)
type Label struct {
	ActID int       // index into the activity table this label currently occupies
	Act   *Activity // back-pointer to the occupied activity; never nil

	Time      int // interval index; end of the activity instance so far
	StartTime int // interval index the current activity began
	Duration  int // intervals occupied so far in the current activity

	SoCAtActivityStart float64
	CurrentSoC         float64
	DeltaSoC           float64 // SoC gained during the last interval (0 if not charging)

	ChargeDuration int     // minutes spent charging in the current activity
	ChargeCost     float64 // cumulative monetary cost of all charging so far

	Utility float64 // cumulative objective value, to be maximised

	Mem GroupSet // visited-group resource (elementarity)

	Previous *Label // back-pointer; nil only for the DAWN root
}

// Chain walks Previous back-pointers from L to the root, returning labels in
// chronological (DAWN-first) order.
func (l *Label) Chain() []*Label {
	if l == nil {
		return nil
	}
	var rev []*Label
	for cur := l; cur != nil; cur = cur.Previous {
		rev = append(rev, cur)
	}
	out := make([]*Label, len(rev))
	for i, lab := range rev {
		out[len(rev)-1-i] = lab
	}
	return out
}
