package dp

import "github.com/kilianp07/daystep/core/model"

// Dominates reports whether l1 dominates l2. Both labels are assumed to sit
// at the same (time, activity) cell; callers outside this package must not
// rely on this function to check that for them. The three checks form a
// partial order (utility no worse, visited-group superset, not later in
// time) and must never be weakened into a total order by, say, breaking
// ties on a single criterion.
func Dominates(l1, l2 *model.Label) bool {
	if l1 == nil || l2 == nil {
		return false
	}
	if l1.Utility < l2.Utility {
		return false
	}
	if !l2.Mem.IsSubsetOf(l1.Mem) {
		return false
	}
	if l1.Time > l2.Time {
		return false
	}
	return true
}
