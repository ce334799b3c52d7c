// Package energy implements the geometry, travel-time, and charging/tariff
// kernels the DP engine calls on every label extension. It has no notion of
// labels or buckets; it is pure arithmetic over Activity and EVProfile
// values, grounded on the formulas of the original scheduling engine.
package energy

import (
	"math"

	"github.com/kilianp07/daystep/core/model"
)

// Kernel bundles the physical constants one solve needs to evaluate
// distance, travel time, energy consumption, and charging cost. A Kernel is
// immutable for the lifetime of a solve; build a new one per solve rather
// than mutating shared state (core/dp.Context does this for you).
type Kernel struct {
	IntervalMinutes int     // W: width of one time interval, minutes
	SpeedMPerMin    float64 // travel speed, metres per minute
	Profile         model.EVProfile
	Tariff          TariffConfig
}

// Distance returns the Euclidean distance between two activities, metres.
func Distance(a, b model.Activity) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// TravelTime returns the number of intervals needed to travel from a to b.
// Raw minutes are rounded UP to the next multiple of the interval width so
// the lattice never under-reports travel time and feasibility checks stay
// sound (spec.md's Open Questions resolve the "round down" comment in the
// original source in favour of this safer round-up behaviour).
func (k Kernel) TravelTime(a, b model.Activity) int {
	if k.SpeedMPerMin <= 0 || k.IntervalMinutes <= 0 {
		return 0
	}
	rawMinutes := Distance(a, b) / k.SpeedMPerMin
	intervals := math.Ceil(rawMinutes / float64(k.IntervalMinutes))
	return int(intervals)
}

// EnergyConsumed returns the SoC fraction consumed driving from a to b.
func (k Kernel) EnergyConsumed(a, b model.Activity) float64 {
	if k.Profile.BatteryCapacityKWh <= 0 {
		return 0
	}
	distanceKm := Distance(a, b) / 1000
	energyKWh := k.Profile.ConsumptionKWhPerKm * distanceKm
	return energyKWh / k.Profile.BatteryCapacityKWh
}
