// Package dp implements the label-setting dynamic-programming engine: the
// bucketed label store, feasibility and extension rules, dominance pruning,
// the forward sweep, and the DSSR cycle-elimination outer loop. It is the
// core of this repository; everything else (config loading, CLI, metrics,
// CSV I/O) exists to drive or observe a dp.Solve call.
package dp

import (
	"errors"
	"fmt"

	"github.com/kilianp07/daystep/core/energy"
)

// NumUtilityGroups is the size of the per-group utility coefficient arrays.
// It must accommodate the largest group tag any Activity uses.
const NumUtilityGroups = 9

// Config bundles the parameters a solve is run with: horizon, interval
// width, travel model, per-group utility coefficients, and charging utility
// terms. It is the Go-native replacement for the original engine's process-wide
// globals (Design Notes, spec.md §9): every dp operation takes a *Context
// wrapping a Config explicitly, so concurrent solves never share state.
type Config struct {
	Horizon         int     `json:"horizon"`          // H: number of time intervals in the day
	IntervalMinutes int     `json:"interval_minutes"` // W: width of one interval, minutes
	SpeedMPerMin    float64 `json:"speed_m_per_min"`  // travel speed

	TravelTimePenalty float64 `json:"travel_time_penalty"` // utility cost per interval of travel

	ASC   [NumUtilityGroups]float64 // alternative-specific constant per group
	Early [NumUtilityGroups]float64 // early-start penalty coefficient per group
	Late  [NumUtilityGroups]float64 // late-start penalty coefficient per group
	Long  [NumUtilityGroups]float64 // over-duration penalty coefficient per group
	Short [NumUtilityGroups]float64 // under-duration penalty coefficient per group

	WorkGroup int `json:"work_group"` // group tag identifying work activities, for charging inconvenience selection

	GammaChargeWork    float64 `json:"gamma_charge_work"`     // inconvenience of charging at a work activity
	GammaChargeHome    float64 `json:"gamma_charge_home"`     // inconvenience of charging at home
	GammaChargeNonWork float64 `json:"gamma_charge_non_work"` // inconvenience of charging elsewhere
	ThetaSoC           float64 `json:"theta_soc"`             // low-SoC penalty coefficient
	SoCThreshold       float64 `json:"soc_threshold"`         // comfort floor used by the low-SoC penalty
	BetaDeltaSoC       float64 `json:"beta_delta_soc"`        // SoC-gain reward coefficient
	BetaChargeCost     float64 `json:"beta_charge_cost"`      // charging-cost penalty coefficient

	Tariff energy.TariffConfig

	// MaxDSSRIterations caps the outer DSSR loop (spec.md §7's
	// "DSSR non-termination" error kind). DSSR is guaranteed to terminate
	// in theory; this guards pathological inputs.
	MaxDSSRIterations int `json:"max_dssr_iterations"`
}

// ErrParameter is returned when a Config or Activity fails validation.
var ErrParameter = errors.New("dp: invalid parameter")

// Validate checks the structural preconditions Solve relies on.
func (c Config) Validate() error {
	if c.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %d", ErrParameter, c.Horizon)
	}
	if c.IntervalMinutes <= 0 {
		return fmt.Errorf("%w: interval width must be positive, got %d", ErrParameter, c.IntervalMinutes)
	}
	if c.SpeedMPerMin <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %f", ErrParameter, c.SpeedMPerMin)
	}
	if c.MaxDSSRIterations < 0 {
		return fmt.Errorf("%w: max DSSR iterations cannot be negative", ErrParameter)
	}
	return nil
}

// DefaultMaxDSSRIterations is used when a Config leaves MaxDSSRIterations at
// its zero value.
const DefaultMaxDSSRIterations = 50

// DefaultWorkGroup is the group tag treated as "work" when none is configured.
const DefaultWorkGroup = 6

// WithDefaults returns a copy of c with zero-valued optional fields filled in.
func (c Config) WithDefaults() Config {
	if c.MaxDSSRIterations == 0 {
		c.MaxDSSRIterations = DefaultMaxDSSRIterations
	}
	if c.WorkGroup == 0 {
		c.WorkGroup = DefaultWorkGroup
	}
	return c
}
