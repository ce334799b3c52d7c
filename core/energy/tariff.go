package energy

import "github.com/kilianp07/daystep/core/model"

// TariffConfig holds the time-of-use windows and multipliers applied to the
// base charger price. The peak window and the two midpeak windows are
// configured independently and are expected to be disjoint; the kernel does
// not validate that here, it simply evaluates them in priority order.
type TariffConfig struct {
	PeakStart, PeakEnd         int // wall-clock hour, [start, end)
	Midpeak1Start, Midpeak1End int
	Midpeak2Start, Midpeak2End int

	PeakFactor    float64
	MidpeakFactor float64
	OffpeakFactor float64
}

// TOUFactor converts an interval index into a wall-clock hour and returns
// the time-of-use multiplier in effect.
func (k Kernel) TOUFactor(t int) float64 {
	hour := (t * k.IntervalMinutes) / 60
	tc := k.Tariff
	switch {
	case hour >= tc.PeakStart && hour < tc.PeakEnd:
		return tc.PeakFactor
	case (hour >= tc.Midpeak1Start && hour < tc.Midpeak1End) ||
		(hour >= tc.Midpeak2Start && hour < tc.Midpeak2End):
		return tc.MidpeakFactor
	default:
		return tc.OffpeakFactor
	}
}

// ChargeRateAndPrice returns the SoC fraction gained per interval and the
// currency-per-kWh price for charging at activity a, selected by charge mode
// and whether a sits in the home group (group 0).
func (k Kernel) ChargeRateAndPrice(a model.Activity) (rate, price float64) {
	powerKW := k.Profile.ChargePowerKW(a.ChargeMode)
	if powerKW <= 0 || k.Profile.BatteryCapacityKWh <= 0 {
		return 0, 0
	}
	rate = powerKW / k.Profile.BatteryCapacityKWh * (float64(k.IntervalMinutes) / 60)

	switch a.ChargeMode {
	case model.ChargeSlow:
		if a.Group == 0 {
			price = k.Profile.HomeSlowChargePrice
		} else {
			price = k.Profile.ACChargePrice
		}
	case model.ChargeFast:
		price = k.Profile.ACChargePrice
	case model.ChargeRapid:
		price = k.Profile.PublicDCChargePrice
	}
	return rate, price
}
