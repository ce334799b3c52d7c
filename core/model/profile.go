package model

import "fmt"

// EVProfile describes the single vehicle a day is being scheduled for: its
// battery and the charger speeds/prices it can use. Unlike a fleet of
// vehicles, one solve always concerns exactly one EVProfile.
type EVProfile struct {
	BatteryCapacityKWh  float64 // usable battery capacity
	ConsumptionKWhPerKm float64 // energy use while driving
	InitialSoC          float64 // state of charge fraction at DAWN

	SlowChargePowerKW  float64
	FastChargePowerKW  float64
	RapidChargePowerKW float64

	HomeOffPeakPrice    float64 // currency/kWh, informational
	HomeSlowChargePrice float64 // currency/kWh
	ACChargePrice       float64 // currency/kWh, non-home slow and fast
	PublicDCChargePrice float64 // currency/kWh, rapid
}

// Validate checks that the battery parameters are physically sound.
func (p EVProfile) Validate() error {
	if p.BatteryCapacityKWh <= 0 {
		return fmt.Errorf("battery capacity must be positive")
	}
	if p.InitialSoC < 0 || p.InitialSoC > 1 {
		return fmt.Errorf("initial soc %.3f out of [0,1]", p.InitialSoC)
	}
	if p.ConsumptionKWhPerKm < 0 {
		return fmt.Errorf("consumption rate cannot be negative")
	}
	return nil
}

// ChargePowerKW returns the charger power, in kW, associated with mode.
func (p EVProfile) ChargePowerKW(mode ChargeMode) float64 {
	switch mode {
	case ChargeSlow:
		return p.SlowChargePowerKW
	case ChargeFast:
		return p.FastChargePowerKW
	case ChargeRapid:
		return p.RapidChargePowerKW
	default:
		return 0
	}
}
