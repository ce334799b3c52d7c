package energy

import (
	"math"
	"testing"

	"github.com/kilianp07/daystep/core/model"
)

func testKernel() Kernel {
	return Kernel{
		IntervalMinutes: 5,
		SpeedMPerMin:    500, // 30 km/h
		Profile: model.EVProfile{
			BatteryCapacityKWh:  60,
			ConsumptionKWhPerKm: 0.2,
			SlowChargePowerKW:   7,
			FastChargePowerKW:   22,
			RapidChargePowerKW:  50,
			HomeSlowChargePrice: 0.26,
			ACChargePrice:       0.52,
			PublicDCChargePrice: 0.79,
		},
		Tariff: TariffConfig{
			PeakStart: 12, PeakEnd: 18,
			Midpeak1Start: 8, Midpeak1End: 12,
			Midpeak2Start: 18, Midpeak2End: 21,
			PeakFactor: 1.5, MidpeakFactor: 2.5, OffpeakFactor: 1,
		},
	}
}

func TestTravelTimeRoundsUpToNextInterval(t *testing.T) {
	k := testKernel()
	a := model.Activity{X: 0, Y: 0}
	b := model.Activity{X: 1000, Y: 0} // 1000m, 2 min at 500 m/min

	got := k.TravelTime(a, b)
	if got != 1 {
		t.Fatalf("expected 1 interval (rounded up from 2 min), got %d", got)
	}

	c := model.Activity{X: 1300, Y: 0} // 2.6 min -> still within first 5-min interval
	got = k.TravelTime(a, c)
	if got != 1 {
		t.Fatalf("expected 1 interval, got %d", got)
	}

	d := model.Activity{X: 2600, Y: 0} // 5.2 min -> must round up to 2 intervals
	got = k.TravelTime(a, d)
	if got != 2 {
		t.Fatalf("expected 2 intervals, got %d", got)
	}
}

func TestTravelTimeSameLocation(t *testing.T) {
	k := testKernel()
	a := model.Activity{X: 10, Y: 10}
	if got := k.TravelTime(a, a); got != 0 {
		t.Fatalf("expected 0 travel time for identical locations, got %d", got)
	}
}

func TestEnergyConsumed(t *testing.T) {
	k := testKernel()
	a := model.Activity{X: 0, Y: 0}
	b := model.Activity{X: 10000, Y: 0} // 10 km

	got := k.EnergyConsumed(a, b)
	want := 0.2 * 10 / 60 // kWh/km * km / capacity
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %.6f, got %.6f", want, got)
	}
}

func TestTOUFactor(t *testing.T) {
	k := testKernel()
	cases := []struct {
		interval int
		want     float64
	}{
		{interval: 0, want: 1},              // 00:00 offpeak
		{interval: 96, want: 2.5},           // 08:00 midpeak1
		{interval: 144, want: 1.5},          // 12:00 peak
		{interval: 216, want: 2.5},          // 18:00 midpeak2
		{interval: 252, want: 1},            // 21:00 offpeak
	}
	for _, c := range cases {
		if got := k.TOUFactor(c.interval); got != c.want {
			t.Fatalf("interval %d: expected factor %.2f, got %.2f", c.interval, c.want, got)
		}
	}
}

func TestChargeRateAndPriceHomeSlow(t *testing.T) {
	k := testKernel()
	home := model.Activity{Group: 0, ChargeMode: model.ChargeSlow}
	rate, price := k.ChargeRateAndPrice(home)

	wantRate := 7.0 / 60 * (5.0 / 60)
	if math.Abs(rate-wantRate) > 1e-9 {
		t.Fatalf("expected rate %.6f, got %.6f", wantRate, rate)
	}
	if price != 0.26 {
		t.Fatalf("expected home slow price 0.26, got %.2f", price)
	}
}

func TestChargeRateAndPriceNonHomeSlowUsesAC(t *testing.T) {
	k := testKernel()
	work := model.Activity{Group: 6, ChargeMode: model.ChargeSlow}
	_, price := k.ChargeRateAndPrice(work)
	if price != 0.52 {
		t.Fatalf("expected AC price 0.52, got %.2f", price)
	}
}

func TestChargeRateAndPriceRapidUsesPublicDC(t *testing.T) {
	k := testKernel()
	station := model.Activity{Group: 7, ChargeMode: model.ChargeRapid, IsServiceStation: true, IsCharging: true}
	_, price := k.ChargeRateAndPrice(station)
	if price != 0.79 {
		t.Fatalf("expected public DC price 0.79, got %.2f", price)
	}
}

func TestChargeRateAndPriceNoneIsZero(t *testing.T) {
	k := testKernel()
	a := model.Activity{ChargeMode: model.ChargeNone}
	rate, price := k.ChargeRateAndPrice(a)
	if rate != 0 || price != 0 {
		t.Fatalf("expected zero rate/price for non-charging activity, got rate=%.4f price=%.4f", rate, price)
	}
}
