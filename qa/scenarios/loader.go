// Package scenarios loads declarative YAML fixtures and replays them
// through the solver, the way the original scenario runner replayed
// dispatch signals against a fleet.
package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/daystep/core/dp"
	"github.com/kilianp07/daystep/core/energy"
	"github.com/kilianp07/daystep/core/model"
)

// TariffDef is the YAML-facing mirror of energy.TariffConfig.
type TariffDef struct {
	PeakStart     int     `yaml:"peak_start"`
	PeakEnd       int     `yaml:"peak_end"`
	Midpeak1Start int     `yaml:"midpeak1_start"`
	Midpeak1End   int     `yaml:"midpeak1_end"`
	Midpeak2Start int     `yaml:"midpeak2_start"`
	Midpeak2End   int     `yaml:"midpeak2_end"`
	PeakFactor    float64 `yaml:"peak_factor"`
	MidpeakFactor float64 `yaml:"midpeak_factor"`
	OffpeakFactor float64 `yaml:"offpeak_factor"`
}

func (t TariffDef) ToModel() energy.TariffConfig {
	return energy.TariffConfig{
		PeakStart: t.PeakStart, PeakEnd: t.PeakEnd,
		Midpeak1Start: t.Midpeak1Start, Midpeak1End: t.Midpeak1End,
		Midpeak2Start: t.Midpeak2Start, Midpeak2End: t.Midpeak2End,
		PeakFactor: t.PeakFactor, MidpeakFactor: t.MidpeakFactor, OffpeakFactor: t.OffpeakFactor,
	}
}

// ConfigDef is the YAML-facing mirror of dp.Config.
type ConfigDef struct {
	Horizon            int       `yaml:"horizon"`
	IntervalMinutes    int       `yaml:"interval_minutes"`
	SpeedMPerMin       float64   `yaml:"speed_m_per_min"`
	TravelTimePenalty  float64   `yaml:"travel_time_penalty"`
	ASC                []float64 `yaml:"asc,omitempty"`
	Early              []float64 `yaml:"early,omitempty"`
	Late               []float64 `yaml:"late,omitempty"`
	Long               []float64 `yaml:"long,omitempty"`
	Short              []float64 `yaml:"short,omitempty"`
	WorkGroup          int       `yaml:"work_group"`
	GammaChargeWork    float64   `yaml:"gamma_charge_work"`
	GammaChargeHome    float64   `yaml:"gamma_charge_home"`
	GammaChargeNonWork float64   `yaml:"gamma_charge_non_work"`
	ThetaSoC           float64   `yaml:"theta_soc"`
	SoCThreshold       float64   `yaml:"soc_threshold"`
	BetaDeltaSoC       float64   `yaml:"beta_delta_soc"`
	BetaChargeCost     float64   `yaml:"beta_charge_cost"`
	MaxDSSRIterations  int       `yaml:"max_dssr_iterations"`
	Tariff             TariffDef `yaml:"tariff"`
}

// fillGroupArray copies src into a fixed dp.NumUtilityGroups array,
// leaving trailing entries at zero when src is shorter (or absent).
func fillGroupArray(src []float64) [dp.NumUtilityGroups]float64 {
	var out [dp.NumUtilityGroups]float64
	for i := 0; i < len(src) && i < dp.NumUtilityGroups; i++ {
		out[i] = src[i]
	}
	return out
}

func (c ConfigDef) ToModel() dp.Config {
	return dp.Config{
		Horizon:            c.Horizon,
		IntervalMinutes:    c.IntervalMinutes,
		SpeedMPerMin:       c.SpeedMPerMin,
		TravelTimePenalty:  c.TravelTimePenalty,
		ASC:                fillGroupArray(c.ASC),
		Early:              fillGroupArray(c.Early),
		Late:               fillGroupArray(c.Late),
		Long:               fillGroupArray(c.Long),
		Short:              fillGroupArray(c.Short),
		WorkGroup:          c.WorkGroup,
		GammaChargeWork:    c.GammaChargeWork,
		GammaChargeHome:    c.GammaChargeHome,
		GammaChargeNonWork: c.GammaChargeNonWork,
		ThetaSoC:           c.ThetaSoC,
		SoCThreshold:       c.SoCThreshold,
		BetaDeltaSoC:       c.BetaDeltaSoC,
		BetaChargeCost:     c.BetaChargeCost,
		MaxDSSRIterations:  c.MaxDSSRIterations,
		Tariff:             c.Tariff.ToModel(),
	}
}

// ProfileDef is the YAML-facing mirror of model.EVProfile.
type ProfileDef struct {
	BatteryCapacityKWh  float64 `yaml:"battery_capacity_kwh"`
	ConsumptionKWhPerKm float64 `yaml:"consumption_kwh_per_km"`
	InitialSoC          float64 `yaml:"initial_soc"`
	SlowChargePowerKW   float64 `yaml:"slow_charge_power_kw"`
	FastChargePowerKW   float64 `yaml:"fast_charge_power_kw"`
	RapidChargePowerKW  float64 `yaml:"rapid_charge_power_kw"`
	HomeOffPeakPrice    float64 `yaml:"home_off_peak_price"`
	HomeSlowChargePrice float64 `yaml:"home_slow_charge_price"`
	ACChargePrice       float64 `yaml:"ac_charge_price"`
	PublicDCChargePrice float64 `yaml:"public_dc_charge_price"`
}

func (p ProfileDef) ToModel() model.EVProfile {
	return model.EVProfile{
		BatteryCapacityKWh:  p.BatteryCapacityKWh,
		ConsumptionKWhPerKm: p.ConsumptionKWhPerKm,
		InitialSoC:          p.InitialSoC,
		SlowChargePowerKW:   p.SlowChargePowerKW,
		FastChargePowerKW:   p.FastChargePowerKW,
		RapidChargePowerKW:  p.RapidChargePowerKW,
		HomeOffPeakPrice:    p.HomeOffPeakPrice,
		HomeSlowChargePrice: p.HomeSlowChargePrice,
		ACChargePrice:       p.ACChargePrice,
		PublicDCChargePrice: p.PublicDCChargePrice,
	}
}

// ActivityDef is the YAML-facing mirror of model.Activity.
type ActivityDef struct {
	ID               int     `yaml:"id"`
	Label            string  `yaml:"label,omitempty"`
	Kind             string  `yaml:"kind,omitempty"`
	X                float64 `yaml:"x"`
	Y                float64 `yaml:"y"`
	Group            int     `yaml:"group"`
	EarliestStart    int     `yaml:"earliest_start"`
	LatestStart      int     `yaml:"latest_start"`
	MinDuration      int     `yaml:"min_duration"`
	MaxDuration      int     `yaml:"max_duration"`
	DesStartTime     int     `yaml:"des_start_time,omitempty"`
	DesDuration      int     `yaml:"des_duration,omitempty"`
	ChargeMode       string  `yaml:"charge_mode,omitempty"`
	IsCharging       bool    `yaml:"is_charging,omitempty"`
	IsServiceStation bool    `yaml:"is_service_station,omitempty"`
}

func (a ActivityDef) ToModel() model.Activity {
	return model.Activity{
		ID: a.ID, Label: a.Label, Kind: model.ParseActivityKind(a.Kind), X: a.X, Y: a.Y, Group: a.Group,
		EarliestStart: a.EarliestStart, LatestStart: a.LatestStart,
		MinDuration: a.MinDuration, MaxDuration: a.MaxDuration,
		DesStartTime: a.DesStartTime, DesDuration: a.DesDuration,
		ChargeMode:       model.ParseChargeMode(a.ChargeMode),
		IsCharging:       a.IsCharging,
		IsServiceStation: a.IsServiceStation,
	}
}

// Expected describes the solve outcome a scenario asserts.
type Expected struct {
	Feasible          bool `yaml:"feasible"`
	BestActivityID    int  `yaml:"best_activity_id,omitempty"`
	MinDSSRIterations int  `yaml:"min_dssr_iterations,omitempty"`
}

// Scenario is one declarative solver fixture.
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Config      ConfigDef     `yaml:"config"`
	Profile     ProfileDef    `yaml:"profile"`
	Activities  []ActivityDef `yaml:"activities"`
	Expected    Expected      `yaml:"expected"`
}

// toActivities converts a scenario's declarative activity table into the
// dense model.Activity slice dp.NewContext expects.
func toActivities(defs []ActivityDef) []model.Activity {
	out := make([]model.Activity, len(defs))
	for i, d := range defs {
		out[i] = d.ToModel()
	}
	return out
}

// Load reads and parses one scenario YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
