package dp

import "github.com/kilianp07/daystep/core/model"

// ScheduleEntry is one activity occupied in a solved schedule, in
// chronological order.
type ScheduleEntry struct {
	ActivityID   int
	Group        int
	Kind         model.ActivityKind
	StartTime    int
	EndTime      int
	Duration     int
	SoCStart     float64
	SoCEnd       float64
	ChargeMode   model.ChargeMode
	ChargeMins   int
	ChargeCost   float64
	UtilityAfter float64
}

// ExtractSchedule walks best's back-chain into a chronological slice of
// ScheduleEntry, one per activity occupied (DAWN first, DUSK last).
func ExtractSchedule(best *model.Label) []ScheduleEntry {
	chain := best.Chain()
	entries := make([]ScheduleEntry, len(chain))
	for i, L := range chain {
		entries[i] = ScheduleEntry{
			ActivityID:   L.ActID,
			Group:        L.Act.Group,
			Kind:         L.Act.Kind,
			StartTime:    L.StartTime,
			EndTime:      L.Time,
			Duration:     L.Duration,
			SoCStart:     L.SoCAtActivityStart,
			SoCEnd:       L.CurrentSoC,
			ChargeMode:   L.Act.ChargeMode,
			ChargeMins:   L.ChargeDuration,
			ChargeCost:   L.ChargeCost,
			UtilityAfter: L.Utility,
		}
	}
	return entries
}
