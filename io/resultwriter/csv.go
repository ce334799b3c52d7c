// Package resultwriter writes a solved schedule out as the per-step result
// CSV the host driver expects.
package resultwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/kilianp07/daystep/core/dp"
)

var header = []string{
	"activity_id", "group", "kind", "start_time", "end_time", "duration",
	"soc_start", "soc_end", "charge_mode", "charge_minutes", "charge_cost",
	"utility_after",
}

// WriteCSV writes entries, in chronological order, to w.
func WriteCSV(w io.Writer, entries []dp.ScheduleEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		rec := []string{
			strconv.Itoa(e.ActivityID),
			strconv.Itoa(e.Group),
			e.Kind.String(),
			strconv.Itoa(e.StartTime),
			strconv.Itoa(e.EndTime),
			strconv.Itoa(e.Duration),
			strconv.FormatFloat(e.SoCStart, 'f', -1, 64),
			strconv.FormatFloat(e.SoCEnd, 'f', -1, 64),
			e.ChargeMode.String(),
			strconv.Itoa(e.ChargeMins),
			strconv.FormatFloat(e.ChargeCost, 'f', -1, 64),
			strconv.FormatFloat(e.UtilityAfter, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
