// Package activities loads the activity pool CSV that seeds a solve: one
// row per candidate activity, id 0 reserved for DAWN and the last id
// reserved for DUSK.
package activities

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kilianp07/daystep/core/model"
)

var wantHeader = []string{
	"id", "label", "kind", "x", "y", "group",
	"earliest_start", "latest_start", "min_duration", "max_duration",
	"des_start_time", "des_duration",
	"charge_mode", "is_charging", "is_service_station",
}

// LoadCSV parses the activity table at path. Rows must appear in ascending,
// dense id order (id 0 is DAWN, the last row is DUSK) since dp.NewContext
// requires a dense table.
func LoadCSV(path string) ([]model.Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[h] = i
	}
	for _, want := range wantHeader {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("activities csv: missing column %q", want)
		}
	}

	var out []model.Activity
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		a, perr := parseRow(rec, cols)
		if perr != nil {
			return nil, perr
		}
		out = append(out, a)
	}
	return out, nil
}

func parseRow(rec []string, cols map[string]int) (model.Activity, error) {
	get := func(name string) string { return rec[cols[name]] }
	atoi := func(name string) (int, error) { return strconv.Atoi(get(name)) }
	atof := func(name string) (float64, error) { return strconv.ParseFloat(get(name), 64) }

	id, err := atoi("id")
	if err != nil {
		return model.Activity{}, fmt.Errorf("activity row: bad id: %w", err)
	}
	x, err := atof("x")
	if err != nil {
		return model.Activity{}, fmt.Errorf("activity %d: bad x: %w", id, err)
	}
	y, err := atof("y")
	if err != nil {
		return model.Activity{}, fmt.Errorf("activity %d: bad y: %w", id, err)
	}
	group, err := atoi("group")
	if err != nil {
		return model.Activity{}, fmt.Errorf("activity %d: bad group: %w", id, err)
	}
	earliest, err := atoi("earliest_start")
	if err != nil {
		return model.Activity{}, fmt.Errorf("activity %d: bad earliest_start: %w", id, err)
	}
	latest, err := atoi("latest_start")
	if err != nil {
		return model.Activity{}, fmt.Errorf("activity %d: bad latest_start: %w", id, err)
	}
	minDur, err := atoi("min_duration")
	if err != nil {
		return model.Activity{}, fmt.Errorf("activity %d: bad min_duration: %w", id, err)
	}
	maxDur, err := atoi("max_duration")
	if err != nil {
		return model.Activity{}, fmt.Errorf("activity %d: bad max_duration: %w", id, err)
	}
	desStart, err := atoi("des_start_time")
	if err != nil {
		return model.Activity{}, fmt.Errorf("activity %d: bad des_start_time: %w", id, err)
	}
	desDur, err := atoi("des_duration")
	if err != nil {
		return model.Activity{}, fmt.Errorf("activity %d: bad des_duration: %w", id, err)
	}
	isCharging := get("is_charging") == "1" || get("is_charging") == "true"
	isServiceStation := get("is_service_station") == "1" || get("is_service_station") == "true"

	return model.Activity{
		ID:               id,
		Label:            get("label"),
		Kind:             model.ParseActivityKind(get("kind")),
		X:                x,
		Y:                y,
		Group:            group,
		EarliestStart:    earliest,
		LatestStart:      latest,
		MinDuration:      minDur,
		MaxDuration:      maxDur,
		DesStartTime:     desStart,
		DesDuration:      desDur,
		ChargeMode:       model.ParseChargeMode(get("charge_mode")),
		IsCharging:       isCharging,
		IsServiceStation: isServiceStation,
	}, nil
}
