// Package schedulelog persists the schedules RunMultiDay produces, one
// record per person-day, and supports querying them back. It is adapted
// from the teacher's dispatch log store: a dispatch decision record becomes
// a solved-day record.
package schedulelog

import (
	"context"
	"time"

	"github.com/kilianp07/daystep/core/dp"
)

// Record captures one day's solve outcome for one person.
type Record struct {
	Timestamp             time.Time          `json:"timestamp"`
	RunID                 string             `json:"run_id"`
	PersonID              string             `json:"person_id"`
	Day                   int                `json:"day"`
	Feasible              bool               `json:"feasible"`
	UtilityBest           float64            `json:"utility_best"`
	ChargeCostTotal       float64            `json:"charge_cost_total"`
	DSSRIterations        int                `json:"dssr_iterations"`
	PossiblyNonElementary bool               `json:"possibly_non_elementary"`
	Schedule              []dp.ScheduleEntry `json:"schedule"`
}

// Query filters records returned by Store.Query.
type Query struct {
	Start    time.Time
	End      time.Time
	PersonID string
}

// Store persists Records and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}
