package dp

import "github.com/kilianp07/daystep/core/model"

// Bucket is the H×N label store: cell [t][a] holds every surviving,
// mutually non-dominated label ending at interval t on activity a. The
// original engine backs each cell with a doubly linked list so a removal
// under dominance is O(1); a Go slice with a GC-managed backing array gives
// the same amortised behaviour without manual node bookkeeping, so that is
// what Bucket uses (spec.md Design Notes: "Copying on free is simplest and
// fast enough given labels are small").
type Bucket struct {
	cells [][][]*model.Label
	h, n  int
}

// NewBucket allocates an empty H×N grid of label lists.
func NewBucket(h, n int) *Bucket {
	cells := make([][][]*model.Label, h)
	for t := range cells {
		cells[t] = make([][]*model.Label, n)
	}
	return &Bucket{cells: cells, h: h, n: n}
}

// Labels returns the current residents of cell (t, a). The returned slice
// aliases the bucket's storage; callers must not retain it across an Insert
// into the same cell.
func (b *Bucket) Labels(t, a int) []*model.Label {
	return b.cells[t][a]
}

// Horizon and Activities report the bucket's dimensions.
func (b *Bucket) Horizon() int    { return b.h }
func (b *Bucket) Activities() int { return b.n }

// Insert adds candidate to cell (t, a) under dominance: if any resident
// dominates candidate, candidate is discarded and Insert returns false.
// Otherwise every resident that candidate dominates is dropped and
// candidate is appended, and Insert returns true.
//
// This is deliberately two passes over the cell rather than one combined
// compact-and-check loop: a single pass that both tests "is candidate
// dominated" and compacts the slice in place would, on finding a dominating
// resident partway through, have already overwritten part of the cell's
// backing array — corrupting the bucket on the very path where it must
// stay untouched.
func (b *Bucket) Insert(t, a int, candidate *model.Label) bool {
	cell := b.cells[t][a]
	for _, resident := range cell {
		if Dominates(resident, candidate) {
			return false
		}
	}
	kept := cell[:0]
	for _, resident := range cell {
		if !Dominates(candidate, resident) {
			kept = append(kept, resident)
		}
	}
	kept = append(kept, candidate)
	b.cells[t][a] = kept
	return true
}

// Reset clears every cell, discarding all labels. Solve calls it before
// every DSSR sweep, so one Bucket serves the whole solve; the cells' backing
// arrays are dropped, not recycled.
func (b *Bucket) Reset() {
	for t := range b.cells {
		for a := range b.cells[t] {
			b.cells[t][a] = nil
		}
	}
}
