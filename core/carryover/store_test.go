package carryover

import "testing"

func TestMemoryStore_SetGet(t *testing.T) {
	s := NewMemoryStore()
	s.Set(Entry{PersonID: "p1", Day: 0, SoC: 0.62, Feasible: true})

	e, ok := s.Get("p1")
	if !ok {
		t.Fatalf("expected entry for p1")
	}
	if e.Day != 0 || e.SoC != 0.62 || !e.Feasible {
		t.Fatalf("unexpected entry: %#v", e)
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.Get("nobody"); ok {
		t.Fatalf("expected no entry for an unknown person")
	}
}

func TestMemoryStore_SetOverwritesLatest(t *testing.T) {
	s := NewMemoryStore()
	s.Set(Entry{PersonID: "p1", Day: 0, SoC: 0.8, Feasible: true})
	s.Set(Entry{PersonID: "p1", Day: 1, SoC: 0.55, Feasible: false})

	e, ok := s.Get("p1")
	if !ok {
		t.Fatalf("expected entry for p1")
	}
	if e.Day != 1 || e.SoC != 0.55 || e.Feasible {
		t.Fatalf("expected day 1's entry to replace day 0's, got %#v", e)
	}
}
