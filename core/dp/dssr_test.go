package dp

import (
	"testing"

	"github.com/kilianp07/daystep/core/model"
)

// buildChain links labels via Previous in the order given and returns the
// last one, so tests can hand-construct a back-chain without running Solve.
func buildChain(labels ...*model.Label) *model.Label {
	for i := 1; i < len(labels); i++ {
		labels[i].Previous = labels[i-1]
	}
	return labels[len(labels)-1]
}

func TestFindCycleDetectsRepeatedGroup(t *testing.T) {
	dawn := &model.Activity{ID: 0, Group: 0}
	shopA := &model.Activity{ID: 3, Group: 5}
	leisure := &model.Activity{ID: 4, Group: 2}
	shopB := &model.Activity{ID: 5, Group: 5} // same group as shopA, different id
	dusk := &model.Activity{ID: 6, Group: 0}

	best := buildChain(
		&model.Label{ActID: 0, Act: dawn},
		&model.Label{ActID: 3, Act: shopA},
		&model.Label{ActID: 4, Act: leisure},
		&model.Label{ActID: 5, Act: shopB},
		&model.Label{ActID: 6, Act: dusk},
	)

	p1, p2, found := findCycle(best)
	if !found {
		t.Fatalf("expected a cycle to be detected")
	}
	chain := best.Chain()
	if chain[p1].Act.Group != chain[p2].Act.Group {
		t.Fatalf("expected p1 and p2 to share a group")
	}
	if chain[p1].ActID == chain[p2].ActID {
		t.Fatalf("expected p1 and p2 to be different activities")
	}
}

func TestFindCycleNoneWhenElementary(t *testing.T) {
	dawn := &model.Activity{ID: 0, Group: 0}
	work := &model.Activity{ID: 1, Group: 6}
	shop := &model.Activity{ID: 2, Group: 5}
	dusk := &model.Activity{ID: 3, Group: 0}

	best := buildChain(
		&model.Label{ActID: 0, Act: dawn},
		&model.Label{ActID: 1, Act: work},
		&model.Label{ActID: 2, Act: shop},
		&model.Label{ActID: 3, Act: dusk},
	)

	if _, _, found := findCycle(best); found {
		t.Fatalf("expected no cycle in an already-elementary chain")
	}
}

func TestTightenMemoryMarksIntermediateActivities(t *testing.T) {
	ctx := &Context{Activities: []model.Activity{
		{ID: 0, Group: 0},
		{ID: 1, Group: 5},
		{ID: 2, Group: 2},
		{ID: 3, Group: 5},
		{ID: 4, Group: 0},
	}}
	shopA := &ctx.Activities[1]
	leisure := &ctx.Activities[2]
	shopB := &ctx.Activities[3]
	dawn := &ctx.Activities[0]
	dusk := &ctx.Activities[4]

	best := buildChain(
		&model.Label{ActID: 0, Act: dawn},
		&model.Label{ActID: 1, Act: shopA},
		&model.Label{ActID: 2, Act: leisure},
		&model.Label{ActID: 3, Act: shopB},
		&model.Label{ActID: 4, Act: dusk},
	)

	p1, p2, found := findCycle(best)
	if !found {
		t.Fatalf("expected a cycle to be detected")
	}
	tightenMemory(ctx, best, p1, p2, 1)

	if !ctx.Activities[2].Memory.Contains(5) {
		t.Fatalf("expected the intermediate leisure activity to be forbidden group 5")
	}
	if ctx.Activities[1].Memory != 0 || ctx.Activities[3].Memory != 0 {
		t.Fatalf("expected only the intermediate activity to be marked, not the endpoints")
	}
}
