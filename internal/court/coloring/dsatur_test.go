package coloring

import (
	"testing"

	"github.com/FrederikvSvane/bachelor-projekt/internal/court/conflict"
	"github.com/FrederikvSvane/bachelor-projekt/internal/court/model"
)

func TestColor_ProperOnCompleteGraph(t *testing.T) {
	var triples []model.Triple
	for i := 1; i <= 4; i++ {
		triples = append(triples, model.Triple{Room: model.Room{ID: 1}, Judge: model.Judge{ID: i}})
	}
	cg := conflict.Build(triples)

	colors, err := Color(cg)
	if err != nil {
		t.Fatalf("Color: %v", err)
	}

	seen := map[int]bool{}
	for _, c := range colors {
		if seen[c] {
			t.Fatalf("a complete graph's coloring must use a distinct color per vertex, got %v", colors)
		}
		seen[c] = true
	}
	if len(seen) != 4 {
		t.Errorf("used %d colors, want 4 for a 4-clique", len(seen))
	}
}

func TestColor_NoConflictsOnEmptyGraph(t *testing.T) {
	triples := []model.Triple{
		{Judge: model.Judge{ID: 1}, Room: model.Room{ID: 1}},
		{Judge: model.Judge{ID: 2}, Room: model.Room{ID: 2}},
	}
	cg := conflict.Build(triples)

	colors, err := Color(cg)
	if err != nil {
		t.Fatalf("Color: %v", err)
	}
	if colors[0] != 0 || colors[1] != 0 {
		t.Errorf("two non-conflicting vertices should both get color 0, got %v", colors)
	}
}

func TestColor_ProperForEveryEdge(t *testing.T) {
	triples := []model.Triple{
		{Judge: model.Judge{ID: 1}, Room: model.Room{ID: 1}},
		{Judge: model.Judge{ID: 1}, Room: model.Room{ID: 2}},
		{Judge: model.Judge{ID: 2}, Room: model.Room{ID: 1}},
		{Judge: model.Judge{ID: 3}, Room: model.Room{ID: 3}},
	}
	cg := conflict.Build(triples)

	colors, err := Color(cg)
	if err != nil {
		t.Fatalf("Color: %v", err)
	}
	for i := 0; i < cg.NumVertices(); i++ {
		for _, j := range cg.Neighbors(i) {
			if colors[i] == colors[j] {
				t.Errorf("adjacent vertices %d,%d both colored %d", i, j, colors[i])
			}
		}
	}
}
