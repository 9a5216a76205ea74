package conflict

import (
	"testing"

	"github.com/FrederikvSvane/bachelor-projekt/internal/court/model"
)

func TestBuild_EdgeOnSharedJudgeOrRoom(t *testing.T) {
	triples := []model.Triple{
		{Meeting: model.Meeting{ID: 1}, Judge: model.Judge{ID: 1}, Room: model.Room{ID: 1}},
		{Meeting: model.Meeting{ID: 2}, Judge: model.Judge{ID: 1}, Room: model.Room{ID: 2}}, // shares judge with 0
		{Meeting: model.Meeting{ID: 3}, Judge: model.Judge{ID: 2}, Room: model.Room{ID: 1}}, // shares room with 0
		{Meeting: model.Meeting{ID: 4}, Judge: model.Judge{ID: 3}, Room: model.Room{ID: 3}}, // shares nothing
	}

	g := Build(triples)

	if !g.AreAdjacent(0, 1) {
		t.Error("vertices sharing a judge should be adjacent")
	}
	if !g.AreAdjacent(0, 2) {
		t.Error("vertices sharing a room should be adjacent")
	}
	if g.AreAdjacent(0, 3) {
		t.Error("vertices sharing neither should not be adjacent")
	}
	if g.AreAdjacent(1, 2) {
		t.Error("vertex 1 and 2 share neither judge nor room")
	}
}

func TestBuild_OneRoomIsComplete(t *testing.T) {
	var triples []model.Triple
	for i := 1; i <= 5; i++ {
		triples = append(triples, model.Triple{
			Meeting: model.Meeting{ID: i},
			Judge:   model.Judge{ID: i},
			Room:    model.Room{ID: 1},
		})
	}
	g := Build(triples)
	for i := 0; i < g.NumVertices(); i++ {
		if got := g.Degree(i); got != g.NumVertices()-1 {
			t.Errorf("vertex %d degree = %d, want %d (complete graph over a single shared room)", i, got, g.NumVertices()-1)
		}
	}
}

func TestBuild_PreservesInputOrder(t *testing.T) {
	triples := []model.Triple{
		{Meeting: model.Meeting{ID: 7}},
		{Meeting: model.Meeting{ID: 3}},
	}
	g := Build(triples)
	if g.Triples[0].Meeting.ID != 7 || g.Triples[1].Meeting.ID != 3 {
		t.Error("Build must preserve input vertex order")
	}
}
