package capacity

import (
	"testing"

	"github.com/FrederikvSvane/bachelor-projekt/internal/court/model"
)

// TestEstimate_ScenarioSix is spec.md §8 scenario 6: 3 Straffe meetings, two
// judges with overlapping skills. W(Straffe) = (3-2+1)+(3-1+1) = 5;
// j1's share = 2/5*3 = 1.2 -> 1, j2's share = 3/5*3 = 1.8 -> 2.
func TestEstimate_ScenarioSix(t *testing.T) {
	meetings := []model.Meeting{
		{ID: 1, CaseType: model.Straffe},
		{ID: 2, CaseType: model.Straffe},
		{ID: 3, CaseType: model.Straffe},
	}
	judges := []model.Judge{
		{ID: 1, Skills: map[model.CaseType]bool{model.Straffe: true, model.Civile: true}},
		{ID: 2, Skills: map[model.CaseType]bool{model.Straffe: true}},
	}

	got := Estimate(meetings, judges)
	if got[1] != 1 {
		t.Errorf("j1 capacity = %d, want 1", got[1])
	}
	if got[2] != 2 {
		t.Errorf("j2 capacity = %d, want 2", got[2])
	}
}

func TestEstimate_ClampsToAtLeastOneForAnySkilledJudge(t *testing.T) {
	meetings := []model.Meeting{{ID: 1, CaseType: model.Tvang}}
	judges := []model.Judge{
		{ID: 1, Skills: map[model.CaseType]bool{model.Straffe: true}},
	}
	got := Estimate(meetings, judges)
	if got[1] != 1 {
		t.Errorf("capacity for a skilled judge with zero assigned load = %d, want 1", got[1])
	}
}

func TestEstimate_EmptyJudges(t *testing.T) {
	got := Estimate(nil, nil)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
