package pipeline

import (
	"errors"
	"testing"

	"github.com/FrederikvSvane/bachelor-projekt/internal/court/model"
)

func dayConfig() model.DayConfig {
	return model.DayConfig{WorkDays: 1, MinutesPerDay: 480, Granularity: 30}
}

// TestRun_ScenarioOne is spec.md §8 scenario 1: a single case with a
// skill-matched judge and a room.
func TestRun_ScenarioOne(t *testing.T) {
	req := model.ScheduleRequest{
		Meetings: []model.Meeting{{ID: 1, Duration: 30, CaseType: model.Straffe}},
		Judges:   []model.Judge{{ID: 1, Skills: map[model.CaseType]bool{model.Straffe: true}}},
		Rooms:    []model.Room{{ID: 1}},
		DayConfig: dayConfig(),
		Strategy:  model.Combined,
	}

	result, err := Run(req, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Appointments) != 1 {
		t.Fatalf("len(Appointments) = %d, want 1", len(result.Appointments))
	}
	want := model.Appointment{MeetingID: 1, JudgeID: 1, RoomID: 1, Day: 0, TimeslotStart: 0, DurationMinutes: 30}
	if result.Appointments[0] != want {
		t.Errorf("appointment = %+v, want %+v", result.Appointments[0], want)
	}
}

// TestRun_ScenarioTwo is scenario 2: two meetings sharing one room must land
// on distinct timeslots.
func TestRun_ScenarioTwo(t *testing.T) {
	for _, strategy := range []model.Strategy{model.Combined, model.TwoStage} {
		req := model.ScheduleRequest{
			Meetings: []model.Meeting{
				{ID: 1, Duration: 30, CaseType: model.Straffe},
				{ID: 2, Duration: 30, CaseType: model.Straffe},
			},
			Judges: []model.Judge{
				{ID: 1, Skills: map[model.CaseType]bool{model.Straffe: true}},
				{ID: 2, Skills: map[model.CaseType]bool{model.Straffe: true}},
			},
			Rooms:     []model.Room{{ID: 1}},
			DayConfig: dayConfig(),
			Strategy:  strategy,
		}

		result, err := Run(req, nil)
		if err != nil {
			t.Fatalf("strategy %v: Run: %v", strategy, err)
		}
		if len(result.Appointments) != 2 {
			t.Fatalf("strategy %v: len(Appointments) = %d, want 2", strategy, len(result.Appointments))
		}
		if result.Appointments[0].TimeslotStart == result.Appointments[1].TimeslotStart {
			t.Errorf("strategy %v: both appointments share a room but got the same timeslot", strategy)
		}
	}
}

// TestRun_ScenarioThree is scenario 3: a skill incompatibility makes the
// request infeasible, and the diagnostic flow value is 0.
func TestRun_ScenarioThree(t *testing.T) {
	req := model.ScheduleRequest{
		Meetings:  []model.Meeting{{ID: 1, CaseType: model.Tvang}},
		Judges:    []model.Judge{{ID: 1, Skills: map[model.CaseType]bool{model.Straffe: true}}},
		Rooms:     []model.Room{{ID: 1}},
		DayConfig: dayConfig(),
		Strategy:  model.Combined,
	}

	result, err := Run(req, nil)
	if !errors.Is(err, model.ErrInfeasibleAssignment) {
		t.Fatalf("err = %v, want ErrInfeasibleAssignment", err)
	}
	if result.FlowValue != 0 {
		t.Errorf("FlowValue = %d, want 0", result.FlowValue)
	}
}

// TestRun_ScenarioFour is scenario 4: Strategy C (Layered) rejects a
// virtual-mode mismatch between a meeting and every candidate room.
func TestRun_ScenarioFour(t *testing.T) {
	req := model.ScheduleRequest{
		Meetings:  []model.Meeting{{ID: 1, CaseType: model.Straffe, Virtual: true}},
		Judges:    []model.Judge{{ID: 1, Skills: map[model.CaseType]bool{model.Straffe: true}, Virtual: true}},
		Rooms:     []model.Room{{ID: 1, Virtual: false}},
		DayConfig: dayConfig(),
		Strategy:  model.Layered,
	}

	_, err := Run(req, nil)
	if !errors.Is(err, model.ErrInfeasibleAssignment) {
		t.Fatalf("err = %v, want ErrInfeasibleAssignment", err)
	}
}

// TestRun_ScenarioFive is scenario 5: 9 meetings, 3 fully-skilled judges, 3
// rooms; every meeting is matched and no timeslot holds more than 3.
func TestRun_ScenarioFive(t *testing.T) {
	allSkills := map[model.CaseType]bool{model.Straffe: true, model.Civile: true, model.Tvang: true}

	var meetings []model.Meeting
	for i := 1; i <= 9; i++ {
		meetings = append(meetings, model.Meeting{ID: i, Duration: 30, CaseType: model.CaseType(i % 3)})
	}
	var judges []model.Judge
	for i := 1; i <= 3; i++ {
		judges = append(judges, model.Judge{ID: i, Skills: allSkills})
	}
	var rooms []model.Room
	for i := 1; i <= 3; i++ {
		rooms = append(rooms, model.Room{ID: i})
	}

	req := model.ScheduleRequest{
		Meetings:  meetings,
		Judges:    judges,
		Rooms:     rooms,
		DayConfig: model.DayConfig{WorkDays: 1, MinutesPerDay: 480, Granularity: 30},
		Strategy:  model.Combined,
	}

	result, err := Run(req, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Appointments) != 9 {
		t.Fatalf("len(Appointments) = %d, want 9", len(result.Appointments))
	}

	perSlot := make(map[[2]int]int)
	for _, a := range result.Appointments {
		perSlot[[2]int{a.Day, a.TimeslotStart}]++
	}
	for slot, count := range perSlot {
		if count > 3 {
			t.Errorf("slot %v has %d appointments, want at most 3 (one per room)", slot, count)
		}
	}
}

func TestRun_EmptyMeetingsIsInvalidInput(t *testing.T) {
	req := model.ScheduleRequest{
		Judges:    []model.Judge{{ID: 1, Skills: map[model.CaseType]bool{model.Straffe: true}}},
		Rooms:     []model.Room{{ID: 1}},
		DayConfig: dayConfig(),
	}
	_, err := Run(req, nil)
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRun_ObserverReceivesEveryStage(t *testing.T) {
	req := model.ScheduleRequest{
		Meetings:  []model.Meeting{{ID: 1, Duration: 30, CaseType: model.Straffe}},
		Judges:    []model.Judge{{ID: 1, Skills: map[model.CaseType]bool{model.Straffe: true}}},
		Rooms:     []model.Room{{ID: 1}},
		DayConfig: dayConfig(),
		Strategy:  model.Combined,
	}

	var stages []Stage
	obs := &Observer{OnStage: func(stage Stage, detail string) { stages = append(stages, stage) }}

	if _, err := Run(req, obs); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []Stage{StageParsed, StageFlowBuilt, StageSaturated, StageExtracted, StageConflictBuilt, StageColored, StageScheduled}
	if len(stages) != len(want) {
		t.Fatalf("got %d stage notifications, want %d: %v", len(stages), len(want), stages)
	}
	for i, s := range want {
		if stages[i] != s {
			t.Errorf("stage[%d] = %v, want %v", i, stages[i], s)
		}
	}
}
