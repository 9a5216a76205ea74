// Package pipeline ties the scheduling kernel's stages together behind a
// single call: Run. It walks the state machine Parsed -> FlowBuilt ->
// Saturated -> Extracted -> ConflictBuilt -> Colored -> Scheduled,
// delegating each transition to the flowgraph/maxflow/capacity/assign/
// conflict/coloring/timetable packages.
package pipeline

import (
	"fmt"

	"github.com/FrederikvSvane/bachelor-projekt/internal/court/assign"
	"github.com/FrederikvSvane/bachelor-projekt/internal/court/capacity"
	"github.com/FrederikvSvane/bachelor-projekt/internal/court/coloring"
	"github.com/FrederikvSvane/bachelor-projekt/internal/court/conflict"
	"github.com/FrederikvSvane/bachelor-projekt/internal/court/flowgraph"
	"github.com/FrederikvSvane/bachelor-projekt/internal/court/maxflow"
	"github.com/FrederikvSvane/bachelor-projekt/internal/court/model"
	"github.com/FrederikvSvane/bachelor-projekt/internal/court/timetable"
)

// Stage names a state-machine transition, for Observer hooks.
type Stage string

const (
	StageParsed        Stage = "Parsed"
	StageFlowBuilt     Stage = "FlowBuilt"
	StageSaturated     Stage = "Saturated"
	StageExtracted     Stage = "Extracted"
	StageConflictBuilt Stage = "ConflictBuilt"
	StageColored       Stage = "Colored"
	StageScheduled     Stage = "Scheduled"
)

// Observer receives a callback at each stage boundary. It never runs
// inside an algorithmic inner loop (BFS, DSATUR) — only between stages —
// so a slow or blocking Observer only adds latency between stages, never
// inside one. Callers that don't need observability pass nil.
type Observer struct {
	OnStage func(stage Stage, detail string)
}

func (o *Observer) notify(stage Stage, detail string) {
	if o != nil && o.OnStage != nil {
		o.OnStage(stage, detail)
	}
}

// Run executes the full scheduling pipeline for req and returns the
// resulting appointments, or a sentinel error from model/errors.go
// wrapped with stage context. Run is pure and CPU-bound: no I/O, no
// goroutines, no blocking. obs may be nil.
func Run(req model.ScheduleRequest, obs *Observer) (model.ScheduleResult, error) {
	if err := validate(req); err != nil {
		return model.ScheduleResult{}, err
	}
	obs.notify(StageParsed, fmt.Sprintf("%d meetings, %d judges, %d rooms", len(req.Meetings), len(req.Judges), len(req.Rooms)))

	triples, flowValue, err := runStrategy(req, obs)
	if err != nil {
		return model.ScheduleResult{FlowValue: flowValue}, err
	}
	if len(triples) < len(req.Meetings) {
		return model.ScheduleResult{Appointments: nil, FlowValue: flowValue},
			fmt.Errorf("pipeline: %w: matched %d of %d meetings", assign.ErrIncompleteExtraction, len(triples), len(req.Meetings))
	}
	obs.notify(StageExtracted, fmt.Sprintf("%d triples", len(triples)))

	cg := conflict.Build(triples)
	obs.notify(StageConflictBuilt, fmt.Sprintf("%d vertices", cg.NumVertices()))

	colors, err := coloring.Color(cg)
	if err != nil {
		return model.ScheduleResult{FlowValue: flowValue}, fmt.Errorf("pipeline: %w", err)
	}
	obs.notify(StageColored, fmt.Sprintf("%d colors used", countColors(colors)))

	appointments := timetable.Build(triples, colors, req.DayConfig)
	obs.notify(StageScheduled, fmt.Sprintf("%d appointments", len(appointments)))

	return model.ScheduleResult{Appointments: appointments, FlowValue: flowValue}, nil
}

func validate(req model.ScheduleRequest) error {
	if len(req.Meetings) == 0 {
		return fmt.Errorf("pipeline: %w: no meetings", model.ErrInvalidInput)
	}
	if len(req.Judges) == 0 || len(req.Rooms) == 0 {
		return fmt.Errorf("pipeline: %w: no judges or no rooms", model.ErrInvalidInput)
	}
	if len(req.Meetings) > flowgraph.MaxEntities || len(req.Judges) > flowgraph.MaxEntities || len(req.Rooms) > flowgraph.MaxEntities {
		return model.ErrTooManyEntities
	}
	if req.DayConfig.Granularity <= 0 || req.DayConfig.MinutesPerDay <= 0 || req.DayConfig.WorkDays <= 0 {
		return fmt.Errorf("pipeline: %w: day config fields must be positive", model.ErrInvalidInput)
	}
	if req.DayConfig.SlotsPerDay() <= 0 {
		return fmt.Errorf("pipeline: %w: granularity does not leave any usable slots per day", model.ErrInvalidInput)
	}
	return nil
}

// runStrategy dispatches to the flow-graph construction and solve for
// req.Strategy, returning the extracted triples and the achieved flow
// value (populated even on a sub-maximal/infeasible result, for
// diagnostics).
func runStrategy(req model.ScheduleRequest, obs *Observer) ([]model.Triple, int, error) {
	switch req.Strategy {
	case model.Combined:
		return runCombined(req, obs)
	case model.TwoStage:
		return runTwoStage(req, obs)
	case model.Layered:
		return runLayered(req, obs)
	default:
		return nil, 0, fmt.Errorf("pipeline: %w: unknown strategy %v", model.ErrInvalidInput, req.Strategy)
	}
}

func runCombined(req model.ScheduleRequest, obs *Observer) ([]model.Triple, int, error) {
	caps := capacity.Estimate(req.Meetings, req.Judges)
	g, layout, err := flowgraph.BuildCombined(req.Meetings, req.Judges, req.Rooms, caps, flowgraph.CombinedOptions{EnforceVirtualMatch: true})
	if err != nil {
		return nil, 0, fmt.Errorf("pipeline: %w", err)
	}
	obs.notify(StageFlowBuilt, fmt.Sprintf("combined graph: %d nodes, %d edges", g.NumNodes(), len(g.Edges)))

	result := maxflow.Solve(g)
	obs.notify(StageSaturated, fmt.Sprintf("flow value %d", result.FlowValue))

	triples := assign.FromCombined(g, layout, req.Meetings, req.Judges, req.Rooms)
	return triples, result.FlowValue, nil
}

func runTwoStage(req model.ScheduleRequest, obs *Observer) ([]model.Triple, int, error) {
	caps := capacity.Estimate(req.Meetings, req.Judges)
	b1, b1Layout, err := flowgraph.BuildJudgeMeeting(req.Meetings, req.Judges, caps)
	if err != nil {
		return nil, 0, fmt.Errorf("pipeline: %w", err)
	}
	r1 := maxflow.Solve(b1)
	obs.notify(StageFlowBuilt, fmt.Sprintf("stage B1 graph: %d nodes", b1.NumNodes()))
	obs.notify(StageSaturated, fmt.Sprintf("stage B1 flow value %d", r1.FlowValue))

	pairs := assign.PairsFromJudgeMeeting(b1, b1Layout, req.Meetings, req.Judges)

	b2, b2Layout, err := flowgraph.BuildRoomPair(pairs, req.Rooms)
	if err != nil {
		return nil, r1.FlowValue, fmt.Errorf("pipeline: %w", err)
	}
	r2 := maxflow.Solve(b2)
	obs.notify(StageFlowBuilt, fmt.Sprintf("stage B2 graph: %d nodes", b2.NumNodes()))
	obs.notify(StageSaturated, fmt.Sprintf("stage B2 flow value %d", r2.FlowValue))

	triples := assign.FromTwoStage(b1, b1Layout, pairs, b2, b2Layout, req.Rooms)
	return triples, r2.FlowValue, nil
}

func runLayered(req model.ScheduleRequest, obs *Observer) ([]model.Triple, int, error) {
	g, layout, err := flowgraph.BuildLayered(req.Meetings, req.Judges, req.Rooms)
	if err != nil {
		return nil, 0, fmt.Errorf("pipeline: %w", err)
	}
	obs.notify(StageFlowBuilt, fmt.Sprintf("layered graph: %d nodes, %d edges", g.NumNodes(), len(g.Edges)))

	result := maxflow.Solve(g)
	obs.notify(StageSaturated, fmt.Sprintf("flow value %d", result.FlowValue))

	triples := assign.FromLayered(g, layout, req.Meetings, req.Judges, req.Rooms)
	return triples, result.FlowValue, nil
}

func countColors(colors []int) int {
	seen := make(map[int]bool, len(colors))
	for _, c := range colors {
		seen[c] = true
	}
	return len(seen)
}
