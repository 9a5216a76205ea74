package flowgraph

import (
	"fmt"

	"github.com/FrederikvSvane/bachelor-projekt/internal/court/model"
)

// LayeredLayout exposes the node ranges BuildLayered produced.
type LayeredLayout struct {
	MeetingNode        map[int]int    // meeting id -> node id
	JudgeRoomNode      map[[2]int]int // (judge id, room id) -> node id
	JudgeAggregateNode map[int]int    // judge id -> node id
}

// BuildLayered constructs Strategy C: [source, meetings, (judge,room)
// pairs filtered by virtual-mode match, judge aggregates, sink]. This is
// the strategy spec.md §9 recommends when virtual-mode and skill
// enforcement both matter, since it enforces both unconditionally on the
// meeting->(judge,room) edge.
func BuildLayered(meetings []model.Meeting, judges []model.Judge, rooms []model.Room) (*Graph, *LayeredLayout, error) {
	if len(meetings) > MaxEntities || len(judges) > MaxEntities || len(rooms) > MaxEntities {
		return nil, nil, model.ErrTooManyEntities
	}
	if len(judges) == 0 {
		return nil, nil, fmt.Errorf("flowgraph: %w: layered strategy requires at least one judge", model.ErrInvalidInput)
	}

	// Only judge-room pairs whose virtual modes match are materialized.
	type jrPair struct {
		judge model.Judge
		room  model.Room
	}
	var pairs []jrPair
	for _, j := range judges {
		for _, r := range rooms {
			if j.Virtual == r.Virtual {
				pairs = append(pairs, jrPair{j, r})
			}
		}
	}

	numNodes := 1 + len(meetings) + len(pairs) + len(judges) + 1
	g := newGraph(numNodes)
	layout := &LayeredLayout{
		MeetingNode:        make(map[int]int, len(meetings)),
		JudgeRoomNode:      make(map[[2]int]int, len(pairs)),
		JudgeAggregateNode: make(map[int]int, len(judges)),
	}

	g.Source = g.addNode(Node{Kind: KindSource})
	for _, mt := range meetings {
		layout.MeetingNode[mt.ID] = g.addNode(Node{Kind: KindMeeting, Meeting: mt, Capacity: 1})
	}
	for _, p := range pairs {
		id := g.addNode(Node{Kind: KindJudgeRoom, Judge: p.judge, Room: p.room})
		layout.JudgeRoomNode[[2]int{p.judge.ID, p.room.ID}] = id
	}
	for _, j := range judges {
		layout.JudgeAggregateNode[j.ID] = g.addNode(Node{Kind: KindJudgeAggregate, Judge: j})
	}
	g.Sink = g.addNode(Node{Kind: KindSink})
	g.NumMeetings, g.NumJudges, g.NumRooms = len(meetings), len(judges), len(rooms)

	for _, mt := range meetings {
		g.AddEdge(g.Source, layout.MeetingNode[mt.ID], 1)
	}
	for _, mt := range meetings {
		for _, p := range pairs {
			if p.judge.HasSkill(mt.CaseType) && p.room.Virtual == mt.Virtual {
				g.AddEdge(layout.MeetingNode[mt.ID], layout.JudgeRoomNode[[2]int{p.judge.ID, p.room.ID}], 1)
			}
		}
	}
	for _, p := range pairs {
		g.AddEdge(layout.JudgeRoomNode[[2]int{p.judge.ID, p.room.ID}], layout.JudgeAggregateNode[p.judge.ID], 1)
	}
	aggCap := len(meetings) / len(judges)
	if aggCap == 0 {
		aggCap = 1
	}
	for _, j := range judges {
		g.AddEdge(layout.JudgeAggregateNode[j.ID], g.Sink, aggCap)
	}

	return g, layout, nil
}
