package flowgraph

import (
	"fmt"

	"github.com/FrederikvSvane/bachelor-projekt/internal/court/model"
)

// JudgeMeetingLayout exposes the node ranges of a Stage B1 graph.
type JudgeMeetingLayout struct {
	JudgeNode   map[int]int
	MeetingNode map[int]int
}

// BuildJudgeMeeting constructs Stage B1: [source, judges, meetings, sink].
// Each meeting has a single edge to the sink, which alone bounds it to at
// most one assigned judge by flow conservation — no node split needed.
func BuildJudgeMeeting(meetings []model.Meeting, judges []model.Judge, judgeCapacities map[int]int) (*Graph, *JudgeMeetingLayout, error) {
	if len(meetings) > MaxEntities || len(judges) > MaxEntities {
		return nil, nil, model.ErrTooManyEntities
	}
	if len(judges) == 0 {
		return nil, nil, fmt.Errorf("flowgraph: %w: two-stage strategy requires at least one judge", model.ErrInvalidInput)
	}

	g := newGraph(1 + len(judges) + len(meetings) + 1)
	layout := &JudgeMeetingLayout{
		JudgeNode:   make(map[int]int, len(judges)),
		MeetingNode: make(map[int]int, len(meetings)),
	}

	g.Source = g.addNode(Node{Kind: KindSource})
	for _, j := range judges {
		layout.JudgeNode[j.ID] = g.addNode(Node{Kind: KindJudge, Judge: j})
	}
	for _, mt := range meetings {
		layout.MeetingNode[mt.ID] = g.addNode(Node{Kind: KindMeeting, Meeting: mt, Capacity: 1})
	}
	g.Sink = g.addNode(Node{Kind: KindSink})
	g.NumMeetings, g.NumJudges = len(meetings), len(judges)

	for _, j := range judges {
		g.AddEdge(g.Source, layout.JudgeNode[j.ID], judgeCapacities[j.ID])
	}
	for _, j := range judges {
		for _, mt := range meetings {
			if j.HasSkill(mt.CaseType) {
				g.AddEdge(layout.JudgeNode[j.ID], layout.MeetingNode[mt.ID], 1)
			}
		}
	}
	for _, mt := range meetings {
		g.AddEdge(layout.MeetingNode[mt.ID], g.Sink, 1)
	}

	return g, layout, nil
}

// JudgeMeetingPair is a single saturated (judge, meeting) match extracted
// from a solved Stage B1 graph; it is the input to Stage B2.
type JudgeMeetingPair struct {
	ID      int
	Meeting model.Meeting
	Judge   model.Judge
}

// RoomPairLayout exposes the node ranges of a Stage B2 graph.
type RoomPairLayout struct {
	RoomNode map[int]int
	PairNode map[int]int // pair.ID -> node id
}

// BuildRoomPair constructs Stage B2: [source, rooms, pairs, sink], ranging
// over the judge-meeting pairs Stage B1 produced. Every pair has a single
// edge to the sink, bounding it to at most one room by flow conservation.
func BuildRoomPair(pairs []JudgeMeetingPair, rooms []model.Room) (*Graph, *RoomPairLayout, error) {
	if len(pairs) > MaxEntities || len(rooms) > MaxEntities {
		return nil, nil, model.ErrTooManyEntities
	}
	if len(rooms) == 0 {
		return nil, nil, fmt.Errorf("flowgraph: %w: two-stage strategy requires at least one room", model.ErrInvalidInput)
	}

	g := newGraph(1 + len(rooms) + len(pairs) + 1)
	layout := &RoomPairLayout{
		RoomNode: make(map[int]int, len(rooms)),
		PairNode: make(map[int]int, len(pairs)),
	}

	g.Source = g.addNode(Node{Kind: KindSource})
	for _, r := range rooms {
		layout.RoomNode[r.ID] = g.addNode(Node{Kind: KindRoom, Room: r})
	}
	for _, p := range pairs {
		layout.PairNode[p.ID] = g.addNode(Node{Kind: KindJudgeMeeting, Judge: p.Judge, Meeting: p.Meeting, Capacity: 1})
	}
	g.Sink = g.addNode(Node{Kind: KindSink})
	g.NumRooms = len(rooms)

	roomCap := len(pairs) / len(rooms)
	if len(pairs)%len(rooms) != 0 {
		roomCap++
	}
	for _, r := range rooms {
		g.AddEdge(g.Source, layout.RoomNode[r.ID], roomCap)
	}
	for _, r := range rooms {
		for _, p := range pairs {
			g.AddEdge(layout.RoomNode[r.ID], layout.PairNode[p.ID], 1)
		}
	}
	for _, p := range pairs {
		g.AddEdge(layout.PairNode[p.ID], g.Sink, 1)
	}

	return g, layout, nil
}
