package flowgraph

import (
	"fmt"
	"math"

	"github.com/FrederikvSvane/bachelor-projekt/internal/court/model"
)

// CombinedOptions configures Strategy A's meeting->room edge. The original
// implementation's variants disagree on whether this edge enforces
// virtual-mode matching; spec.md §9 Open Questions leaves this as
// configuration rather than guessing intent.
type CombinedOptions struct {
	// EnforceVirtualMatch restricts meeting->room edges to pairs where
	// room.Virtual == meeting.Virtual.
	EnforceVirtualMatch bool
}

// meetingSplit records the pair of physical nodes standing in for one
// logical MeetingWrap(capacity=1) node, per the node-split transformation
// spec.md §4.2 recommends for Strategy A.
type meetingSplit struct {
	In, Out int
}

// CombinedLayout exposes the node ranges BuildCombined produced, so the
// assignment extractor doesn't need to re-derive offsets.
type CombinedLayout struct {
	JudgeNode   map[int]int // judge id -> node id
	MeetingIn   map[int]int // meeting id -> node id
	MeetingOut  map[int]int // meeting id -> node id
	RoomNode    map[int]int // room id -> node id
}

// BuildCombined constructs Strategy A: [source, judges, meetingIn,
// meetingOut, rooms, sink]. judgeCapacities is the skill-weighted fair
// share from the capacity package, keyed by judge id. Each logical meeting
// node is physically split into an "in" and "out" node joined by a
// capacity-1 edge, enforcing the node capacity the original implementation
// checked inline during BFS (spec.md §4.2's node-capacity variant).
func BuildCombined(meetings []model.Meeting, judges []model.Judge, rooms []model.Room, judgeCapacities map[int]int, opts CombinedOptions) (*Graph, *CombinedLayout, error) {
	if len(meetings) > MaxEntities || len(judges) > MaxEntities || len(rooms) > MaxEntities {
		return nil, nil, model.ErrTooManyEntities
	}
	if len(judges) == 0 || len(rooms) == 0 {
		return nil, nil, fmt.Errorf("flowgraph: %w: combined strategy requires at least one judge and one room", model.ErrInvalidInput)
	}

	numNodes := 1 + len(judges) + 2*len(meetings) + len(rooms) + 1
	g := newGraph(numNodes)
	layout := &CombinedLayout{
		JudgeNode:  make(map[int]int, len(judges)),
		MeetingIn:  make(map[int]int, len(meetings)),
		MeetingOut: make(map[int]int, len(meetings)),
		RoomNode:   make(map[int]int, len(rooms)),
	}

	g.Source = g.addNode(Node{Kind: KindSource})

	for _, j := range judges {
		id := g.addNode(Node{Kind: KindJudge, Judge: j})
		layout.JudgeNode[j.ID] = id
	}
	for _, mt := range meetings {
		inID := g.addNode(Node{Kind: KindMeeting, Meeting: mt, Capacity: 1})
		layout.MeetingIn[mt.ID] = inID
	}
	for _, mt := range meetings {
		outID := g.addNode(Node{Kind: KindMeeting, Meeting: mt, Capacity: 1})
		layout.MeetingOut[mt.ID] = outID
	}
	for _, r := range rooms {
		id := g.addNode(Node{Kind: KindRoom, Room: r})
		layout.RoomNode[r.ID] = id
	}
	g.Sink = g.addNode(Node{Kind: KindSink})

	g.NumMeetings, g.NumJudges, g.NumRooms = len(meetings), len(judges), len(rooms)

	for _, j := range judges {
		g.AddEdge(g.Source, layout.JudgeNode[j.ID], judgeCapacities[j.ID])
	}
	for _, j := range judges {
		for _, mt := range meetings {
			if j.HasSkill(mt.CaseType) {
				g.AddEdge(layout.JudgeNode[j.ID], layout.MeetingIn[mt.ID], 1)
			}
		}
	}
	for _, mt := range meetings {
		g.AddEdge(layout.MeetingIn[mt.ID], layout.MeetingOut[mt.ID], 1)
	}
	for _, mt := range meetings {
		for _, r := range rooms {
			if opts.EnforceVirtualMatch && r.Virtual != mt.Virtual {
				continue
			}
			g.AddEdge(layout.MeetingOut[mt.ID], layout.RoomNode[r.ID], 1)
		}
	}
	roomCap := int(math.Ceil(float64(len(meetings))/float64(len(rooms)))) + 1
	for _, r := range rooms {
		g.AddEdge(layout.RoomNode[r.ID], g.Sink, roomCap)
	}

	return g, layout, nil
}
