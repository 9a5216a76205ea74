// Package assign reads saturated flowgraph.Graph values back into
// model.Triple matches. Each strategy lays its graph out differently, so
// each gets its own extractor, but all three agree on what "saturated"
// means: a forward edge with positive Capacity whose Flow has reached it.
package assign

import (
	"fmt"

	"github.com/FrederikvSvane/bachelor-projekt/internal/court/flowgraph"
	"github.com/FrederikvSvane/bachelor-projekt/internal/court/model"
)

func saturated(g *flowgraph.Graph, from, to int) bool {
	idx, ok := g.EdgeIndex(from, to)
	if !ok {
		return false
	}
	e := g.Edge(idx)
	return !e.Reverse && e.Flow >= e.Capacity && e.Capacity > 0
}

// FromCombined extracts one Triple per meeting that received both a judge
// and a room in a solved Strategy A graph. A meeting saturated on only one
// side (judge assigned but no room, or vice versa) is dropped rather than
// reported as a partial match; the caller compares len(result) against
// len(meetings) to detect infeasibility.
func FromCombined(g *flowgraph.Graph, layout *flowgraph.CombinedLayout, meetings []model.Meeting, judges []model.Judge, rooms []model.Room) []model.Triple {
	judgeByID := indexJudges(judges)
	roomByID := indexRooms(rooms)

	var triples []model.Triple
	for _, mt := range meetings {
		meetingIn := layout.MeetingIn[mt.ID]
		meetingOut := layout.MeetingOut[mt.ID]

		var matchedJudge model.Judge
		var haveJudge bool
		for jid, jnode := range layout.JudgeNode {
			if saturated(g, jnode, meetingIn) {
				matchedJudge = judgeByID[jid]
				haveJudge = true
				break
			}
		}
		if !haveJudge {
			continue
		}

		var matchedRoom model.Room
		var haveRoom bool
		for rid, rnode := range layout.RoomNode {
			if saturated(g, meetingOut, rnode) {
				matchedRoom = roomByID[rid]
				haveRoom = true
				break
			}
		}
		if !haveRoom {
			continue
		}

		triples = append(triples, model.Triple{Meeting: mt, Judge: matchedJudge, Room: matchedRoom})
	}
	return triples
}

// FromTwoStage joins Stage B1's judge assignments with Stage B2's room
// assignments via the shared pair ID, per spec.md §4.4's two-stage
// extraction rule.
func FromTwoStage(b1 *flowgraph.Graph, b1Layout *flowgraph.JudgeMeetingLayout, pairs []flowgraph.JudgeMeetingPair, b2 *flowgraph.Graph, b2Layout *flowgraph.RoomPairLayout, rooms []model.Room) []model.Triple {
	roomByID := indexRooms(rooms)

	var triples []model.Triple
	for _, p := range pairs {
		pairNode, ok := b2Layout.PairNode[p.ID]
		if !ok {
			continue
		}
		var matchedRoom model.Room
		var haveRoom bool
		for rid, rnode := range b2Layout.RoomNode {
			if saturated(b2, rnode, pairNode) {
				matchedRoom = roomByID[rid]
				haveRoom = true
				break
			}
		}
		if !haveRoom {
			continue
		}
		triples = append(triples, model.Triple{Meeting: p.Meeting, Judge: p.Judge, Room: matchedRoom})
	}
	return triples
}

// PairsFromJudgeMeeting extracts the saturated (judge, meeting) matches of
// a solved Stage B1 graph, assigning each a stable pair ID derived from the
// meeting ID (meetings are unique per request, so this needs no counter).
func PairsFromJudgeMeeting(g *flowgraph.Graph, layout *flowgraph.JudgeMeetingLayout, meetings []model.Meeting, judges []model.Judge) []flowgraph.JudgeMeetingPair {
	judgeByID := indexJudges(judges)

	var pairs []flowgraph.JudgeMeetingPair
	for _, mt := range meetings {
		meetingNode := layout.MeetingNode[mt.ID]
		for jid, jnode := range layout.JudgeNode {
			if saturated(g, jnode, meetingNode) {
				pairs = append(pairs, flowgraph.JudgeMeetingPair{ID: mt.ID, Meeting: mt, Judge: judgeByID[jid]})
				break
			}
		}
	}
	return pairs
}

// FromLayered extracts one Triple per meeting that reached a judge-room
// pair node in a solved Strategy C graph: a meeting's saturated outgoing
// edge identifies both its judge and its room in a single lookup, since
// pair nodes already carry both.
func FromLayered(g *flowgraph.Graph, layout *flowgraph.LayeredLayout, meetings []model.Meeting, judges []model.Judge, rooms []model.Room) []model.Triple {
	judgeByID := indexJudges(judges)
	roomByID := indexRooms(rooms)

	var triples []model.Triple
	for _, mt := range meetings {
		meetingNode, ok := layout.MeetingNode[mt.ID]
		if !ok {
			continue
		}
		for key, pairNode := range layout.JudgeRoomNode {
			if saturated(g, meetingNode, pairNode) {
				triples = append(triples, model.Triple{Meeting: mt, Judge: judgeByID[key[0]], Room: roomByID[key[1]]})
				break
			}
		}
	}
	return triples
}

func indexJudges(judges []model.Judge) map[int]model.Judge {
	m := make(map[int]model.Judge, len(judges))
	for _, j := range judges {
		m[j.ID] = j
	}
	return m
}

func indexRooms(rooms []model.Room) map[int]model.Room {
	m := make(map[int]model.Room, len(rooms))
	for _, r := range rooms {
		m[r.ID] = r
	}
	return m
}

// ErrIncompleteExtraction is returned by callers (pipeline package) when
// the number of extracted triples is less than the number of input
// meetings, signalling an infeasible assignment to the caller.
var ErrIncompleteExtraction = fmt.Errorf("assign: %w", model.ErrInfeasibleAssignment)
