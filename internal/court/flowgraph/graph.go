// Package flowgraph builds the layered capacitated digraph the max-flow
// solver runs over. Nodes are a tagged union rather than a class
// hierarchy: a single Node value carries a Kind discriminator and only
// the payload fields that kind uses. Edges live in one append-only slice
// indexed by integer EdgeID; the adjacency map stores (from,to) -> EdgeID,
// never a pointer into the slice, so a slice reallocation can never
// invalidate a stored reference (the hazard the original C++ adjacency
// map of raw Edge* pointers is exposed to).
package flowgraph

import "github.com/FrederikvSvane/bachelor-projekt/internal/court/model"

// MaxEntities bounds the size of any single meetings/judges/rooms list a
// builder will accept.
const MaxEntities = 1 << 31

// NodeKind discriminates the payload a Node carries.
type NodeKind int

const (
	KindSource NodeKind = iota
	KindSink
	KindJudge
	KindRoom
	KindMeeting
	KindJudgeRoom
	KindJudgeMeeting
	KindJudgeAggregate
)

// Node is a tagged-union vertex. Only the fields relevant to Kind are
// populated; all others are zero.
type Node struct {
	ID      int
	Kind    NodeKind
	Judge   model.Judge
	Room    model.Room
	Meeting model.Meeting

	// Capacity records a node's intended logical bound for diagnostics and
	// extraction (e.g. a meeting's capacity is always 1). It is metadata
	// only: the bound itself is enforced by the node-split edge a builder
	// introduces for the node (see flowgraph.BuildCombined), never by the
	// solver reading this field.
	Capacity int
}

// Edge is a directed, capacitated arc stored by value in Graph.Edges.
// Mate holds the index of its paired residual edge: for a forward edge,
// Mate points at the reverse edge created alongside it, and vice versa.
type Edge struct {
	From, To int
	Capacity int
	Flow     int
	Mate     int
	Reverse  bool // true if this edge is the synthetic residual counterpart
}

// Graph is a layered capacitated digraph with a designated source (node 0)
// and sink (last node). It owns its nodes and edges for its lifetime;
// everything returned by its lookup methods is a borrowed view.
type Graph struct {
	Nodes []Node
	Edges []Edge

	// index maps (from,to) to an index into Edges for O(1) lookup.
	index map[[2]int]int

	// adj[u] lists the indices of every edge (forward or residual) leaving
	// u, in insertion order. Populated exclusively by AddEdge.
	adj [][]int

	Source int
	Sink   int

	NumMeetings int
	NumJudges   int
	NumRooms    int
}

// newGraph allocates an empty Graph sized for numNodes. Exported as New
// for callers outside this package that need to build an ad hoc graph
// (tests, or a future fourth strategy) without going through one of the
// Build* functions.
func newGraph(numNodes int) *Graph {
	return &Graph{
		Nodes: make([]Node, 0, numNodes),
		Edges: make([]Edge, 0, numNodes*2),
		index: make(map[[2]int]int, numNodes*2),
		adj:   make([][]int, numNodes),
	}
}

// New allocates an empty Graph sized for numNodes.
func New(numNodes int) *Graph { return newGraph(numNodes) }

func (g *Graph) addNode(n Node) int {
	n.ID = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	if len(g.adj) < len(g.Nodes) {
		g.adj = append(g.adj, nil)
	}
	return n.ID
}

// AddNode appends a node of the given kind and returns its ID.
func (g *Graph) AddNode(kind NodeKind) int { return g.addNode(Node{Kind: kind}) }

// AddEdge appends a forward edge of the given capacity plus its zero-
// capacity reverse residual, wiring each as the other's Mate. Calling code
// should use this exclusively; the solver mutates flow through the
// returned indices, never by allocating new edges.
func (g *Graph) AddEdge(from, to, capacity int) (fwd, rev int) {
	fwdIdx := len(g.Edges)
	g.Edges = append(g.Edges, Edge{From: from, To: to, Capacity: capacity, Mate: fwdIdx + 1})
	revIdx := len(g.Edges)
	g.Edges = append(g.Edges, Edge{From: to, To: from, Capacity: 0, Mate: fwdIdx, Reverse: true})

	g.index[[2]int{from, to}] = fwdIdx
	g.index[[2]int{to, from}] = revIdx
	g.adj[from] = append(g.adj[from], fwdIdx)
	g.adj[to] = append(g.adj[to], revIdx)
	return fwdIdx, revIdx
}

// EdgeIndex returns the index of the edge from->to, and whether it exists.
func (g *Graph) EdgeIndex(from, to int) (int, bool) {
	idx, ok := g.index[[2]int{from, to}]
	return idx, ok
}

// Edge returns a copy of the edge at idx.
func (g *Graph) Edge(idx int) Edge { return g.Edges[idx] }

// OutEdges returns the indices of every edge (forward or residual) leaving
// node u, in insertion order. This is the adjacency view the max-flow
// solver's BFS walks.
func (g *Graph) OutEdges(u int) []int { return g.adj[u] }

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.Nodes) }
