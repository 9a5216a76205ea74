// Package conflict builds the graph that the colorer runs over: one vertex
// per assigned triple, with an edge whenever two triples cannot share a
// timeslot because they compete for the same judge or the same room.
package conflict

import "github.com/FrederikvSvane/bachelor-projekt/internal/court/model"

// Graph is a dense adjacency-matrix conflict graph over a fixed ordering of
// triples. A dense matrix is the right representation here: the conflict
// relation is typically far denser than sqrt(n^2), since every triple
// sharing a judge with n other triples (the judge's full caseload) is
// common even for a small number of judges, so a sparse structure buys
// little and costs a map lookup per edge test.
type Graph struct {
	Triples []model.Triple
	adj     [][]bool
}

// Build constructs the conflict graph for triples, in the given order. The
// order is preserved; it becomes the vertex order DSATUR breaks ties by.
func Build(triples []model.Triple) *Graph {
	n := len(triples)
	g := &Graph{Triples: triples, adj: make([][]bool, n)}
	for i := range g.adj {
		g.adj[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if conflicts(triples[i], triples[j]) {
				g.adj[i][j] = true
				g.adj[j][i] = true
			}
		}
	}
	return g
}

// conflicts reports whether two triples compete for the same judge or room
// and therefore cannot be scheduled in the same timeslot.
func conflicts(a, b model.Triple) bool {
	return a.Judge.ID == b.Judge.ID || a.Room.ID == b.Room.ID
}

// NumVertices returns the number of triples in the graph.
func (g *Graph) NumVertices() int { return len(g.Triples) }

// AreAdjacent reports whether vertices i and j conflict.
func (g *Graph) AreAdjacent(i, j int) bool { return g.adj[i][j] }

// Neighbors returns the indices of every vertex adjacent to i.
func (g *Graph) Neighbors(i int) []int {
	var out []int
	for j, adjacent := range g.adj[i] {
		if adjacent {
			out = append(out, j)
		}
	}
	return out
}

// Degree returns the number of vertices adjacent to i.
func (g *Graph) Degree(i int) int {
	var d int
	for _, adjacent := range g.adj[i] {
		if adjacent {
			d++
		}
	}
	return d
}
