// Package maxflow implements Ford-Fulkerson with BFS-selected shortest
// augmenting paths (Edmonds-Karp) over a flowgraph.Graph. Residual
// capacity is represented by explicit paired forward/reverse edges
// materialized at build time (flowgraph.Graph.AddEdge), so augmentation
// never needs to synthesize or search for a missing reverse edge.
package maxflow

import "github.com/FrederikvSvane/bachelor-projekt/internal/court/flowgraph"

// Result carries the outcome of a solve: the total flow pushed. The
// saturated flows themselves are not part of Result; the solver writes
// them into g in place.
type Result struct {
	FlowValue int
}

// Solve runs Edmonds-Karp on g until no augmenting path remains, mutating
// g's edge flows in place. Every augmentation increases the total flow by
// at least one unit and all capacities are finite non-negative integers,
// so the loop is guaranteed to terminate (spec.md §4.2).
func Solve(g *flowgraph.Graph) Result {
	var total int
	for {
		path, bottleneck := bfsAugmentingPath(g)
		if path == nil {
			break
		}
		for _, idx := range path {
			g.Push(idx, bottleneck)
		}
		total += bottleneck
	}
	return Result{FlowValue: total}
}

// bfsAugmentingPath finds the shortest source->sink path with positive
// residual capacity throughout, and its bottleneck residual capacity.
// Returns a nil path when the sink is unreachable.
func bfsAugmentingPath(g *flowgraph.Graph) (path []int, bottleneck int) {
	n := g.NumNodes()
	visited := make([]bool, n)
	// parentEdge[v] is the index of the edge used to first reach v.
	parentEdge := make([]int, n)
	for i := range parentEdge {
		parentEdge[i] = -1
	}

	queue := make([]int, 0, n)
	queue = append(queue, g.Source)
	visited[g.Source] = true

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == g.Sink {
			break
		}
		for _, edgeIdx := range g.OutEdges(u) {
			e := g.Edge(edgeIdx)
			if visited[e.To] || g.Residual(edgeIdx) <= 0 {
				continue
			}
			visited[e.To] = true
			parentEdge[e.To] = edgeIdx
			queue = append(queue, e.To)
		}
	}

	if !visited[g.Sink] {
		return nil, 0
	}

	// Reconstruct the path from sink to source and compute its bottleneck.
	bottleneck = int(^uint(0) >> 1) // max int
	for v := g.Sink; v != g.Source; {
		idx := parentEdge[v]
		if r := g.Residual(idx); r < bottleneck {
			bottleneck = r
		}
		path = append(path, idx)
		v = g.Edge(idx).From
	}
	return path, bottleneck
}
