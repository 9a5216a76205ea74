package flowgraph

// Push adds delta flow along the edge at idx and subtracts it from the
// edge's residual mate, keeping both sides of the pair consistent. delta
// may be negative when called from the mate's perspective.
func (g *Graph) Push(idx int, delta int) {
	g.Edges[idx].Flow += delta
	mate := g.Edges[idx].Mate
	g.Edges[mate].Flow -= delta
}

// Residual returns the residual capacity of the edge at idx: how much more
// flow can be pushed along it right now.
func (g *Graph) Residual(idx int) int {
	e := g.Edges[idx]
	return e.Capacity - e.Flow
}
