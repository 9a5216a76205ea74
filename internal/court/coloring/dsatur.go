// Package coloring assigns each vertex of a conflict.Graph a color such
// that no two adjacent vertices share one, using DSATUR: at each step,
// color the uncolored vertex with the highest saturation degree (number of
// distinctly colored neighbors), breaking ties by raw degree and then by
// lowest vertex index.
package coloring

import "github.com/FrederikvSvane/bachelor-projekt/internal/court/model"

// graph is the minimal view Color needs; conflict.Graph satisfies it.
type graph interface {
	NumVertices() int
	Neighbors(i int) []int
	Degree(i int) int
}

// Color runs DSATUR over g and returns one color index per vertex, in
// vertex order. Colors are assigned starting from 0 and are not bounded in
// advance; the number of colors used is determined by the coloring run, a
// heuristic upper bound on the graph's chromatic number (exact coloring is
// NP-hard, per spec.md's Non-goals).
func Color(g graph) ([]int, error) {
	n := g.NumVertices()
	colors := make([]int, n)
	for i := range colors {
		colors[i] = -1
	}

	for colored := 0; colored < n; colored++ {
		v := nextVertex(g, colors)
		if v == -1 {
			return nil, model.ErrColoringFailure
		}
		colors[v] = lowestAvailableColor(g, colors, v)
	}
	return colors, nil
}

// nextVertex selects the uncolored vertex with the highest saturation
// degree, breaking ties by raw degree, then by lowest index.
func nextVertex(g graph, colors []int) int {
	selected := -1
	maxSat := -1
	maxDeg := -1

	for v := 0; v < len(colors); v++ {
		if colors[v] != -1 {
			continue
		}
		sat := saturationDegree(g, colors, v)
		deg := g.Degree(v)

		switch {
		case sat > maxSat:
			maxSat, maxDeg, selected = sat, deg, v
		case sat == maxSat && deg > maxDeg:
			maxDeg, selected = deg, v
		case sat == maxSat && deg == maxDeg && (selected == -1 || v < selected):
			selected = v
		}
	}
	return selected
}

// saturationDegree counts the number of distinct colors among v's already-
// colored neighbors.
func saturationDegree(g graph, colors []int, v int) int {
	seen := make(map[int]bool)
	for _, u := range g.Neighbors(v) {
		if c := colors[u]; c != -1 {
			seen[c] = true
		}
	}
	return len(seen)
}

// lowestAvailableColor returns the smallest color index not used by any of
// v's already-colored neighbors.
func lowestAvailableColor(g graph, colors []int, v int) int {
	used := make(map[int]bool)
	for _, u := range g.Neighbors(v) {
		if c := colors[u]; c != -1 {
			used[c] = true
		}
	}
	for color := 0; ; color++ {
		if !used[color] {
			return color
		}
	}
}
