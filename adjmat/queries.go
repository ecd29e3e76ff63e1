package adjmat

import (
	"github.com/jmcph4/enceladus/core"
)

// Order returns the number of live vertices. Complexity: O(1).
func (g *AdjMatGraph[V, E]) Order() int {
	return g.numVertices
}

// Size returns the number of live edges. Complexity: O(1).
func (g *AdjMatGraph[V, E]) Size() int {
	return g.numEdges
}

// Degree sums row v of the matrix: the number of edge endpoints at v, with
// self-loops counted twice (the diagonal cell carries 2 per loop).
// Returns core.ErrVertexNotFound when v is absent.
// Complexity: O(V).
func (g *AdjMatGraph[V, E]) Degree(v core.VertexNumber) (int, error) {
	if !g.hasVertex(v) {
		return 0, core.ErrVertexNotFound
	}
	degree := 0
	for _, cell := range g.matrix[v] {
		degree += int(cell)
	}

	return degree, nil
}

// IsAdjacent reports whether at least one edge joins a and b.
// Returns core.ErrVertexNotFound when either vertex is absent.
// Complexity: O(1).
func (g *AdjMatGraph[V, E]) IsAdjacent(a, b core.VertexNumber) (bool, error) {
	if !g.hasVertex(a) || !g.hasVertex(b) {
		return false, core.ErrVertexNotFound
	}

	return g.matrix[a][b] > 0, nil
}

// IsIncident reports whether v is an endpoint of e.
// Returns core.ErrVertexNotFound / core.ErrEdgeNotFound on absent inputs.
// Complexity: O(1) average.
func (g *AdjMatGraph[V, E]) IsIncident(v core.VertexNumber, e core.EdgeNumber) (bool, error) {
	if !g.hasVertex(v) {
		return false, core.ErrVertexNotFound
	}
	if !g.hasEdge(e) {
		return false, core.ErrEdgeNotFound
	}
	pair, _ := g.endpoints.Get(e)

	return pair[0] == v || pair[1] == v, nil
}

// Neighbours scans row v and returns every vertex joined to v by at least
// one edge, ascending. A vertex with a self-loop neighbours itself.
// Returns core.ErrVertexNotFound when v is absent.
// Complexity: O(V).
func (g *AdjMatGraph[V, E]) Neighbours(v core.VertexNumber) ([]core.VertexNumber, error) {
	if !g.hasVertex(v) {
		return nil, core.ErrVertexNotFound
	}
	var neighbours []core.VertexNumber
	for u, cell := range g.matrix[v] {
		if cell > 0 {
			neighbours = append(neighbours, core.VertexNumber(u))
		}
	}

	return neighbours, nil
}

// IncidentEdges scans the endpoint store and returns every edge having v as
// an endpoint, ascending by edge id.
// Returns core.ErrVertexNotFound when v is absent.
// Complexity: O(E).
func (g *AdjMatGraph[V, E]) IncidentEdges(v core.VertexNumber) ([]core.EdgeNumber, error) {
	if !g.hasVertex(v) {
		return nil, core.ErrVertexNotFound
	}
	var incident []core.EdgeNumber
	for id := 0; id < g.numEdges; id++ {
		pair, _ := g.endpoints.Get(core.EdgeNumber(id))
		if pair[0] == v || pair[1] == v {
			incident = append(incident, core.EdgeNumber(id))
		}
	}

	return incident, nil
}

// Endpoints returns the ordered endpoint pair recorded when e was inserted.
// Returns core.ErrEdgeNotFound when e is absent.
// Complexity: O(1) average.
func (g *AdjMatGraph[V, E]) Endpoints(e core.EdgeNumber) (core.VertexNumber, core.VertexNumber, error) {
	if !g.hasEdge(e) {
		return 0, 0, core.ErrEdgeNotFound
	}
	pair, _ := g.endpoints.Get(e)

	return pair[0], pair[1], nil
}

// Matrix returns a deep copy of the adjacency matrix.
// Complexity: O(V²).
func (g *AdjMatGraph[V, E]) Matrix() [][]uint64 {
	out := make([][]uint64, len(g.matrix))
	for i, row := range g.matrix {
		out[i] = make([]uint64, len(row))
		copy(out[i], row)
	}

	return out
}
