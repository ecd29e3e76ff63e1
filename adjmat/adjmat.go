package adjmat

import (
	"fmt"
	"strings"

	"github.com/jmcph4/enceladus/core"
	"github.com/jmcph4/enceladus/hashmap"
)

// endpointPair is the ordered (a, b) endpoint record of an edge.
type endpointPair [2]core.VertexNumber

// AdjMatGraph is a mutable labeled multigraph over a dense adjacency matrix,
// with hashmap-backed label and endpoint stores.
//
// Invariants (maintained by every mutation):
//   - matrix is square with dimension numVertices;
//   - matrix[a][b] == matrix[b][a] for all a, b;
//   - every edge id in edgeLabels has an entry in endpoints, and vice versa;
//   - vertex ids are exactly [0, numVertices), edge ids [0, numEdges).
type AdjMatGraph[V comparable, E comparable] struct {
	numVertices int
	numEdges    int
	matrix      [][]uint64

	vertexLabels *hashmap.HashMap[core.VertexNumber, V]
	edgeLabels   *hashmap.HashMap[core.EdgeNumber, E]
	endpoints    *hashmap.HashMap[core.EdgeNumber, endpointPair]
}

// Compile-time conformance checks.
var (
	_ core.Graph[string, int] = (*AdjMatGraph[string, int])(nil)
	_ fmt.Stringer            = (*AdjMatGraph[string, int])(nil)
)

// New returns an empty graph: zero vertices, empty matrix, empty stores.
// Complexity: O(1).
func New[V comparable, E comparable]() *AdjMatGraph[V, E] {
	// Default-configured hashmaps; New cannot fail without options.
	vl, _ := hashmap.New[core.VertexNumber, V]()
	el, _ := hashmap.New[core.EdgeNumber, E]()
	ep, _ := hashmap.New[core.EdgeNumber, endpointPair]()

	return &AdjMatGraph[V, E]{
		vertexLabels: vl,
		edgeLabels:   el,
		endpoints:    ep,
	}
}

// hasVertex reports whether v is a live vertex id.
func (g *AdjMatGraph[V, E]) hasVertex(v core.VertexNumber) bool {
	return v >= 0 && int(v) < g.numVertices
}

// hasEdge reports whether e is a live edge id.
func (g *AdjMatGraph[V, E]) hasEdge(e core.EdgeNumber) bool {
	return e >= 0 && int(e) < g.numEdges
}

// GetVertex returns the label of vertex v, with ok=false when absent.
// Complexity: O(1) average.
func (g *AdjMatGraph[V, E]) GetVertex(v core.VertexNumber) (V, bool) {
	return g.vertexLabels.Get(v)
}

// GetMutVertex returns a pointer to the stored label of vertex v, with
// ok=false when absent. Invalidated by any vertex insertion or removal.
// Complexity: O(1) average.
func (g *AdjMatGraph[V, E]) GetMutVertex(v core.VertexNumber) (*V, bool) {
	return g.vertexLabels.GetMut(v)
}

// SetVertex overwrites the label of an existing vertex.
// Returns core.ErrVertexNotFound when v is absent.
// Complexity: O(1) average.
func (g *AdjMatGraph[V, E]) SetVertex(v core.VertexNumber, label V) error {
	if !g.hasVertex(v) {
		return core.ErrVertexNotFound
	}
	_ = g.vertexLabels.Set(v, label) // presence just verified

	return nil
}

// GetEdge returns the label of edge e, with ok=false when absent.
// Complexity: O(1) average.
func (g *AdjMatGraph[V, E]) GetEdge(e core.EdgeNumber) (E, bool) {
	return g.edgeLabels.Get(e)
}

// GetMutEdge returns a pointer to the stored label of edge e, with ok=false
// when absent. Invalidated by any edge insertion or removal.
// Complexity: O(1) average.
func (g *AdjMatGraph[V, E]) GetMutEdge(e core.EdgeNumber) (*E, bool) {
	return g.edgeLabels.GetMut(e)
}

// SetEdge overwrites the label of an existing edge.
// Returns core.ErrEdgeNotFound when e is absent.
// Complexity: O(1) average.
func (g *AdjMatGraph[V, E]) SetEdge(e core.EdgeNumber, label E) error {
	if !g.hasEdge(e) {
		return core.ErrEdgeNotFound
	}
	_ = g.edgeLabels.Set(e, label) // presence just verified

	return nil
}

// InsertVertex assigns the next vertex id, stores label and grows the matrix
// by one row and one column. The column is appended to every existing row
// before the new row, so the matrix never passes through a non-square state.
// Never fails. Complexity: O(V).
func (g *AdjMatGraph[V, E]) InsertVertex(label V) core.VertexNumber {
	v := core.VertexNumber(g.numVertices)

	for i := range g.matrix {
		g.matrix[i] = append(g.matrix[i], 0)
	}
	g.matrix = append(g.matrix, make([]uint64, g.numVertices+1))

	_ = g.vertexLabels.Insert(v, label)
	g.numVertices++

	return v
}

// RemoveVertex deletes vertex v: every incident edge is removed first via
// RemoveEdge (keeping matrix cells and the edge stores consistent), then the
// label entry and matrix row/column are deleted and every vertex id above v
// is re-packed down by one, both in the label store and inside the endpoint
// pairs of surviving edges.
// Returns core.ErrVertexNotFound when v is absent.
// Complexity: O(V² + deg(v)·E).
func (g *AdjMatGraph[V, E]) RemoveVertex(v core.VertexNumber) error {
	if !g.hasVertex(v) {
		return core.ErrVertexNotFound
	}

	// Edges first: RemoveEdge re-packs edge ids, so always re-fetch the
	// lowest incident id instead of iterating a stale snapshot.
	for {
		incident, err := g.IncidentEdges(v)
		if err != nil {
			return err
		}
		if len(incident) == 0 {
			break
		}
		if err = g.RemoveEdge(incident[0]); err != nil {
			return err
		}
	}

	// Sole remaining vertex: reset the matrix and label store outright
	// rather than leaving a 0×0 matrix behind.
	if g.numVertices == 1 {
		g.matrix = nil
		g.vertexLabels.Clear()
		g.numVertices = 0

		return nil
	}

	// Delete row v, then column v from every surviving row.
	g.matrix = append(g.matrix[:v], g.matrix[v+1:]...)
	for i := range g.matrix {
		g.matrix[i] = append(g.matrix[i][:v], g.matrix[i][v+1:]...)
	}

	// Re-pack vertex ids above v in the label store.
	_ = g.vertexLabels.Remove(v)
	for id := int(v) + 1; id < g.numVertices; id++ {
		label, _ := g.vertexLabels.Get(core.VertexNumber(id))
		_ = g.vertexLabels.Remove(core.VertexNumber(id))
		_ = g.vertexLabels.Insert(core.VertexNumber(id-1), label)
	}

	// Shift endpoint references above v. No pair references v itself:
	// its incident edges are gone.
	for id := 0; id < g.numEdges; id++ {
		pair, _ := g.endpoints.GetMut(core.EdgeNumber(id))
		for i := range pair {
			if pair[i] > v {
				pair[i]--
			}
		}
	}

	g.numVertices--

	return nil
}

// InsertEdge assigns the next edge id, stores label and the ordered (a, b)
// endpoint pair, and increments both symmetric matrix cells; for a
// self-loop the single diagonal cell is incremented twice, contributing 2 to
// the vertex's degree.
// Returns core.ErrVertexNotFound when either endpoint is absent.
// Complexity: O(1) amortized.
func (g *AdjMatGraph[V, E]) InsertEdge(label E, a, b core.VertexNumber) (core.EdgeNumber, error) {
	if !g.hasVertex(a) || !g.hasVertex(b) {
		return 0, core.ErrVertexNotFound
	}

	e := core.EdgeNumber(g.numEdges)
	_ = g.edgeLabels.Insert(e, label)
	_ = g.endpoints.Insert(e, endpointPair{a, b})
	g.matrix[a][b]++
	g.matrix[b][a]++
	g.numEdges++

	return e, nil
}

// RemoveEdge deletes edge e: both symmetric matrix cells are decremented
// (the diagonal cell twice for a loop), the label and endpoint entries are
// deleted, and every edge id above e is re-packed down by one so that the
// next insertion can keep using Size() as the next free id.
// Returns core.ErrEdgeNotFound when e is absent.
// Complexity: O(E).
func (g *AdjMatGraph[V, E]) RemoveEdge(e core.EdgeNumber) error {
	if !g.hasEdge(e) {
		return core.ErrEdgeNotFound
	}

	pair, _ := g.endpoints.Get(e)
	g.matrix[pair[0]][pair[1]]--
	g.matrix[pair[1]][pair[0]]--

	_ = g.edgeLabels.Remove(e)
	_ = g.endpoints.Remove(e)

	// Re-pack edge ids above e in both edge stores.
	for id := int(e) + 1; id < g.numEdges; id++ {
		label, _ := g.edgeLabels.Get(core.EdgeNumber(id))
		_ = g.edgeLabels.Remove(core.EdgeNumber(id))
		_ = g.edgeLabels.Insert(core.EdgeNumber(id-1), label)

		p, _ := g.endpoints.Get(core.EdgeNumber(id))
		_ = g.endpoints.Remove(core.EdgeNumber(id))
		_ = g.endpoints.Insert(core.EdgeNumber(id-1), p)
	}

	g.numEdges--

	return nil
}

// Clear empties the matrix and all three stores and resets both counts.
// Complexity: O(buckets).
func (g *AdjMatGraph[V, E]) Clear() {
	g.numVertices = 0
	g.numEdges = 0
	g.matrix = nil
	g.vertexLabels.Clear()
	g.edgeLabels.Clear()
	g.endpoints.Clear()
}

// Equal reports exact field-wise equality: counts, matrix cells, label
// stores and endpoint store must all match.
// Complexity: O(V² + E).
func (g *AdjMatGraph[V, E]) Equal(other *AdjMatGraph[V, E]) bool {
	if other == nil ||
		g.numVertices != other.numVertices ||
		g.numEdges != other.numEdges {
		return false
	}
	for i := range g.matrix {
		for j := range g.matrix[i] {
			if g.matrix[i][j] != other.matrix[i][j] {
				return false
			}
		}
	}

	return g.vertexLabels.Equal(other.vertexLabels) &&
		g.edgeLabels.Equal(other.edgeLabels) &&
		g.endpoints.Equal(other.endpoints)
}

// String renders the counts and the matrix, one row per line.
func (g *AdjMatGraph[V, E]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "AdjMatGraph(order=%d, size=%d)", g.numVertices, g.numEdges)
	for _, row := range g.matrix {
		sb.WriteString("\n[")
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%d", cell)
		}
		sb.WriteString("]")
	}

	return sb.String()
}
