package core

// Graph is the labeled-multigraph capability: vertex/edge CRUD plus
// structural queries. V labels vertices, E labels edges.
//
// Vertex and edge ids are dense positional indices (see VertexNumber);
// every operation taking an id returns ErrVertexNotFound or ErrEdgeNotFound
// when the id is not currently live. Multi-edges and self-loops are
// permitted; a self-loop contributes 2 to its vertex's degree.
type Graph[V comparable, E comparable] interface {
	// GetVertex returns the label of vertex v, with ok=false when absent.
	GetVertex(v VertexNumber) (label V, ok bool)

	// GetMutVertex returns a pointer to the stored label of vertex v for
	// in-place mutation, with ok=false when absent.
	GetMutVertex(v VertexNumber) (label *V, ok bool)

	// SetVertex overwrites the label of an existing vertex.
	SetVertex(v VertexNumber, label V) error

	// GetEdge returns the label of edge e, with ok=false when absent.
	GetEdge(e EdgeNumber) (label E, ok bool)

	// GetMutEdge returns a pointer to the stored label of edge e, with
	// ok=false when absent.
	GetMutEdge(e EdgeNumber) (label *E, ok bool)

	// SetEdge overwrites the label of an existing edge.
	SetEdge(e EdgeNumber, label E) error

	// InsertVertex adds an isolated vertex and returns its id, which is
	// always the previous Order(). Never fails.
	InsertVertex(label V) VertexNumber

	// RemoveVertex deletes vertex v and every edge incident to it, then
	// re-packs vertex ids above v down by one.
	RemoveVertex(v VertexNumber) error

	// InsertEdge adds an edge labeled label between a and b (a == b forms a
	// self-loop) and returns its id, which is always the previous Size().
	InsertEdge(label E, a, b VertexNumber) (EdgeNumber, error)

	// RemoveEdge deletes edge e and re-packs edge ids above e down by one.
	RemoveEdge(e EdgeNumber) error

	// Order returns the number of live vertices.
	// Complexity: O(1).
	Order() int

	// Size returns the number of live edges.
	// Complexity: O(1).
	Size() int

	// Degree returns the number of edge endpoints attached to v;
	// a self-loop counts twice.
	Degree(v VertexNumber) (int, error)

	// IsAdjacent reports whether at least one edge joins a and b.
	IsAdjacent(a, b VertexNumber) (bool, error)

	// IsIncident reports whether v is an endpoint of e.
	IsIncident(v VertexNumber, e EdgeNumber) (bool, error)

	// Neighbours returns the vertices sharing an edge with v, ascending.
	// A vertex with a self-loop neighbours itself.
	Neighbours(v VertexNumber) ([]VertexNumber, error)

	// IncidentEdges returns the edges having v as an endpoint, ascending.
	IncidentEdges(v VertexNumber) ([]EdgeNumber, error)

	// Endpoints returns the ordered endpoint pair of edge e as recorded at
	// insertion.
	Endpoints(e EdgeNumber) (VertexNumber, VertexNumber, error)

	// Clear removes every vertex and edge.
	Clear()
}
