package core

// Tree is the rooted-tree capability: a Graph restricted to parent/child
// structure, with vertex labels V and edge labels E on the parent links.
//
// The surface mirrors Graph where the concepts overlap (ids, labels, order,
// size, degree, incidence) and adds the rooted-tree queries. Implementations
// are free to support the surface partially and return ErrNotImplemented for
// the rest; ArrayTree in package tree does exactly that.
type Tree[V comparable, E comparable] interface {
	GetVertex(v VertexNumber) (label V, ok bool)
	GetMutVertex(v VertexNumber) (label *V, ok bool)
	SetVertex(v VertexNumber, label V) error

	GetEdge(e EdgeNumber) (label E, ok bool)
	GetMutEdge(e EdgeNumber) (label *E, ok bool)
	SetEdge(e EdgeNumber, label E) error

	// InsertVertex adds a vertex labeled vertexLabel under parent, with the
	// connecting edge labeled edgeLabel. A nil parent plants the root of an
	// empty tree.
	InsertVertex(parent *VertexNumber, vertexLabel V, edgeLabel E) (VertexNumber, error)

	// RemoveVertex deletes vertex v together with its whole subtree.
	RemoveVertex(v VertexNumber) error

	// Depth returns the number of edges on the path from the root to v.
	Depth(v VertexNumber) (int, error)

	// Height returns the number of edges on the longest downward path from v.
	Height(v VertexNumber) (int, error)

	// Parent returns the parent of v, with ok=false for the root.
	Parent(v VertexNumber) (parent VertexNumber, ok bool, err error)

	// Children returns the children of v in insertion order.
	Children(v VertexNumber) ([]VertexNumber, error)

	// Order returns the number of vertices; Size the number of edges.
	Order() int
	Size() int

	// Degree counts edges at v (parent link plus children).
	Degree(v VertexNumber) (int, error)

	// NumChildren counts the children of v; Arity is the maximum NumChildren
	// over all vertices.
	NumChildren(v VertexNumber) (int, error)
	Arity() int

	IsParent(a, b VertexNumber) (bool, error)
	IsChild(a, b VertexNumber) (bool, error)
	IsAdjacent(a, b VertexNumber) (bool, error)
	IsIncident(v VertexNumber, e EdgeNumber) (bool, error)

	// ParentEdge returns the edge joining v to its parent, with ok=false for
	// the root; ChildEdges returns the edges to v's children in insertion
	// order.
	ParentEdge(v VertexNumber) (e EdgeNumber, ok bool, err error)
	ChildEdges(v VertexNumber) ([]EdgeNumber, error)

	// Endpoints returns the (parent, child) pair of edge e.
	Endpoints(e EdgeNumber) (VertexNumber, VertexNumber, error)

	Clear()
}
