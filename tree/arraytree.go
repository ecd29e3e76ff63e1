package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmcph4/enceladus/core"
)

// ErrRootExists is returned by InsertVertex when a nil parent is supplied
// to a tree that already has a root.
var ErrRootExists = errors.New("tree: root already planted")

// noParent marks the root's parent slot.
const noParent = core.VertexNumber(-1)

// node is one arena slot: a vertex label, the label of the edge to its
// parent (zero-valued for the root), the parent id and the child ids in
// insertion order.
type node[V comparable, E comparable] struct {
	vlabel   V
	elabel   E
	parent   core.VertexNumber
	children []core.VertexNumber
}

// ArrayTree is a rooted tree over a flat node arena.
type ArrayTree[V comparable, E comparable] struct {
	nodes []node[V, E]
}

var (
	_ core.Tree[string, int] = (*ArrayTree[string, int])(nil)
	_ fmt.Stringer           = (*ArrayTree[string, int])(nil)
)

// New returns an empty tree. Complexity: O(1).
func New[V comparable, E comparable]() *ArrayTree[V, E] {
	return &ArrayTree[V, E]{}
}

// hasVertex reports whether v is a live vertex id.
func (t *ArrayTree[V, E]) hasVertex(v core.VertexNumber) bool {
	return v >= 0 && int(v) < len(t.nodes)
}

// hasEdge reports whether e is a live edge id. Edge e joins vertex e+1 to
// its parent.
func (t *ArrayTree[V, E]) hasEdge(e core.EdgeNumber) bool {
	return e >= 0 && int(e) < t.Size()
}

// GetVertex returns the label of vertex v, with ok=false when absent.
func (t *ArrayTree[V, E]) GetVertex(v core.VertexNumber) (V, bool) {
	var zero V
	if !t.hasVertex(v) {
		return zero, false
	}

	return t.nodes[v].vlabel, true
}

// GetMutVertex returns a pointer to the stored label of vertex v, with
// ok=false when absent.
func (t *ArrayTree[V, E]) GetMutVertex(v core.VertexNumber) (*V, bool) {
	if !t.hasVertex(v) {
		return nil, false
	}

	return &t.nodes[v].vlabel, true
}

// SetVertex overwrites the label of an existing vertex.
// Returns core.ErrVertexNotFound when v is absent.
func (t *ArrayTree[V, E]) SetVertex(v core.VertexNumber, label V) error {
	if !t.hasVertex(v) {
		return core.ErrVertexNotFound
	}
	t.nodes[v].vlabel = label

	return nil
}

// GetEdge returns the label of edge e, with ok=false when absent.
func (t *ArrayTree[V, E]) GetEdge(e core.EdgeNumber) (E, bool) {
	var zero E
	if !t.hasEdge(e) {
		return zero, false
	}

	return t.nodes[e+1].elabel, true
}

// GetMutEdge returns a pointer to the stored label of edge e, with ok=false
// when absent.
func (t *ArrayTree[V, E]) GetMutEdge(e core.EdgeNumber) (*E, bool) {
	if !t.hasEdge(e) {
		return nil, false
	}

	return &t.nodes[e+1].elabel, true
}

// SetEdge overwrites the label of an existing edge.
// Returns core.ErrEdgeNotFound when e is absent.
func (t *ArrayTree[V, E]) SetEdge(e core.EdgeNumber, label E) error {
	if !t.hasEdge(e) {
		return core.ErrEdgeNotFound
	}
	t.nodes[e+1].elabel = label

	return nil
}

// InsertVertex adds a vertex labeled vertexLabel under parent, labeling the
// connecting edge edgeLabel. A nil parent plants the root of an empty tree;
// the root's edgeLabel is discarded.
// Returns ErrRootExists for a nil parent on a non-empty tree and
// core.ErrVertexNotFound for an absent parent.
// Complexity: O(1) amortized.
func (t *ArrayTree[V, E]) InsertVertex(parent *core.VertexNumber, vertexLabel V, edgeLabel E) (core.VertexNumber, error) {
	if parent == nil {
		if len(t.nodes) > 0 {
			return 0, ErrRootExists
		}
		t.nodes = append(t.nodes, node[V, E]{vlabel: vertexLabel, parent: noParent})

		return 0, nil
	}

	if !t.hasVertex(*parent) {
		return 0, core.ErrVertexNotFound
	}
	v := core.VertexNumber(len(t.nodes))
	t.nodes = append(t.nodes, node[V, E]{vlabel: vertexLabel, elabel: edgeLabel, parent: *parent})
	t.nodes[*parent].children = append(t.nodes[*parent].children, v)

	return v, nil
}

// RemoveVertex is not implemented: subtree deletion would require re-packing
// vertex and edge ids across the arena.
func (t *ArrayTree[V, E]) RemoveVertex(core.VertexNumber) error {
	return core.ErrNotImplemented
}

// Depth counts the edges on the parent walk from v up to the root.
// Returns core.ErrVertexNotFound when v is absent. Complexity: O(depth).
func (t *ArrayTree[V, E]) Depth(v core.VertexNumber) (int, error) {
	if !t.hasVertex(v) {
		return 0, core.ErrVertexNotFound
	}
	depth := 0
	for t.nodes[v].parent != noParent {
		v = t.nodes[v].parent
		depth++
	}

	return depth, nil
}

// Height returns the number of edges on the longest downward path from v.
// Returns core.ErrVertexNotFound when v is absent. Complexity: O(subtree).
func (t *ArrayTree[V, E]) Height(v core.VertexNumber) (int, error) {
	if !t.hasVertex(v) {
		return 0, core.ErrVertexNotFound
	}

	return t.height(v), nil
}

func (t *ArrayTree[V, E]) height(v core.VertexNumber) int {
	highest := -1
	for _, c := range t.nodes[v].children {
		if h := t.height(c); h > highest {
			highest = h
		}
	}

	return highest + 1
}

// Parent returns the parent of v, with ok=false for the root.
// Returns core.ErrVertexNotFound when v is absent.
func (t *ArrayTree[V, E]) Parent(v core.VertexNumber) (core.VertexNumber, bool, error) {
	if !t.hasVertex(v) {
		return 0, false, core.ErrVertexNotFound
	}
	if t.nodes[v].parent == noParent {
		return 0, false, nil
	}

	return t.nodes[v].parent, true, nil
}

// Children returns the children of v in insertion order.
// Returns core.ErrVertexNotFound when v is absent.
func (t *ArrayTree[V, E]) Children(v core.VertexNumber) ([]core.VertexNumber, error) {
	if !t.hasVertex(v) {
		return nil, core.ErrVertexNotFound
	}
	out := make([]core.VertexNumber, len(t.nodes[v].children))
	copy(out, t.nodes[v].children)

	return out, nil
}

// Order returns the number of vertices. Complexity: O(1).
func (t *ArrayTree[V, E]) Order() int {
	return len(t.nodes)
}

// Size returns the number of edges: Order()-1 on a non-empty tree.
// Complexity: O(1).
func (t *ArrayTree[V, E]) Size() int {
	if len(t.nodes) == 0 {
		return 0
	}

	return len(t.nodes) - 1
}

// Degree counts edges at v: the parent link plus one per child.
// Returns core.ErrVertexNotFound when v is absent.
func (t *ArrayTree[V, E]) Degree(v core.VertexNumber) (int, error) {
	if !t.hasVertex(v) {
		return 0, core.ErrVertexNotFound
	}
	degree := len(t.nodes[v].children)
	if t.nodes[v].parent != noParent {
		degree++
	}

	return degree, nil
}

// NumChildren counts the children of v.
// Returns core.ErrVertexNotFound when v is absent.
func (t *ArrayTree[V, E]) NumChildren(v core.VertexNumber) (int, error) {
	if !t.hasVertex(v) {
		return 0, core.ErrVertexNotFound
	}

	return len(t.nodes[v].children), nil
}

// Arity returns the maximum NumChildren over all vertices; 0 for an empty
// tree. Complexity: O(V).
func (t *ArrayTree[V, E]) Arity() int {
	arity := 0
	for i := range t.nodes {
		if n := len(t.nodes[i].children); n > arity {
			arity = n
		}
	}

	return arity
}

// IsParent reports whether a is the parent of b.
func (t *ArrayTree[V, E]) IsParent(a, b core.VertexNumber) (bool, error) {
	if !t.hasVertex(a) || !t.hasVertex(b) {
		return false, core.ErrVertexNotFound
	}

	return t.nodes[b].parent == a, nil
}

// IsChild reports whether a is a child of b.
func (t *ArrayTree[V, E]) IsChild(a, b core.VertexNumber) (bool, error) {
	return t.IsParent(b, a)
}

// IsAdjacent reports whether a and b share a parent/child edge.
func (t *ArrayTree[V, E]) IsAdjacent(a, b core.VertexNumber) (bool, error) {
	parent, err := t.IsParent(a, b)
	if err != nil {
		return false, err
	}
	child, err := t.IsChild(a, b)
	if err != nil {
		return false, err
	}

	return parent || child, nil
}

// IsIncident reports whether v is an endpoint of e.
func (t *ArrayTree[V, E]) IsIncident(v core.VertexNumber, e core.EdgeNumber) (bool, error) {
	if !t.hasVertex(v) {
		return false, core.ErrVertexNotFound
	}
	if !t.hasEdge(e) {
		return false, core.ErrEdgeNotFound
	}
	child := core.VertexNumber(e + 1)

	return child == v || t.nodes[child].parent == v, nil
}

// ParentEdge returns the edge joining v to its parent, with ok=false for
// the root. Returns core.ErrVertexNotFound when v is absent.
func (t *ArrayTree[V, E]) ParentEdge(v core.VertexNumber) (core.EdgeNumber, bool, error) {
	if !t.hasVertex(v) {
		return 0, false, core.ErrVertexNotFound
	}
	if t.nodes[v].parent == noParent {
		return 0, false, nil
	}

	return core.EdgeNumber(v - 1), true, nil
}

// ChildEdges returns the edges to v's children in insertion order.
// Returns core.ErrVertexNotFound when v is absent.
func (t *ArrayTree[V, E]) ChildEdges(v core.VertexNumber) ([]core.EdgeNumber, error) {
	children, err := t.Children(v)
	if err != nil {
		return nil, err
	}
	edges := make([]core.EdgeNumber, len(children))
	for i, c := range children {
		edges[i] = core.EdgeNumber(c - 1)
	}

	return edges, nil
}

// Endpoints returns the (parent, child) pair of edge e.
// Returns core.ErrEdgeNotFound when e is absent.
func (t *ArrayTree[V, E]) Endpoints(e core.EdgeNumber) (core.VertexNumber, core.VertexNumber, error) {
	if !t.hasEdge(e) {
		return 0, 0, core.ErrEdgeNotFound
	}
	child := core.VertexNumber(e + 1)

	return t.nodes[child].parent, child, nil
}

// Clear removes every vertex and edge. Complexity: O(1).
func (t *ArrayTree[V, E]) Clear() {
	t.nodes = nil
}

// Equal reports structural equality: same arena layout, labels and links.
// Complexity: O(V).
func (t *ArrayTree[V, E]) Equal(other *ArrayTree[V, E]) bool {
	if other == nil || len(t.nodes) != len(other.nodes) {
		return false
	}
	for i := range t.nodes {
		a, b := &t.nodes[i], &other.nodes[i]
		if a.vlabel != b.vlabel || a.elabel != b.elabel || a.parent != b.parent {
			return false
		}
		if len(a.children) != len(b.children) {
			return false
		}
		for j := range a.children {
			if a.children[j] != b.children[j] {
				return false
			}
		}
	}

	return true
}

// String renders the root label, or "null" for an empty tree.
func (t *ArrayTree[V, E]) String() string {
	if len(t.nodes) == 0 {
		return "null"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v", t.nodes[0].vlabel)

	return sb.String()
}
