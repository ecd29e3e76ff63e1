package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcph4/enceladus/core"
	"github.com/jmcph4/enceladus/tree"
)

// buildTree plants:
//
//	root(0)
//	├── a(1)
//	│   └── c(3)
//	└── b(2)
func buildTree(t *testing.T) *tree.ArrayTree[string, int] {
	t.Helper()
	tr := tree.New[string, int]()

	root, err := tr.InsertVertex(nil, "root", 0)
	require.NoError(t, err)
	a, err := tr.InsertVertex(&root, "a", 1)
	require.NoError(t, err)
	_, err = tr.InsertVertex(&root, "b", 2)
	require.NoError(t, err)
	_, err = tr.InsertVertex(&a, "c", 3)
	require.NoError(t, err)

	return tr
}

// TestInsert verifies id assignment and the root rules.
func TestInsert(t *testing.T) {
	tr := tree.New[string, int]()

	root, err := tr.InsertVertex(nil, "root", 0)
	require.NoError(t, err)
	assert.Equal(t, core.VertexNumber(0), root)

	// A second root is rejected.
	_, err = tr.InsertVertex(nil, "usurper", 0)
	assert.ErrorIs(t, err, tree.ErrRootExists)

	// An absent parent is rejected.
	missing := core.VertexNumber(9)
	_, err = tr.InsertVertex(&missing, "orphan", 0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestStructureQueries verifies order/size/degree/children on a small tree.
func TestStructureQueries(t *testing.T) {
	tr := buildTree(t)

	assert.Equal(t, 4, tr.Order())
	assert.Equal(t, 3, tr.Size())
	assert.Equal(t, 2, tr.Arity())

	children, err := tr.Children(0)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexNumber{1, 2}, children)

	n, err := tr.NumChildren(0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	deg, err := tr.Degree(1) // parent link + one child
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	deg, err = tr.Degree(0) // root: children only
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
}

// TestDepthHeight verifies the path measurements.
func TestDepthHeight(t *testing.T) {
	tr := buildTree(t)

	d, err := tr.Depth(3)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	d, err = tr.Depth(0)
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	h, err := tr.Height(0)
	require.NoError(t, err)
	assert.Equal(t, 2, h)

	h, err = tr.Height(2)
	require.NoError(t, err)
	assert.Equal(t, 0, h)
}

// TestParentChildEdges verifies the parent/child and edge lookups.
func TestParentChildEdges(t *testing.T) {
	tr := buildTree(t)

	p, ok, err := tr.Parent(3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, core.VertexNumber(1), p)

	_, ok, err = tr.Parent(0)
	require.NoError(t, err)
	assert.False(t, ok, "root has no parent")

	e, ok, err := tr.ParentEdge(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, core.EdgeNumber(0), e)

	label, ok := tr.GetEdge(e)
	assert.True(t, ok)
	assert.Equal(t, 1, label)

	edges, err := tr.ChildEdges(0)
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeNumber{0, 1}, edges)

	parent, child, err := tr.Endpoints(2)
	require.NoError(t, err)
	assert.Equal(t, core.VertexNumber(1), parent)
	assert.Equal(t, core.VertexNumber(3), child)
}

// TestRelations verifies IsParent/IsChild/IsAdjacent/IsIncident.
func TestRelations(t *testing.T) {
	tr := buildTree(t)

	ok, err := tr.IsParent(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tr.IsChild(1, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tr.IsAdjacent(1, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tr.IsAdjacent(1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = tr.IsIncident(3, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tr.IsIncident(0, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestLabels verifies vertex/edge label get/set surfaces.
func TestLabels(t *testing.T) {
	tr := buildTree(t)

	label, ok := tr.GetVertex(0)
	assert.True(t, ok)
	assert.Equal(t, "root", label)

	require.NoError(t, tr.SetVertex(0, "trunk"))
	label, _ = tr.GetVertex(0)
	assert.Equal(t, "trunk", label)

	p, ok := tr.GetMutVertex(1)
	require.True(t, ok)
	*p = "branch"
	label, _ = tr.GetVertex(1)
	assert.Equal(t, "branch", label)

	require.NoError(t, tr.SetEdge(0, 100))
	elabel, _ := tr.GetEdge(0)
	assert.Equal(t, 100, elabel)

	assert.ErrorIs(t, tr.SetVertex(9, "x"), core.ErrVertexNotFound)
	assert.ErrorIs(t, tr.SetEdge(9, 0), core.ErrEdgeNotFound)
}

// TestNotImplemented verifies the stub surface is explicit about itself.
func TestNotImplemented(t *testing.T) {
	tr := buildTree(t)
	assert.ErrorIs(t, tr.RemoveVertex(1), core.ErrNotImplemented)
}

// TestEqualStringClear verifies equality, rendering and reset.
func TestEqualStringClear(t *testing.T) {
	a := buildTree(t)
	b := buildTree(t)
	assert.True(t, a.Equal(b))

	require.NoError(t, b.SetVertex(3, "mutated"))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	assert.Equal(t, "root", a.String())
	assert.Equal(t, "null", tree.New[string, int]().String())

	a.Clear()
	assert.Equal(t, 0, a.Order())
	assert.Equal(t, 0, a.Size())
}
