package traverse

import (
	"github.com/jmcph4/enceladus/core"
)

// dfsWalker encapsulates mutable DFS state.
type dfsWalker[V comparable, E comparable] struct {
	graph   core.Graph[V, E]
	opts    Options
	visited map[core.VertexNumber]bool
	res     *Result
}

// DFS runs a preorder depth-first search on g from start, applying any
// number of functional Options. Neighbours are explored in ascending
// vertex order, so the visit order is deterministic.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, any user-supplied hook error, or a
// graph error surfaced while fetching neighbours.
// Complexity: O(V·cost(Neighbours)).
func DFS[V comparable, E comparable](g core.Graph[V, E], start core.VertexNumber, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if _, ok := g.GetVertex(start); !ok {
		return nil, ErrStartVertexNotFound
	}

	w := &dfsWalker[V, E]{
		graph:   g,
		opts:    o,
		visited: make(map[core.VertexNumber]bool, g.Order()),
		res: &Result{
			Depth:  make(map[core.VertexNumber]int, g.Order()),
			Parent: make(map[core.VertexNumber]core.VertexNumber, g.Order()),
		},
	}

	return w.res, w.visit(start, 0)
}

// visit records v at depth d and recurses into unvisited neighbours.
func (w *dfsWalker[V, E]) visit(v core.VertexNumber, d int) error {
	w.visited[v] = true
	w.res.Order = append(w.res.Order, v)
	w.res.Depth[v] = d
	if err := w.opts.OnVisit(v, d); err != nil {
		return err
	}

	if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
		return nil
	}
	neighbours, err := w.graph.Neighbours(v)
	if err != nil {
		return err
	}
	for _, n := range neighbours {
		if w.visited[n] {
			continue
		}
		w.res.Parent[n] = v
		if err := w.visit(n, d+1); err != nil {
			return err
		}
	}

	return nil
}
