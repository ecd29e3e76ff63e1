package traverse

import (
	"github.com/jmcph4/enceladus/core"
)

// queueItem pairs a vertex with its discovery depth.
type queueItem struct {
	v     core.VertexNumber
	depth int
}

// bfsWalker encapsulates mutable BFS state.
type bfsWalker[V comparable, E comparable] struct {
	graph   core.Graph[V, E]
	opts    Options
	queue   []queueItem
	visited map[core.VertexNumber]bool
	res     *Result
}

// BFS runs breadth-first search on g from start, applying any number of
// functional Options. The Depth map of the Result holds unweighted
// shortest-path distances.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, any user-supplied hook error, or a
// graph error surfaced while fetching neighbours.
// Complexity: O(V·cost(Neighbours)).
func BFS[V comparable, E comparable](g core.Graph[V, E], start core.VertexNumber, opts ...Option) (*Result, error) {
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

	w := &bfsWalker[V, E]{
		graph:   g,
		opts:    o,
		visited: make(map[core.VertexNumber]bool, g.Order()),
		res: &Result{
			Depth:  make(map[core.VertexNumber]int, g.Order()),
			Parent: make(map[core.VertexNumber]core.VertexNumber, g.Order()),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d and appends it to the queue.
func (w *bfsWalker[V, E]) enqueue(v core.VertexNumber, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty or an error aborts the walk.
func (w *bfsWalker[V, E]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return err
		}

		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		neighbours, err := w.graph.Neighbours(item.v)
		if err != nil {
			return err
		}
		for _, n := range neighbours {
			if w.visited[n] {
				continue
			}
			w.res.Parent[n] = item.v
			w.enqueue(n, item.depth+1)
		}
	}

	return nil
}
