// Package traverse provides breadth-first and depth-first traversal over any
// implementation of the core.Graph capability, returning visit order, parent
// links and (for BFS) unweighted shortest-path depths.
//
// Both traversals accept functional Options: an OnVisit hook that can abort
// the walk by returning an error, and a MaxDepth limit. Multi-edges are
// visited once per neighbouring vertex; a self-loop never revisits its own
// vertex.
package traverse
