// Package heap provides Heap, a slice-based binary heap implementing the
// core.PriorityQueue capability.
//
// New builds a max-heap over the natural order (the largest element pops
// first, matching the classic binary-heap convention); NewFunc accepts an
// arbitrary priority relation, so a min-heap is NewFunc with "less than".
//
// Find reports positions in the heap's internal level order, which is an
// implementation detail: it identifies the element for subsequent
// inspection, not a priority rank.
package heap
