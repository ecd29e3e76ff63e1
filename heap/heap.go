package heap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/jmcph4/enceladus/core"
)

// Heap is a binary heap over a flat slice: children of node i live at 2i+1
// and 2i+2. before(a, b) reports that a must pop before b.
type Heap[T comparable] struct {
	elems  []T
	before core.Comparator[T]
}

var (
	_ core.PriorityQueue[int] = (*Heap[int])(nil)
	_ fmt.Stringer            = (*Heap[int])(nil)
)

// New returns an empty max-heap over the natural order.
// Complexity: O(1).
func New[T constraints.Ordered]() *Heap[T] {
	return NewFunc[T](func(a, b T) bool { return a > b })
}

// NewFunc returns an empty heap ordered by before; the element for which
// before holds against every other pops first.
// Complexity: O(1).
func NewFunc[T comparable](before core.Comparator[T]) *Heap[T] {
	return &Heap[T]{before: before}
}

// siftUp restores the heap property from position i toward the root.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.before(h.elems[i], h.elems[parent]) {
			break
		}
		h.elems[i], h.elems[parent] = h.elems[parent], h.elems[i]
		i = parent
	}
}

// siftDown restores the heap property from position i toward the leaves.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.elems)
	for {
		first := i
		if l := 2*i + 1; l < n && h.before(h.elems[l], h.elems[first]) {
			first = l
		}
		if r := 2*i + 2; r < n && h.before(h.elems[r], h.elems[first]) {
			first = r
		}
		if first == i {
			return
		}
		h.elems[i], h.elems[first] = h.elems[first], h.elems[i]
		i = first
	}
}

// Push adds elem to the heap. Complexity: O(log n).
func (h *Heap[T]) Push(elem T) error {
	h.elems = append(h.elems, elem)
	h.siftUp(len(h.elems) - 1)

	return nil
}

// Pop removes and returns the highest-priority element.
// Returns core.ErrOutOfBounds on an empty heap. Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	n := len(h.elems)
	if n == 0 {
		return zero, core.ErrOutOfBounds
	}

	top := h.elems[0]
	h.elems[0] = h.elems[n-1]
	h.elems = h.elems[:n-1]
	if len(h.elems) > 0 {
		h.siftDown(0)
	}

	return top, nil
}

// Peek returns the highest-priority element without removing it.
// Returns core.ErrOutOfBounds on an empty heap. Complexity: O(1).
func (h *Heap[T]) Peek() (T, error) {
	var zero T
	if len(h.elems) == 0 {
		return zero, core.ErrOutOfBounds
	}

	return h.elems[0], nil
}

// Find returns the position of the first occurrence of elem in the heap's
// internal level order, with ok=false when absent. Complexity: O(n).
func (h *Heap[T]) Find(elem T) (int, bool) {
	for pos, e := range h.elems {
		if e == elem {
			return pos, true
		}
	}

	return 0, false
}

// Length returns the number of queued elements. Complexity: O(1).
func (h *Heap[T]) Length() int {
	return len(h.elems)
}

// Clear removes every element. Complexity: O(1).
func (h *Heap[T]) Clear() {
	h.elems = nil
}

// Equal reports whether both heaps hold the same elements in the same
// internal level order. Complexity: O(n).
func (h *Heap[T]) Equal(other *Heap[T]) bool {
	if other == nil || len(h.elems) != len(other.elems) {
		return false
	}
	for i, e := range h.elems {
		if e != other.elems[i] {
			return false
		}
	}

	return true
}

// String renders the heap's internal level order in list form.
func (h *Heap[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, e := range h.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteString("]")

	return sb.String()
}
