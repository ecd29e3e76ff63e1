package queue

import (
	"github.com/jmcph4/enceladus/arraylist"
	"github.com/jmcph4/enceladus/core"
)

// ListQueue is a FIFO queue over an ArrayList; the front of the queue is the
// start of the list.
type ListQueue[T comparable] struct {
	elems *arraylist.ArrayList[T]
}

var _ core.Queue[int] = (*ListQueue[int])(nil)

// New returns an empty queue. Complexity: O(1).
func New[T comparable]() *ListQueue[T] {
	return &ListQueue[T]{elems: arraylist.New[T]()}
}

// Push places elem at the back. Complexity: O(1) amortized.
func (q *ListQueue[T]) Push(elem T) error {
	return q.elems.Append(elem)
}

// Pop removes and returns the front element.
// Returns core.ErrOutOfBounds on an empty queue. Complexity: O(n).
func (q *ListQueue[T]) Pop() (T, error) {
	var zero T
	if q.elems.Length() == 0 {
		return zero, core.ErrOutOfBounds
	}

	return q.elems.Remove(0)
}

// Peek returns the front element without removing it.
// Returns core.ErrOutOfBounds on an empty queue. Complexity: O(1).
func (q *ListQueue[T]) Peek() (T, error) {
	var zero T
	if q.elems.Length() == 0 {
		return zero, core.ErrOutOfBounds
	}

	return q.elems.Get(0)
}

// Length returns the number of queued elements. Complexity: O(1).
func (q *ListQueue[T]) Length() int {
	return q.elems.Length()
}

// Clear removes every element. Complexity: O(1).
func (q *ListQueue[T]) Clear() {
	q.elems.Clear()
}

// Equal reports element-wise equality of two queues.
func (q *ListQueue[T]) Equal(other *ListQueue[T]) bool {
	if other == nil {
		return false
	}

	return q.elems.Equal(other.elems)
}

// String renders the queue front-to-back in list form.
func (q *ListQueue[T]) String() string {
	return q.elems.String()
}
