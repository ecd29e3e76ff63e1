package stack

import (
	"github.com/jmcph4/enceladus/arraylist"
	"github.com/jmcph4/enceladus/core"
)

// ListStack is a LIFO stack over an ArrayList; the top of the stack is the
// end of the list.
type ListStack[T comparable] struct {
	elems *arraylist.ArrayList[T]
}

var _ core.Stack[int] = (*ListStack[int])(nil)

// New returns an empty stack. Complexity: O(1).
func New[T comparable]() *ListStack[T] {
	return &ListStack[T]{elems: arraylist.New[T]()}
}

// Push places elem on top. Complexity: O(1) amortized.
func (s *ListStack[T]) Push(elem T) error {
	return s.elems.Append(elem)
}

// Pop removes and returns the top element.
// Returns core.ErrOutOfBounds on an empty stack. Complexity: O(1).
func (s *ListStack[T]) Pop() (T, error) {
	var zero T
	n := s.elems.Length()
	if n == 0 {
		return zero, core.ErrOutOfBounds
	}

	return s.elems.Remove(n - 1)
}

// Peek returns the top element without removing it.
// Returns core.ErrOutOfBounds on an empty stack. Complexity: O(1).
func (s *ListStack[T]) Peek() (T, error) {
	var zero T
	n := s.elems.Length()
	if n == 0 {
		return zero, core.ErrOutOfBounds
	}

	return s.elems.Get(n - 1)
}

// Depth returns the number of stacked elements. Complexity: O(1).
func (s *ListStack[T]) Depth() int {
	return s.elems.Length()
}

// Clear removes every element. Complexity: O(1).
func (s *ListStack[T]) Clear() {
	s.elems.Clear()
}

// Equal reports element-wise equality of two stacks.
func (s *ListStack[T]) Equal(other *ListStack[T]) bool {
	if other == nil {
		return false
	}

	return s.elems.Equal(other.elems)
}

// String renders the stack bottom-to-top in list form.
func (s *ListStack[T]) String() string {
	return s.elems.String()
}
