package arraylist

import (
	"fmt"
	"strings"

	"github.com/jmcph4/enceladus/core"
)

// formatting literals for String.
const (
	fmtOpen  = "["
	fmtClose = "]"
	fmtSep   = ", "
)

// ArrayList is a growable, slice-backed ordered sequence.
// The zero value is ready to use.
type ArrayList[T comparable] struct {
	elems []T
}

// Compile-time conformance checks.
var (
	_ core.List[int] = (*ArrayList[int])(nil)
	_ fmt.Stringer   = (*ArrayList[int])(nil)
)

// New returns an empty ArrayList.
// Complexity: O(1).
func New[T comparable]() *ArrayList[T] {
	return &ArrayList[T]{}
}

// inBounds reports whether pos indexes an existing element.
func (l *ArrayList[T]) inBounds(pos int) bool {
	return pos >= 0 && pos < len(l.elems)
}

// Get returns the element at pos, or core.ErrOutOfBounds.
// Complexity: O(1).
func (l *ArrayList[T]) Get(pos int) (T, error) {
	var zero T
	if !l.inBounds(pos) {
		return zero, core.ErrOutOfBounds
	}

	return l.elems[pos], nil
}

// GetMut returns a pointer to the element at pos for in-place mutation.
// The pointer is invalidated by Insert, Remove, Append and Clear.
// Complexity: O(1).
func (l *ArrayList[T]) GetMut(pos int) (*T, error) {
	if !l.inBounds(pos) {
		return nil, core.ErrOutOfBounds
	}

	return &l.elems[pos], nil
}

// Set overwrites the element at pos, or returns core.ErrOutOfBounds.
// Complexity: O(1).
func (l *ArrayList[T]) Set(pos int, elem T) error {
	if !l.inBounds(pos) {
		return core.ErrOutOfBounds
	}
	l.elems[pos] = elem

	return nil
}

// Insert places elem at pos, shifting subsequent elements right.
// pos == Length() appends. Complexity: O(n).
func (l *ArrayList[T]) Insert(pos int, elem T) error {
	if pos < 0 || pos > len(l.elems) {
		return core.ErrOutOfBounds
	}
	var zero T
	l.elems = append(l.elems, zero)
	copy(l.elems[pos+1:], l.elems[pos:])
	l.elems[pos] = elem

	return nil
}

// Remove deletes and returns the element at pos, shifting subsequent
// elements left. Complexity: O(n).
func (l *ArrayList[T]) Remove(pos int) (T, error) {
	var zero T
	if !l.inBounds(pos) {
		return zero, core.ErrOutOfBounds
	}
	elem := l.elems[pos]
	l.elems = append(l.elems[:pos], l.elems[pos+1:]...)

	return elem, nil
}

// Length returns the number of elements. Complexity: O(1).
func (l *ArrayList[T]) Length() int {
	return len(l.elems)
}

// Append places elem after the current last element. Complexity: O(1) amortized.
func (l *ArrayList[T]) Append(elem T) error {
	l.elems = append(l.elems, elem)

	return nil
}

// Swap exchanges the elements at positions a and b.
// Complexity: O(1).
func (l *ArrayList[T]) Swap(a, b int) error {
	if !l.inBounds(a) || !l.inBounds(b) {
		return core.ErrOutOfBounds
	}
	l.elems[a], l.elems[b] = l.elems[b], l.elems[a]

	return nil
}

// Contains reports whether elem occurs at least once. Complexity: O(n).
func (l *ArrayList[T]) Contains(elem T) bool {
	_, ok := l.Find(elem)

	return ok
}

// FindAll returns the positions of every occurrence of elem, ascending;
// nil when absent. Complexity: O(n).
func (l *ArrayList[T]) FindAll(elem T) []int {
	var positions []int
	for pos, e := range l.elems {
		if e == elem {
			positions = append(positions, pos)
		}
	}

	return positions
}

// Find returns the position of the first occurrence of elem.
// Complexity: O(n).
func (l *ArrayList[T]) Find(elem T) (int, bool) {
	for pos, e := range l.elems {
		if e == elem {
			return pos, true
		}
	}

	return 0, false
}

// Count returns the number of occurrences of elem. Complexity: O(n).
func (l *ArrayList[T]) Count(elem T) int {
	count := 0
	for _, e := range l.elems {
		if e == elem {
			count++
		}
	}

	return count
}

// Clear removes all elements. Complexity: O(1).
func (l *ArrayList[T]) Clear() {
	l.elems = nil
}

// Elems returns a copy of the backing slice in list order.
// Complexity: O(n).
func (l *ArrayList[T]) Elems() []T {
	out := make([]T, len(l.elems))
	copy(out, l.elems)

	return out
}

// Equal reports element-wise equality of two lists.
// Complexity: O(n).
func (l *ArrayList[T]) Equal(other *ArrayList[T]) bool {
	if other == nil || len(l.elems) != len(other.elems) {
		return false
	}
	for pos, e := range l.elems {
		if e != other.elems[pos] {
			return false
		}
	}

	return true
}

// String renders the list as "[e0, e1, ...]".
func (l *ArrayList[T]) String() string {
	var sb strings.Builder
	sb.WriteString(fmtOpen)
	for pos, e := range l.elems {
		if pos > 0 {
			sb.WriteString(fmtSep)
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteString(fmtClose)

	return sb.String()
}
