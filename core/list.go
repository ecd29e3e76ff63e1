package core

// List is the minimal ordered-sequence capability consumed by the sorting
// routines and by the list-backed stack and queue.
//
// Positions are zero-based; every positional method returns ErrOutOfBounds
// for an invalid position. Element equality uses ==, hence the comparable
// bound.
type List[T comparable] interface {
	// Get returns the element at pos.
	// Complexity: O(1) for array-backed implementations.
	Get(pos int) (T, error)

	// GetMut returns a pointer to the element at pos for in-place mutation.
	// The pointer is invalidated by any subsequent structural change
	// (Insert, Remove, Clear).
	GetMut(pos int) (*T, error)

	// Set overwrites the element at pos.
	Set(pos int, elem T) error

	// Insert places elem at pos, shifting subsequent elements right.
	// pos may equal Length(), in which case Insert behaves like Append.
	Insert(pos int, elem T) error

	// Remove deletes and returns the element at pos, shifting subsequent
	// elements left.
	Remove(pos int) (T, error)

	// Length returns the number of elements.
	// Complexity: O(1).
	Length() int

	// Append places elem after the current last element.
	Append(elem T) error

	// Swap exchanges the elements at positions a and b.
	Swap(a, b int) error

	// Contains reports whether elem occurs at least once.
	// Complexity: O(n).
	Contains(elem T) bool

	// FindAll returns the positions of every occurrence of elem, ascending.
	// The result is nil when elem does not occur.
	FindAll(elem T) []int

	// Find returns the position of the first occurrence of elem.
	Find(elem T) (int, bool)

	// Count returns the number of occurrences of elem.
	Count(elem T) int

	// Clear removes all elements.
	Clear()
}
