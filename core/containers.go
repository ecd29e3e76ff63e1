package core

// Set is the unordered unique-membership capability.
type Set[T comparable] interface {
	// Add inserts elem; adding a present element is a no-op.
	Add(elem T) error

	// Remove deletes elem.
	// Returns ErrKeyNotFound when elem is not a member.
	Remove(elem T) error

	// Contains reports membership of elem.
	Contains(elem T) bool

	// Size returns the number of members.
	// Complexity: O(1).
	Size() int

	// Clear removes every member.
	Clear()
}

// Stack is the LIFO capability.
type Stack[T any] interface {
	// Push places elem on top of the stack.
	Push(elem T) error

	// Pop removes and returns the top element.
	// Returns ErrOutOfBounds on an empty stack.
	Pop() (T, error)

	// Peek returns the top element without removing it.
	// Returns ErrOutOfBounds on an empty stack.
	Peek() (T, error)

	// Depth returns the number of stacked elements.
	// Complexity: O(1).
	Depth() int

	// Clear removes every element.
	Clear()
}

// Queue is the FIFO capability.
type Queue[T any] interface {
	// Push places elem at the back of the queue.
	Push(elem T) error

	// Pop removes and returns the front element.
	// Returns ErrOutOfBounds on an empty queue.
	Pop() (T, error)

	// Peek returns the front element without removing it.
	// Returns ErrOutOfBounds on an empty queue.
	Peek() (T, error)

	// Length returns the number of queued elements.
	// Complexity: O(1).
	Length() int

	// Clear removes every element.
	Clear()
}

// PriorityQueue is the highest-priority-first capability. The notion of
// priority is fixed by the implementation at construction time.
type PriorityQueue[T comparable] interface {
	// Push adds elem to the queue.
	Push(elem T) error

	// Pop removes and returns the highest-priority element.
	// Returns ErrOutOfBounds on an empty queue.
	Pop() (T, error)

	// Peek returns the highest-priority element without removing it.
	// Returns ErrOutOfBounds on an empty queue.
	Peek() (T, error)

	// Find returns the position of the first occurrence of elem in the
	// implementation's internal order, with ok=false when absent.
	Find(elem T) (pos int, ok bool)

	// Length returns the number of queued elements.
	// Complexity: O(1).
	Length() int

	// Clear removes every element.
	Clear()
}
