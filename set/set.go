package set

import (
	"fmt"
	"strings"

	"github.com/jmcph4/enceladus/core"
	"github.com/jmcph4/enceladus/hashmap"
)

// HashSet stores unique members as keys of a HashMap with empty-struct
// values.
type HashSet[T comparable] struct {
	members *hashmap.HashMap[T, struct{}]
}

var (
	_ core.Set[int] = (*HashSet[int])(nil)
	_ fmt.Stringer  = (*HashSet[int])(nil)
)

// New returns an empty set. Complexity: O(1).
func New[T comparable]() *HashSet[T] {
	// Default-configured hashmap; New cannot fail without options.
	m, _ := hashmap.New[T, struct{}]()

	return &HashSet[T]{members: m}
}

// Add inserts elem; adding a present member is a no-op, keeping the backing
// map duplicate-free. Complexity: O(1) average.
func (s *HashSet[T]) Add(elem T) error {
	if _, ok := s.members.Get(elem); ok {
		return nil
	}

	return s.members.Insert(elem, struct{}{})
}

// Remove deletes elem.
// Returns core.ErrKeyNotFound when elem is not a member.
// Complexity: O(1) average.
func (s *HashSet[T]) Remove(elem T) error {
	return s.members.Remove(elem)
}

// Contains reports membership of elem. Complexity: O(1) average.
func (s *HashSet[T]) Contains(elem T) bool {
	_, ok := s.members.Get(elem)

	return ok
}

// Size returns the number of members. Complexity: O(1).
func (s *HashSet[T]) Size() int {
	return s.members.Size()
}

// Clear removes every member. Complexity: O(buckets).
func (s *HashSet[T]) Clear() {
	s.members.Clear()
}

// Members returns every member in backing-store order.
// Complexity: O(n + buckets).
func (s *HashSet[T]) Members() []T {
	return s.members.Keys()
}

// Equal reports whether both sets hold exactly the same members.
// Complexity: O(n) average.
func (s *HashSet[T]) Equal(other *HashSet[T]) bool {
	if other == nil || s.Size() != other.Size() {
		return false
	}
	for _, m := range s.Members() {
		if !other.Contains(m) {
			return false
		}
	}

	return true
}

// String renders the set as "{m1, m2, ...}" in backing-store order.
func (s *HashSet[T]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, m := range s.Members() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", m)
	}
	sb.WriteString("}")

	return sb.String()
}
