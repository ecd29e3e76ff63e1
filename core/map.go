package core

// Map is the key→value capability implemented by hashmap.HashMap and
// consumed by the adjacency-matrix graph for its label and endpoint stores.
//
// Absence on lookup is reported through the ok result, not an error; only
// operations that require presence (Set, Remove) fail with ErrKeyNotFound.
// Values carry a comparable bound so that ContainsValue and implementation
// equality checks are well-defined.
type Map[K comparable, V comparable] interface {
	// Get returns the value stored under key, with ok=false when absent.
	// Complexity: O(1) average for hash-backed implementations.
	Get(key K) (value V, ok bool)

	// GetMut returns a pointer to the stored value for in-place mutation,
	// with ok=false when absent. The pointer is invalidated by any
	// subsequent Insert, Remove or Clear.
	GetMut(key K) (value *V, ok bool)

	// Set overwrites the value under an existing key.
	// Returns ErrKeyNotFound when key is absent.
	Set(key K, value V) error

	// Insert stores a new key→value entry.
	Insert(key K, value V) error

	// Remove deletes the entry under key.
	// Returns ErrKeyNotFound when key is absent.
	Remove(key K) error

	// Size returns the number of stored entries.
	// Complexity: O(1).
	Size() int

	// ContainsKey reports whether key is present.
	ContainsKey(key K) bool

	// ContainsValue reports whether any entry stores value.
	// Complexity: O(n).
	ContainsValue(value V) bool

	// Clear removes every entry.
	Clear()
}
