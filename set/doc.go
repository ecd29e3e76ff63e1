// Package set provides HashSet, an implementation of the core.Set
// capability backed by a hashmap.HashMap with empty-struct values.
//
// Add is idempotent; Remove of a non-member reports core.ErrKeyNotFound
// (map semantics flow through the backing store).
package set
