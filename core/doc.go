// Package core defines the capability contracts shared by every structure in
// enceladus (List, Map, Graph, Set, Stack, Queue, PriorityQueue and Tree)
// together with the id types and sentinel errors those contracts speak.
//
// The contracts are deliberately minimal: concrete packages (arraylist,
// hashmap, adjmat, ...) implement them, and generic consumers (sorting,
// traverse, future structures) accept them, so any conforming implementation
// can be swapped in.
//
// Error taxonomy (flat, matched with errors.Is):
//
//	ErrOutOfBounds     – index or position outside the valid range
//	ErrKeyNotFound     – map operation on an absent key
//	ErrVertexNotFound  – graph operation on an absent vertex id
//	ErrEdgeNotFound    – graph operation on an absent edge id
//	ErrNotImplemented  – intentionally unsupported operation surface
//
// All operations are synchronous, single-attempt, and in-memory; every
// failure is a returned error, never a panic. None of the contracts admit
// concurrent mutation; callers needing that must synchronize externally.
package core
