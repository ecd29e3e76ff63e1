package core

// VertexNumber identifies a vertex within a Graph. Ids are dense positional
// indices in [0, Order()): removal of a vertex shifts every higher id down
// by one. Callers must treat ids as invalidated by any removal.
type VertexNumber int

// EdgeNumber identifies an edge within a Graph, with the same dense
// positional semantics as VertexNumber.
type EdgeNumber int

// Comparator reports whether a should be ordered before b. Sorting routines
// produce non-decreasing output under the supplied Comparator; stability is
// only guaranteed for strict (irreflexive) comparators.
type Comparator[T any] func(a, b T) bool
