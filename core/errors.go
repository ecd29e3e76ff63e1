package core

import "errors"

// Sentinel errors shared by every enceladus structure.
//
// Every message is prefixed with "enceladus: " for consistency and to allow
// easy grepping across logs. Implementations return these sentinels directly;
// if context is essential they wrap with fmt.Errorf("ctx: %w", ErrX) so that
// callers can still match with errors.Is.
var (
	// ErrOutOfBounds indicates an index or position outside the valid range,
	// including pops and peeks on empty stacks, queues and heaps.
	ErrOutOfBounds = errors.New("enceladus: index out of bounds")

	// ErrKeyNotFound indicates a map operation referenced an absent key.
	ErrKeyNotFound = errors.New("enceladus: key not found")

	// ErrVertexNotFound indicates a graph operation referenced an absent vertex.
	ErrVertexNotFound = errors.New("enceladus: vertex not found")

	// ErrEdgeNotFound indicates a graph operation referenced an absent edge.
	ErrEdgeNotFound = errors.New("enceladus: edge not found")

	// ErrNotImplemented marks an intentionally unsupported operation surface
	// (e.g. the unfinished parts of ArrayTree).
	ErrNotImplemented = errors.New("enceladus: operation not implemented")
)
