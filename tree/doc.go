// Package tree provides ArrayTree, a slice-arena rooted tree implementing
// most of the core.Tree capability.
//
// Vertices receive dense ids in insertion order; the edge joining a
// non-root vertex v to its parent receives edge id v-1, so edge ids are
// dense as well and Size() is always Order()-1 on a non-empty tree.
//
// The surface is deliberately partial: RemoveVertex (subtree deletion with
// id re-packing) is not implemented and returns core.ErrNotImplemented.
package tree
