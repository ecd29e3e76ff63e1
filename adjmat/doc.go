// Package adjmat provides AdjMatGraph, a labeled multigraph over a dense
// adjacency matrix, implementing the core.Graph capability.
//
// Representation:
//
//   - adjacency matrix: a square matrix of edge multiplicities, always of
//     dimension Order()×Order() and always symmetric. Multi-edges raise a
//     cell above 1; a self-loop raises its single diagonal cell by 2 (once
//     per endpoint), so Degree (the row sum) counts loops twice, matching
//     the handshake-lemma convention.
//   - label stores: hashmap.HashMap instances mapping vertex id → label and
//     edge id → label.
//   - endpoint store: hashmap.HashMap mapping edge id → ordered endpoint
//     pair; the matrix alone cannot recover edge identity in a multigraph.
//
// Ids are dense positional indices: InsertVertex returns the previous
// Order(), InsertEdge the previous Size(), and removal re-packs every higher
// id down by one: in the label stores, in the endpoint pairs, and (for
// vertices) in the matrix itself by deleting the row and column. Callers
// must treat held ids as invalidated by any removal.
//
// Removing a vertex first removes each incident edge through RemoveEdge, so
// the matrix cells are decremented before its row and column disappear and
// no endpoint pair is ever left dangling.
package adjmat
