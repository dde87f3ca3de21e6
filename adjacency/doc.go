// Package adjacency models spatial neighbor relations over N indexed
// regions and packs them into the sparse encoding consumed by the IAR
// density evaluator.
//
// What:
//
//   - Builder accumulates undirected neighbor pairs over a fixed region set.
//   - Encode validates a neighbor relation and produces an Encoding:
//     per-region neighbor counts (diagonal weights), each undirected edge
//     exactly once as an (i,j) link with i<j, optional per-link weights,
//     and the number of connected components (union-find).
//   - Grid generates the rook-adjacency relation of a W×H lattice of
//     regions, useful for tests, benchmarks and synthetic studies.
//   - Encoding marshals to/from JSON in the classic "node1/node2 list plus
//     neighbor counts" interchange shape; Validate re-checks structural
//     invariants on deserialized data.
//
// Why:
//
//   - Disease mapping, small-area estimation and other areal models need
//     the neighbor structure once, up front, in a form an evaluator can
//     walk in O(N+L) every sampler iteration.
//   - Malformed relations (asymmetric input, islands with no neighbors)
//     silently invalidate an intrinsic prior; Encode rejects them before
//     any sampling starts.
//
// Complexity:
//
//   - Encode:     O(N + L·α(N)) time, O(N + L) memory (α = inverse Ackermann).
//   - Grid:       O(W×H) time and memory.
//   - Validate:   O(N + L) time.
//
// Options:
//
//   - WithSymmetrize: repair a one-sided relation by taking the symmetric
//     closure instead of rejecting it (default: reject).
//   - WithWeights: attach per-link weights keyed by normalized (min,max)
//     pair; omitted links default to weight 1.
//
// Errors:
//
//   - ErrNilGraph, ErrIndexRange, ErrSelfNeighbor: malformed input relation.
//   - ErrAsymmetric: one-sided pair without WithSymmetrize.
//   - ErrIsolatedRegion: a region with no neighbors (invalid for IAR).
//   - ErrBadWeight: non-finite or non-positive link weight.
//   - ErrBadEncoding: deserialized encoding fails structural validation.
//   - ErrBadDimensions: Grid called with a non-positive width or height.
package adjacency
