package adjacency

import (
	"fmt"
	"sort"
)

// Builder accumulates undirected neighbor pairs over a fixed region set,
// for callers that receive adjacency as an edge stream (e.g. a polygon
// contiguity tool emitting one record per border) rather than as
// per-region lists. AddPair records both directions, so a Builder never
// produces an asymmetric relation.
type Builder struct {
	n   int
	adj []map[int]struct{}
}

// NewBuilder returns a Builder over n regions indexed 0..n-1.
// Returns ErrNilGraph if n < 1.
// Complexity: O(n).
func NewBuilder(n int) (*Builder, error) {
	if n < 1 {
		return nil, ErrNilGraph
	}
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}

	return &Builder{n: n, adj: adj}, nil
}

// AddPair records regions i and j as neighbors of each other.
// Re-adding an existing pair is a no-op.
// Returns ErrIndexRange if either index is outside 0..n-1,
// ErrSelfNeighbor if i == j.
// Complexity: O(1) amortized.
func (b *Builder) AddPair(i, j int) error {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return fmt.Errorf("%w: pair (%d,%d) with N=%d", ErrIndexRange, i, j, b.n)
	}
	if i == j {
		return fmt.Errorf("%w: region %d", ErrSelfNeighbor, i)
	}
	b.adj[i][j] = struct{}{}
	b.adj[j][i] = struct{}{}

	return nil
}

// Neighbors materializes the accumulated relation as per-region sorted
// neighbor lists, in the shape Encode consumes.
// Complexity: O(N + L log L) time, O(N + L) memory.
func (b *Builder) Neighbors() [][]int {
	out := make([][]int, b.n)
	for i, set := range b.adj {
		list := make([]int, 0, len(set))
		for j := range set {
			list = append(list, j)
		}
		sort.Ints(list)
		out[i] = list
	}

	return out
}

// Encode is shorthand for Encode(b.Neighbors(), opts...).
func (b *Builder) Encode(opts ...Option) (*Encoding, error) {
	return Encode(b.Neighbors(), opts...)
}
