package adjacency

import (
	"fmt"
	"math"
	"sort"
)

// Encoding is the sparse representation of an undirected neighbor
// relation over N regions. It is immutable once built: the exported
// fields exist for interchange and must be treated as read-only.
//
// Counts[i] is the number of neighbors of region i and doubles as the
// diagonal weight of the implied precision matrix. Links holds each
// undirected edge exactly once as {i, j} with i < j, in ascending
// order. Weights parallels Links; a nil Weights means every link has
// the implicit weight 1. Components is the number of connected
// components of the relation, derived once at encode time.
type Encoding struct {
	Counts     []int
	Links      [][2]int
	Weights    []float64
	Components int
}

// Encode validates the neighbor relation and packs it into an Encoding.
//
// neighbors[i] lists the neighbor indices of region i; duplicates within
// a list collapse. The relation must be symmetric (unless WithSymmetrize)
// and irreflexive, every index must lie in 0..N-1, and every region must
// have at least one neighbor once the relation is closed.
//
// The resulting link order is deterministic: ascending by (i, j).
//
// Error Conditions:
//   - ErrNilGraph        : neighbors is nil or empty.
//   - ErrIndexRange      : a neighbor index is outside 0..N-1.
//   - ErrSelfNeighbor    : a region lists itself.
//   - ErrAsymmetric      : a one-sided pair without WithSymmetrize.
//   - ErrIsolatedRegion  : a region ends up with zero neighbors.
//   - ErrBadWeight       : a WithWeights entry is NaN, ±Inf, or ≤ 0.
//
// Complexity: O(N + L·α(N)) time plus O(L log L) for the final ordering;
// Memory: O(N + L).
func Encode(neighbors [][]int, opts ...Option) (*Encoding, error) {
	n := len(neighbors)
	if n == 0 {
		return nil, ErrNilGraph
	}
	o := gatherOptions(opts...)

	// Collect each undirected pair once, remembering which directions
	// were seen so asymmetry can be reported precisely.
	type seen struct{ lo, hi bool } // lo: listed by the smaller index, hi: by the larger
	pairs := make(map[[2]int]*seen, n)
	for i, list := range neighbors {
		for _, j := range list {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("%w: region %d lists %d (N=%d)", ErrIndexRange, i, j, n)
			}
			if j == i {
				return nil, fmt.Errorf("%w: region %d", ErrSelfNeighbor, i)
			}
			key := normalizePair(i, j)
			s := pairs[key]
			if s == nil {
				s = &seen{}
				pairs[key] = s
			}
			if i < j {
				s.lo = true
			} else {
				s.hi = true
			}
		}
	}

	// Reject (or close) one-sided pairs.
	if !o.symmetrize {
		for key, s := range pairs {
			if !s.lo || !s.hi {
				return nil, fmt.Errorf("%w: pair (%d,%d) listed in one direction only",
					ErrAsymmetric, key[0], key[1])
			}
		}
	}

	// Deterministic link order: ascending (i, j).
	links := make([][2]int, 0, len(pairs))
	for key := range pairs {
		links = append(links, key)
	}
	sort.Slice(links, func(a, b int) bool {
		if links[a][0] != links[b][0] {
			return links[a][0] < links[b][0]
		}

		return links[a][1] < links[b][1]
	})

	// Neighbor counts from the closed relation; handshake lemma holds by
	// construction (each link increments exactly two counts).
	counts := make([]int, n)
	for _, l := range links {
		counts[l[0]]++
		counts[l[1]]++
	}
	for i, c := range counts {
		if c == 0 {
			return nil, fmt.Errorf("%w: region %d", ErrIsolatedRegion, i)
		}
	}

	// Optional per-link weights, aligned with the link order.
	var weights []float64
	if o.weights != nil {
		weights = make([]float64, len(links))
		for li, l := range links {
			w, ok := o.weights[l]
			if !ok {
				w = 1.0
			}
			if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
				return nil, fmt.Errorf("%w: link (%d,%d) has weight %v", ErrBadWeight, l[0], l[1], w)
			}
			weights[li] = w
		}
	}

	return &Encoding{
		Counts:     counts,
		Links:      links,
		Weights:    weights,
		Components: componentCount(n, links),
	}, nil
}

// NumRegions returns N, the number of regions covered by the encoding.
// Complexity: O(1).
func (e *Encoding) NumRegions() int { return len(e.Counts) }

// NumLinks returns L, the number of undirected links.
// Complexity: O(1).
func (e *Encoding) NumLinks() int { return len(e.Links) }

// Weight returns the weight of link l, resolving the implicit uniform
// weight 1 when no explicit weights were attached.
// Complexity: O(1).
func (e *Encoding) Weight(l int) float64 {
	if e.Weights == nil {
		return 1.0
	}

	return e.Weights[l]
}

// Validate re-checks the structural invariants of an encoding, intended
// for encodings reconstructed from serialized data rather than produced
// by Encode. It verifies index ranges, the i<j and ascending link order,
// absence of duplicates, agreement between Counts and the counts implied
// by Links (and with them the handshake lemma), the no-isolated-region
// precondition, weight positivity, and the recorded component count.
// Returns ErrBadEncoding (wrapped with detail) on the first violation.
// Complexity: O(N + L·α(N)).
func (e *Encoding) Validate() error {
	n := len(e.Counts)
	if n == 0 {
		return fmt.Errorf("%w: no regions", ErrBadEncoding)
	}
	if e.Weights != nil && len(e.Weights) != len(e.Links) {
		return fmt.Errorf("%w: %d weights for %d links", ErrBadEncoding, len(e.Weights), len(e.Links))
	}

	derived := make([]int, n)
	prev := [2]int{-1, -1}
	for li, l := range e.Links {
		i, j := l[0], l[1]
		if i < 0 || j >= n || i >= j {
			return fmt.Errorf("%w: malformed link (%d,%d)", ErrBadEncoding, i, j)
		}
		if i < prev[0] || (i == prev[0] && j <= prev[1]) {
			return fmt.Errorf("%w: links out of order at (%d,%d)", ErrBadEncoding, i, j)
		}
		prev = l
		derived[i]++
		derived[j]++
		if e.Weights != nil {
			w := e.Weights[li]
			if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
				return fmt.Errorf("%w: link (%d,%d) has weight %v", ErrBadEncoding, i, j, w)
			}
		}
	}
	for i, c := range derived {
		if c == 0 {
			return fmt.Errorf("%w: region %d has no neighbors", ErrBadEncoding, i)
		}
		if c != e.Counts[i] {
			return fmt.Errorf("%w: region %d records %d neighbors, links imply %d",
				ErrBadEncoding, i, e.Counts[i], c)
		}
	}
	if k := componentCount(n, e.Links); k != e.Components {
		return fmt.Errorf("%w: %d components recorded, links imply %d", ErrBadEncoding, e.Components, k)
	}

	return nil
}

// normalizePair orders an undirected pair as {min, max}.
func normalizePair(i, j int) [2]int {
	if i < j {
		return [2]int{i, j}
	}

	return [2]int{j, i}
}
