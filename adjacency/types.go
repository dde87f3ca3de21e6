// Package adjacency defines core types, options, and sentinel errors
// for the adjacency subpackage of github.com/arealstats/besag.
package adjacency

import (
	"errors"
)

// Sentinel errors for adjacency operations.
var (
	// ErrNilGraph indicates a nil or zero-region neighbor relation.
	ErrNilGraph = errors.New("adjacency: neighbor relation must cover at least one region")
	// ErrIndexRange indicates a neighbor index outside 0..N-1.
	ErrIndexRange = errors.New("adjacency: neighbor index out of range")
	// ErrSelfNeighbor indicates a region listed as its own neighbor.
	ErrSelfNeighbor = errors.New("adjacency: region may not neighbor itself")
	// ErrAsymmetric indicates a one-sided pair (i lists j, j does not list i).
	ErrAsymmetric = errors.New("adjacency: neighbor relation is not symmetric")
	// ErrIsolatedRegion indicates a region with an empty neighbor set,
	// which makes an intrinsic autoregressive prior non-normalizable.
	ErrIsolatedRegion = errors.New("adjacency: region has no neighbors")
	// ErrBadWeight indicates a link weight that is not a finite positive value.
	ErrBadWeight = errors.New("adjacency: link weight must be finite and positive")
	// ErrBadEncoding indicates a deserialized encoding that violates a
	// structural invariant (handshake lemma, link order, duplicates).
	ErrBadEncoding = errors.New("adjacency: encoding fails structural validation")
	// ErrBadDimensions indicates a lattice request with width or height < 1.
	ErrBadDimensions = errors.New("adjacency: lattice width and height must be positive")
)

// DEFAULTS - single source of truth for zero-value option behavior.
const (
	// DefaultSymmetrize controls whether Encode repairs one-sided pairs.
	// false ⇒ reject asymmetric input with ErrAsymmetric, so upstream
	// data-preparation faults surface before any sampling starts.
	DefaultSymmetrize = false
)

// Option mutates encoding options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is unexported to prevent external mutation; Encode accepts ...Option.
type options struct {
	symmetrize bool
	weights    map[[2]int]float64
}

// WithSymmetrize makes Encode take the symmetric closure of the input
// relation: a one-sided pair (i lists j, j omits i) becomes a full
// undirected link instead of an ErrAsymmetric failure.
// Use only when the upstream source is known to emit half-pairs.
// Complexity: O(1).
func WithSymmetrize() Option {
	return func(o *options) { o.symmetrize = true }
}

// WithWeights attaches per-link weights, keyed by the normalized pair
// {min(i,j), max(i,j)}. Links absent from the map keep the implicit
// weight 1. Keys that match no link in the relation are ignored.
// Weights must be finite and positive; Encode reports ErrBadWeight otherwise.
// Complexity: O(1) to set; applied during Encode.
func WithWeights(w map[[2]int]float64) Option {
	return func(o *options) { o.weights = w }
}

// gatherOptions applies user-provided Option setters on top of defaults.
func gatherOptions(user ...Option) options {
	o := options{symmetrize: DefaultSymmetrize}
	for _, set := range user {
		set(&o)
	}

	return o
}
