// Package iar evaluates the log-density contribution of the intrinsic
// auto-regressive (IAR, also known as intrinsic CAR) prior over a
// sparse adjacency encoding.
//
// What:
//
//   - Evaluator wraps an adjacency.Encoding once and computes, per call,
//     the unnormalized log density of a spatial effect vector h under
//     precision tau:
//
//     ((N-k)/2)·log(tau) - (tau/2)·Σᵢ h[i]²·count[i] + tau·Σ₍i,j₎ h[i]·h[j]·w_ij
//
//     where k is the number of connected components of the neighbor
//     relation (the precision matrix has rank N-k, one intrinsic
//     degree of freedom per component).
//   - Quad exposes the tau-free quadratic form hᵀQh for callers that
//     need it separately (gradients, scaling diagnostics).
//
// Why:
//
//   - The IAR term is re-evaluated at every leapfrog step of a sampler,
//     thousands of times per run; it must walk the encoding in O(N+L)
//     with no per-call allocation. Everything reusable is captured at
//     Evaluator construction.
//   - The contribution is returned as a plain scalar: the caller owns
//     the log-posterior accumulator and sums this term with the
//     likelihood and the remaining priors.
//
// Complexity:
//
//   - NewEvaluator: O(N + L) time and memory (defensive copies).
//   - LogDensity:   O(N + L) time, zero heap allocation.
//   - Quad:         O(N + L) time, zero heap allocation.
//
// Concurrency:
//
//   - An Evaluator is immutable after construction; all methods are
//     read-only and safe for concurrent use across chains.
//
// Errors:
//
//   - ErrNilEncoding       : NewEvaluator given a nil or invalid encoding.
//   - ErrNonPositiveTau    : tau ≤ 0, NaN, or ±Inf.
//   - ErrDimensionMismatch : len(h) differs from the encoding's N.
package iar
