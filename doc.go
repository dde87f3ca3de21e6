// Package besag provides the pure-computation core for spatial
// autoregressive (CAR/IAR) priors and Besag-York-Mollié models over
// areal count data.
//
// 🚀 What is besag?
//
//	A small, allocation-conscious library that brings together:
//		• Adjacency: neighbor graphs over N indexed regions, validated and
//		  packed into a sparse encoding (diagonal counts + undirected links)
//		• IAR: the intrinsic auto-regressive log-density contribution,
//		  suitable for summing into a sampler's log-posterior
//		• BYM: the remaining additive terms of the Besag-York-Mollié
//		  convolution model (Poisson likelihood, heterogeneity prior,
//		  precision hyperpriors)
//
// ✨ Why choose besag?
//
//   - Sampler-agnostic – every term is a pure function returning a scalar
//     contribution; the caller owns the accumulator
//   - Hot-loop friendly – encodings and evaluators are built once,
//     immutable afterwards, and evaluate in O(N+L) with zero allocation
//   - Chain-safe – all evaluation methods are read-only and may be
//     shared across concurrent chains without locking
//
// Everything is organized under three subpackages:
//
//	adjacency/ — neighbor graphs, sparse encoding, components, JSON codec
//	iar/       — IAR log-density evaluator over an adjacency encoding
//	bym/       — Poisson likelihood and companion priors for the full model
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	four regions on a square, four undirected adjacency links.
//
// MCMC sampling, polygon-to-adjacency construction and plotting are
// deliberately out of scope: besag computes the numbers those tools
// consume.
//
//	go get github.com/arealstats/besag
package besag
