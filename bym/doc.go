// Package bym assembles the additive log-posterior terms of the
// Besag-York-Mollié (BYM) convolution model for areal count data.
//
// What:
//
//	The BYM model for observed counts y over N regions is
//
//	  y[i]     ~ Poisson(exp(log E[i] + x[i]·beta + phi[i] + theta[i]))
//	  phi      ~ IAR(tauPhi)            (structured spatial effect)
//	  theta[i] ~ Normal(0, 1/tauTheta)  (unstructured heterogeneity)
//	  tauPhi   ~ Gamma(aPhi, bPhi)
//	  tauTheta ~ Gamma(aTheta, bTheta)
//
//	Model captures the fixed data (exposures E, optional covariates X,
//	adjacency structure); Params carries one evaluation point. Each
//	term is exposed as its own method returning a scalar contribution,
//	and LogPosterior sums them, so a sampler can use either granularity.
//
// Why:
//
//   - Disease-mapping and small-area regression need both a smooth
//     spatial field and region-level noise; BYM is the standard
//     convolution of the two.
//   - Keeping every term an explicit pure function (rather than an
//     implicit global accumulator) lets external samplers recompute only
//     what a Gibbs or HMC update touched.
//
// Complexity:
//
//   - LogLikelihood / LogPriorTheta: O(N) (O(N·P) with P covariates).
//   - LogPriorPhi: O(N + L) via the embedded iar.Evaluator.
//
// Options:
//
//   - WithCovariates: attach an N×P design matrix.
//   - WithPhiPrecisionPrior / WithThetaPrecisionPrior: Gamma
//     shape/rate hyperparameters for the two precisions.
//
// Errors:
//
//   - ErrBadExposure          : an exposure E[i] is not finite positive.
//   - ErrDimensionMismatch    : y, Phi, Theta, Beta, or a design row has
//     the wrong length.
//   - ErrNonPositivePrecision : TauPhi or TauTheta ≤ 0 (or non-finite).
//   - ErrNegativeCount        : an observed count y[i] < 0.
package bym
