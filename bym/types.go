// Package bym defines core types, options, and sentinel errors for the
// bym subpackage of github.com/arealstats/besag.
package bym

import (
	"errors"
	"math"
)

// Sentinel errors for BYM model construction and evaluation.
var (
	// ErrBadExposure indicates an exposure value that is not finite and positive.
	ErrBadExposure = errors.New("bym: exposures must be finite and positive")
	// ErrDimensionMismatch indicates a vector or design row of the wrong length.
	ErrDimensionMismatch = errors.New("bym: input length disagrees with model dimensions")
	// ErrNonPositivePrecision indicates a precision that is not finite and positive.
	ErrNonPositivePrecision = errors.New("bym: precision must be finite and positive")
	// ErrNegativeCount indicates an observed count below zero.
	ErrNegativeCount = errors.New("bym: observed counts must be non-negative")
	// ErrBadPrior indicates Gamma hyperparameters that are not finite positive.
	ErrBadPrior = errors.New("bym: gamma shape and rate must be finite and positive")
)

// DEFAULTS - Gamma(shape, rate) hyperpriors on the two precisions.
// The theta defaults follow Carlin's calibration for the unstructured
// heterogeneity precision in the classic BYM formulation; the phi
// default is the conventional weakly-informative Gamma(1, 1).
const (
	// DefaultPhiShape is the Gamma shape on tauPhi.
	DefaultPhiShape = 1.0
	// DefaultPhiRate is the Gamma rate on tauPhi.
	DefaultPhiRate = 1.0
	// DefaultThetaShape is the Gamma shape on tauTheta.
	DefaultThetaShape = 3.2761
	// DefaultThetaRate is the Gamma rate on tauTheta.
	DefaultThetaRate = 1.81
)

// Params is one log-posterior evaluation point. All slices are owned by
// the calling sampler; bym only reads them.
type Params struct {
	// Phi is the structured (IAR) spatial effect, length N.
	Phi []float64
	// Theta is the unstructured heterogeneity effect, length N.
	Theta []float64
	// Beta holds regression coefficients, length P (nil when the model
	// carries no covariates).
	Beta []float64
	// TauPhi is the IAR precision, > 0.
	TauPhi float64
	// TauTheta is the heterogeneity precision, > 0.
	TauTheta float64
}

// Option mutates model construction options.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	x          [][]float64
	phiShape   float64
	phiRate    float64
	thetaShape float64
	thetaRate  float64
}

// WithCovariates attaches an N×P design matrix x; row i holds the
// covariates of region i. NewModel validates row lengths.
func WithCovariates(x [][]float64) Option {
	return func(o *options) { o.x = x }
}

// WithPhiPrecisionPrior sets the Gamma(shape, rate) hyperprior on tauPhi.
func WithPhiPrecisionPrior(shape, rate float64) Option {
	return func(o *options) { o.phiShape, o.phiRate = shape, rate }
}

// WithThetaPrecisionPrior sets the Gamma(shape, rate) hyperprior on tauTheta.
func WithThetaPrecisionPrior(shape, rate float64) Option {
	return func(o *options) { o.thetaShape, o.thetaRate = shape, rate }
}

// gatherOptions applies user-provided Option setters on top of defaults.
func gatherOptions(user ...Option) options {
	o := options{
		phiShape:   DefaultPhiShape,
		phiRate:    DefaultPhiRate,
		thetaShape: DefaultThetaShape,
		thetaRate:  DefaultThetaRate,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// finitePositive reports whether v is a finite value greater than zero.
func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
