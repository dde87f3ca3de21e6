package bym

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arealstats/besag/adjacency"
	"github.com/arealstats/besag/iar"
)

// Model captures the fixed side of a BYM regression: the adjacency
// structure (via an embedded iar.Evaluator), per-region exposures, the
// optional design matrix, and the precision hyperpriors. It is
// immutable after NewModel and safe to share across chains.
type Model struct {
	eval       *iar.Evaluator
	n          int
	p          int
	logE       []float64
	x          [][]float64
	phiPrior   distuv.Gamma
	thetaPrior distuv.Gamma
}

// NewModel builds a BYM model over the adjacency encoding enc with
// per-region exposures (expected counts) exposure.
//
// Error Conditions:
//   - iar.ErrNilEncoding   : enc is nil or invalid.
//   - ErrDimensionMismatch : len(exposure) != N, or a design row has the
//     wrong length.
//   - ErrBadExposure       : an exposure is NaN, ±Inf, or ≤ 0.
//   - ErrBadPrior          : a hyperprior shape or rate is not finite positive.
//
// Complexity: O(N + L + N·P) time and memory.
func NewModel(enc *adjacency.Encoding, exposure []float64, opts ...Option) (*Model, error) {
	eval, err := iar.NewEvaluator(enc)
	if err != nil {
		return nil, err
	}
	n := eval.NumRegions()
	if len(exposure) != n {
		return nil, fmt.Errorf("%w: %d exposures for %d regions", ErrDimensionMismatch, len(exposure), n)
	}

	o := gatherOptions(opts...)
	if !finitePositive(o.phiShape) || !finitePositive(o.phiRate) ||
		!finitePositive(o.thetaShape) || !finitePositive(o.thetaRate) {
		return nil, ErrBadPrior
	}

	// Offsets enter the linear predictor as log E[i]; precompute them once.
	logE := make([]float64, n)
	for i, e := range exposure {
		if !finitePositive(e) {
			return nil, fmt.Errorf("%w: region %d has exposure %v", ErrBadExposure, i, e)
		}
		logE[i] = math.Log(e)
	}

	m := &Model{
		eval:       eval,
		n:          n,
		logE:       logE,
		phiPrior:   distuv.Gamma{Alpha: o.phiShape, Beta: o.phiRate},
		thetaPrior: distuv.Gamma{Alpha: o.thetaShape, Beta: o.thetaRate},
	}

	if o.x != nil {
		if len(o.x) != n {
			return nil, fmt.Errorf("%w: %d design rows for %d regions", ErrDimensionMismatch, len(o.x), n)
		}
		m.p = len(o.x[0])
		m.x = make([][]float64, n)
		for i, row := range o.x {
			if len(row) != m.p {
				return nil, fmt.Errorf("%w: design row %d has %d columns, expected %d",
					ErrDimensionMismatch, i, len(row), m.p)
			}
			m.x[i] = append([]float64(nil), row...)
		}
	}

	return m, nil
}

// NumRegions returns N, the number of regions the model covers.
func (m *Model) NumRegions() int { return m.n }

// NumCovariates returns P, the number of design columns (0 without covariates).
func (m *Model) NumCovariates() int { return m.p }

// LogLikelihood returns the Poisson log-likelihood of the observed
// counts y at the evaluation point p:
//
//	Σᵢ log Poisson(y[i] | exp(log E[i] + x[i]·Beta + Phi[i] + Theta[i]))
//
// Error Conditions:
//   - ErrDimensionMismatch : y, Phi, Theta, or Beta has the wrong length.
//   - ErrNegativeCount     : y[i] < 0.
//
// Complexity: O(N·(1+P)) time, zero heap allocation.
func (m *Model) LogLikelihood(y []int, p Params) (float64, error) {
	if err := m.checkShapes(y, p); err != nil {
		return 0, err
	}

	var sum float64
	for i, yi := range y {
		if yi < 0 {
			return 0, fmt.Errorf("%w: y[%d] = %d", ErrNegativeCount, i, yi)
		}
		eta := m.logE[i] + p.Phi[i] + p.Theta[i]
		for j, b := range p.Beta {
			eta += m.x[i][j] * b
		}
		pois := distuv.Poisson{Lambda: math.Exp(eta)}
		sum += pois.LogProb(float64(yi))
	}

	return sum, nil
}

// LogPriorPhi returns the IAR log-density contribution of the
// structured effect Phi under precision TauPhi. Errors propagate from
// the embedded iar.Evaluator (iar.ErrNonPositiveTau,
// iar.ErrDimensionMismatch).
// Complexity: O(N + L).
func (m *Model) LogPriorPhi(p Params) (float64, error) {
	return m.eval.LogDensity(p.Phi, p.TauPhi)
}

// LogPriorTheta returns the log density of the unstructured
// heterogeneity effect: Theta[i] iid Normal(0, 1/TauTheta).
//
// Error Conditions:
//   - ErrDimensionMismatch    : len(Theta) != N.
//   - ErrNonPositivePrecision : TauTheta ≤ 0 or non-finite.
//
// Complexity: O(N).
func (m *Model) LogPriorTheta(p Params) (float64, error) {
	if len(p.Theta) != m.n {
		return 0, fmt.Errorf("%w: %d theta values for %d regions", ErrDimensionMismatch, len(p.Theta), m.n)
	}
	if !finitePositive(p.TauTheta) {
		return 0, ErrNonPositivePrecision
	}

	norm := distuv.Normal{Mu: 0, Sigma: 1 / math.Sqrt(p.TauTheta)}
	var sum float64
	for _, t := range p.Theta {
		sum += norm.LogProb(t)
	}

	return sum, nil
}

// LogPriorPrecisions returns the summed Gamma hyperprior log densities
// of TauPhi and TauTheta.
//
// Error Conditions:
//   - ErrNonPositivePrecision : either precision ≤ 0 or non-finite.
//
// Complexity: O(1).
func (m *Model) LogPriorPrecisions(p Params) (float64, error) {
	if !finitePositive(p.TauPhi) || !finitePositive(p.TauTheta) {
		return 0, ErrNonPositivePrecision
	}

	return m.phiPrior.LogProb(p.TauPhi) + m.thetaPrior.LogProb(p.TauTheta), nil
}

// LogPosterior returns the full unnormalized BYM log posterior at the
// evaluation point p: likelihood + IAR prior + heterogeneity prior +
// precision hyperpriors. Terms are summed in an explicit accumulator;
// the first failing term aborts the evaluation.
// Complexity: O(N·(1+P) + L).
func (m *Model) LogPosterior(y []int, p Params) (float64, error) {
	total, err := m.LogLikelihood(y, p)
	if err != nil {
		return 0, err
	}

	term, err := m.LogPriorPhi(p)
	if err != nil {
		return 0, err
	}
	total += term

	if term, err = m.LogPriorTheta(p); err != nil {
		return 0, err
	}
	total += term

	if term, err = m.LogPriorPrecisions(p); err != nil {
		return 0, err
	}
	total += term

	return total, nil
}

// checkShapes validates the vector lengths shared by likelihood calls.
func (m *Model) checkShapes(y []int, p Params) error {
	if len(y) != m.n {
		return fmt.Errorf("%w: %d observations for %d regions", ErrDimensionMismatch, len(y), m.n)
	}
	if len(p.Phi) != m.n {
		return fmt.Errorf("%w: %d phi values for %d regions", ErrDimensionMismatch, len(p.Phi), m.n)
	}
	if len(p.Theta) != m.n {
		return fmt.Errorf("%w: %d theta values for %d regions", ErrDimensionMismatch, len(p.Theta), m.n)
	}
	if len(p.Beta) != m.p {
		return fmt.Errorf("%w: %d coefficients for %d covariates", ErrDimensionMismatch, len(p.Beta), m.p)
	}

	return nil
}
