// SPDX-License-Identifier: MIT

package fit

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/krls/lsq"
	"github.com/katalvlaran/krls/matrix"
	"github.com/katalvlaran/krls/spectral"
)

const opLeastSquares = "LeastSquares"

// LeastSquares fits kernel-regularized least squares.
//
// Implementation:
//   - Stage 1: standardize X (optional), build K, decompose, center y.
//   - Stage 2: without WithRank/WithEigTrunc solve on the full kernel (lsq.Solve);
//     otherwise solve in the truncated basis (lsq.SolveTruncated) and map the
//     coefficients to kernel space.
//   - Stage 3: σ² = ‖y − ŷ‖²/n; Vcov = σ²·Ginv² (full) or A·σ²diag(g²)·Aᵀ (truncated).
//
// Errors:
//   - ErrTooFewObservations, selection errors, and every error of kernel, spectral
//     and lsq, wrapped with "LeastSquares".
func LeastSquares(X matrix.Matrix, y []float64, opts ...Option) (*Model, error) {
	s := gatherSettings(opts...)
	log := s.logger.Named("krls.ls")

	pr, err := prepare(opLeastSquares, X, y, s, log)
	if err != nil {
		return nil, err
	}
	n := pr.x.Rows()
	mean := stat.Mean(y, nil)
	yc := make([]float64, n)
	copy(yc, y)
	floats.AddConst(-mean, yc)

	truncated := s.rank > 0 || s.eigTrunc > 0
	b, err := pr.basis(s, 0)
	if err != nil {
		return nil, fitErrorf(opLeastSquares, err)
	}
	lambda, err := pr.lambda(s, yc, b, log)
	if err != nil {
		return nil, fitErrorf(opLeastSquares, err)
	}

	m := &Model{
		Kind:      KindLeastSquares,
		X:         pr.x,
		Means:     pr.means,
		Stds:      pr.stds,
		K:         pr.K,
		Bandwidth: pr.b,
		Lambda:    lambda,
		Beta0:     mean,
		weights:   matrix.Ones(n),
		workers:   s.workers,
	}
	if truncated {
		err = m.solveTruncated(yc, b, lambda)
	} else {
		err = m.solveFull(yc, lambda)
	}
	if err != nil {
		return nil, fitErrorf(opLeastSquares, err)
	}
	floats.AddConst(mean, m.Fitted)

	log.Info("least squares fitted",
		zap.Float64("lambda", lambda),
		zap.Int("rank", m.Rank),
		zap.Float64("loo_loss", m.Loss),
	)

	return m, nil
}

// residualVariance returns ‖yc − fitted‖²/n for centered labels and fitted values.
func residualVariance(yc, fitted []float64) float64 {
	d := floats.Distance(yc, fitted, 2)

	return d * d / float64(len(yc))
}

func (m *Model) solveFull(yc []float64, lambda float64) error {
	res, err := lsq.Solve(yc, m.K, lambda)
	if err != nil {
		return err
	}
	sigma2 := residualVariance(yc, res.Fitted)
	g2, err := matrix.Mul(res.Ginv, res.Ginv)
	if err != nil {
		return err
	}
	if m.Vcov, err = matrix.Scale(g2, sigma2); err != nil {
		return err
	}
	m.Coeffs, m.Fitted, m.Loss, m.Rank = res.Coeffs, res.Fitted, res.Loss, len(yc)

	return nil
}

func (m *Model) solveTruncated(yc []float64, b spectral.Basis, lambda float64) error {
	res, err := lsq.SolveTruncated(yc, b, lambda)
	if err != nil {
		return err
	}
	sigma2 := residualVariance(yc, res.Fitted)
	v, err := matrix.NewDense(b.Rank(), b.Rank())
	if err != nil {
		return err
	}
	for k, g := range res.Shrink {
		if err = v.Set(k, k, sigma2*g*g); err != nil {
			return err
		}
	}
	if m.Vcov, err = kernelVcov(b, v); err != nil {
		return err
	}
	if m.Coeffs, err = b.ToKernel(res.Coeffs); err != nil {
		return err
	}
	m.Fitted, m.Loss, m.Rank = res.Fitted, res.Loss, b.Rank()

	return nil
}
