// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"
	"math"

	"github.com/katalvlaran/krls/matrix"
	"github.com/katalvlaran/krls/spectral"
	"gonum.org/v1/gonum/floats"
)

const (
	opSolve          = "Solve"
	opSolveTruncated = "SolveTruncated"
)

// Result is the outcome of a least-squares solve.
type Result struct {
	// Coeffs are kernel-space coefficients (length n) for Solve and
	// in-basis coefficients (length r) for SolveTruncated.
	Coeffs []float64

	// Loss is the leave-one-out squared error. +Inf when some observation has
	// leverage exactly 1 and its LOO residual is undefined.
	Loss float64

	// Fitted are the in-sample fitted values (length n).
	Fitted []float64

	// Ginv is (K + λI)⁻¹. Solve only; nil for SolveTruncated.
	Ginv *matrix.Dense

	// Shrink is g_k = 1/(1 + λ/D_k). SolveTruncated only; nil for Solve.
	Shrink []float64
}

func lsqErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solve computes the full-rank ridge solution in kernel space.
//
// Implementation:
//   - Stage 1: G = K + λI; Ginv through a Cholesky inverse (matrix.InverseSPD).
//   - Stage 2: coeffs = Ginv·y.
//   - Stage 3: Loss = Σ_i (coeffs_i / Ginv_ii)²; Fitted = y − λ·coeffs since
//     (K + λI)·coeffs = y.
//
// Errors:
//   - spectral.ErrNegativeLambda, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
//     matrix.ErrNaNInf (non-finite y), matrix.ErrAsymmetry,
//     matrix.ErrNotPositiveDefinite (G is not SPD; fatal, not retried).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(y []float64, K matrix.Matrix, lambda float64) (Result, error) {
	if err := spectral.ValidateLambda(lambda); err != nil {
		return Result{}, lsqErrorf(opSolve, err)
	}
	if err := matrix.ValidateSquareNonNil(K); err != nil {
		return Result{}, lsqErrorf(opSolve, err)
	}
	if err := validateLabels(y, K.Rows()); err != nil {
		return Result{}, lsqErrorf(opSolve, err)
	}

	G, err := matrix.AddScaledIdentity(K, lambda)
	if err != nil {
		return Result{}, lsqErrorf(opSolve, err)
	}
	Ginv, err := matrix.InverseSPD(G)
	if err != nil {
		return Result{}, lsqErrorf(opSolve, err)
	}
	coeffs, err := matrix.MatVec(Ginv, y)
	if err != nil {
		return Result{}, lsqErrorf(opSolve, err)
	}
	diag, err := matrix.Diag(Ginv)
	if err != nil {
		return Result{}, lsqErrorf(opSolve, err)
	}

	var loss, e float64
	fitted := make([]float64, len(y))
	for i := range coeffs {
		e = coeffs[i] / diag[i]
		loss += e * e
		fitted[i] = y[i] - lambda*coeffs[i]
	}

	return Result{Coeffs: coeffs, Loss: loss, Fitted: fitted, Ginv: Ginv}, nil
}

// SolveTruncated computes the ridge solution in a truncated eigenbasis.
//
// Implementation:
//   - Stage 1: g = 1/(1 + λ/D) elementwise.
//   - Stage 2: coeffs = g ⊙ (Uᵀy); fitted = U·coeffs.
//   - Stage 3: hat_i = row_i(ScaleColumns(U, g)) · row_i(U), the diagonal of
//     U·diag(g)·Uᵀ without forming it; tempLoss_i = y_i − (fitted_i − hat_i·y_i)/(1 − hat_i);
//     Loss = tempLossᵀ·tempLoss.
//
// Errors:
//   - spectral.ErrNegativeLambda, spectral.ErrNonPositiveEigenvalue,
//     matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(n·r), Space O(n·r).
//
// AI-Hints:
//   - At r = n and λ > 0 the loss equals Solve's loss on K = U·diag(D)·Uᵀ; both
//     are the same LOO residual (y_i − f_i)/(1 − h_i).
func SolveTruncated(y []float64, basis spectral.Basis, lambda float64) (Result, error) {
	if err := spectral.ValidateLambda(lambda); err != nil {
		return Result{}, lsqErrorf(opSolveTruncated, err)
	}
	if err := basis.Validate(); err != nil {
		return Result{}, lsqErrorf(opSolveTruncated, err)
	}
	if err := validateLabels(y, basis.N()); err != nil {
		return Result{}, lsqErrorf(opSolveTruncated, err)
	}

	g := make([]float64, basis.Rank())
	for k, d := range basis.D {
		g[k] = 1 / (1 + lambda/d)
	}
	uty, err := matrix.MatTVec(basis.U, y)
	if err != nil {
		return Result{}, lsqErrorf(opSolveTruncated, err)
	}
	coeffs, err := matrix.ScaleVec(uty, g)
	if err != nil {
		return Result{}, lsqErrorf(opSolveTruncated, err)
	}
	fitted, err := matrix.MatVec(basis.U, coeffs)
	if err != nil {
		return Result{}, lsqErrorf(opSolveTruncated, err)
	}
	ug, err := matrix.ScaleColumns(basis.U, g)
	if err != nil {
		return Result{}, lsqErrorf(opSolveTruncated, err)
	}

	temp := make([]float64, len(y))
	var hat float64
	for i := range y {
		hat = floats.Dot(ug.RawRow(i), basis.U.RawRow(i))
		if hat == 1 {
			return Result{Coeffs: coeffs, Loss: math.Inf(1), Fitted: fitted, Shrink: g}, nil
		}
		temp[i] = y[i] - (fitted[i]-hat*y[i])/(1-hat)
	}

	return Result{Coeffs: coeffs, Loss: floats.Dot(temp, temp), Fitted: fitted, Shrink: g}, nil
}

// validateLabels checks len(y) == n and that y is finite.
func validateLabels(y []float64, n int) error {
	if err := matrix.ValidateVecLen(y, n); err != nil {
		return err
	}

	return matrix.ValidateFiniteVec(y)
}
