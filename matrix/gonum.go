// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge Dense to gonum for the two dense factorizations krls needs:
//     symmetric eigen-decomposition (mat.EigenSym) and SPD inversion (mat.Cholesky).
//   - No custom factorization logic lives here; both functions validate, delegate
//     and copy results back into row-major Dense buffers.
//
// Determinism:
//   - gonum's LAPACK-backed routines are deterministic for a fixed input.

package matrix

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	opEigenSym   = "EigenSym"
	opInverseSPD = "InverseSPD"
)

// symDense copies a square Dense into a gonum SymDense (upper triangle is read by gonum).
func symDense(d *Dense) *mat.SymDense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewSymDense(d.r, buf)
}

// fromGonum copies any gonum matrix into a fresh Dense.
func fromGonum(g mat.Matrix) (*Dense, error) {
	r, c := g.Dims()
	out, err := NewDense(r, c, WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}
	out.validateNaNInf = DefaultValidateNaNInf

	return out, nil
}

// EigenSym computes all eigenvalues and eigenvectors of a symmetric matrix.
//
// Implementation:
//   - Stage 1: ValidateSymmetric within eps (DefaultEpsilon or WithEpsilon).
//   - Stage 2: gonum mat.EigenSym.Factorize(sym, true).
//   - Stage 3: copy values (ascending) and vectors (column k pairs with values[k]).
//
// Returns:
//   - []float64: eigenvalues in ascending order.
//   - *Dense   : n×n matrix whose columns are orthonormal eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrEigenFailed.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func EigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}

	var es mat.EigenSym
	if ok := es.Factorize(symDense(d), true); !ok {
		return nil, nil, matrixErrorf(opEigenSym, ErrEigenFailed)
	}
	values := es.Values(nil)

	var ev mat.Dense
	es.VectorsTo(&ev)
	vectors, err := fromGonum(&ev)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}

	return values, vectors, nil
}

// InverseSPD inverts a symmetric positive-definite matrix through a Cholesky
// factorization. Failure to factorize is reported as ErrNotPositiveDefinite and is
// never retried (no jitter is added).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNotPositiveDefinite.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Callers needing both G⁻¹ and G⁻¹y should invert once and MatVec, as lsq.Solve does.
func InverseSPD(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, matrixErrorf(opInverseSPD, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverseSPD, err)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(symDense(d)); !ok {
		return nil, matrixErrorf(opInverseSPD, ErrNotPositiveDefinite)
	}
	if math.IsInf(chol.Cond(), 1) {
		return nil, matrixErrorf(opInverseSPD, ErrNotPositiveDefinite)
	}
	var inv mat.SymDense
	if err = chol.InverseTo(&inv); err != nil {
		// mat.Condition only reports ill-conditioning; the inverse is still computed.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, matrixErrorf(opInverseSPD, ErrNotPositiveDefinite)
		}
	}
	out, err := fromGonum(&inv)
	if err != nil {
		return nil, matrixErrorf(opInverseSPD, err)
	}

	return out, nil
}
