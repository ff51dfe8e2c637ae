// SPDX-License-Identifier: MIT

package spectral

import (
	"math"

	"github.com/katalvlaran/krls/matrix"
)

const (
	opDecompose = "Decompose"
	opTruncate  = "Truncate"
	opNewBasis  = "NewBasis"
	opToKernel  = "ToKernel"
)

// Eigen is the full eigen decomposition of a symmetric matrix.
// Values are ascending; column k of Vectors pairs with Values[k].
type Eigen struct {
	Values  []float64
	Vectors *matrix.Dense
}

// Size returns n, the order of the decomposed matrix.
func (e Eigen) Size() int { return len(e.Values) }

// Decompose returns the eigen decomposition of the symmetric matrix K.
// Options are forwarded to matrix.EigenSym (e.g. matrix.WithEpsilon).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrAsymmetry,
//     matrix.ErrEigenFailed.
//
// Complexity: O(n³).
func Decompose(K matrix.Matrix, opts ...matrix.Option) (Eigen, error) {
	values, vectors, err := matrix.EigenSym(K, opts...)
	if err != nil {
		return Eigen{}, spectralErrorf(opDecompose, err)
	}

	return Eigen{Values: values, Vectors: vectors}, nil
}

// Basis is a truncated eigenbasis: U is n×r with orthonormal columns and D holds
// the matching r eigenvalues.
type Basis struct {
	U *matrix.Dense
	D []float64
}

// NewBasis validates U and D and returns them as a Basis. Inputs are not copied.
//
// Errors:
//   - matrix.ErrNilMatrix (nil U), matrix.ErrDimensionMismatch (len(D) != Cols(U)),
//     ErrNonPositiveEigenvalue (some D[k] ≤ 0 or not finite).
func NewBasis(U *matrix.Dense, D []float64) (Basis, error) {
	b := Basis{U: U, D: D}
	if err := b.Validate(); err != nil {
		return Basis{}, spectralErrorf(opNewBasis, err)
	}

	return b, nil
}

// Validate checks the Basis invariants.
func (b Basis) Validate() error {
	if err := matrix.ValidateNotNil(b.U); err != nil {
		return err
	}
	if err := matrix.ValidateVecLen(b.D, b.U.Cols()); err != nil {
		return err
	}
	for _, d := range b.D {
		if !(d > 0) || math.IsInf(d, 1) {
			return ErrNonPositiveEigenvalue
		}
	}

	return nil
}

// Rank returns r, the number of retained components.
func (b Basis) Rank() int { return len(b.D) }

// N returns the number of observations (rows of U).
func (b Basis) N() int { return b.U.Rows() }

// ToKernel maps in-basis coefficients to kernel-space coefficients,
// c = U·diag(1/D)·coef, so that U·coef == K_r·c for the rank-r kernel K_r = U·diag(D)·Uᵀ.
//
// Errors: matrix.ErrDimensionMismatch when len(coef) != Rank().
func (b Basis) ToKernel(coef []float64) ([]float64, error) {
	scaled, err := matrix.ScaleVec(coef, matrix.Reciprocal(b.D))
	if err != nil {
		return nil, spectralErrorf(opToKernel, err)
	}
	c, err := matrix.MatVec(b.U, scaled)
	if err != nil {
		return nil, spectralErrorf(opToKernel, err)
	}

	return c, nil
}

// Truncate keeps the r largest eigenpairs of e, ordered by descending eigenvalue.
//
// Implementation:
//   - Values arrive ascending, so the top r are the last r; they are copied in
//     reverse together with their eigenvector columns.
//
// Errors:
//   - ErrInvalidRank (r < 1 or r > n), ErrNonPositiveEigenvalue, matrix.ErrNilMatrix.
//
// Complexity: O(n·r).
func Truncate(e Eigen, r int) (Basis, error) {
	if err := matrix.ValidateNotNil(e.Vectors); err != nil {
		return Basis{}, spectralErrorf(opTruncate, err)
	}
	n := e.Size()
	if r < 1 || r > n {
		return Basis{}, spectralErrorf(opTruncate, ErrInvalidRank)
	}
	if e.Vectors.Rows() != n || e.Vectors.Cols() != n {
		return Basis{}, spectralErrorf(opTruncate, matrix.ErrDimensionMismatch)
	}

	U, err := matrix.NewDense(n, r)
	if err != nil {
		return Basis{}, spectralErrorf(opTruncate, err)
	}
	D := make([]float64, r)
	var src int
	for k := 0; k < r; k++ {
		src = n - 1 - k
		D[k] = e.Values[src]
		for i := 0; i < n; i++ {
			U.RawRow(i)[k] = e.Vectors.RawRow(i)[src]
		}
	}

	b := Basis{U: U, D: D}
	if err = b.Validate(); err != nil {
		return Basis{}, spectralErrorf(opTruncate, err)
	}

	return b, nil
}
