// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise and broadcast kernels: per-column / per-row scalar scaling and
//     tolerance comparison.
//   - ScaleColumns is the diagonal-scaling primitive of every ridge and spectral
//     computation in krls: ScaleColumns(X, d) == X·diag(d).

package matrix

import "math"

const (
	opScaleColumns = "ScaleColumns"
	opScaleRows    = "ScaleRows"
	opAllClose     = "AllClose"
)

// ScaleColumns returns a matrix of the same shape where column j equals X's
// column j multiplied by scale[j]. Right-multiplication by diag(scale); this is a
// column-wise (not row-wise) scaling.
//
// Implementation:
//   - Stage 1: Validate X non-nil and len(scale) == Cols(X).
//   - Stage 2: Deterministic i→j pass over the flat buffer.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(scale) != Cols(X)).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - A length-r vector v scaled by d is ScaleColumns of the 1×r row matrix [v];
//     ScaleVec is the allocation-light shortcut for that case.
//   - ScaleColumns(U, g) followed by a row-wise dot with U gives the hat diagonal
//     diag(U·diag(g)·Uᵀ) without forming the n×n product.
func ScaleColumns(X Matrix, scale []float64) (*Dense, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opScaleColumns, err)
	}
	r, c := d.r, d.c
	if len(scale) != c {
		return nil, matrixErrorf(opScaleColumns, ErrDimensionMismatch)
	}
	out, err := NewDense(r, c, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opScaleColumns, err)
	}
	var base int
	for i := 0; i < r; i++ {
		base = i * c
		for j := 0; j < c; j++ {
			out.data[base+j] = d.data[base+j] * scale[j]
		}
	}
	out.validateNaNInf = d.validateNaNInf

	return out, nil
}

// ScaleVec returns v ⊙ scale, i.e. ScaleColumns applied to the single-row matrix [v].
//
// Errors: ErrNilMatrix (nil v), ErrDimensionMismatch (len mismatch).
// Complexity: O(len(v)).
func ScaleVec(v, scale []float64) ([]float64, error) {
	if err := ValidateVecLen(v, len(scale)); err != nil {
		return nil, matrixErrorf(opScaleColumns, err)
	}
	out := make([]float64, len(v))
	for j := range v {
		out[j] = v[j] * scale[j]
	}

	return out, nil
}

// ScaleRows computes out[i,j] = X[i,j] * scale[i] (left multiplication by diag(scale)).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Rows(X)).
// Complexity: Time O(r*c), Space O(r*c).
func ScaleRows(X Matrix, scale []float64) (*Dense, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	r, c := d.r, d.c
	if len(scale) != r {
		return nil, matrixErrorf(opScaleRows, ErrDimensionMismatch)
	}
	out, err := NewDense(r, c, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	var (
		base int
		sf   float64
	)
	for i := 0; i < r; i++ {
		base = i * c
		sf = scale[i] // scale factor for row i
		for j := 0; j < c; j++ {
			out.data[base+j] = d.data[base+j] * sf
		}
	}
	out.validateNaNInf = d.validateNaNInf

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything. Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - negative rtol/atol are normalized to their absolute values.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range da.data {
		if !(math.Abs(da.data[idx]-db.data[idx]) <= atol+rtol*math.Abs(db.data[idx])) {
			return false, nil // early-exit on first violation (NaN lands here too)
		}
	}

	return true, nil
}
