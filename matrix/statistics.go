// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column z-scoring of design matrices: Z[i,j] = (X[i,j] - mean_j) / std_j.
//   - Keep means/stds so new observations can be mapped into the same scale
//     before out-of-sample kernel evaluation.
//
// Determinism & Performance:
//   - Column statistics come from gonum stat.MeanStdDev (unbiased, n-1 denominator).
//   - Degenerate columns (std == 0) are centered only; their factor is 1.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

const (
	opStandardize      = "Standardize"
	opApplyStandardize = "ApplyStandardize"
)

// Standardize returns a z-scored copy of X together with the column means and
// standard deviations used.
//
// Implementation:
//   - Stage 1: Validate X (non-nil) and require at least 2 rows.
//   - Stage 2: stat.MeanStdDev per column (one O(r) pass each).
//   - Stage 3: ApplyStandardize with the collected statistics.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (fewer than 2 rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c + r).
//
// AI-Hints:
//   - Reuse the returned means/stds with ApplyStandardize for prediction inputs.
func Standardize(X Matrix) (*Dense, []float64, []float64, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}
	if d.r < 2 {
		return nil, nil, nil, matrixErrorf(opStandardize, ErrDimensionMismatch)
	}
	means := make([]float64, d.c)
	stds := make([]float64, d.c)
	col := make([]float64, d.r) // reused column buffer
	for j := 0; j < d.c; j++ {
		for i := 0; i < d.r; i++ {
			col[i] = d.data[i*d.c+j]
		}
		means[j], stds[j] = stat.MeanStdDev(col, nil)
	}
	z, err := ApplyStandardize(d, means, stds)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}

	return z, means, stds, nil
}

// ApplyStandardize maps X with previously computed column means/stds.
// Columns with std == 0 are only centered.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(means) or len(stds) != Cols(X)).
//
// Complexity: Time O(r*c), Space O(r*c).
func ApplyStandardize(X Matrix, means, stds []float64) (*Dense, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opApplyStandardize, err)
	}
	if len(means) != d.c || len(stds) != d.c {
		return nil, matrixErrorf(opApplyStandardize, fmt.Errorf("stats for %d columns: %w", d.c, ErrDimensionMismatch))
	}
	out, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opApplyStandardize, err)
	}
	inv := make([]float64, d.c)
	for j, s := range stds {
		inv[j] = 1
		if s > 0 {
			inv[j] = 1 / s
		}
	}
	var base int
	for i := 0; i < d.r; i++ {
		base = i * d.c
		for j := 0; j < d.c; j++ {
			out.data[base+j] = (d.data[base+j] - means[j]) * inv[j]
		}
	}

	return out, nil
}
