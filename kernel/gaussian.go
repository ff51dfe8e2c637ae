// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/katalvlaran/krls/matrix"
	"golang.org/x/sync/errgroup"
)

const (
	opGaussianMatrix = "GaussianMatrix"
	opCrossMatrix    = "CrossMatrix"
)

// DefaultBandwidth is the conventional KRLS bandwidth for p covariates: b = 2p.
// It assumes standardized columns.
func DefaultBandwidth(p int) float64 { return 2 * float64(p) }

// GaussianMatrix builds the n×n kernel K[i,j] = exp(-‖X_i − X_j‖² / b).
//
// Implementation:
//   - Stage 1: validate b and X; materialize X as *Dense.
//   - Stage 2: one errgroup task per row i computes K[i,j] for j > i and mirrors it
//     into K[j,i]. The diagonal is set to exactly 1.
//
// Errors:
//   - ErrInvalidBandwidth, matrix.ErrNilMatrix.
//
// Complexity:
//   - Time O(n²p/2), Space O(n²).
//
// AI-Hints:
//   - The mirror makes K bit-for-bit symmetric, so it passes matrix.ValidateSymmetric
//     with eps = 0 and can go straight into matrix.EigenSym.
func GaussianMatrix(X matrix.Matrix, b float64, opts ...Option) (*matrix.Dense, error) {
	if err := ValidateBandwidth(b); err != nil {
		return nil, kernelErrorf(opGaussianMatrix, err)
	}
	x, err := matrix.AsDense(X)
	if err != nil {
		return nil, kernelErrorf(opGaussianMatrix, err)
	}
	o := gatherOptions(opts...)

	n := x.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, kernelErrorf(opGaussianMatrix, err)
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := 0; i < n; i++ {
		i := i // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			xi := x.RawRow(i)
			ki := out.RawRow(i)
			ki[i] = 1
			for j := i + 1; j < n; j++ {
				v := math.Exp(-sqDist(xi, x.RawRow(j)) / b)
				ki[j] = v
				out.RawRow(j)[i] = v
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, kernelErrorf(opGaussianMatrix, err)
	}

	return out, nil
}

// CrossMatrix builds the n1×n2 kernel between rows of Xnew and rows of Xold.
// No symmetry is assumed; each row of Xnew is an independent task.
//
// Errors:
//   - ErrInvalidBandwidth, matrix.ErrNilMatrix,
//     matrix.ErrDimensionMismatch when the column counts differ.
//
// Complexity: Time O(n1·n2·p), Space O(n1·n2).
func CrossMatrix(Xnew, Xold matrix.Matrix, b float64, opts ...Option) (*matrix.Dense, error) {
	if err := ValidateBandwidth(b); err != nil {
		return nil, kernelErrorf(opCrossMatrix, err)
	}
	xn, err := matrix.AsDense(Xnew)
	if err != nil {
		return nil, kernelErrorf(opCrossMatrix, err)
	}
	xo, err := matrix.AsDense(Xold)
	if err != nil {
		return nil, kernelErrorf(opCrossMatrix, err)
	}
	if xn.Cols() != xo.Cols() {
		return nil, kernelErrorf(opCrossMatrix, matrix.ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	n1, n2 := xn.Rows(), xo.Rows()
	out, err := matrix.NewDense(n1, n2)
	if err != nil {
		return nil, kernelErrorf(opCrossMatrix, err)
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := 0; i < n1; i++ {
		i := i // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			xi := xn.RawRow(i)
			ki := out.RawRow(i)
			for j := 0; j < n2; j++ {
				ki[j] = math.Exp(-sqDist(xi, xo.RawRow(j)) / b)
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, kernelErrorf(opCrossMatrix, err)
	}

	return out, nil
}
