// SPDX-License-Identifier: MIT

package mfx

import (
	"fmt"
	"math"

	"github.com/katalvlaran/krls/kernel"
	"github.com/katalvlaran/krls/matrix"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

const opPointwise = "Pointwise"

// Effects holds pointwise marginal effects (n×p) and, per covariate, the
// delta-method variance of the average effect.
type Effects struct {
	Pointwise *matrix.Dense
	Variance  []float64
}

// Matrix returns the (n+1)×p layout: rows 0..n−1 are the pointwise effects and
// row n holds the variances.
func (e Effects) Matrix() (*matrix.Dense, error) {
	n, p := e.Pointwise.Rows(), e.Pointwise.Cols()
	if len(e.Variance) != p {
		return nil, fmt.Errorf("Effects.Matrix: %w", matrix.ErrDimensionMismatch)
	}
	out, err := matrix.NewDense(n+1, p)
	if err != nil {
		return nil, fmt.Errorf("Effects.Matrix: %w", err)
	}
	for i := 0; i < n; i++ {
		copy(out.RawRow(i), e.Pointwise.RawRow(i))
	}
	copy(out.RawRow(n), e.Variance)

	return out, nil
}

// Average returns the column means of the pointwise effects.
func (e Effects) Average() []float64 {
	n, p := e.Pointwise.Rows(), e.Pointwise.Cols()
	avg := make([]float64, p)
	for i := 0; i < n; i++ {
		floats.Add(avg, e.Pointwise.RawRow(i))
	}
	floats.Scale(1/float64(n), avg)

	return avg
}

// StdErr returns the square roots of the variances. A negative variance, which
// only arises from a covariance that is not positive semi-definite, maps to NaN.
func (e Effects) StdErr() []float64 {
	se := make([]float64, len(e.Variance))
	for j, v := range e.Variance {
		se[j] = math.Sqrt(v)
	}

	return se
}

// Pointwise computes marginal effects for every observation and covariate.
//
// Inputs:
//   - K: n×n kernel matrix of the fit; X: n×p design matrix it was built from.
//   - coef: kernel-space coefficients c (length n).
//   - vcov: n×n covariance of c.
//   - weights: per-observation link derivatives (all ones for least squares).
//   - b: the kernel bandwidth.
//
// Implementation:
//   - One errgroup task per column j. For each i it accumulates, over i2,
//     Dk[i,i2] = K[i,i2]·(X[i,j] − X[i2,j]) into three sums: Σ c·Dk (the effect),
//     Σ p²·Dk and Σ Dk. The variance is then (Dk·p²)ᵀ·V·(Dk·1)/(b·n)².
//
// Errors:
//   - kernel.ErrInvalidBandwidth, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
//     matrix.ErrNaNInf (non-finite coef or weights).
//
// Complexity:
//   - Time O(n²·p), Space O(n·p).
func Pointwise(K, X matrix.Matrix, coef []float64, vcov matrix.Matrix, weights []float64, b float64, opts ...Option) (Effects, error) {
	if err := kernel.ValidateBandwidth(b); err != nil {
		return Effects{}, fmt.Errorf("%s: %w", opPointwise, err)
	}
	x, err := matrix.AsDense(X)
	if err != nil {
		return Effects{}, fmt.Errorf("%s: %w", opPointwise, err)
	}
	n, p := x.Rows(), x.Cols()
	k, err := squareOf(K, n)
	if err != nil {
		return Effects{}, fmt.Errorf("%s: kernel: %w", opPointwise, err)
	}
	v, err := squareOf(vcov, n)
	if err != nil {
		return Effects{}, fmt.Errorf("%s: vcov: %w", opPointwise, err)
	}
	for _, vec := range [][]float64{coef, weights} {
		if err = matrix.ValidateVecLen(vec, n); err != nil {
			return Effects{}, fmt.Errorf("%s: %w", opPointwise, err)
		}
		if err = matrix.ValidateFiniteVec(vec); err != nil {
			return Effects{}, fmt.Errorf("%s: %w", opPointwise, err)
		}
	}
	o := gatherOptions(opts...)

	effects, err := matrix.NewDense(n, p)
	if err != nil {
		return Effects{}, fmt.Errorf("%s: %w", opPointwise, err)
	}
	variance := make([]float64, p)
	p2 := make([]float64, n)
	for i, w := range weights {
		p2[i] = w * w
	}
	scale := 1 / ((b * float64(n)) * (b * float64(n)))

	var g errgroup.Group
	g.SetLimit(o.workers)
	for j := 0; j < p; j++ {
		j := j // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			a := make([]float64, n)   // Dk·p²
			sum := make([]float64, n) // Dk·1
			col, _ := x.Col(j)        // j < p
			var val, dk float64
			for i := 0; i < n; i++ {
				ki := k.RawRow(i)
				val = 0
				for i2 := 0; i2 < n; i2++ {
					dk = ki[i2] * (col[i] - col[i2])
					val += coef[i2] * dk
					a[i] += p2[i2] * dk
					sum[i] += dk
				}
				// column j is owned by this task
				if err := effects.Set(i, j, -(weights[i]/b)*val); err != nil {
					return err
				}
			}
			vr, err := matrix.MatVec(v, sum)
			if err != nil {
				return err
			}
			variance[j] = scale * floats.Dot(a, vr)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Effects{}, fmt.Errorf("%s: %w", opPointwise, err)
	}

	return Effects{Pointwise: effects, Variance: variance}, nil
}

// squareOf returns m as *Dense after checking it is n×n.
func squareOf(m matrix.Matrix, n int) (*matrix.Dense, error) {
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, err
	}
	if d.Rows() != n || d.Cols() != n {
		return nil, matrix.ErrDimensionMismatch
	}

	return d, nil
}
