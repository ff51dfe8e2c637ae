// SPDX-License-Identifier: MIT

package selection

import (
	"math"

	"github.com/katalvlaran/krls/lsq"
)

// DefaultMaxIter caps the golden-section iterations.
const DefaultMaxIter = 200

// invPhi is 1/φ = (√5 − 1)/2.
var invPhi = (math.Sqrt(5) - 1) / 2

// Golden minimizes a unimodal f on [lo, hi] until the bracket is narrower than tol
// or maxIter iterations have run, and returns the bracket midpoint.
func Golden(f func(float64) float64, lo, hi, tol float64, maxIter int) float64 {
	c := hi - invPhi*(hi-lo)
	d := lo + invPhi*(hi-lo)
	fc, fd := f(c), f(d)
	for it := 0; hi-lo > tol && it < maxIter; it++ {
		if fc <= fd {
			hi, d, fd = d, c, fc
			c = hi - invPhi*(hi-lo)
			fc = f(c)
		} else {
			lo, c, fc = c, d, fd
			d = lo + invPhi*(hi-lo)
			fd = f(d)
		}
	}

	return (lo + hi) / 2
}

// GoldenSection picks lambda by minimizing the truncated leave-one-out loss.
// The basis is built from Request.Eigen with BasisFor(EigTrunc).
type GoldenSection struct {
	// MaxIter caps the iterations; 0 means DefaultMaxIter.
	MaxIter int
}

// Select implements Selector.
//
// Errors:
//   - ErrInvalidBounds, ErrInvalidRatio, spectral.ErrInvalidRank, and any error of
//     lsq.SolveTruncated for the first evaluation (shape or label problems).
func (gs GoldenSection) Select(req Request) (float64, error) {
	lo, hi := req.Lower, req.Upper
	if hi == 0 {
		hi = float64(req.Eigen.Size())
	}
	if math.IsNaN(lo) || math.IsInf(hi, 0) || lo < 0 || !(hi > lo) || !(req.Tol > 0) {
		return 0, selectionErrorf("GoldenSection", ErrInvalidBounds)
	}
	basis, err := BasisFor(req.Eigen, req.EigTrunc)
	if err != nil {
		return 0, selectionErrorf("GoldenSection", err)
	}
	// surface input errors once; inside the loop they cannot change with lambda
	if _, err = lsq.SolveTruncated(req.Y, basis, lo); err != nil {
		return 0, selectionErrorf("GoldenSection", err)
	}

	maxIter := gs.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	loss := func(lambda float64) float64 {
		res, err := lsq.SolveTruncated(req.Y, basis, lambda)
		if err != nil {
			return math.Inf(1)
		}

		return res.Loss
	}

	return Golden(loss, lo, hi, req.Tol, maxIter), nil
}
