// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/katalvlaran/krls/matrix"
	"gonum.org/v1/gonum/floats"
)

const (
	opDistance = "Distance"
	opGaussian = "Gaussian"
)

// Distance returns the Euclidean norm ‖x1 − x2‖.
// It is symmetric in its arguments and zero iff x1 == x2.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(x1) != len(x2).
//
// Complexity: O(p).
func Distance(x1, x2 []float64) (float64, error) {
	if len(x1) != len(x2) {
		return 0, kernelErrorf(opDistance, matrix.ErrDimensionMismatch)
	}

	return floats.Distance(x1, x2, 2), nil
}

// Gaussian returns exp(-‖x1 − x2‖² / b). The value is exactly 1 for identical rows.
//
// Errors:
//   - ErrInvalidBandwidth, matrix.ErrDimensionMismatch.
func Gaussian(x1, x2 []float64, b float64) (float64, error) {
	if err := ValidateBandwidth(b); err != nil {
		return 0, kernelErrorf(opGaussian, err)
	}
	if len(x1) != len(x2) {
		return 0, kernelErrorf(opGaussian, matrix.ErrDimensionMismatch)
	}

	return math.Exp(-sqDist(x1, x2) / b), nil
}

// sqDist is ‖x1 − x2‖² without the intermediate square root.
// Callers guarantee equal lengths.
func sqDist(x1, x2 []float64) float64 {
	var s, d float64
	for k := range x1 {
		d = x1[k] - x2[k]
		s += d * d
	}

	return s
}
