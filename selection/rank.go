// SPDX-License-Identifier: MIT

package selection

import "github.com/katalvlaran/krls/spectral"

// RankByEigenRatio returns how many eigenpairs satisfy value ≥ ratio·max(values).
// The result is at least 1. values may be in any order.
//
// Errors: ErrInvalidRatio (ratio ∉ (0,1]), spectral.ErrNonPositiveEigenvalue
// (largest eigenvalue ≤ 0).
func RankByEigenRatio(values []float64, ratio float64) (int, error) {
	if !(ratio > 0 && ratio <= 1) {
		return 0, selectionErrorf("RankByEigenRatio", ErrInvalidRatio)
	}
	var top float64
	for _, v := range values {
		if v > top {
			top = v
		}
	}
	if !(top > 0) {
		return 0, selectionErrorf("RankByEigenRatio", spectral.ErrNonPositiveEigenvalue)
	}
	r := 0
	for _, v := range values {
		if v >= ratio*top {
			r++
		}
	}

	return r, nil
}

// BasisFor truncates e by ratio, or keeps every positive eigenpair when ratio is 0.
func BasisFor(e spectral.Eigen, ratio float64) (spectral.Basis, error) {
	if ratio == 0 {
		r := 0
		for _, v := range e.Values {
			if v > 0 {
				r++
			}
		}

		return spectral.Truncate(e, r)
	}
	r, err := RankByEigenRatio(e.Values, ratio)
	if err != nil {
		return spectral.Basis{}, err
	}

	return spectral.Truncate(e, r)
}
