// SPDX-License-Identifier: MIT

package logit

import (
	"github.com/katalvlaran/krls/matrix"
	"github.com/katalvlaran/krls/spectral"
)

// Hessian returns the (r+1)×(r+1) Hessian of Objective at p, intercept last:
//
//	H_cc = Uᵀ·diag(w)·U + 2λ·diag(1/D),  H_cβ = Uᵀ·w,  H_ββ = Σ w,  w_i = σ(η_i)(1−σ(η_i)).
//
// The host inverts it for the covariance of the fitted parameters.
//
// Errors: as Objective.
// Complexity: O(n·r²).
func Hessian(p Params, basis spectral.Basis, y []float64, lambda float64) (*matrix.Dense, error) {
	if err := validate(p, basis, y, lambda); err != nil {
		return nil, logitErrorf(opHessian, err)
	}
	h, err := hessian(p, basis, lambda)
	if err != nil {
		return nil, logitErrorf(opHessian, err)
	}

	return h, nil
}

// hessian does not depend on y: the logistic curvature is a function of η only.
func hessian(p Params, basis spectral.Basis, lambda float64) (*matrix.Dense, error) {
	r := basis.Rank()
	h, err := matrix.NewDense(r+1, r+1)
	if err != nil {
		return nil, err
	}
	eta := linpred(basis.U, p)
	last := h.RawRow(r)
	var w, s float64
	for i, e := range eta {
		s = Sigmoid(e)
		w = s * (1 - s)
		ui := basis.U.RawRow(i)
		for a := 0; a < r; a++ {
			ha := h.RawRow(a)
			wa := w * ui[a]
			for b := a; b < r; b++ {
				ha[b] += wa * ui[b]
			}
			ha[r] += wa
		}
		last[r] += w
	}
	// mirror the upper triangle and add the spectral penalty
	for a := 0; a < r; a++ {
		ha := h.RawRow(a)
		ha[a] += 2 * lambda / basis.D[a]
		for b := a + 1; b <= r; b++ {
			h.RawRow(b)[a] = ha[b]
		}
	}

	return h, nil
}
