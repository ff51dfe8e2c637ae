// SPDX-License-Identifier: MIT

package logit

import (
	"github.com/katalvlaran/krls/matrix"
	"github.com/katalvlaran/krls/spectral"
	"gonum.org/v1/gonum/floats"
)

// GradientAlt is the alternative gradient routine. It differs from Gradient in
// both penalty and orientation:
//
//	coef part: Uᵀ·resid − penalty,   intercept part: +Σ resid
//	penalty  = Σ_i ((U_i⊙D⁻¹)·coef) · (U_i⊙D) · Uᵀ · U·diag(D⁻¹)
//
// where U_i is row i of U. The penalty does not depend on λ, and the result is
// not the gradient of Objective; keep the two apart.
//
// Implementation:
//   - The per-row sum is factored as wᵀ·M with s = U·(coef⊙D⁻¹), w = D⊙(Uᵀ·s) and
//     M = Uᵀ·U·diag(D⁻¹), which equals the row-by-row accumulation exactly in
//     exact arithmetic.
//
// Errors:
//   - spectral.ErrNonPositiveEigenvalue, ErrParamLength, ErrInvalidLabel,
//     matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity: O(n·r²).
func GradientAlt(p Params, basis spectral.Basis, y []float64) (Params, error) {
	if err := validate(p, basis, y, 0); err != nil {
		return Params{}, logitErrorf(opGradientAlt, err)
	}
	U, invD := basis.U, matrix.Reciprocal(basis.D)

	scaled, err := matrix.ScaleVec(p.Coef, invD)
	if err != nil {
		return Params{}, logitErrorf(opGradientAlt, err)
	}
	s, err := matrix.MatVec(U, scaled)
	if err != nil {
		return Params{}, logitErrorf(opGradientAlt, err)
	}
	uts, err := matrix.MatTVec(U, s)
	if err != nil {
		return Params{}, logitErrorf(opGradientAlt, err)
	}
	w, err := matrix.ScaleVec(uts, basis.D)
	if err != nil {
		return Params{}, logitErrorf(opGradientAlt, err)
	}
	ut, err := matrix.Transpose(U)
	if err != nil {
		return Params{}, logitErrorf(opGradientAlt, err)
	}
	utu, err := matrix.Mul(ut, U)
	if err != nil {
		return Params{}, logitErrorf(opGradientAlt, err)
	}
	M, err := matrix.ScaleColumns(utu, invD)
	if err != nil {
		return Params{}, logitErrorf(opGradientAlt, err)
	}
	pen, err := matrix.MatTVec(M, w)
	if err != nil {
		return Params{}, logitErrorf(opGradientAlt, err)
	}

	resid := residuals(p, basis, y)
	gc, err := matrix.MatTVec(U, resid)
	if err != nil {
		return Params{}, logitErrorf(opGradientAlt, err)
	}
	floats.Sub(gc, pen)

	return Params{Coef: gc, Beta0: floats.Sum(resid)}, nil
}
