// SPDX-License-Identifier: MIT

package logit

import (
	"math"

	"github.com/katalvlaran/krls/matrix"
	"github.com/katalvlaran/krls/spectral"
	"gonum.org/v1/gonum/floats"
)

const (
	opObjective   = "Objective"
	opGradient    = "Gradient"
	opGradientAlt = "GradientAlt"
	opHessian     = "Hessian"
)

// validate checks the shared preconditions of every routine in this package.
func validate(p Params, basis spectral.Basis, y []float64, lambda float64) error {
	if err := spectral.ValidateLambda(lambda); err != nil {
		return err
	}
	if err := basis.Validate(); err != nil {
		return err
	}
	if len(p.Coef) != basis.Rank() {
		return ErrParamLength
	}
	if err := matrix.ValidateVecLen(y, basis.N()); err != nil {
		return err
	}

	return ValidateLabels(y)
}

// ValidateLabels reports ErrInvalidLabel unless every y_i is finite and in [0, 1].
func ValidateLabels(y []float64) error {
	for _, v := range y {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return ErrInvalidLabel
		}
	}

	return nil
}

// linpred returns η = U·coef + β0. Inputs are pre-validated.
func linpred(U *matrix.Dense, p Params) []float64 {
	eta := make([]float64, U.Rows())
	for i := range eta {
		eta[i] = floats.Dot(U.RawRow(i), p.Coef) + p.Beta0
	}

	return eta
}

// penalty returns coefᵀ·diag(1/D)·coef.
func penalty(coef, D []float64) float64 {
	var s float64
	for k, c := range coef {
		s += c * c / D[k]
	}

	return s
}

func objective(p Params, basis spectral.Basis, y []float64, lambda float64) float64 {
	eta := linpred(basis.U, p)
	var nll float64
	for i, e := range eta {
		nll += y[i]*Softplus(-e) + (1-y[i])*Softplus(e)
	}

	return nll + lambda*penalty(p.Coef, basis.D)
}

// residuals returns y − σ(η).
func residuals(p Params, basis spectral.Basis, y []float64) []float64 {
	eta := linpred(basis.U, p)
	for i, e := range eta {
		eta[i] = y[i] - Sigmoid(e)
	}

	return eta
}

func gradient(p Params, basis spectral.Basis, y []float64, lambda float64) Params {
	resid := residuals(p, basis, y)
	// coef part: -Uᵀ·resid + 2·(λ/D)⊙coef
	gc, _ := matrix.MatTVec(basis.U, resid) // shapes validated by caller
	for k := range gc {
		gc[k] = -gc[k] + 2*lambda*p.Coef[k]/basis.D[k]
	}

	return Params{Coef: gc, Beta0: -floats.Sum(resid)}
}

// Objective returns the penalized negative log-likelihood at p.
//
// Errors:
//   - spectral.ErrNegativeLambda, spectral.ErrNonPositiveEigenvalue,
//     ErrParamLength, ErrInvalidLabel, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity: O(n·r).
func Objective(p Params, basis spectral.Basis, y []float64, lambda float64) (float64, error) {
	if err := validate(p, basis, y, lambda); err != nil {
		return 0, logitErrorf(opObjective, err)
	}

	return objective(p, basis, y, lambda), nil
}

// Gradient returns ∇f at p, oriented for minimization like Objective:
//
//	∂f/∂coef = −Uᵀ·resid + 2·(λ/D)⊙coef,   ∂f/∂β0 = −Σ resid,   resid = y − σ(η).
//
// Errors: as Objective.
// Complexity: O(n·r).
func Gradient(p Params, basis spectral.Basis, y []float64, lambda float64) (Params, error) {
	if err := validate(p, basis, y, lambda); err != nil {
		return Params{}, logitErrorf(opGradient, err)
	}

	return gradient(p, basis, y, lambda), nil
}
