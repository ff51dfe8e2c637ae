// SPDX-License-Identifier: MIT

package logit

import (
	"github.com/katalvlaran/krls/spectral"
	"gonum.org/v1/gonum/mat"
)

// Problem binds the data and hyperparameters an optimizer holds fixed, and exposes
// the flat-vector callbacks expected by gonum's optimize.Problem. The vector layout
// is Params.Vector(): r coefficients then the intercept.
//
// A Problem keeps no state between calls and is safe for concurrent use.
type Problem struct {
	basis  spectral.Basis
	y      []float64
	lambda float64
}

// NewProblem validates the inputs once so the callbacks can skip validation.
//
// Errors: as Objective.
func NewProblem(basis spectral.Basis, y []float64, lambda float64) (*Problem, error) {
	probe := Params{Coef: make([]float64, len(basis.D))}
	if err := validate(probe, basis, y, lambda); err != nil {
		return nil, logitErrorf("NewProblem", err)
	}

	return &Problem{basis: basis, y: y, lambda: lambda}, nil
}

// Dim returns r+1, the length of the flat parameter vector.
func (pr *Problem) Dim() int { return pr.basis.Rank() + 1 }

func (pr *Problem) split(x []float64) Params {
	r := pr.basis.Rank()

	return Params{Coef: x[:r], Beta0: x[r]}
}

// Func evaluates Objective at the flat vector x. len(x) must equal Dim().
func (pr *Problem) Func(x []float64) float64 {
	return objective(pr.split(x), pr.basis, pr.y, pr.lambda)
}

// Grad writes Gradient at x into grad. len(grad) and len(x) must equal Dim().
func (pr *Problem) Grad(grad, x []float64) {
	g := gradient(pr.split(x), pr.basis, pr.y, pr.lambda)
	copy(grad, g.Coef)
	grad[len(g.Coef)] = g.Beta0
}

// Hess writes the Hessian at x into hess, which must be Dim()×Dim().
func (pr *Problem) Hess(hess *mat.SymDense, x []float64) {
	h, err := hessian(pr.split(x), pr.basis, pr.lambda)
	if err != nil {
		panic(err) // Dim() > 0 always holds for a validated Problem
	}
	n := pr.Dim()
	for i := 0; i < n; i++ {
		row := h.RawRow(i)
		for j := i; j < n; j++ {
			hess.SetSym(i, j, row[j])
		}
	}
}
