// SPDX-License-Identifier: MIT

// Package logit supplies the penalized logistic objective of kernel-regularized
// classification over a truncated eigenbasis {U, D}, together with its analytic
// gradient and Hessian, for an external optimizer to minimize.
//
// With η = β0 + U·coef the objective is
//
//	f(coef, β0) = Σ_i [ y_i·log(1+e^{-η_i}) + (1−y_i)·log(1+e^{η_i}) ] + λ·coefᵀ·diag(1/D)·coef
//
// The penalty weights each coefficient by the inverse eigenvalue, so smooth
// (large-eigenvalue) components are penalized less than rough ones.
//
// Numerics:
//
//	log(1+e^x) and the sigmoid are evaluated in their stable forms (Softplus,
//	Sigmoid), so |η| in the thousands yields finite values and gradients.
//
// Interfaces:
//
//   - Objective / Gradient / Hessian take an explicit Params{Coef, Beta0}.
//   - Problem adapts them to the flat-vector Func/Grad/Hess callbacks of
//     gonum.org/v1/gonum/optimize; the intercept is the last element.
//   - GradientAlt is a separate routine with its own penalty term and ascent sign
//     convention. It is not the gradient of Objective.
package logit
