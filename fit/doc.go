// SPDX-License-Identifier: MIT

// Package fit is the host modeling layer of krls. It turns a design matrix and
// labels into a fitted Model by wiring the numeric packages together:
//
//	X ─Standardize→ Xs ─kernel.GaussianMatrix→ K ─spectral.Decompose→ Eigen
//	  ─selection (rank, lambda)→ Basis, λ ─lsq / logit+optimize→ coefficients
//
// Every fitted Model stores kernel-space coefficients c (length n) and their n×n
// covariance, so predictions and marginal effects do not depend on whether the fit
// used the full kernel or a truncated basis.
//
// Least squares centers y and solves in closed form. Logistic regression minimizes
// logit.Objective with gonum's optimize package (BFGS by default) and takes the
// parameter covariance from the inverse Hessian at the optimum.
//
// A *zap.Logger may be supplied with WithLogger; the default discards everything.
package fit
