// SPDX-License-Identifier: MIT

// Package krls is the root of a kernel-regularized least squares toolkit:
// Gaussian kernels, spectral solvers, logistic KRLS and pointwise marginal
// effects with delta-method variances.
//
// What is inside?
//
//	matrix/     Dense row-major matrices, validators, gonum-backed eigen/Cholesky
//	kernel/     Gaussian self and cross kernel matrices, parallel per row
//	spectral/   eigendecomposition wrapper and truncated eigenbasis (U, D)
//	lsq/        closed-form full-rank and truncated solves with leave-one-out loss
//	logit/      penalized logistic objective, gradients and Hessian in the eigenbasis
//	mfx/        pointwise marginal effects and the variance of their averages
//	selection/  lambda selector policies (fixed, golden-section LOO search)
//	fit/        end-to-end LeastSquares and Logistic fits returning a Model
//	config/     YAML configuration with environment overrides
//	cmd/krls    command-line front end
//
// Quick example:
//
//	X, _ := matrix.FromRows([][]float64{{0}, {1}, {2}, {3}})
//	y := []float64{0.1, 2.1, 3.9, 6.2}
//	m, err := fit.LeastSquares(X, y)
//	if err != nil {
//		log.Fatal(err)
//	}
//	eff, _ := m.MarginalEffects()
//	fmt.Println(m.Lambda, eff.Average())
//
// The low-level packages accept the matrix.Matrix interface and return
// *matrix.Dense, so they compose without copies.
package krls
