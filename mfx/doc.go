// SPDX-License-Identifier: MIT

// Package mfx computes pointwise marginal effects of a fitted Gaussian-kernel
// model and the delta-method variance of their average.
//
// For covariate j and observation i the effect is the chain-rule derivative of the
// fitted function, scaled by a per-observation link-derivative weight p_i:
//
//	effect[i,j] = −(p_i/b) · Σ_i2 c_i2 · K[i,i2] · (X[i,j] − X[i2,j])
//
// With Dk = K ⊙ (X[·,j] − X[·,j]ᵀ) the variance of the average effect is
//
//	var_j = (1/(b·n))² · (Dk·p²)ᵀ · V · (Dk·1)
//
// where V is the covariance of the kernel-space coefficients c.
//
// Columns are independent and are spread over an errgroup bounded by WithWorkers.
// Dk is never materialized: each column needs O(n) scratch space.
package mfx
