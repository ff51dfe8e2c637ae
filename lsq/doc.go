// SPDX-License-Identifier: MIT

// Package lsq solves the kernel-regularized least-squares problem in closed form.
//
// Two solvers share one result shape:
//
//   - Solve works with the full n×n kernel: coeffs = (K + λI)⁻¹·y, with the
//     classical leave-one-out loss Σ (coeffs_i / [(K+λI)⁻¹]_ii)².
//   - SolveTruncated works in a rank-r eigenbasis {U, D}: coeffs = g ⊙ (Uᵀy) with the
//     spectral shrinkage g_k = 1/(1 + λ/D_k), and the LOO loss built from the hat
//     diagonal h_i = Σ_k U_ik²·g_k. Cost is O(n·r) instead of O(n³).
//
// Both are pure functions of their inputs. Neither retries on numerical failure.
package lsq
