// SPDX-License-Identifier: MIT

// Package kernel builds Gaussian kernel values and matrices from design rows.
//
// What & Why:
//
//	KRLS measures similarity between observations with the Gaussian kernel
//	k(x1, x2) = exp(-‖x1 − x2‖² / b). The self matrix K (train×train) feeds the
//	eigen decomposition and the solvers; the cross matrix (new×train) scores
//	out-of-sample rows against a fitted model.
//
// Highlights:
//
//   - Distance and Gaussian operate on single rows.
//   - GaussianMatrix computes only the strict upper triangle and mirrors it, so the
//     result is exactly symmetric with a unit diagonal.
//   - CrossMatrix makes no symmetry assumption.
//   - Both matrix builders fan rows out over an errgroup bounded by WithWorkers.
//     Every worker writes disjoint cells, so the output is independent of scheduling.
//
// Errors:
//
//	ErrInvalidBandwidth for b ≤ 0 or non-finite b. Shape problems surface as
//	matrix.ErrDimensionMismatch / matrix.ErrNilMatrix, wrapped with an operation tag.
//
// Complexity:
//
//	Gaussian O(p); GaussianMatrix O(n²p/2); CrossMatrix O(n1·n2·p).
package kernel
