// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra substrate of krls.
//
// What & Why:
//
//	Kernel-regularized learning works on a handful of dense shapes: the n×p design
//	matrix X, the n×n Gaussian kernel K, the n×r truncated eigenbasis U and short
//	vectors (eigenvalues, labels, coefficients). This package gives those shapes a
//	single row-major container (Dense) with safe accessors, a central set of
//	validators and sentinel errors, and the small set of products every solver needs.
//
// Highlights:
//
//   - ScaleColumns(X, d): column-wise scalar scaling, X·diag(d). It is the shared
//     primitive behind every ridge and spectral-penalty computation in krls.
//   - Mul, Transpose, MatVec, MatTVec, Hadamard, AddScaledIdentity: deterministic
//     loops with *Dense fast paths and interface fallbacks.
//   - EigenSym and InverseSPD delegate to gonum (mat.EigenSym, mat.Cholesky). No
//     custom factorization lives here.
//   - Standardize / ApplyStandardize: column z-scoring for design matrices.
//
// Numeric policy:
//
//	Dense.Set rejects NaN/±Inf by default (DefaultValidateNaNInf). Structural checks
//	such as ValidateSymmetric use DefaultEpsilon unless WithEpsilon overrides it.
//
// Errors:
//
//	All failures are reported through the sentinels in errors.go, wrapped with an
//	operation tag ("Mul: matrix: dimension mismatch"). Match with errors.Is.
//
// Complexity quicksheet:
//
//	NewDense O(r*c); At/Set O(1); Mul O(r*n*c); MatVec/MatTVec O(r*c);
//	ScaleColumns O(r*c); EigenSym O(n^3); InverseSPD O(n^3).
package matrix
