// SPDX-License-Identifier: MIT

// Package spectral holds the eigen decomposition of a kernel matrix and the
// truncated eigenbasis the solvers work in.
//
// Decompose delegates to matrix.EigenSym (gonum) and returns the values in
// ascending order, exactly as the eigensolver produced them. Truncate keeps the r
// largest pairs in descending order as a Basis{U, D}. The caller always chooses r;
// see package selection for rank rules.
//
// A Basis carries two invariants every consumer relies on: len(D) == U.Cols() and
// every D[k] > 0, since D is used as a divisor by the spectral penalty.
package spectral
