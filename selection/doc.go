// SPDX-License-Identifier: MIT

// Package selection models hyperparameter choice as an injected policy.
//
// The numeric core never picks lambda, the truncation rank or the bandwidth. A host
// supplies a Selector; Unset is the explicit "no policy" value and always reports
// ErrNoSelector. Two host-level policies ship with the package:
//
//   - GoldenSection minimizes the truncated leave-one-out loss of lsq.SolveTruncated
//     over [Lower, Upper].
//   - RankByEigenRatio keeps the eigenpairs whose value is at least a fraction of the
//     largest one.
package selection
