// SPDX-License-Identifier: MIT

package selection

import (
	"github.com/katalvlaran/krls/spectral"
)

// Request carries everything a lambda policy may look at.
type Request struct {
	// Tol is the search tolerance on lambda.
	Tol float64
	// Lower and Upper bound the search interval. Upper == 0 means n.
	Lower, Upper float64
	// Y are the labels.
	Y []float64
	// Eigen is the full decomposition of the kernel matrix.
	Eigen spectral.Eigen
	// EigTrunc is the eigenvalue ratio used to truncate the basis (0 keeps full rank).
	EigTrunc float64
}

// Selector chooses a regularization strength.
type Selector interface {
	Select(req Request) (float64, error)
}

// SelectorFunc adapts a plain function to Selector.
type SelectorFunc func(req Request) (float64, error)

// Select calls f(req).
func (f SelectorFunc) Select(req Request) (float64, error) { return f(req) }

// Unset is the Selector used when none is configured. It always fails with ErrNoSelector.
var Unset Selector = SelectorFunc(func(Request) (float64, error) {
	return 0, ErrNoSelector
})

// Fixed is a Selector that always returns its own value, after validation.
type Fixed float64

// Select returns float64(f) or spectral.ErrNegativeLambda.
func (f Fixed) Select(Request) (float64, error) {
	if err := spectral.ValidateLambda(float64(f)); err != nil {
		return 0, selectionErrorf("Fixed", err)
	}

	return float64(f), nil
}
