// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRank is returned when a truncation rank is outside [1, n].
	ErrInvalidRank = errors.New("spectral: rank must be in [1, n]")

	// ErrNonPositiveEigenvalue is returned when a retained eigenvalue is not > 0.
	// D is a divisor in every penalty, so such a basis is rejected up front.
	ErrNonPositiveEigenvalue = errors.New("spectral: retained eigenvalues must be > 0")

	// ErrNegativeLambda is returned when the regularization strength is < 0 or not finite.
	ErrNegativeLambda = errors.New("spectral: lambda must be finite and >= 0")
)

func spectralErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLambda reports ErrNegativeLambda unless lambda is finite and ≥ 0.
func ValidateLambda(lambda float64) error {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda < 0 {
		return ErrNegativeLambda
	}

	return nil
}
