// SPDX-License-Identifier: MIT

package fit

import (
	"errors"
	"fmt"
)

var (
	// ErrOptimizer is returned when the logistic optimizer fails or stops on a
	// non-convergence status.
	ErrOptimizer = errors.New("fit: optimizer did not converge")

	// ErrTooFewObservations is returned when X has fewer than two rows.
	ErrTooFewObservations = errors.New("fit: at least two observations are required")
)

func fitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
