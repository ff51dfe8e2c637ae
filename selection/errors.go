// SPDX-License-Identifier: MIT

package selection

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSelector is returned by Unset: no lambda policy was configured.
	ErrNoSelector = errors.New("selection: no lambda selector configured")

	// ErrInvalidBounds is returned for a search interval that is empty, negative
	// or not finite, or for a tolerance that is not > 0.
	ErrInvalidBounds = errors.New("selection: invalid search bounds or tolerance")

	// ErrInvalidRatio is returned when an eigenvalue ratio is outside (0, 1].
	ErrInvalidRatio = errors.New("selection: eigenvalue ratio must be in (0, 1]")
)

func selectionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
