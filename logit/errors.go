// SPDX-License-Identifier: MIT

package logit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/krls/matrix"
)

var (
	// ErrParamLength is returned when len(Coef) != Rank() or a flat vector is not r+1
	// long. It also matches matrix.ErrDimensionMismatch.
	ErrParamLength = fmt.Errorf("logit: parameter length mismatch: %w", matrix.ErrDimensionMismatch)

	// ErrInvalidLabel is returned when a label is not a finite value in [0, 1].
	ErrInvalidLabel = errors.New("logit: labels must lie in [0, 1]")
)

func logitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
