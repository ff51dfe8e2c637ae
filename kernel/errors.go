// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBandwidth is returned when the bandwidth b is not a finite value > 0.
var ErrInvalidBandwidth = errors.New("kernel: bandwidth must be finite and > 0")

// kernelErrorf wraps err with an operation tag, preserving it for errors.Is.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateBandwidth reports ErrInvalidBandwidth unless b is finite and positive.
func ValidateBandwidth(b float64) error {
	if math.IsNaN(b) || math.IsInf(b, 0) || b <= 0 {
		return ErrInvalidBandwidth
	}

	return nil
}
