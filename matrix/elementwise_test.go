// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/krls/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScaleColumns_Ones verifies that scaling by a ones vector is the identity map.
func TestScaleColumns_Ones(t *testing.T) {
	x := MustDense(t, 4, 3)
	RandomFill(t, x, 7)

	got, err := matrix.ScaleColumns(x, matrix.Ones(3))
	require.NoError(t, err)
	ok, err := matrix.AllClose(got, x, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestScaleColumns_PerColumn checks column j is multiplied by d[j] (not row j).
func TestScaleColumns_PerColumn(t *testing.T) {
	x := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	d := []float64{10, 0, -1}

	for _, in := range []matrix.Matrix{x, hide{x}} {
		got, err := matrix.ScaleColumns(in, d)
		require.NoError(t, err)
		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				assert.Equal(t, MustAt(t, x, i, j)*d[j], MustAt(t, got, i, j), "[%d,%d]", i, j)
			}
		}
	}

	_, err := matrix.ScaleColumns(x, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ScaleColumns(nil, d)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScaleVec(t *testing.T) {
	got, err := matrix.ScaleVec([]float64{1, 2, 3}, []float64{2, 0.5, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, -3}, got)

	_, err = matrix.ScaleVec([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestScaleRows(t *testing.T) {
	x := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	got, err := matrix.ScaleRows(x, []float64{2, -1})
	require.NoError(t, err)
	assert.Equal(t, "[2, 4]\n[-3, -4]\n", got.String())

	_, err = matrix.ScaleRows(x, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAllClose(t *testing.T) {
	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 1, 2, []float64{1 + 1e-12, 2})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
