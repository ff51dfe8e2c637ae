// SPDX-License-Identifier: MIT
package spectral_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/krls/kernel"
	"github.com/katalvlaran/krls/matrix"
	"github.com/katalvlaran/krls/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threePointKernel(t *testing.T) *matrix.Dense {
	t.Helper()
	x, err := matrix.FromRows([][]float64{{0}, {1}, {2}})
	require.NoError(t, err)
	K, err := kernel.GaussianMatrix(x, 1)
	require.NoError(t, err)

	return K
}

func TestDecompose_Ascending(t *testing.T) {
	e, err := spectral.Decompose(threePointKernel(t))
	require.NoError(t, err)
	require.Equal(t, 3, e.Size())
	for k := 1; k < 3; k++ {
		assert.LessOrEqual(t, e.Values[k-1], e.Values[k])
	}
	// trace(K) = 3
	assert.InDelta(t, 3.0, e.Values[0]+e.Values[1]+e.Values[2], 1e-12)
}

func TestDecompose_Errors(t *testing.T) {
	_, err := spectral.Decompose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	asym, err := matrix.FromRows([][]float64{{1, 2}, {0, 1}})
	require.NoError(t, err)
	_, err = spectral.Decompose(asym)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestTruncate_TopDescending(t *testing.T) {
	e, err := spectral.Decompose(threePointKernel(t))
	require.NoError(t, err)

	b, err := spectral.Truncate(e, 2)
	require.NoError(t, err)
	require.Equal(t, 2, b.Rank())
	require.Equal(t, 3, b.N())
	assert.Equal(t, e.Values[2], b.D[0])
	assert.Equal(t, e.Values[1], b.D[1])

	for i := 0; i < 3; i++ {
		assert.Equal(t, e.Vectors.RawRow(i)[2], b.U.RawRow(i)[0])
		assert.Equal(t, e.Vectors.RawRow(i)[1], b.U.RawRow(i)[1])
	}
}

// TestTruncate_FullRankReconstructs checks U·diag(D)·Uᵀ == K when r = n.
func TestTruncate_FullRankReconstructs(t *testing.T) {
	K := threePointKernel(t)
	e, err := spectral.Decompose(K)
	require.NoError(t, err)
	b, err := spectral.Truncate(e, 3)
	require.NoError(t, err)

	ud, err := matrix.ScaleColumns(b.U, b.D)
	require.NoError(t, err)
	ut, err := matrix.Transpose(b.U)
	require.NoError(t, err)
	rec, err := matrix.Mul(ud, ut)
	require.NoError(t, err)

	ok, err := matrix.AllClose(rec, K, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok, "reconstruction\n%v", rec)
}

func TestTruncate_Errors(t *testing.T) {
	e, err := spectral.Decompose(threePointKernel(t))
	require.NoError(t, err)

	for _, r := range []int{0, -1, 4} {
		_, err = spectral.Truncate(e, r)
		assert.ErrorIs(t, err, spectral.ErrInvalidRank, "r=%d", r)
	}

	// An indefinite matrix: eigenvalues -1 and 3.
	indef, err := matrix.FromRows([][]float64{{1, 2}, {2, 1}})
	require.NoError(t, err)
	es, err := spectral.Decompose(indef)
	require.NoError(t, err)
	_, err = spectral.Truncate(es, 1)
	assert.NoError(t, err)
	_, err = spectral.Truncate(es, 2)
	assert.ErrorIs(t, err, spectral.ErrNonPositiveEigenvalue)

	_, err = spectral.Truncate(spectral.Eigen{}, 1)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNewBasis(t *testing.T) {
	U, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	_, err = spectral.NewBasis(U, []float64{1, 0.5})
	assert.NoError(t, err)
	_, err = spectral.NewBasis(U, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = spectral.NewBasis(U, []float64{1, 0})
	assert.ErrorIs(t, err, spectral.ErrNonPositiveEigenvalue)
	_, err = spectral.NewBasis(U, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, spectral.ErrNonPositiveEigenvalue)
	_, err = spectral.NewBasis(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestToKernel checks U·coef == K·c at full rank, where c = ToKernel(coef).
func TestToKernel(t *testing.T) {
	K := threePointKernel(t)
	e, err := spectral.Decompose(K)
	require.NoError(t, err)
	b, err := spectral.Truncate(e, 3)
	require.NoError(t, err)

	coef := []float64{0.3, -1.2, 2}
	c, err := b.ToKernel(coef)
	require.NoError(t, err)

	uc, err := matrix.MatVec(b.U, coef)
	require.NoError(t, err)
	kc, err := matrix.MatVec(K, c)
	require.NoError(t, err)
	assert.InDeltaSlice(t, uc, kc, 1e-9)

	_, err = b.ToKernel([]float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestValidateLambda(t *testing.T) {
	assert.NoError(t, spectral.ValidateLambda(0))
	assert.NoError(t, spectral.ValidateLambda(3.5))
	for _, l := range []float64{-1e-12, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, spectral.ValidateLambda(l), spectral.ErrNegativeLambda)
	}
}
