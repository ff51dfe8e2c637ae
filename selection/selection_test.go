// SPDX-License-Identifier: MIT
package selection_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/krls/kernel"
	"github.com/katalvlaran/krls/lsq"
	"github.com/katalvlaran/krls/matrix"
	"github.com/katalvlaran/krls/selection"
	"github.com/katalvlaran/krls/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noisySine(t *testing.T, n int, seed int64) (spectral.Eigen, []float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	y := make([]float64, n)
	for i := range xs {
		xs[i] = 6 * float64(i) / float64(n-1)
		y[i] = math.Sin(xs[i]) + 0.3*rng.NormFloat64()
	}
	X, err := matrix.NewDenseFrom(n, 1, xs)
	require.NoError(t, err)
	K, err := kernel.GaussianMatrix(X, 2)
	require.NoError(t, err)
	e, err := spectral.Decompose(K)
	require.NoError(t, err)

	return e, y
}

func TestUnset(t *testing.T) {
	_, err := selection.Unset.Select(selection.Request{})
	assert.ErrorIs(t, err, selection.ErrNoSelector)
}

func TestSelectorFunc(t *testing.T) {
	var got selection.Request
	s := selection.SelectorFunc(func(req selection.Request) (float64, error) {
		got = req

		return req.Lower + 1, nil
	})
	v, err := s.Select(selection.Request{Lower: 2, Tol: 0.1})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, 0.1, got.Tol)

	boom := errors.New("boom")
	_, err = selection.SelectorFunc(func(selection.Request) (float64, error) { return 0, boom }).Select(selection.Request{})
	assert.ErrorIs(t, err, boom)
}

func TestFixed(t *testing.T) {
	v, err := selection.Fixed(0.25).Select(selection.Request{})
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)

	_, err = selection.Fixed(-1).Select(selection.Request{})
	assert.ErrorIs(t, err, spectral.ErrNegativeLambda)
}

func TestRankByEigenRatio(t *testing.T) {
	values := []float64{0.001, 0.05, 0.5, 1, 4}

	tests := []struct {
		ratio float64
		want  int
	}{
		{1, 1},
		{0.25, 2},
		{0.1, 3},
		{0.01, 4},
		{1e-6, 5},
	}
	for _, tc := range tests {
		r, err := selection.RankByEigenRatio(values, tc.ratio)
		require.NoError(t, err)
		assert.Equal(t, tc.want, r, "ratio %g", tc.ratio)
	}

	for _, bad := range []float64{0, -0.1, 1.5, math.NaN()} {
		_, err := selection.RankByEigenRatio(values, bad)
		assert.ErrorIs(t, err, selection.ErrInvalidRatio, "ratio %g", bad)
	}
	_, err := selection.RankByEigenRatio([]float64{-1, 0}, 0.5)
	assert.ErrorIs(t, err, spectral.ErrNonPositiveEigenvalue)
}

func TestBasisFor(t *testing.T) {
	e, _ := noisySine(t, 20, 1)

	b, err := selection.BasisFor(e, 0.01)
	require.NoError(t, err)
	want, err := selection.RankByEigenRatio(e.Values, 0.01)
	require.NoError(t, err)
	assert.Equal(t, want, b.Rank())
	assert.Less(t, b.Rank(), 20)

	full, err := selection.BasisFor(e, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, full.Rank(), b.Rank())
}

func TestGolden_Quadratic(t *testing.T) {
	calls := 0
	f := func(x float64) float64 {
		calls++

		return (x - 2) * (x - 2)
	}
	x := selection.Golden(f, 0, 10, 1e-8, 500)
	assert.InDelta(t, 2.0, x, 1e-7)
	assert.Less(t, calls, 100)

	// the iteration cap stops the search early
	capped := selection.Golden(f, 0, 10, 1e-12, 3)
	assert.Greater(t, math.Abs(capped-2), 1e-8)
}

// TestGoldenSection_ImprovesOnEndpoints: the chosen lambda has a LOO loss no worse
// than either end of the interval.
func TestGoldenSection_ImprovesOnEndpoints(t *testing.T) {
	e, y := noisySine(t, 40, 7)
	req := selection.Request{Tol: 1e-4, Lower: 1e-3, Upper: 10, Y: y, Eigen: e, EigTrunc: 1e-3}

	lambda, err := selection.GoldenSection{}.Select(req)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, lambda, req.Lower)
	assert.LessOrEqual(t, lambda, req.Upper)

	basis, err := selection.BasisFor(e, req.EigTrunc)
	require.NoError(t, err)
	loss := func(l float64) float64 {
		res, err := lsq.SolveTruncated(y, basis, l)
		require.NoError(t, err)

		return res.Loss
	}
	best := loss(lambda)
	assert.LessOrEqual(t, best, loss(req.Lower))
	assert.LessOrEqual(t, best, loss(req.Upper))
}

func TestGoldenSection_Errors(t *testing.T) {
	e, y := noisySine(t, 10, 3)
	gs := selection.GoldenSection{MaxIter: 10}

	bad := []selection.Request{
		{Tol: 0, Lower: 0, Upper: 1, Y: y, Eigen: e},
		{Tol: 1e-3, Lower: 2, Upper: 1, Y: y, Eigen: e},
		{Tol: 1e-3, Lower: -1, Upper: 1, Y: y, Eigen: e},
		{Tol: 1e-3, Lower: 0, Upper: math.Inf(1), Y: y, Eigen: e},
	}
	for i, req := range bad {
		_, err := gs.Select(req)
		assert.ErrorIs(t, err, selection.ErrInvalidBounds, "case %d", i)
	}

	_, err := gs.Select(selection.Request{Tol: 1e-3, Upper: 1, Y: y[:3], Eigen: e, EigTrunc: 0.1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Upper == 0 defaults to n
	lambda, err := gs.Select(selection.Request{Tol: 1e-2, Y: y, Eigen: e, EigTrunc: 0.1})
	require.NoError(t, err)
	assert.LessOrEqual(t, lambda, 10.0)
}
