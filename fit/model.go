// SPDX-License-Identifier: MIT

package fit

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/krls/kernel"
	"github.com/katalvlaran/krls/logit"
	"github.com/katalvlaran/krls/matrix"
	"github.com/katalvlaran/krls/mfx"
	"github.com/katalvlaran/krls/selection"
	"github.com/katalvlaran/krls/spectral"
)

// Kind names the loss a Model was fitted with.
type Kind int

const (
	// KindLeastSquares is kernel-regularized least squares.
	KindLeastSquares Kind = iota
	// KindLogistic is kernel-regularized logistic regression.
	KindLogistic
)

func (k Kind) String() string {
	if k == KindLogistic {
		return "logit"
	}

	return "ls"
}

// Model is a fitted KRLS model.
type Model struct {
	Kind Kind

	// X is the training design as used by the kernel (standardized when Means != nil).
	X *matrix.Dense
	// Means and Stds are the column statistics of the raw design; nil when the fit
	// ran on raw columns.
	Means, Stds []float64

	K         *matrix.Dense
	Bandwidth float64
	Lambda    float64
	// Rank is the number of retained eigenpairs; n for a full-rank least-squares fit.
	Rank int

	// Coeffs are kernel-space coefficients c: the linear predictor is K·c + Beta0.
	Coeffs []float64
	Beta0  float64
	// Vcov is the n×n covariance of Coeffs.
	Vcov *matrix.Dense

	// Fitted are fitted values (least squares) or probabilities (logistic).
	Fitted []float64
	// Loss is the leave-one-out loss (least squares) or the final objective (logistic).
	Loss float64

	weights []float64 // link derivatives at the fit
	workers int
}

// prepared holds the shared first stages of both fits.
type prepared struct {
	x           *matrix.Dense
	means, stds []float64
	b           float64
	K           *matrix.Dense
	eigen       spectral.Eigen
}

// prepare validates X and y, standardizes, builds K and decomposes it.
func prepare(tag string, X matrix.Matrix, y []float64, s settings, log *zap.Logger) (prepared, error) {
	x, err := matrix.AsDense(X)
	if err != nil {
		return prepared{}, fitErrorf(tag, err)
	}
	n, p := x.Rows(), x.Cols()
	if n < 2 {
		return prepared{}, fitErrorf(tag, ErrTooFewObservations)
	}
	if err = matrix.ValidateVecLen(y, n); err != nil {
		return prepared{}, fitErrorf(tag, err)
	}
	if err = matrix.ValidateFiniteVec(y); err != nil {
		return prepared{}, fitErrorf(tag, err)
	}

	pr := prepared{x: x, b: s.bandwidth}
	if s.standardize {
		if pr.x, pr.means, pr.stds, err = matrix.Standardize(x); err != nil {
			return prepared{}, fitErrorf(tag, err)
		}
	}
	if pr.b == 0 {
		pr.b = kernel.DefaultBandwidth(p)
	}

	log.Debug("building kernel matrix",
		zap.Int("observations", n),
		zap.Int("covariates", p),
		zap.Float64("bandwidth", pr.b),
		zap.Bool("standardized", s.standardize),
	)
	if pr.K, err = kernel.GaussianMatrix(pr.x, pr.b, kernel.WithWorkers(s.workers)); err != nil {
		return prepared{}, fitErrorf(tag, err)
	}
	if pr.eigen, err = spectral.Decompose(pr.K); err != nil {
		return prepared{}, fitErrorf(tag, err)
	}
	log.Debug("kernel decomposed",
		zap.Float64("max_eigenvalue", pr.eigen.Values[n-1]),
		zap.Float64("min_eigenvalue", pr.eigen.Values[0]),
	)

	return pr, nil
}

// basis applies WithRank, then WithEigTrunc, then fallbackRatio.
func (pr prepared) basis(s settings, fallbackRatio float64) (spectral.Basis, error) {
	if s.rank > 0 {
		return spectral.Truncate(pr.eigen, s.rank)
	}
	ratio := s.eigTrunc
	if ratio == 0 {
		ratio = fallbackRatio
	}

	return selection.BasisFor(pr.eigen, ratio)
}

// lambda returns the fixed lambda or asks the selector.
func (pr prepared) lambda(s settings, y []float64, b spectral.Basis, log *zap.Logger) (float64, error) {
	if s.lambda >= 0 {
		return s.lambda, spectral.ValidateLambda(s.lambda)
	}
	sel := s.selector
	if sel == nil {
		sel = selection.GoldenSection{}
	}
	req := selection.Request{
		Tol:   s.tol,
		Lower: s.lower,
		Upper: s.upper,
		Y:     y,
		Eigen: pr.eigen,
		// the ratio that reproduces the chosen rank
		EigTrunc: b.D[b.Rank()-1] / b.D[0],
	}
	lambda, err := sel.Select(req)
	if err != nil {
		return 0, err
	}
	log.Info("lambda selected", zap.Float64("lambda", lambda), zap.Int("rank", b.Rank()))

	return lambda, spectral.ValidateLambda(lambda)
}

// kernelVcov maps an r×r in-basis covariance to kernel space: A·V·Aᵀ with
// A = U·diag(1/D).
func kernelVcov(b spectral.Basis, v matrix.Matrix) (*matrix.Dense, error) {
	A, err := matrix.ScaleColumns(b.U, matrix.Reciprocal(b.D))
	if err != nil {
		return nil, err
	}
	AV, err := matrix.Mul(A, v)
	if err != nil {
		return nil, err
	}
	At, err := matrix.Transpose(A)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(AV, At)
}

// MarginalEffects returns pointwise marginal effects ∂E[y|x]/∂x_j at the training
// rows and the variance of their averages. When the fit standardized X, effects and
// variances are rescaled to the raw units of each covariate.
func (m *Model) MarginalEffects() (mfx.Effects, error) {
	// mfx.Pointwise scales by 1/b where ∂K/∂x carries 2/b; passing b/2 yields ∂f/∂x.
	eff, err := mfx.Pointwise(m.K, m.X, m.Coeffs, m.Vcov, m.weights, m.Bandwidth/2, mfx.WithWorkers(m.workers))
	if err != nil {
		return mfx.Effects{}, fitErrorf("MarginalEffects", err)
	}
	if m.Stds == nil {
		return eff, nil
	}
	inv := make([]float64, len(m.Stds))
	for j, sd := range m.Stds {
		inv[j] = 1
		if sd > 0 {
			inv[j] = 1 / sd
		}
	}
	pw, err := matrix.ScaleColumns(eff.Pointwise, inv)
	if err != nil {
		return mfx.Effects{}, fitErrorf("MarginalEffects", err)
	}
	for j := range eff.Variance {
		eff.Variance[j] *= inv[j] * inv[j]
	}

	return mfx.Effects{Pointwise: pw, Variance: eff.Variance}, nil
}

// Predict scores new rows: K(Xnew, X)·c + Beta0, passed through the sigmoid for
// logistic models. Xnew is in raw units; the training standardization is reapplied.
func (m *Model) Predict(Xnew matrix.Matrix) ([]float64, error) {
	x := Xnew
	if m.Means != nil {
		xs, err := matrix.ApplyStandardize(Xnew, m.Means, m.Stds)
		if err != nil {
			return nil, fitErrorf("Predict", err)
		}
		x = xs
	}
	C, err := kernel.CrossMatrix(x, m.X, m.Bandwidth, kernel.WithWorkers(m.workers))
	if err != nil {
		return nil, fitErrorf("Predict", err)
	}
	eta, err := matrix.MatVec(C, m.Coeffs)
	if err != nil {
		return nil, fitErrorf("Predict", err)
	}
	for i := range eta {
		eta[i] += m.Beta0
		if m.Kind == KindLogistic {
			eta[i] = logit.Sigmoid(eta[i])
		}
	}

	return eta, nil
}
