// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/krls/logit"
	"github.com/katalvlaran/krls/matrix"
	"github.com/katalvlaran/krls/spectral"
)

const opLogistic = "Logistic"

// Logistic fits kernel-regularized logistic regression in a truncated eigenbasis.
//
// Implementation:
//   - Stage 1: as LeastSquares, then truncate by WithRank, WithEigTrunc or
//     DefaultLogitEigTrunc.
//   - Stage 2: minimize logit.Objective with gonum optimize, starting from coef = 0
//     and β0 = log-odds of mean(y).
//   - Stage 3: Vcov(par) = H⁻¹ at the optimum; the coefficient block is mapped to
//     kernel space. Marginal-effect weights are p(1−p).
//
// Errors:
//   - logit.ErrInvalidLabel, ErrOptimizer (wrapping gonum's error or status),
//     matrix.ErrNotPositiveDefinite (singular Hessian), plus the errors of LeastSquares.
func Logistic(X matrix.Matrix, y []float64, opts ...Option) (*Model, error) {
	if err := logit.ValidateLabels(y); err != nil {
		return nil, fitErrorf(opLogistic, err)
	}
	s := gatherSettings(opts...)
	log := s.logger.Named("krls.logit")

	pr, err := prepare(opLogistic, X, y, s, log)
	if err != nil {
		return nil, err
	}
	b, err := pr.basis(s, DefaultLogitEigTrunc)
	if err != nil {
		return nil, fitErrorf(opLogistic, err)
	}
	lambda, err := pr.lambda(s, y, b, log)
	if err != nil {
		return nil, fitErrorf(opLogistic, err)
	}

	params, fval, err := minimize(b, y, lambda, s, log)
	if err != nil {
		return nil, fitErrorf(opLogistic, err)
	}

	H, err := logit.Hessian(params, b, y, lambda)
	if err != nil {
		return nil, fitErrorf(opLogistic, err)
	}
	Hinv, err := matrix.InverseSPD(H)
	if err != nil {
		return nil, fitErrorf(opLogistic, err)
	}
	r := b.Rank()
	vcoef, err := matrix.NewDense(r, r)
	if err != nil {
		return nil, fitErrorf(opLogistic, err)
	}
	for i := 0; i < r; i++ {
		copy(vcoef.RawRow(i), Hinv.RawRow(i)[:r])
	}
	vcov, err := kernelVcov(b, vcoef)
	if err != nil {
		return nil, fitErrorf(opLogistic, err)
	}
	c, err := b.ToKernel(params.Coef)
	if err != nil {
		return nil, fitErrorf(opLogistic, err)
	}

	eta, err := matrix.MatVec(b.U, params.Coef)
	if err != nil {
		return nil, fitErrorf(opLogistic, err)
	}
	n := len(y)
	fitted := make([]float64, n)
	weights := make([]float64, n)
	for i, e := range eta {
		fitted[i] = logit.Sigmoid(e + params.Beta0)
		weights[i] = fitted[i] * (1 - fitted[i])
	}

	return &Model{
		Kind:      KindLogistic,
		X:         pr.x,
		Means:     pr.means,
		Stds:      pr.stds,
		K:         pr.K,
		Bandwidth: pr.b,
		Lambda:    lambda,
		Rank:      r,
		Coeffs:    c,
		Beta0:     params.Beta0,
		Vcov:      vcov,
		Fitted:    fitted,
		Loss:      fval,
		weights:   weights,
		workers:   s.workers,
	}, nil
}

// minimize drives the logistic objective to convergence with gonum optimize.
func minimize(b spectral.Basis, y []float64, lambda float64, s settings, log *zap.Logger) (logit.Params, float64, error) {
	problem, err := logit.NewProblem(b, y, lambda)
	if err != nil {
		return logit.Params{}, 0, err
	}

	x0 := make([]float64, problem.Dim())
	if mean := floats.Sum(y) / float64(len(y)); mean > 0 && mean < 1 {
		x0[len(x0)-1] = math.Log(mean / (1 - mean))
	}
	method := s.method
	if method == nil {
		method = &optimize.BFGS{}
	}
	set := s.optSettings
	if set == nil {
		set = &optimize.Settings{GradientThreshold: DefaultGradientThreshold}
	}

	res, err := optimize.Minimize(optimize.Problem{
		Func: problem.Func,
		Grad: problem.Grad,
		Hess: problem.Hess,
	}, x0, set, method)
	if err != nil {
		return logit.Params{}, 0, fmt.Errorf("%w: %v", ErrOptimizer, err)
	}
	if err = res.Status.Err(); err != nil {
		return logit.Params{}, 0, fmt.Errorf("%w: %v", ErrOptimizer, err)
	}
	log.Info("optimizer finished",
		zap.Stringer("status", res.Status),
		zap.Int("iterations", res.Stats.MajorIterations),
		zap.Int("func_evaluations", res.Stats.FuncEvaluations),
		zap.Float64("objective", res.F),
	)

	params, err := logit.ParamsFromVector(res.X, b.Rank())
	if err != nil {
		return logit.Params{}, 0, err
	}

	return params, res.F, nil
}
