// SPDX-License-Identifier: MIT

package fit

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/krls/selection"
)

const (
	// DefaultLambdaLower is the lower end of the default lambda search interval.
	DefaultLambdaLower = 1e-6

	// DefaultLambdaTol is the default golden-section tolerance on lambda.
	DefaultLambdaTol = 1e-4

	// DefaultLogitEigTrunc is the eigenvalue ratio used by Logistic when neither a
	// rank nor a ratio is configured.
	DefaultLogitEigTrunc = 1e-3

	// DefaultGradientThreshold stops the logistic optimizer once ‖∇f‖∞ falls below it.
	DefaultGradientThreshold = 1e-6
)

// Option configures LeastSquares and Logistic.
type Option func(*settings)

type settings struct {
	logger      *zap.Logger
	bandwidth   float64 // 0 ⇒ kernel.DefaultBandwidth(p)
	lambda      float64 // < 0 ⇒ use selector
	selector    selection.Selector
	lower       float64
	upper       float64 // 0 ⇒ n
	tol         float64
	rank        int     // 0 ⇒ decided by eigTrunc
	eigTrunc    float64 // 0 ⇒ full rank (LS) or DefaultLogitEigTrunc (logit)
	standardize bool
	workers     int
	method      optimize.Method
	optSettings *optimize.Settings
}

func defaultSettings() settings {
	return settings{
		logger:      zap.NewNop(),
		lambda:      -1,
		lower:       DefaultLambdaLower,
		tol:         DefaultLambdaTol,
		standardize: true,
	}
}

func gatherSettings(opts ...Option) settings {
	s := defaultSettings()
	for _, fn := range opts {
		if fn != nil {
			fn(&s)
		}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	return s
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithBandwidth fixes the kernel bandwidth. 0 selects 2·p.
func WithBandwidth(b float64) Option {
	return func(s *settings) { s.bandwidth = b }
}

// WithLambda fixes the regularization strength and bypasses the selector.
// A negative value restores selection.
func WithLambda(lambda float64) Option {
	return func(s *settings) { s.lambda = lambda }
}

// WithSelector sets the lambda policy. The default is selection.GoldenSection{}.
func WithSelector(sel selection.Selector) Option {
	return func(s *settings) { s.selector = sel }
}

// WithLambdaBounds sets the search interval and tolerance handed to the selector.
// upper == 0 means n.
func WithLambdaBounds(lower, upper, tol float64) Option {
	return func(s *settings) { s.lower, s.upper, s.tol = lower, upper, tol }
}

// WithRank fixes the truncation rank r.
func WithRank(r int) Option {
	return func(s *settings) { s.rank = r }
}

// WithEigTrunc truncates the basis to eigenvalues ≥ ratio·max.
func WithEigTrunc(ratio float64) Option {
	return func(s *settings) { s.eigTrunc = ratio }
}

// WithStandardize toggles column standardization of X (on by default).
func WithStandardize(on bool) Option {
	return func(s *settings) { s.standardize = on }
}

// WithWorkers bounds the goroutines used for kernels and marginal effects.
func WithWorkers(n int) Option {
	return func(s *settings) { s.workers = n }
}

// WithOptimizer sets the gonum method and settings for Logistic. Nil values keep
// BFGS and a GradientThreshold of DefaultGradientThreshold.
func WithOptimizer(method optimize.Method, opt *optimize.Settings) Option {
	return func(s *settings) { s.method, s.optSettings = method, opt }
}
