// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the krls host layer and CLI and
// converts it into fit options.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gonum.org/v1/gonum/optimize"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/krls/fit"
)

// Model names accepted by Config.Model.
const (
	ModelLeastSquares = "ls"
	ModelLogistic     = "logit"
)

// Optimizer methods accepted by OptimizerConfig.Method.
const (
	MethodBFGS   = "bfgs"
	MethodLBFGS  = "lbfgs"
	MethodNewton = "newton"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all krls configuration.
type Config struct {
	// Model is "ls" or "logit".
	Model string `yaml:"model"`

	// Bandwidth of the Gaussian kernel; 0 means 2·p.
	Bandwidth float64 `yaml:"bandwidth"`

	// Lambda fixes the regularization strength; a negative value selects it by
	// leave-one-out golden-section search within LambdaSearch.
	Lambda       float64            `yaml:"lambda"`
	LambdaSearch LambdaSearchConfig `yaml:"lambda_search"`

	// Rank fixes the truncation rank; 0 defers to EigTrunc.
	Rank int `yaml:"rank"`
	// EigTrunc keeps eigenvalues ≥ EigTrunc·max. 0 means full rank for "ls" and
	// fit.DefaultLogitEigTrunc for "logit".
	EigTrunc float64 `yaml:"eig_trunc"`

	Standardize bool `yaml:"standardize"`
	// Workers bounds goroutines for kernels and marginal effects; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	Optimizer OptimizerConfig `yaml:"optimizer"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LambdaSearchConfig bounds the lambda search.
type LambdaSearchConfig struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"` // 0 ⇒ n
	Tol   float64 `yaml:"tol"`
}

// OptimizerConfig configures the logistic optimizer.
type OptimizerConfig struct {
	Method            string  `yaml:"method"`
	GradientThreshold float64 `yaml:"gradient_threshold"`
	MajorIterations   int     `yaml:"major_iterations"` // 0 ⇒ unlimited
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Model:  ModelLeastSquares,
		Lambda: -1,
		LambdaSearch: LambdaSearchConfig{
			Lower: fit.DefaultLambdaLower,
			Tol:   fit.DefaultLambdaTol,
		},
		Standardize: true,
		Optimizer: OptimizerConfig{
			Method:            MethodBFGS,
			GradientThreshold: fit.DefaultGradientThreshold,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML file on top of Default. A missing file yields the defaults.
// KRLS_LOG_LEVEL and KRLS_WORKERS override the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("KRLS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("KRLS_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("KRLS_WORKERS: %w", err)
		}
		c.Workers = n
	}

	return nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Model {
	case ModelLeastSquares, ModelLogistic:
	default:
		return fmt.Errorf("%w: unknown model %q", ErrInvalidConfig, c.Model)
	}
	if c.Bandwidth < 0 {
		return fmt.Errorf("%w: bandwidth must be >= 0", ErrInvalidConfig)
	}
	if c.Rank < 0 {
		return fmt.Errorf("%w: rank must be >= 0", ErrInvalidConfig)
	}
	if c.EigTrunc < 0 || c.EigTrunc > 1 {
		return fmt.Errorf("%w: eig_trunc must be in [0, 1]", ErrInvalidConfig)
	}
	if s := c.LambdaSearch; c.Lambda < 0 && (s.Lower < 0 || s.Tol <= 0 || (s.Upper != 0 && s.Upper <= s.Lower)) {
		return fmt.Errorf("%w: lambda_search needs 0 <= lower < upper and tol > 0", ErrInvalidConfig)
	}
	if _, err := c.method(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// LogLevel returns the parsed logging level, or info when it does not parse.
func (c *Config) LogLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel
	}

	return lvl
}

func (c *Config) method() (optimize.Method, error) {
	switch c.Optimizer.Method {
	case MethodBFGS, "":
		return &optimize.BFGS{}, nil
	case MethodLBFGS:
		return &optimize.LBFGS{}, nil
	case MethodNewton:
		return &optimize.Newton{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown optimizer method %q", ErrInvalidConfig, c.Optimizer.Method)
	}
}

// FitOptions converts the configuration into fit options. Call Validate first.
func (c *Config) FitOptions() []fit.Option {
	opts := []fit.Option{
		fit.WithBandwidth(c.Bandwidth),
		fit.WithLambda(c.Lambda),
		fit.WithLambdaBounds(c.LambdaSearch.Lower, c.LambdaSearch.Upper, c.LambdaSearch.Tol),
		fit.WithRank(c.Rank),
		fit.WithEigTrunc(c.EigTrunc),
		fit.WithStandardize(c.Standardize),
		fit.WithWorkers(c.Workers),
	}
	if m, err := c.method(); err == nil {
		opts = append(opts, fit.WithOptimizer(m, &optimize.Settings{
			GradientThreshold: c.Optimizer.GradientThreshold,
			MajorIterations:   c.Optimizer.MajorIterations,
		}))
	}

	return opts
}
