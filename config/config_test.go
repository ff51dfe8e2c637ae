// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/krls/config"
	"github.com/katalvlaran/krls/fit"
	"github.com/katalvlaran/krls/matrix"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.ModelLeastSquares, cfg.Model)
	assert.Less(t, cfg.Lambda, 0.0)
	assert.True(t, cfg.Standardize)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel())
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "krls.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
model: logit
lambda: 0.25
rank: 7
optimizer:
  method: lbfgs
  major_iterations: 50
logging:
  level: debug
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.ModelLogistic, cfg.Model)
	assert.Equal(t, 0.25, cfg.Lambda)
	assert.Equal(t, 7, cfg.Rank)
	assert.Equal(t, config.MethodLBFGS, cfg.Optimizer.Method)
	assert.Equal(t, 50, cfg.Optimizer.MajorIterations)
	// unspecified keys keep their defaults
	assert.True(t, cfg.Standardize)
	assert.Equal(t, fit.DefaultGradientThreshold, cfg.Optimizer.GradientThreshold)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel())
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0o644))
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("KRLS_LOG_LEVEL", "warn")
	t.Setenv("KRLS_WORKERS", "3")
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel())
	assert.Equal(t, 3, cfg.Workers)

	t.Setenv("KRLS_WORKERS", "many")
	_, err = config.Load("")
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "krls.yaml")
	cfg := config.Default()
	cfg.Model = config.ModelLogistic
	cfg.EigTrunc = 0.01
	require.NoError(t, cfg.Save(path))

	back, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"model", func(c *config.Config) { c.Model = "svm" }},
		{"bandwidth", func(c *config.Config) { c.Bandwidth = -1 }},
		{"rank", func(c *config.Config) { c.Rank = -2 }},
		{"eig_trunc", func(c *config.Config) { c.EigTrunc = 2 }},
		{"lambda_search", func(c *config.Config) { c.LambdaSearch.Tol = 0 }},
		{"upper", func(c *config.Config) { c.LambdaSearch.Upper = c.LambdaSearch.Lower }},
		{"method", func(c *config.Config) { c.Optimizer.Method = "sgd" }},
		{"level", func(c *config.Config) { c.Logging.Level = "loud" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}

	// a fixed lambda makes the search bounds irrelevant
	cfg := config.Default()
	cfg.Lambda = 0.1
	cfg.LambdaSearch.Tol = 0
	assert.NoError(t, cfg.Validate())
}

// TestFitOptions drives a small fit with the converted options.
func TestFitOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Lambda = 0.05
	cfg.Rank = 3
	require.NoError(t, cfg.Validate())

	X, err := matrix.FromRows([][]float64{{0}, {1}, {2}, {3}, {4}})
	require.NoError(t, err)
	m, err := fit.LeastSquares(X, []float64{0, 1, 4, 9, 16}, cfg.FitOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rank)
	assert.Equal(t, 0.05, m.Lambda)
}
