// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/krls/config"
)

// writeCSV writes a two-covariate dataset. logistic selects a 0/1 response.
func writeCSV(t *testing.T, n int, logistic bool) string {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	var b strings.Builder
	b.WriteString("x1,x2,y\n")
	for i := 0; i < n; i++ {
		x1, x2 := rng.NormFloat64(), rng.NormFloat64()
		y := 2*x1 + 0.1*rng.NormFloat64()
		if logistic {
			y = 0
			if x1+0.3*rng.NormFloat64() > 0 {
				y = 1
			}
		}
		fmt.Fprintf(&b, "%g,%g,%g\n", x1, x2, y)
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("KRLS_LOG_LEVEL", "error")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	err := root.Execute()

	return out.String(), err
}

func TestFitCmd_LeastSquares(t *testing.T) {
	out, err := execute(t, "fit", "--data", writeCSV(t, 40, false))
	require.NoError(t, err)

	assert.Contains(t, out, "KRLS fit")
	assert.Contains(t, out, "loo loss")
	assert.Contains(t, out, "avg effect")
	assert.Contains(t, out, "x1")
	assert.Contains(t, out, "x2")
}

func TestFitCmd_Logistic(t *testing.T) {
	out, err := execute(t, "fit", "-d", writeCSV(t, 40, true), "--model", "logit", "--lambda", "0.5")
	require.NoError(t, err)

	assert.Contains(t, out, "logit")
	assert.Contains(t, out, "objective")
	assert.Contains(t, out, "0.5")
}

func TestFitCmd_Errors(t *testing.T) {
	_, err := execute(t, "fit")
	assert.ErrorContains(t, err, "data")

	_, err = execute(t, "fit", "--data", writeCSV(t, 10, false), "--model", "probit")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "fit", "--data", writeCSV(t, 10, false), "--response", "z")
	assert.ErrorContains(t, err, "response column not found")
}

func TestKernelCmd(t *testing.T) {
	out, err := execute(t, "kernel", "--data", writeCSV(t, 5, false), "--response", "y")
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i, row := range rows {
		require.Len(t, row, 5)
		assert.Equal(t, "1", row[i], "diagonal entry %d", i)
		assert.Equal(t, rows[i][(i+1)%5], rows[(i+1)%5][i], "symmetry at %d", i)
	}
}

func TestConfigCmd(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "model: ls")
	assert.Contains(t, out, "lambda_search:")

	path := filepath.Join(t.TempDir(), "sub", "krls.yaml")
	_, err = execute(t, "config", "--out", path)
	require.NoError(t, err)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.ModelLeastSquares, cfg.Model)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestNum(t *testing.T) {
	assert.Equal(t, "0.5", num(0.5))
	assert.Equal(t, "+Inf", num(math.Inf(1)))
}
