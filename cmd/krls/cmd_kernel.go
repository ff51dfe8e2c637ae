// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/krls/internal/dataset"
	"github.com/katalvlaran/krls/kernel"
	"github.com/katalvlaran/krls/matrix"
)

func newKernelCmd(a *app) *cobra.Command {
	var data, response string

	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Write the Gaussian kernel matrix of a dataset as CSV",
		Long: `Builds K[i][j] = exp(-||x_i - x_j||^2 / b) over the covariate rows and
writes it to stdout. The bandwidth and standardization come from the config;
b = 0 means twice the number of covariates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			ds, err := dataset.ReadFile(data, response)
			if err != nil {
				return err
			}
			x := ds.X
			if a.cfg.Standardize {
				if x, _, _, err = matrix.Standardize(x); err != nil {
					return err
				}
			}
			b := a.cfg.Bandwidth
			if b == 0 {
				b = kernel.DefaultBandwidth(x.Cols())
			}
			a.logger.Debug("building kernel", zap.Int("rows", x.Rows()), zap.Float64("bandwidth", b))

			K, err := kernel.GaussianMatrix(x, b, kernel.WithWorkers(a.cfg.Workers))
			if err != nil {
				return err
			}

			w := csv.NewWriter(cmd.OutOrStdout())
			rec := make([]string, K.Cols())
			for i := 0; i < K.Rows(); i++ {
				for j, v := range K.RawRow(i) {
					rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
				}
				if err = w.Write(rec); err != nil {
					return err
				}
			}
			w.Flush()

			return w.Error()
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "CSV file with a header row")
	cmd.Flags().StringVarP(&response, "response", "r", "", "response column to exclude from the covariates")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
