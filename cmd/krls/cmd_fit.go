// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/krls/config"
	"github.com/katalvlaran/krls/fit"
	"github.com/katalvlaran/krls/internal/dataset"
)

type fitFlags struct {
	data     string
	response string
	model    string
	lambda   float64
	rank     int
}

func newFitCmd(a *app) *cobra.Command {
	var f fitFlags

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a model and print lambda, loss and average marginal effects",
		Long: `Fits a least-squares ("ls") or logistic ("logit") KRLS model.

Example:
  krls fit --data cars.csv --response mpg
  krls fit --data admit.csv --response admit --model logit --rank 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("model") {
				a.cfg.Model = f.model
			}
			if cmd.Flags().Changed("lambda") {
				a.cfg.Lambda = f.lambda
			}
			if cmd.Flags().Changed("rank") {
				a.cfg.Rank = f.rank
			}

			return runFit(cmd, a, f)
		},
	}
	cmd.Flags().StringVarP(&f.data, "data", "d", "", "CSV file with a header row")
	cmd.Flags().StringVarP(&f.response, "response", "r", "y", "name of the response column")
	cmd.Flags().StringVarP(&f.model, "model", "m", config.ModelLeastSquares, `model type: "ls" or "logit"`)
	cmd.Flags().Float64Var(&f.lambda, "lambda", -1, "fixed lambda; negative selects by leave-one-out loss")
	cmd.Flags().IntVar(&f.rank, "rank", 0, "number of kernel eigenpairs to keep; 0 uses the config")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runFit(cmd *cobra.Command, a *app, f fitFlags) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	ds, err := dataset.ReadFile(f.data, f.response)
	if err != nil {
		return err
	}
	a.logger.Info("dataset loaded",
		zap.String("path", f.data),
		zap.Int("rows", ds.X.Rows()),
		zap.Int("covariates", ds.X.Cols()),
	)

	opts := append(a.cfg.FitOptions(), fit.WithLogger(a.logger))
	var m *fit.Model
	switch a.cfg.Model {
	case config.ModelLogistic:
		m, err = fit.Logistic(ds.X, ds.Y, opts...)
	default:
		m, err = fit.LeastSquares(ds.X, ds.Y, opts...)
	}
	if err != nil {
		return err
	}
	eff, err := m.MarginalEffects()
	if err != nil {
		return fmt.Errorf("marginal effects: %w", err)
	}

	return writeFitReport(cmd.OutOrStdout(), ds, m, eff)
}
