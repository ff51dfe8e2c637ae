// SPDX-License-Identifier: MIT

// Command krls fits kernel-regularized least squares and logistic models to CSV
// data and reports the selected lambda, the fit loss and average marginal effects.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
