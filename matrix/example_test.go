// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/krls/matrix"
)

// ExampleScaleColumns shows column-wise scaling: X·diag(d).
func ExampleScaleColumns() {
	x, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	out, _ := matrix.ScaleColumns(x, []float64{10, -1})
	fmt.Print(out)
	// Output:
	// [10, -2]
	// [30, -4]
}

// ExampleEigenSym decomposes a 2×2 symmetric matrix; eigenvalues are ascending.
func ExampleEigenSym() {
	a, _ := matrix.FromRows([][]float64{{2, 1}, {1, 2}})
	values, _, _ := matrix.EigenSym(a)
	fmt.Printf("%.3f %.3f\n", values[0], values[1])
	// Output:
	// 1.000 3.000
}
