// SPDX-License-Identifier: MIT
package kernel_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/krls/kernel"
	"github.com/katalvlaran/krls/matrix"
)

var sinkK *matrix.Dense

func BenchmarkGaussianMatrix(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{100, 400} {
		rng := rand.New(rand.NewSource(int64(n)))
		data := make([]float64, n*5)
		for i := range data {
			data[i] = rng.NormFloat64()
		}
		x, err := matrix.NewDenseFrom(n, 5, data)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				K, err := kernel.GaussianMatrix(x, 10)
				if err != nil {
					b.Fatal(err)
				}
				sinkK = K
			}
		})
	}
}
