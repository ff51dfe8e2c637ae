// SPDX-License-Identifier: MIT

package kernel

import "runtime"

// Option configures the matrix builders.
type Option func(*options)

type options struct {
	workers int // > 0
}

// WithWorkers bounds the number of goroutines used to fill a kernel matrix.
// Values ≤ 0 fall back to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func gatherOptions(user ...Option) options {
	o := options{workers: runtime.GOMAXPROCS(0)}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
