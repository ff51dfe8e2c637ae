// SPDX-License-Identifier: MIT

package mfx

import "runtime"

// Option configures Pointwise.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers bounds the number of columns processed concurrently.
// Values ≤ 0 fall back to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func gatherOptions(user ...Option) options {
	o := options{}
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
