// SPDX-License-Identifier: MIT

package matrix

import "context"

// Options configures the O(n³) closures (FloydWarshall, ShortestPaths and
// the semiring variants).
type Options struct {
	// Ctx is checked once per intermediate vertex k.
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// WithContext lets a closure stop early with ctx.Err().
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

func buildOptions(opts []Option) Options {
	o := Options{Ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	return o
}
