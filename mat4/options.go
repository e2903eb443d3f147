// SPDX-License-Identifier: MIT

// Package mat4: functional configuration for numeric policy.
//
// Defaults are documented constants (single source of truth). Option
// constructors panic only on nonsensical values (programmer error).

package mat4

import (
	"math"
)

// DefaultEpsilon is the |det| threshold at or below which Inverse reports
// ErrSingular. Zero means only an exactly-zero determinant is singular.
const DefaultEpsilon = 0.0

const panicEpsilonInvalid = "mat4: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective numeric policy after applying Option setters.
type Options struct {
	eps float64
}

// WithEpsilon sets the singularity threshold used by Inverse and IsInvertible.
// Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// Epsilon returns the configured singularity threshold.
func (o Options) Epsilon() float64 { return o.eps }

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
