// SPDX-License-Identifier: MIT

// Package nmf: functional options shared by both solvers.
//
//   - Option constructors validate and panic on meaningless inputs.
//   - Determinism is explicit: an RNG exists only if WithSeed/WithRand is used.

package nmf

import (
	"math"
	"math/rand"
)

// Defaults (single source of truth).
const (
	// DefaultMultiplicativeMaxIter bounds RobustMultiplicative.
	DefaultMultiplicativeMaxIter = 200

	// DefaultADMMMaxIter bounds RobustADMM.
	DefaultADMMMaxIter = 500

	// DefaultLambda is the outlier threshold of RobustMultiplicative,
	// relative to max|A|. Residuals above it are absorbed by R.
	DefaultLambda = 0.5

	// DefaultRho is the ADMM penalty, relative to the mean |A| of the nonzeros.
	DefaultRho = 1.0

	// DefaultStopTolerance is the relative factor change that stops
	// RobustMultiplicative early.
	DefaultStopTolerance = 1e-6
)

// Option configures a solver call.
type Option func(*options)

type options struct {
	maxIter int        // 0 ⇒ solver default
	lambda  float64    // relative outlier threshold
	rho     float64    // relative ADMM penalty
	stopTol float64    // multiplicative early stop
	rng     *rand.Rand // nil ⇒ deterministic initialization
}

func gatherOptions(opts ...Option) options {
	o := options{
		lambda:  DefaultLambda,
		rho:     DefaultRho,
		stopTol: DefaultStopTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o options) iterations(def int) int {
	if o.maxIter > 0 {
		return o.maxIter
	}

	return def
}

func positiveFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x > 0
}

// WithMaxIter bounds the number of iterations. Panics if n <= 0.
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic("nmf: WithMaxIter: n must be > 0")
	}

	return func(o *options) { o.maxIter = n }
}

// WithLambda sets the relative outlier threshold of RobustMultiplicative.
// Panics unless lambda is finite and > 0.
func WithLambda(lambda float64) Option {
	if !positiveFinite(lambda) {
		panic("nmf: WithLambda: lambda must be finite and > 0")
	}

	return func(o *options) { o.lambda = lambda }
}

// WithRho sets the relative ADMM penalty. Panics unless rho is finite and > 0.
func WithRho(rho float64) Option {
	if !positiveFinite(rho) {
		panic("nmf: WithRho: rho must be finite and > 0")
	}

	return func(o *options) { o.rho = rho }
}

// WithStopTolerance sets the early-stop tolerance of RobustMultiplicative.
// Panics unless tol is finite and > 0.
func WithStopTolerance(tol float64) Option {
	if !positiveFinite(tol) {
		panic("nmf: WithStopTolerance: tol must be finite and > 0")
	}

	return func(o *options) { o.stopTol = tol }
}

// WithRand injects the RNG used for random initialization. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("nmf: WithRand(nil)")
	}

	return func(o *options) { o.rng = r }
}

// WithSeed creates a seeded RNG for random initialization.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}
