// SPDX-License-Identifier: MIT

// Package bicluster: functional options for Bicluster and SingleBicluster.
//
//   - Option constructors validate and panic on meaningless inputs.
//   - The explicit iteration count is validated by Bicluster instead
//     (ErrInvalidIterations), since it usually comes from data.

package bicluster

import (
	"math"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/bicluster/nmf"
	"github.com/katalvlaran/bicluster/sparse"
)

// Defaults (single source of truth).
const (
	// DefaultShareElements lets later biclusters reuse rows of earlier ones.
	DefaultShareElements = true

	// DefaultADMMTolerance is the convergence tolerance of both refinement stages.
	DefaultADMMTolerance = 1e-2

	// DefaultMinColumns is the smallest accepted column support; a candidate
	// with fewer columns ends the search.
	DefaultMinColumns = 2

	// DefaultSparsifyTolerance is the relative cut-off applied to every factor.
	DefaultSparsifyTolerance = sparse.DefaultSparsifyTolerance
)

// Option configures Bicluster and SingleBicluster.
type Option func(*options)

type options struct {
	iterations  int  // explicit count; used iff !automatic
	automatic   bool // MDL-driven stopping with cols iterations at most
	share       bool
	compLevel   int // 0 = no column/row compression
	rowSampling int // 0 = seed on every row
	sparsifyTol float64
	admmTol     float64
	minColumns  int
	nmfOpts     []nmf.Option
	log         logr.Logger
}

func gatherOptions(opts ...Option) options {
	o := options{
		automatic:   true,
		share:       DefaultShareElements,
		sparsifyTol: DefaultSparsifyTolerance,
		admmTol:     DefaultADMMTolerance,
		minColumns:  DefaultMinColumns,
		log:         logr.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithIterations runs exactly up to n rounds and disables MDL-driven
// stopping. n = 0 yields an empty result; n < 0 makes Bicluster fail with
// ErrInvalidIterations.
func WithIterations(n int) Option {
	return func(o *options) {
		o.iterations = n
		o.automatic = false
	}
}

// WithShareElements controls row reuse. With share = false both the rows and
// the columns of every accepted bicluster are retired, so results are
// pairwise disjoint.
func WithShareElements(share bool) Option {
	return func(o *options) { o.share = share }
}

// WithCompressionLevel solves each subproblem on at most level rows or
// columns whenever level is below the subproblem's size and the selection is
// useful. Panics if level <= 0.
func WithCompressionLevel(level int) Option {
	if level <= 0 {
		panic("bicluster: WithCompressionLevel: level must be > 0")
	}

	return func(o *options) { o.compLevel = level }
}

// WithRowSampling seeds each round on the nSamples heaviest rows of the
// residual. Bicluster tracks the selection incrementally through a compressed
// deflator. Panics if nSamples <= 0.
func WithRowSampling(nSamples int) Option {
	if nSamples <= 0 {
		panic("bicluster: WithRowSampling: nSamples must be > 0")
	}

	return func(o *options) { o.rowSampling = nSamples }
}

// WithSparsifyTolerance sets the relative cut-off used to sparsify factors.
// Panics when tol is NaN, ±Inf, negative or >= 1.
func WithSparsifyTolerance(tol float64) Option {
	sparse.WithTolerance(tol) // validates

	return func(o *options) { o.sparsifyTol = tol }
}

// WithADMMTolerance sets the refinement tolerance. Panics unless tol is
// finite and > 0.
func WithADMMTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic("bicluster: WithADMMTolerance: tol must be finite and > 0")
	}

	return func(o *options) { o.admmTol = tol }
}

// WithMinColumns sets the acceptance threshold on nnz(v). Panics if n < 1.
func WithMinColumns(n int) Option {
	if n < 1 {
		panic("bicluster: WithMinColumns: n must be >= 1")
	}

	return func(o *options) { o.minColumns = n }
}

// WithNMFOptions forwards options to both NMF solvers (e.g. nmf.WithSeed).
func WithNMFOptions(opts ...nmf.Option) Option {
	return func(o *options) { o.nmfOpts = append(o.nmfOpts, opts...) }
}

// WithLogger sets the logger; the zero logr.Logger is replaced by logr.Discard().
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		if log.GetSink() == nil {
			log = logr.Discard()
		}
		o.log = log
	}
}
