// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for Sparsify.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: option constructors panic only on nonsensical
//     values (programmer error); Sparsify itself never panics.

package sparse

// DefaultSparsifyTolerance is the default relative cut-off used by Sparsify:
// an entry x_i survives iff |x_i| > tol · max_k |x_k|.
const DefaultSparsifyTolerance = 1e-3

const panicSparsifyTolerance = "sparse: WithTolerance: tol must be finite and in [0, 1)"

// SparsifyOption configures a Sparsify call.
type SparsifyOption func(*sparsifyOptions)

type sparsifyOptions struct {
	tol     float64 // relative cut-off in [0,1)
	boolean bool    // emit a membership mask instead of weights
}

func gatherSparsifyOptions(opts ...SparsifyOption) sparsifyOptions {
	o := sparsifyOptions{tol: DefaultSparsifyTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithTolerance sets the relative cut-off. A value of 0 keeps every nonzero.
// Panics when tol is NaN, ±Inf, negative or >= 1.
func WithTolerance(tol float64) SparsifyOption {
	if isNonFinite(tol) || tol < 0 || tol >= 1 {
		panic(panicSparsifyTolerance)
	}

	return func(o *sparsifyOptions) { o.tol = tol }
}

// AsBoolean makes Sparsify return a membership mask (all kept values = 1).
func AsBoolean() SparsifyOption {
	return func(o *sparsifyOptions) { o.boolean = true }
}
