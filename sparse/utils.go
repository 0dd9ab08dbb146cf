// SPDX-License-Identifier: MIT

// Package sparse: coordinate extraction and thresholding helpers.

package sparse

import "math"

// Find returns every stored entry of a in column-major order.
// Complexity: O(nnz).
func Find(a *CSC) []Entry {
	if a == nil {
		return nil
	}
	out := make([]Entry, 0, a.NNZ())
	a.Do(func(i, j int, v float64) {
		out = append(out, Entry{Row: i, Col: j, Val: v})
	})

	return out
}

// Sparsify converts a dense vector into a sparse one, dropping entries whose
// magnitude is at most tol·max|x| (see WithTolerance). NaN and ±Inf entries
// are dropped as noise. With AsBoolean the result is a membership mask.
//
// An all-zero input yields the empty vector of the same length.
// Complexity: O(len(x)).
func Sparsify(x []float64, opts ...SparsifyOption) Vector {
	o := gatherSparsifyOptions(opts...)

	var peak float64
	for _, xi := range x {
		if !isNonFinite(xi) {
			peak = math.Max(peak, math.Abs(xi))
		}
	}
	out := Vector{n: len(x)}
	if peak == 0 {
		return out
	}
	cut := o.tol * peak
	for i, xi := range x {
		if isNonFinite(xi) || math.Abs(xi) <= cut {
			continue
		}
		out.idx = append(out.idx, i)
		if o.boolean {
			out.vals = append(out.vals, 1)
		} else {
			out.vals = append(out.vals, xi)
		}
	}

	return out
}

// SparsifyVector applies Sparsify to an already sparse vector.
func SparsifyVector(v Vector, opts ...SparsifyOption) Vector {
	return Sparsify(v.Dense(), opts...)
}
