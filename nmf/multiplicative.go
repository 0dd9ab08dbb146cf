// SPDX-License-Identifier: MIT

package nmf

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bicluster/sparse"
	"gonum.org/v1/gonum/floats"
)

// RobustMultiplicative factorises the non-negative sparse matrix a as
// a ≈ u vᵀ + R, where R ≥ 0 is an outlier term supported on the nonzeros of a.
//
// Algorithm Outline:
//  1. v₀ = column L1 marginals of a (or uniform random values with WithRand/WithSeed).
//  2. Repeat until the relative change of u is below the stop tolerance or
//     MaxIter is reached:
//     u ← u ⊙ (B v) / (u ‖v‖²),  v ← v ⊙ (Bᵀ u) / (v ‖u‖²),  B = a − R
//     R_e ← max(0, a_e − u_i v_j − λ·max|a|) for every stored entry e=(i,j).
//  3. Rescale so that max(u) = 1 (v absorbs the scale).
//
// For rank 1 the multiplicative rule reduces to the projected least-squares
// update, so each sweep costs O(nnz).
//
// Errors: ErrEmptyInput, ErrUnsupportedRank, ErrNegativeInput, ErrNumerical.
func RobustMultiplicative(a *sparse.CSC, rank int, opts ...Option) (Factors, error) {
	if rank != 1 {
		return Factors{}, fmt.Errorf("nmf: RobustMultiplicative(rank=%d): %w", rank, ErrUnsupportedRank)
	}
	if a == nil || a.Rows() == 0 || a.Cols() == 0 {
		return Factors{}, fmt.Errorf("nmf: RobustMultiplicative: %w", ErrEmptyInput)
	}
	if !a.IsNonNegative() {
		return Factors{}, fmt.Errorf("nmf: RobustMultiplicative: %w", ErrNegativeInput)
	}
	o := gatherOptions(opts...)
	rows, cols := a.Dims()

	out := Factors{U: make([]float64, rows), V: make([]float64, cols)}
	if a.IsZero() {
		out.Converged = true
		return out, nil
	}

	entries := sparse.Find(a)
	outliers := make([]float64, len(entries))
	var peak float64
	for _, e := range entries {
		peak = math.Max(peak, e.Val)
	}
	lambda := o.lambda * peak

	v := initRight(a, o)
	u := make([]float64, rows)
	uPrev := make([]float64, rows)
	maxIter := o.iterations(DefaultMultiplicativeMaxIter)

	for out.Iterations = 0; out.Iterations < maxIter; out.Iterations++ {
		copy(uPrev, u)

		vv := floats.Dot(v, v)
		if vv == 0 {
			break
		}
		for i := range u {
			u[i] = 0
		}
		for k, e := range entries {
			u[e.Row] += (e.Val - outliers[k]) * v[e.Col]
		}
		projectScale(u, 1/vv)

		uu := floats.Dot(u, u)
		if uu == 0 {
			break
		}
		for j := range v {
			v[j] = 0
		}
		for k, e := range entries {
			v[e.Col] += (e.Val - outliers[k]) * u[e.Row]
		}
		projectScale(v, 1/uu)

		for k, e := range entries {
			outliers[k] = math.Max(0, e.Val-u[e.Row]*v[e.Col]-lambda)
		}

		if !allFinite(u) || !allFinite(v) {
			return Factors{}, fmt.Errorf("nmf: RobustMultiplicative: iteration %d: %w", out.Iterations, ErrNumerical)
		}
		if out.Iterations > 0 && relativeChange(u, uPrev) < o.stopTol {
			out.Converged = true
			out.Iterations++
			break
		}
	}

	if s := floats.Max(u); s > 0 {
		floats.Scale(1/s, u)
		floats.Scale(s, v)
	} else {
		for j := range v {
			v[j] = 0
		}
	}
	copy(out.U, u)
	copy(out.V, v)

	return out, nil
}

// initRight returns the starting right factor.
func initRight(a *sparse.CSC, o options) []float64 {
	if o.rng == nil {
		return a.ColumnL1Norms()
	}
	v := make([]float64, a.Cols())
	for j := range v {
		v[j] = o.rng.Float64()
	}

	return v
}

// projectScale performs x ← max(0, x)·s in place.
func projectScale(x []float64, s float64) {
	for i, xi := range x {
		if xi < 0 {
			x[i] = 0
			continue
		}
		x[i] = xi * s
	}
}

// relativeChange returns ‖x − y‖₂ / ‖x‖₂ (0 when both are zero).
func relativeChange(x, y []float64) float64 {
	nx := floats.Norm(x, 2)
	if nx == 0 {
		return floats.Norm(y, 2)
	}

	return floats.Distance(x, y, 2) / nx
}

func allFinite(x []float64) bool {
	for _, xi := range x {
		if math.IsNaN(xi) || math.IsInf(xi, 0) {
			return false
		}
	}

	return true
}
