// SPDX-License-Identifier: MIT

package nmf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// RobustADMM refines one factor of a rank-1 robust factorisation a ≈ u vᵀ
// under the L1 loss, keeping the other factor fixed to init.
//
//   - side == Right: init is u (len = rows), the result is v (len = cols).
//   - side == Left:  init is v (len = cols), the result is u (len = rows).
//
// Algorithm Outline (side == Right, A p×q, u fixed):
//
//	min_{x≥0, E} ‖E‖₁  s.t.  E = A − u xᵀ
//	x ← max(0, (A − E + Λ/ρ)ᵀ u / ‖u‖²)
//	E ← shrink(A − u xᵀ + Λ/ρ, 1/ρ)
//	Λ ← Λ + ρ (A − u xᵀ − E)
//
// The loop stops when both the primal residual ‖A − u xᵀ − E‖_F and the dual
// residual ρ‖u‖‖x − x_prev‖, each relative to ‖A‖_F, are below tol, or after
// MaxIter iterations (the last iterate is returned). ρ is DefaultRho (or
// WithRho) divided by the mean magnitude of the nonzeros of A.
//
// Errors: ErrEmptyInput, ErrDimensionMismatch, ErrBadTolerance, ErrNumerical.
func RobustADMM(a *mat.Dense, init []float64, side Side, tol float64, opts ...Option) ([]float64, error) {
	if a == nil || a.IsEmpty() {
		return nil, fmt.Errorf("nmf: RobustADMM(%s): %w", side, ErrEmptyInput)
	}
	if !positiveFinite(tol) {
		return nil, fmt.Errorf("nmf: RobustADMM(%s): tol=%g: %w", side, tol, ErrBadTolerance)
	}
	o := gatherOptions(opts...)

	var work mat.Matrix = a
	if side == Left {
		work = a.T()
	}
	p, _ := work.Dims()
	if len(init) != p {
		return nil, fmt.Errorf("nmf: RobustADMM(%s): len(init)=%d, want %d: %w", side, len(init), p, ErrDimensionMismatch)
	}
	for _, x := range init {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("nmf: RobustADMM(%s): %w", side, ErrNegativeInput)
		}
	}

	x, err := solveFixedLeft(work, init, tol, o)
	if err != nil {
		return nil, fmt.Errorf("nmf: RobustADMM(%s): %w", side, err)
	}

	return x, nil
}

// solveFixedLeft solves min_{x ≥ 0} ‖A − u xᵀ‖₁ for x by ADMM.
func solveFixedLeft(A mat.Matrix, u []float64, tol float64, o options) ([]float64, error) {
	p, q := A.Dims()
	x := make([]float64, q)

	uu := floats.Dot(u, u)
	normA := mat.Norm(A, 2)
	if uu == 0 || normA == 0 {
		return x, nil
	}
	rho := o.rho / meanNonzeroMagnitude(A)
	shrink := func(_, _ int, z float64) float64 {
		switch {
		case z > 1/rho:
			return z - 1/rho
		case z < -1/rho:
			return z + 1/rho
		default:
			return 0
		}
	}

	U := mat.NewVecDense(p, u)
	X := mat.NewVecDense(q, x) // aliases x
	E := mat.NewDense(p, q, nil)
	L := mat.NewDense(p, q, nil)
	W := mat.NewDense(p, q, nil)
	UX := mat.NewDense(p, q, nil)
	var proj mat.VecDense

	// Least-squares warm start.
	proj.MulVec(A.T(), U)
	for j := range x {
		x[j] = math.Max(0, proj.AtVec(j)/uu)
	}

	xPrev := make([]float64, q)
	normU := math.Sqrt(uu)
	maxIter := o.iterations(DefaultADMMMaxIter)
	for it := 0; it < maxIter; it++ {
		copy(xPrev, x)

		// x-step: projected least squares on A − E + Λ/ρ.
		W.Scale(1/rho, L)
		W.Add(W, A)
		W.Sub(W, E)
		proj.MulVec(W.T(), U)
		for j := range x {
			x[j] = math.Max(0, proj.AtVec(j)/uu)
		}

		// E-step: soft thresholding of the scaled residual.
		UX.Outer(1, U, X)
		W.Scale(1/rho, L)
		W.Add(W, A)
		W.Sub(W, UX)
		E.Apply(shrink, W)

		// Dual ascent on the constraint residual.
		W.Sub(A, UX)
		W.Sub(W, E)
		primal := mat.Norm(W, 2) / normA
		L.Apply(func(i, j int, l float64) float64 { return l + rho*W.At(i, j) }, L)
		dual := rho * normU * floats.Distance(x, xPrev, 2) / normA

		if !allFinite(x) {
			return nil, fmt.Errorf("iteration %d: %w", it, ErrNumerical)
		}
		if primal < tol && dual < tol {
			break
		}
	}

	return x, nil
}

// meanNonzeroMagnitude returns the mean |A_ij| over the nonzero entries (1 if none).
func meanNonzeroMagnitude(A mat.Matrix) float64 {
	p, q := A.Dims()
	var sum float64
	var n int
	for i := 0; i < p; i++ {
		for j := 0; j < q; j++ {
			if v := A.At(i, j); v != 0 {
				sum += math.Abs(v)
				n++
			}
		}
	}
	if n == 0 {
		return 1
	}

	return sum / float64(n)
}
