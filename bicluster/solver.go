// SPDX-License-Identifier: MIT

package bicluster

import (
	"fmt"

	"github.com/katalvlaran/bicluster/compression"
	"github.com/katalvlaran/bicluster/deflation"
	"github.com/katalvlaran/bicluster/nmf"
	"github.com/katalvlaran/bicluster/sparse"
	"gonum.org/v1/gonum/floats"
)

// SingleBicluster extracts one rank-1 bicluster from a.
//
// Algorithm Outline:
//  1. A single-column matrix is its own bicluster: u marks the column's
//     nonzero rows and v = [1].
//  2. Seed: robust multiplicative NMF (optionally on compressed columns
//     and/or sampled rows) gives a sparse left factor u. Empty u ends here.
//  3. update_right: ADMM on the rows of u gives v. Empty v ends here.
//  4. update_left: ADMM on the columns of v gives the final u.
//  5. Both factors are returned as boolean membership vectors.
//
// Options used: WithCompressionLevel, WithRowSampling, WithSparsifyTolerance,
// WithADMMTolerance, WithNMFOptions, WithLogger.
//
// Errors: ErrNilMatrix, ErrNegativeEntry, or a collaborator failure wrapped
// with its stage.
func SingleBicluster(a *sparse.CSC, opts ...Option) (u, v sparse.Vector, err error) {
	if err = validateInput(a); err != nil {
		return u, v, err
	}
	o := gatherOptions(opts...)

	var sample []int
	if o.rowSampling > 0 {
		sample = compression.SelectRows(a, o.rowSampling)
	}

	return singleBicluster(a, sample, nil, o)
}

// singleBicluster is SingleBicluster on a validated matrix. sample (rows)
// and shadow (rows plus their slice) are optional seeding accelerants; a
// non-nil shadow wins over sample.
func singleBicluster(a *sparse.CSC, sample []int, shadow *deflation.Shadow, o options) (u, v sparse.Vector, err error) {
	rows, cols := a.Dims()
	boolOpts := []sparse.SparsifyOption{sparse.WithTolerance(o.sparsifyTol), sparse.AsBoolean()}

	if cols == 1 {
		// Every stored entry is positive, so the column support is u.
		support, _ := a.Col(0)
		u, _ = sparse.BooleanVector(rows, support)
		v, _ = sparse.BooleanVector(1, []int{0})
		return u, v, nil
	}

	u, err = seedLeft(a, sample, shadow, o)
	if err != nil {
		return u, v, stageErrorf(stageSeed, rows, cols, err)
	}
	o.log.V(2).Info("seeded", "rows", u.NNZ())
	if u.NNZ() == 0 {
		return u, sparse.ZeroVector(cols), nil
	}

	v, err = updateRight(a, u, o)
	if err != nil {
		return u, v, stageErrorf(stageUpdateRight, u.NNZ(), cols, err)
	}
	o.log.V(2).Info("refined right factor", "cols", v.NNZ())
	if v.NNZ() == 0 {
		return u.Boolean(), v, nil
	}

	u, err = updateLeft(a, v, o)
	if err != nil {
		return u, v, stageErrorf(stageUpdateLeft, rows, v.NNZ(), err)
	}
	o.log.V(2).Info("refined left factor", "rows", u.NNZ())

	return sparse.SparsifyVector(u, boolOpts...), sparse.SparsifyVector(v, boolOpts...), nil
}

// seedLeft returns the sparsified seed u over all rows of a.
//
// Without row sampling this is the left factor of the robust multiplicative
// solver on a (or on its compressed columns). With row sampling the solver
// runs on the sampled rows only and u is recovered from its right factor by
// one projected least-squares step on the full matrix.
func seedLeft(a *sparse.CSC, sample []int, shadow *deflation.Shadow, o options) (sparse.Vector, error) {
	rows, cols := a.Dims()
	work := a
	if shadow != nil {
		sample, work = shadow.Selection, shadow.Array
	} else if sample != nil {
		var err error
		if work, err = a.SelectRows(sample); err != nil {
			return sparse.Vector{}, err
		}
	}

	var colSel []int
	if o.compLevel > 0 && o.compLevel < cols {
		colSel = compression.SelectColumns(work, o.compLevel)
		if colSel != nil {
			work, _ = work.SelectColumns(colSel)
		}
	}

	f, err := nmf.RobustMultiplicative(work, 1, o.nmfOpts...)
	if err != nil {
		return sparse.Vector{}, err
	}
	tol := sparse.WithTolerance(o.sparsifyTol)
	if sample == nil {
		return sparse.Sparsify(f.U, tol), nil
	}

	// Scatter v back to the full column space and take a left half-step.
	vFull := f.V
	if colSel != nil {
		vFull = make([]float64, cols)
		for k, j := range colSel {
			vFull[j] = f.V[k]
		}
	}
	vv := floats.Dot(vFull, vFull)
	if vv == 0 {
		return sparse.ZeroVector(rows), nil
	}
	u, err := a.MulVec(vFull)
	if err != nil {
		return sparse.Vector{}, err
	}
	for i, x := range u {
		if x < 0 {
			x = 0
		}
		u[i] = x / vv
	}

	return sparse.Sparsify(u, tol), nil
}

// updateRight refines v given u on the rows where u is nonzero.
func updateRight(a *sparse.CSC, u sparse.Vector, o options) (sparse.Vector, error) {
	crop, err := a.SelectRows(u.Indices())
	if err != nil {
		return sparse.Vector{}, err
	}
	init := u.Values()
	if o.compLevel > 0 && o.compLevel < crop.Rows() {
		if sel := compression.SelectRows(crop, o.compLevel); sel != nil {
			crop, _ = crop.SelectRows(sel)
			init = pick(init, sel)
		}
	}
	x, err := solveSide(crop, init, nmf.Right, o)
	if err != nil {
		return sparse.Vector{}, err
	}

	return sparse.Sparsify(x, sparse.WithTolerance(o.sparsifyTol)), nil
}

// updateLeft refines u given v on the columns where v is nonzero.
func updateLeft(a *sparse.CSC, v sparse.Vector, o options) (sparse.Vector, error) {
	crop, err := a.SelectColumns(v.Indices())
	if err != nil {
		return sparse.Vector{}, err
	}
	init := v.Values()
	if o.compLevel > 0 && o.compLevel < crop.Cols() {
		if sel := compression.SelectColumns(crop, o.compLevel); sel != nil {
			crop, _ = crop.SelectColumns(sel)
			init = pick(init, sel)
		}
	}
	x, err := solveSide(crop, init, nmf.Left, o)
	if err != nil {
		return sparse.Vector{}, err
	}

	return sparse.Sparsify(x, sparse.WithTolerance(o.sparsifyTol)), nil
}

// solveSide runs the ADMM side solver on crop. Output lines of crop with no
// stored entries keep a zero iterate throughout ADMM, so only the nonempty
// ones are materialized densely and the result is scattered back.
func solveSide(crop *sparse.CSC, init []float64, side nmf.Side, o options) ([]float64, error) {
	var (
		n      int
		active []int
		err    error
	)
	if side == nmf.Right {
		n = crop.Cols()
		active = nonEmpty(crop.ColNNZ, n)
		if len(active) < n {
			crop, err = crop.SelectColumns(active)
		}
	} else {
		n = crop.Rows()
		counts := crop.RowNNZ()
		active = nonEmpty(func(i int) int { return counts[i] }, n)
		if len(active) < n {
			crop, err = crop.SelectRows(active)
		}
	}
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	if len(active) == 0 {
		return out, nil
	}

	d, err := crop.Dense()
	if err != nil {
		return nil, err
	}
	x, err := nmf.RobustADMM(d, init, side, o.admmTol, o.nmfOpts...)
	if err != nil {
		return nil, err
	}
	for k, i := range active {
		out[i] = x[k]
	}

	return out, nil
}

// nonEmpty returns the lines k < n with count(k) > 0, ascending.
func nonEmpty(count func(int) int, n int) []int {
	out := make([]int, 0, n)
	for k := 0; k < n; k++ {
		if count(k) > 0 {
			out = append(out, k)
		}
	}

	return out
}

// pick returns x[sel[0]], x[sel[1]], ...
func pick(x []float64, sel []int) []float64 {
	out := make([]float64, len(sel))
	for k, i := range sel {
		out[k] = x[i]
	}

	return out
}

func validateInput(a *sparse.CSC) error {
	if a == nil {
		return ErrNilMatrix
	}
	if !a.IsNonNegative() {
		r, c := a.Dims()
		return fmt.Errorf("bicluster: %dx%d input: %w", r, c, ErrNegativeEntry)
	}

	return nil
}

func stageErrorf(stage string, rows, cols int, err error) error {
	return fmt.Errorf("bicluster: %s on %dx%d: %w", stage, rows, cols, err)
}
