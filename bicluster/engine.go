// SPDX-License-Identifier: MIT

package bicluster

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bicluster/deflation"
	"github.com/katalvlaran/bicluster/mdl"
	"github.com/katalvlaran/bicluster/sparse"
)

// Bicluster repeatedly extracts rank-1 biclusters from the non-negative
// matrix a and returns them largest first (by Candidate.Size).
//
// Without WithIterations the run is automatic: up to Cols() rounds, then
// the list is cut after the round with the smallest MDL codelength.
// See BiclusterTrace for details.
func Bicluster(a *sparse.CSC, opts ...Option) ([]Candidate, error) {
	res, err := BiclusterTrace(a, opts...)
	if err != nil {
		return nil, err
	}

	return res.Biclusters, nil
}

// BiclusterTrace is Bicluster that also reports the codelength trace.
//
// Each round:
//  1. Stop if the residual has no entries.
//  2. Run SingleBicluster on the residual.
//  3. Stop if nnz(v) < MinColumns or nnz(u) == 0; the candidate is dropped.
//  4. Accept the candidate and retire its columns (and its rows when
//     share elements is off) from the residual.
//  5. In automatic mode, append the cumulative codelength of the accepted
//     biclusters given the new residual.
//
// After the loop an automatic run keeps candidates up to the first minimum
// of the trace; the list is then stably sorted by Size, descending.
// The input matrix is never modified.
//
// Errors: ErrNilMatrix, ErrNegativeEntry, ErrInvalidIterations (all before
// any work), or a collaborator failure wrapped with its stage.
func BiclusterTrace(a *sparse.CSC, opts ...Option) (Result, error) {
	res := Result{CutPoint: -1}
	if err := validateInput(a); err != nil {
		return res, err
	}
	o := gatherOptions(opts...)
	rows, cols := a.Dims()

	rounds := o.iterations
	if o.automatic {
		rounds = cols
	} else if rounds < 0 {
		return res, fmt.Errorf("bicluster: WithIterations(%d): %w", rounds, ErrInvalidIterations)
	}
	log := o.log.WithValues("rows", rows, "cols", cols)
	log.V(1).Info("bicluster start", "rounds", rounds, "automatic", o.automatic, "share", o.share)

	dopts := []deflation.Option{deflation.WithLogger(o.log)}
	if o.rowSampling > 0 {
		dopts = append(dopts, deflation.WithCompression(o.rowSampling))
	}
	d, err := deflation.New(a, dopts...)
	if err != nil {
		return res, stageErrorf(stageDeflate, rows, cols, err)
	}
	var est *mdl.Online
	if o.automatic {
		if est, err = mdl.NewOnline(a); err != nil {
			return res, stageErrorf(stageMDL, rows, cols, err)
		}
	}

	for round := 0; round < rounds; round++ {
		residual := d.Matrix()
		if residual.IsZero() {
			log.V(1).Info("residual exhausted", "round", round)
			break
		}

		var shadow *deflation.Shadow
		if sh, ok := d.Shadow(); ok {
			shadow = &sh
		}
		u, v, err := singleBicluster(residual, nil, shadow, o)
		if err != nil {
			return res, fmt.Errorf("round %d: %w", round, err)
		}
		if v.NNZ() < o.minColumns || u.NNZ() == 0 {
			log.V(1).Info("candidate rejected", "round", round, "rows", u.NNZ(), "cols", v.NNZ())
			break
		}
		res.Biclusters = append(res.Biclusters, Candidate{U: u, V: v})

		if err = d.RemoveColumns(v.Indices()); err != nil {
			return res, stageErrorf(stageDeflate, rows, cols, err)
		}
		if !o.share {
			if err = d.RemoveRows(u.Indices()); err != nil {
				return res, stageErrorf(stageDeflate, rows, cols, err)
			}
		}

		if est != nil {
			cl, err := est.AddRank1Approximation(d.Matrix(), u, v)
			if err != nil {
				return res, stageErrorf(stageMDL, rows, cols, err)
			}
			res.Codelengths = append(res.Codelengths, cl)
			log.V(1).Info("candidate accepted", "round", round, "rows", u.NNZ(), "cols", v.NNZ(), "codelength", cl)
		} else {
			log.V(1).Info("candidate accepted", "round", round, "rows", u.NNZ(), "cols", v.NNZ())
		}
	}

	if len(res.Codelengths) > 0 {
		res.CutPoint = argmin(res.Codelengths)
		res.Biclusters = res.Biclusters[:res.CutPoint+1]
	}
	sort.SliceStable(res.Biclusters, func(i, j int) bool {
		return res.Biclusters[i].Size() > res.Biclusters[j].Size()
	})
	log.V(1).Info("bicluster done", "found", len(res.Biclusters), "cut", res.CutPoint)

	return res, nil
}

// argmin returns the index of the first minimum of x (len(x) > 0).
func argmin(x []float64) int {
	best := 0
	for i := 1; i < len(x); i++ {
		if x[i] < x[best] {
			best = i
		}
	}

	return best
}
