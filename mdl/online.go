// SPDX-License-Identifier: MIT

package mdl

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/bicluster/sparse"
	"gonum.org/v1/gonum/mathext"
)

// Online accumulates the codelength of a bicluster model of a fixed matrix.
// It is not safe for concurrent use.
type Online struct {
	original *sparse.CSC
	rows     int
	cols     int

	covered   [][]int // covered[j]: sorted covered rows of column j
	holes     int      // covered cells that are zero in original
	modelBits float64  // Σ Lset(m,|u|) + Lset(n,|v|)
	rank      int
	last      float64
}

// NewOnline snapshots a as the matrix to be described.
//
// Errors: ErrNilMatrix.
func NewOnline(a *sparse.CSC) (*Online, error) {
	if a == nil {
		return nil, fmt.Errorf("mdl: NewOnline: %w", ErrNilMatrix)
	}
	rows, cols := a.Dims()

	return &Online{
		original: a,
		rows:     rows,
		cols:     cols,
		covered:  make([][]int, cols),
		last:     SubsetBits(rows*cols, a.NNZ()),
	}, nil
}

// Rank returns the number of rank-1 terms added so far.
func (o *Online) Rank() int { return o.rank }

// Codelength returns the value of the last AddRank1Approximation call, or the
// cost of sending the matrix with an empty model before the first call.
func (o *Online) Codelength() float64 { return o.last }

// AddRank1Approximation adds the bicluster supp(u) × supp(v) to the model and
// returns the cumulative codelength in bits, given the residual left after
// the bicluster was deflated.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (the state is unchanged on error).
func (o *Online) AddRank1Approximation(residual *sparse.CSC, u, v sparse.Vector) (float64, error) {
	if residual == nil {
		return 0, fmt.Errorf("mdl: AddRank1Approximation: %w", ErrNilMatrix)
	}
	if r, c := residual.Dims(); r != o.rows || c != o.cols {
		return 0, fmt.Errorf("mdl: AddRank1Approximation: residual %dx%d, want %dx%d: %w",
			r, c, o.rows, o.cols, ErrDimensionMismatch)
	}
	if u.Len() != o.rows || v.Len() != o.cols {
		return 0, fmt.Errorf("mdl: AddRank1Approximation: factors %d,%d, want %d,%d: %w",
			u.Len(), v.Len(), o.rows, o.cols, ErrDimensionMismatch)
	}

	rowsU := u.Indices()
	for _, j := range v.Indices() {
		o.covered[j] = o.cover(j, rowsU)
	}
	o.modelBits += SubsetBits(o.rows, u.NNZ()) + SubsetBits(o.cols, v.NNZ())
	o.rank++

	errs := o.holes + residual.NNZ() + o.removedUncovered(residual)
	o.last = o.modelBits + SubsetBits(o.rows*o.cols, errs)

	return o.last, nil
}

// cover returns the union of covered[j] and rows, counting the holes among
// the newly covered cells.
func (o *Online) cover(j int, rows []int) []int {
	old := o.covered[j]
	if len(old) == 0 {
		for _, i := range rows {
			if !o.present(i, j) {
				o.holes++
			}
		}
		return rows
	}
	out := make([]int, 0, len(old)+len(rows))
	a, b := 0, 0
	for a < len(old) || b < len(rows) {
		switch {
		case b == len(rows) || (a < len(old) && old[a] < rows[b]):
			out = append(out, old[a])
			a++
		case a == len(old) || rows[b] < old[a]:
			if !o.present(rows[b], j) {
				o.holes++
			}
			out = append(out, rows[b])
			b++
		default:
			out = append(out, old[a])
			a++
			b++
		}
	}

	return out
}

// present reports whether original holds an entry at (i, j).
func (o *Online) present(i, j int) bool {
	rows, _ := o.original.Col(j)
	k := sort.SearchInts(rows, i)

	return k < len(rows) && rows[k] == i
}

// removedUncovered counts entries of original that are neither in residual
// nor covered by the model.
func (o *Online) removedUncovered(residual *sparse.CSC) int {
	n := 0
	for j := 0; j < o.cols; j++ {
		orig, _ := o.original.Col(j)
		res, _ := residual.Col(j)
		cov := o.covered[j]
		b, c := 0, 0
		for _, i := range orig {
			for b < len(res) && res[b] < i {
				b++
			}
			if b < len(res) && res[b] == i {
				continue
			}
			for c < len(cov) && cov[c] < i {
				c++
			}
			if c == len(cov) || cov[c] != i {
				n++
			}
		}
	}

	return n
}

// SubsetBits returns Lset(n, k) = log2(n+1) + log2 C(n, k), the bits needed
// to send the size of a subset of n items and then the subset itself.
// k is clamped to [0, n]; n <= 0 yields 0.
func SubsetBits(n, k int) float64 {
	if n <= 0 {
		return 0
	}
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}
	// log C(n,k) = −log(n+1) − log B(n−k+1, k+1)
	return -mathext.Lbeta(float64(n-k+1), float64(k+1)) / math.Ln2
}
