// SPDX-License-Identifier: MIT

package compression

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/bicluster/sparse"
)

// cell is one mirrored entry of a column.
type cell struct {
	row int
	val float64
}

// Online maintains a row selection of a matrix that changes by row/column
// removal and rank-1 downdates. It keeps its own column-major mirror of the
// entries plus per-row L1 mass and entry counts, so updates never need the
// caller's matrix after construction.
//
// Online is not safe for concurrent use; updates must be applied in the same
// order as on the mirrored matrix.
type Online struct {
	rows, cols int
	nSamples   int

	columns  [][]cell  // columns[j] sorted by row, no zeros
	rowMass  []float64 // Σ_j |a_ij|
	rowCount []int     // stored entries per row
}

// NewOnline mirrors a and prepares selections of nSamples rows.
//
// Errors: ErrNilMatrix, ErrBadSampleCount.
// Complexity: O(nnz + r).
func NewOnline(a *sparse.CSC, nSamples int) (*Online, error) {
	if a == nil {
		return nil, fmt.Errorf("compression: NewOnline: %w", ErrNilMatrix)
	}
	if nSamples <= 0 {
		return nil, fmt.Errorf("compression: NewOnline(nSamples=%d): %w", nSamples, ErrBadSampleCount)
	}
	rows, cols := a.Dims()
	o := &Online{
		rows:     rows,
		cols:     cols,
		nSamples: nSamples,
		columns:  make([][]cell, cols),
		rowMass:  make([]float64, rows),
		rowCount: make([]int, rows),
	}
	for j := 0; j < cols; j++ {
		idx, vals := a.Col(j)
		if len(idx) == 0 {
			continue
		}
		col := make([]cell, len(idx))
		for k, i := range idx {
			col[k] = cell{row: i, val: vals[k]}
			o.rowMass[i] += math.Abs(vals[k])
			o.rowCount[i]++
		}
		o.columns[j] = col
	}

	return o, nil
}

// SampleCount returns the requested selection size.
func (o *Online) SampleCount() int { return o.nSamples }

// RemoveColumn zeroes column j of the mirror. Idempotent.
func (o *Online) RemoveColumn(j int) error {
	if j < 0 || j >= o.cols {
		return fmt.Errorf("compression: RemoveColumn(%d): %w", j, ErrOutOfRange)
	}
	for _, c := range o.columns[j] {
		o.drop(c.row, c.val)
	}
	o.columns[j] = nil

	return nil
}

// RemoveRow zeroes row i of the mirror. Idempotent.
// Complexity: O(c log nnz_col).
func (o *Online) RemoveRow(i int) error {
	if i < 0 || i >= o.rows {
		return fmt.Errorf("compression: RemoveRow(%d): %w", i, ErrOutOfRange)
	}
	if o.rowCount[i] == 0 {
		return nil
	}
	for j, col := range o.columns {
		k := sort.Search(len(col), func(k int) bool { return col[k].row >= i })
		if k < len(col) && col[k].row == i {
			o.columns[j] = append(col[:k], col[k+1:]...)
		}
	}
	o.rowMass[i] = 0
	o.rowCount[i] = 0

	return nil
}

// AdditiveDowndate applies a ← a − u vᵀ to the mirror.
//
// Errors: ErrDimensionMismatch (nothing is modified on error).
func (o *Online) AdditiveDowndate(u, v sparse.Vector) error {
	if u.Len() != o.rows || v.Len() != o.cols {
		return fmt.Errorf("compression: AdditiveDowndate(%d,%d): %w", u.Len(), v.Len(), ErrDimensionMismatch)
	}
	ui, uv := u.Indices(), u.Values()
	vj, vv := v.Indices(), v.Values()
	for k, j := range vj {
		o.columns[j] = o.mergeColumn(o.columns[j], ui, uv, vv[k])
	}

	return nil
}

// mergeColumn returns col − scale·u, keeping mass and counts in sync.
func (o *Online) mergeColumn(col []cell, ui []int, uv []float64, scale float64) []cell {
	out := make([]cell, 0, len(col)+len(ui))
	a, b := 0, 0
	for a < len(col) || b < len(ui) {
		switch {
		case b == len(ui) || (a < len(col) && col[a].row < ui[b]):
			out = append(out, col[a])
			a++
		case a == len(col) || ui[b] < col[a].row:
			if d := -scale * uv[b]; d != 0 {
				out = append(out, cell{row: ui[b], val: d})
				o.add(ui[b], d)
			}
			b++
		default:
			old := col[a].val
			o.drop(col[a].row, old)
			if s := old - scale*uv[b]; s != 0 {
				out = append(out, cell{row: col[a].row, val: s})
				o.add(col[a].row, s)
			}
			a++
			b++
		}
	}

	return out
}

func (o *Online) add(i int, val float64) {
	o.rowMass[i] += math.Abs(val)
	o.rowCount[i]++
}

func (o *Online) drop(i int, val float64) {
	o.rowCount[i]--
	if o.rowCount[i] == 0 {
		o.rowMass[i] = 0
		return
	}
	o.rowMass[i] = math.Max(0, o.rowMass[i]-math.Abs(val))
}

// Compress returns the current row selection (ascending), or nil when fewer
// than nSamples+1 rows still carry entries.
func (o *Online) Compress() []int {
	return topByMass(o.rowMass, o.rowCount, o.nSamples)
}
