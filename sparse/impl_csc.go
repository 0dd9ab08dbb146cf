// SPDX-License-Identifier: MIT

// Package sparse - CSC storage (compressed sparse column) & read accessors.
//
// Purpose:
//   - Provide the read-efficient layout: O(1) column access, cheap column and
//     row slicing, L1 marginals and sparse mat-vec products.
//   - A CSC is immutable after construction; every "mutation" produces a new
//     value (see LIL and Matrix for the write path).
//
// Complexity quicksheet:
//   - NewCSC: O(nnz log nnz); At: O(log nnz_col); Col: O(1);
//     SelectColumns: O(nnz_selected); SelectRows: O(nnz + r);
//     MulVec / TMulVec: O(nnz); Dense: O(r*c).

package sparse

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// CSC is a compressed-sparse-column matrix of float64 values.
//   - colPtr has length c+1; column j occupies rowIdx/vals[colPtr[j]:colPtr[j+1]].
//   - Row indices are strictly ascending within a column.
//   - No explicit zeros are stored.
type CSC struct {
	r, c   int
	colPtr []int
	rowIdx []int
	vals   []float64
}

// NewCSC builds an rows×cols CSC from entries. Duplicate coordinates are
// summed and entries summing to zero are dropped.
//
// Errors: ErrInvalidDimensions, ErrOutOfRange, ErrNaNInf.
// Complexity: O(nnz log nnz).
func NewCSC(rows, cols int, entries []Entry) (*CSC, error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf("NewCSC", ErrInvalidDimensions)
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, sparseErrorf(fmt.Sprintf("NewCSC(%d,%d)", e.Row, e.Col), ErrOutOfRange)
		}
		if isNonFinite(e.Val) {
			return nil, sparseErrorf(fmt.Sprintf("NewCSC(%d,%d)", e.Row, e.Col), ErrNaNInf)
		}
	}

	return buildCSC(rows, cols, entries), nil
}

// buildCSC assumes validated entries and allows zero dimensions
// (internal slicing helpers may produce empty selections).
func buildCSC(rows, cols int, entries []Entry) *CSC {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Col != sorted[b].Col {
			return sorted[a].Col < sorted[b].Col
		}
		return sorted[a].Row < sorted[b].Row
	})

	m := &CSC{r: rows, c: cols, colPtr: make([]int, cols+1)}
	m.rowIdx = make([]int, 0, len(sorted))
	m.vals = make([]float64, 0, len(sorted))
	for k := 0; k < len(sorted); {
		e := sorted[k]
		sum := e.Val
		k++
		for k < len(sorted) && sorted[k].Row == e.Row && sorted[k].Col == e.Col {
			sum += sorted[k].Val
			k++
		}
		if sum == 0 {
			continue
		}
		m.rowIdx = append(m.rowIdx, e.Row)
		m.vals = append(m.vals, sum)
		m.colPtr[e.Col+1]++
	}
	for j := 0; j < cols; j++ {
		m.colPtr[j+1] += m.colPtr[j]
	}

	return m
}

// FromDense builds a CSC from a row-major rows×cols slice.
//
// Errors: ErrInvalidDimensions, ErrDimensionMismatch (len(data) != rows*cols), ErrNaNInf.
func FromDense(rows, cols int, data []float64) (*CSC, error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf("FromDense", ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, sparseErrorf("FromDense", ErrDimensionMismatch)
	}
	var entries []Entry
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := data[i*cols+j]; v != 0 {
				entries = append(entries, Entry{Row: i, Col: j, Val: v})
			}
		}
	}

	return NewCSC(rows, cols, entries)
}

// FromMatrix builds a CSC from any gonum matrix.
func FromMatrix(a mat.Matrix) (*CSC, error) {
	if a == nil {
		return nil, sparseErrorf("FromMatrix", ErrNilMatrix)
	}
	rows, cols := a.Dims()
	var entries []Entry
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if v := a.At(i, j); v != 0 {
				entries = append(entries, Entry{Row: i, Col: j, Val: v})
			}
		}
	}

	return NewCSC(rows, cols, entries)
}

// Dims returns (rows, cols).
func (m *CSC) Dims() (rows, cols int) { return m.r, m.c }

// Rows returns the number of rows.
func (m *CSC) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CSC) Cols() int { return m.c }

// NNZ returns the number of stored nonzeros.
func (m *CSC) NNZ() int { return len(m.vals) }

// IsZero reports whether the matrix has no nonzero entries.
func (m *CSC) IsZero() bool { return len(m.vals) == 0 }

// IsNonNegative reports whether every stored value is >= 0.
func (m *CSC) IsNonNegative() bool { return ValidateNonNegative(m) == nil }

// At returns m[i,j], or ErrOutOfRange.
func (m *CSC) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, sparseErrorf(fmt.Sprintf("CSC.At(%d,%d)", i, j), ErrOutOfRange)
	}
	rows := m.rowIdx[m.colPtr[j]:m.colPtr[j+1]]
	k := sort.SearchInts(rows, i)
	if k < len(rows) && rows[k] == i {
		return m.vals[m.colPtr[j]+k], nil
	}

	return 0, nil
}

// Col returns the stored row indices and values of column j.
// The returned slices alias internal storage and MUST NOT be modified.
// Panics if j is out of range (programmer error on a hot path).
func (m *CSC) Col(j int) (rows []int, vals []float64) {
	lo, hi := m.colPtr[j], m.colPtr[j+1]

	return m.rowIdx[lo:hi], m.vals[lo:hi]
}

// ColNNZ returns the number of stored entries in column j.
func (m *CSC) ColNNZ(j int) int { return m.colPtr[j+1] - m.colPtr[j] }

// Do calls fn for every stored entry in column-major order.
func (m *CSC) Do(fn func(i, j int, v float64)) {
	for j := 0; j < m.c; j++ {
		for k := m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			fn(m.rowIdx[k], j, m.vals[k])
		}
	}
}

// SelectColumns returns a new matrix made of the given columns, in order.
// The result has Rows()×len(idx) shape and may have zero columns.
//
// Errors: ErrOutOfRange.
func (m *CSC) SelectColumns(idx []int) (*CSC, error) {
	if err := ValidateIndices(idx, m.c); err != nil {
		return nil, sparseErrorf("CSC.SelectColumns", err)
	}
	out := &CSC{r: m.r, c: len(idx), colPtr: make([]int, len(idx)+1)}
	for k, j := range idx {
		rows, vals := m.Col(j)
		out.rowIdx = append(out.rowIdx, rows...)
		out.vals = append(out.vals, vals...)
		out.colPtr[k+1] = len(out.vals)
	}

	return out, nil
}

// SelectRows returns a new matrix made of the given rows, in order.
// The result has len(idx)×Cols() shape and may have zero rows.
//
// Errors: ErrOutOfRange, ErrDuplicateIndex.
func (m *CSC) SelectRows(idx []int) (*CSC, error) {
	if err := ValidateIndices(idx, m.r); err != nil {
		return nil, sparseErrorf("CSC.SelectRows", err)
	}
	newRow := make([]int, m.r)
	for i := range newRow {
		newRow[i] = -1
	}
	for k, i := range idx {
		if newRow[i] >= 0 {
			return nil, sparseErrorf("CSC.SelectRows", ErrDuplicateIndex)
		}
		newRow[i] = k
	}

	var entries []Entry
	m.Do(func(i, j int, v float64) {
		if newRow[i] >= 0 {
			entries = append(entries, Entry{Row: newRow[i], Col: j, Val: v})
		}
	})

	return buildCSC(len(idx), m.c, entries), nil
}

// ColumnL1Norms returns Σ_i |m[i,j]| for every column j.
func (m *CSC) ColumnL1Norms() []float64 {
	out := make([]float64, m.c)
	for j := 0; j < m.c; j++ {
		_, vals := m.Col(j)
		for _, v := range vals {
			out[j] += math.Abs(v)
		}
	}

	return out
}

// RowL1Norms returns Σ_j |m[i,j]| for every row i.
func (m *CSC) RowL1Norms() []float64 {
	out := make([]float64, m.r)
	for k, i := range m.rowIdx {
		out[i] += math.Abs(m.vals[k])
	}

	return out
}

// RowNNZ returns the number of stored entries of every row.
func (m *CSC) RowNNZ() []int {
	out := make([]int, m.r)
	for _, i := range m.rowIdx {
		out[i]++
	}

	return out
}

// MulVec returns y = m·x.
//
// Errors: ErrDimensionMismatch if len(x) != Cols().
// Complexity: O(nnz).
func (m *CSC) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, sparseErrorf("CSC.MulVec", ErrDimensionMismatch)
	}
	y := make([]float64, m.r)
	for j := 0; j < m.c; j++ {
		if x[j] == 0 {
			continue
		}
		for k := m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			y[m.rowIdx[k]] += m.vals[k] * x[j]
		}
	}

	return y, nil
}

// TMulVec returns y = mᵀ·x.
//
// Errors: ErrDimensionMismatch if len(x) != Rows().
// Complexity: O(nnz).
func (m *CSC) TMulVec(x []float64) ([]float64, error) {
	if len(x) != m.r {
		return nil, sparseErrorf("CSC.TMulVec", ErrDimensionMismatch)
	}
	y := make([]float64, m.c)
	for j := 0; j < m.c; j++ {
		var s float64
		for k := m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			s += m.vals[k] * x[m.rowIdx[k]]
		}
		y[j] = s
	}

	return y, nil
}

// Dense materializes m as a gonum *mat.Dense.
//
// Errors: ErrInvalidDimensions when m has a zero dimension (gonum forbids empty Dense).
func (m *CSC) Dense() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, sparseErrorf("CSC.Dense", ErrInvalidDimensions)
	}
	d := mat.NewDense(m.r, m.c, nil)
	m.Do(func(i, j int, v float64) { d.Set(i, j, v) })

	return d, nil
}

// String renders m as "CSC(r×c, nnz=k)".
func (m *CSC) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CSC(%d×%d, nnz=%d)", m.r, m.c, len(m.vals))

	return sb.String()
}

