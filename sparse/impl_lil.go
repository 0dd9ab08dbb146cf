// SPDX-License-Identifier: MIT

// Package sparse - LIL storage (row-wise list of lists), the write buffer.
//
// Purpose:
//   - Make scattered writes cheap: zeroing a row is O(1), zeroing a set of
//     columns is a single O(nnz) filtering pass, and a rank-1 subtraction is a
//     sorted merge per touched row.
//   - Convert back to CSC for read-heavy phases (ToCSC).
//
// Determinism:
//   - Each row keeps its cells sorted by column; no map iteration anywhere.

package sparse

// lilCell is a single stored value of a row.
type lilCell struct {
	col int
	val float64
}

// LIL is a row-wise list-of-lists sparse matrix.
type LIL struct {
	r, c int
	rows [][]lilCell // rows[i] sorted by col, no explicit zeros
}

// NewLIL materializes a write buffer holding the same values as a.
// Complexity: O(nnz + r).
func NewLIL(a *CSC) (*LIL, error) {
	if a == nil {
		return nil, sparseErrorf("NewLIL", ErrNilMatrix)
	}
	l := &LIL{r: a.r, c: a.c, rows: make([][]lilCell, a.r)}
	counts := a.RowNNZ()
	for i, n := range counts {
		if n > 0 {
			l.rows[i] = make([]lilCell, 0, n)
		}
	}
	// Column-major scan appends in ascending column order per row.
	a.Do(func(i, j int, v float64) {
		l.rows[i] = append(l.rows[i], lilCell{col: j, val: v})
	})

	return l, nil
}

// Dims returns (rows, cols).
func (l *LIL) Dims() (rows, cols int) { return l.r, l.c }

// NNZ returns the number of stored values.
// Complexity: O(r).
func (l *LIL) NNZ() int {
	n := 0
	for _, row := range l.rows {
		n += len(row)
	}

	return n
}

// ZeroRows clears every row in idx. Repeated or already-zero rows are no-ops.
//
// Errors: ErrOutOfRange (nothing is modified on error).
func (l *LIL) ZeroRows(idx []int) error {
	if err := ValidateIndices(idx, l.r); err != nil {
		return sparseErrorf("LIL.ZeroRows", err)
	}
	for _, i := range idx {
		l.rows[i] = nil
	}

	return nil
}

// ZeroColumns clears every column in idx. Repeated or already-zero columns are no-ops.
//
// Errors: ErrOutOfRange (nothing is modified on error).
// Complexity: O(len(idx) + nnz).
func (l *LIL) ZeroColumns(idx []int) error {
	if err := ValidateIndices(idx, l.c); err != nil {
		return sparseErrorf("LIL.ZeroColumns", err)
	}
	if len(idx) == 0 {
		return nil
	}
	drop := make([]bool, l.c)
	for _, j := range idx {
		drop[j] = true
	}
	for i, row := range l.rows {
		kept := row[:0]
		for _, cell := range row {
			if !drop[cell.col] {
				kept = append(kept, cell)
			}
		}
		if len(kept) == 0 {
			l.rows[i] = nil
			continue
		}
		l.rows[i] = kept
	}

	return nil
}

// AddOuter performs l += alpha · u vᵀ.
// Cells that become exactly zero are removed.
//
// Errors: ErrDimensionMismatch if u.Len() != rows or v.Len() != cols.
// Complexity: O(nnz(u) · (nnz_row + nnz(v))).
func (l *LIL) AddOuter(alpha float64, u, v Vector) error {
	if err := ValidateVectorLen(u, l.r); err != nil {
		return sparseErrorf("LIL.AddOuter: u", err)
	}
	if err := ValidateVectorLen(v, l.c); err != nil {
		return sparseErrorf("LIL.AddOuter: v", err)
	}
	if isNonFinite(alpha) {
		return sparseErrorf("LIL.AddOuter", ErrNaNInf)
	}
	for k, i := range u.idx {
		scale := alpha * u.vals[k]
		l.rows[i] = mergeRow(l.rows[i], v, scale)
	}

	return nil
}

// mergeRow returns row + scale·v as a new sorted cell list.
func mergeRow(row []lilCell, v Vector, scale float64) []lilCell {
	out := make([]lilCell, 0, len(row)+len(v.idx))
	a, b := 0, 0
	for a < len(row) || b < len(v.idx) {
		switch {
		case b == len(v.idx) || (a < len(row) && row[a].col < v.idx[b]):
			out = append(out, row[a])
			a++
		case a == len(row) || v.idx[b] < row[a].col:
			out = append(out, lilCell{col: v.idx[b], val: scale * v.vals[b]})
			b++
		default:
			if s := row[a].val + scale*v.vals[b]; s != 0 {
				out = append(out, lilCell{col: row[a].col, val: s})
			}
			a++
			b++
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

// ToCSC converts the buffer to the read layout.
// Complexity: O(nnz + c).
func (l *LIL) ToCSC() *CSC {
	m := &CSC{r: l.r, c: l.c, colPtr: make([]int, l.c+1)}
	for _, row := range l.rows {
		for _, cell := range row {
			m.colPtr[cell.col+1]++
		}
	}
	for j := 0; j < l.c; j++ {
		m.colPtr[j+1] += m.colPtr[j]
	}
	nnz := m.colPtr[l.c]
	m.rowIdx = make([]int, nnz)
	m.vals = make([]float64, nnz)
	next := make([]int, l.c)
	copy(next, m.colPtr[:l.c])
	// Row-major scan fills each column in ascending row order.
	for i, row := range l.rows {
		for _, cell := range row {
			p := next[cell.col]
			m.rowIdx[p] = i
			m.vals[p] = cell.val
			next[cell.col]++
		}
	}

	return m
}
