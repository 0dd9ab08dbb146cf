// SPDX-License-Identifier: MIT

// Package sparse - Matrix, the residual owner's two-representation cache.
//
// Purpose:
//   - Keep a read buffer (CSC) for slicing and a write buffer (LIL) for
//     scattered zeroing and rank-1 subtraction, with one explicit rule:
//
//     1. Before the first write the CSC is the only representation.
//     2. The first write materializes the LIL from the CSC; from then on the
//     LIL is authoritative and every write marks the matrix dirty.
//     3. CSC() rebuilds the read buffer from the LIL iff dirty, then clears dirty.
//
//   - The caller's input CSC is never modified (copy-on-first-write).
//   - The shape is fixed at construction: rows and columns are zeroed, never
//     deleted, so indices stay meaningful for the whole lifetime.

package sparse

// Matrix is a mutable sparse matrix with a write buffer and a read buffer.
// It is not safe for concurrent use.
type Matrix struct {
	read  *CSC // read buffer; stale while dirty
	write *LIL // write buffer; nil until the first write
	dirty bool // read buffer needs a rebuild from write
}

// NewMatrix wraps a as the initial state of a mutable matrix.
//
// Errors: ErrNilMatrix.
func NewMatrix(a *CSC) (*Matrix, error) {
	if a == nil {
		return nil, sparseErrorf("NewMatrix", ErrNilMatrix)
	}

	return &Matrix{read: a}, nil
}

// Dims returns (rows, cols); constant over the Matrix lifetime.
func (m *Matrix) Dims() (rows, cols int) { return m.read.Dims() }

// Dirty reports whether the read buffer is stale.
func (m *Matrix) Dirty() bool { return m.dirty }

// CSC returns the up-to-date read buffer, reconciling it first when dirty.
// The returned value is immutable and stays valid after later writes.
func (m *Matrix) CSC() *CSC {
	if m.dirty {
		m.read = m.write.ToCSC()
		m.dirty = false
	}

	return m.read
}

// writable materializes the write buffer on first use.
func (m *Matrix) writable() *LIL {
	if m.write == nil {
		m.write, _ = NewLIL(m.read) // read is never nil after NewMatrix
	}

	return m.write
}

// ZeroColumns sets every entry of the given columns to zero.
// Idempotent; indices are validated before anything changes.
func (m *Matrix) ZeroColumns(idx []int) error {
	if err := ValidateIndices(idx, m.read.c); err != nil {
		return sparseErrorf("Matrix.ZeroColumns", err)
	}
	if len(idx) == 0 {
		return nil
	}
	if err := m.writable().ZeroColumns(idx); err != nil {
		return err
	}
	m.dirty = true

	return nil
}

// ZeroRows sets every entry of the given rows to zero.
// Idempotent; indices are validated before anything changes.
func (m *Matrix) ZeroRows(idx []int) error {
	if err := ValidateIndices(idx, m.read.r); err != nil {
		return sparseErrorf("Matrix.ZeroRows", err)
	}
	if len(idx) == 0 {
		return nil
	}
	if err := m.writable().ZeroRows(idx); err != nil {
		return err
	}
	m.dirty = true

	return nil
}

// SubOuter performs m -= u vᵀ.
//
// Errors: ErrDimensionMismatch (nothing is modified on error).
func (m *Matrix) SubOuter(u, v Vector) error {
	if err := ValidateVectorLen(u, m.read.r); err != nil {
		return sparseErrorf("Matrix.SubOuter: u", err)
	}
	if err := ValidateVectorLen(v, m.read.c); err != nil {
		return sparseErrorf("Matrix.SubOuter: v", err)
	}
	if u.NNZ() == 0 || v.NNZ() == 0 {
		return nil
	}
	if err := m.writable().AddOuter(-1, u, v); err != nil {
		return err
	}
	m.dirty = true

	return nil
}
