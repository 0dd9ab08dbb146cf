// SPDX-License-Identifier: MIT

package deflation

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/bicluster/compression"
	"github.com/katalvlaran/bicluster/sparse"
)

// Shadow is the compressed view of the residual: the selected rows and the
// matching Selection×cols slice.
type Shadow struct {
	Selection []int
	Array     *sparse.CSC
}

// Deflator owns a residual matrix. It is not safe for concurrent use.
type Deflator struct {
	m   *sparse.Matrix
	log logr.Logger

	comp   *compression.Online // nil for the plain variant
	shadow *Shadow             // nil while absent
}

// New wraps a; a itself is never modified.
//
// Errors: ErrNilMatrix.
func New(a *sparse.CSC, opts ...Option) (*Deflator, error) {
	if a == nil {
		return nil, fmt.Errorf("deflation: New: %w", ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	m, err := sparse.NewMatrix(a)
	if err != nil {
		return nil, fmt.Errorf("deflation: New: %w", err)
	}
	d := &Deflator{m: m, log: o.log.WithName("deflator")}
	if o.nSamples > 0 {
		d.comp, err = compression.NewOnline(a, o.nSamples)
		if err != nil {
			return nil, fmt.Errorf("deflation: New: %w", err)
		}
		d.recompress()
	}

	return d, nil
}

// Dims returns the (fixed) shape of the residual.
func (d *Deflator) Dims() (rows, cols int) { return d.m.Dims() }

// Compressed reports whether the Deflator maintains a compressed shadow.
func (d *Deflator) Compressed() bool { return d.comp != nil }

// Matrix returns the current residual.
func (d *Deflator) Matrix() *sparse.CSC { return d.m.CSC() }

// Shadow returns a copy of the compressed shadow and whether it is present.
func (d *Deflator) Shadow() (Shadow, bool) {
	if d.shadow == nil {
		return Shadow{}, false
	}
	sel := make([]int, len(d.shadow.Selection))
	copy(sel, d.shadow.Selection)

	return Shadow{Selection: sel, Array: d.shadow.Array}, true
}

// RemoveColumns zeroes the given columns. Idempotent.
//
// Errors: sparse.ErrOutOfRange (nothing is modified on error).
func (d *Deflator) RemoveColumns(idx []int) error {
	if err := d.m.ZeroColumns(idx); err != nil {
		return fmt.Errorf("deflation: RemoveColumns: %w", err)
	}
	d.log.V(2).Info("removed columns", "count", len(idx))
	if d.comp == nil {
		return nil
	}
	for _, j := range idx {
		if err := d.comp.RemoveColumn(j); err != nil {
			return fmt.Errorf("deflation: RemoveColumns: %w", err)
		}
	}
	d.recompress()

	return nil
}

// RemoveRows zeroes the given rows. Idempotent.
//
// Errors: sparse.ErrOutOfRange (nothing is modified on error).
func (d *Deflator) RemoveRows(idx []int) error {
	if err := d.m.ZeroRows(idx); err != nil {
		return fmt.Errorf("deflation: RemoveRows: %w", err)
	}
	d.log.V(2).Info("removed rows", "count", len(idx))
	if d.comp == nil {
		return nil
	}
	for _, i := range idx {
		if err := d.comp.RemoveRow(i); err != nil {
			return fmt.Errorf("deflation: RemoveRows: %w", err)
		}
	}
	d.recompress()

	return nil
}

// AdditiveDowndate subtracts u vᵀ from the residual.
//
// Errors: sparse.ErrDimensionMismatch (nothing is modified on error).
func (d *Deflator) AdditiveDowndate(u, v sparse.Vector) error {
	if err := d.m.SubOuter(u, v); err != nil {
		return fmt.Errorf("deflation: AdditiveDowndate: %w", err)
	}
	d.log.V(2).Info("downdated", "rows", u.NNZ(), "cols", v.NNZ())
	if d.comp == nil {
		return nil
	}
	if err := d.comp.AdditiveDowndate(u, v); err != nil {
		return fmt.Errorf("deflation: AdditiveDowndate: %w", err)
	}
	d.recompress()

	return nil
}

// recompress refreshes the shadow from the mirror's current selection.
func (d *Deflator) recompress() {
	sel := d.comp.Compress()
	if sel == nil {
		if d.shadow != nil {
			d.log.V(2).Info("compressed shadow dropped")
		}
		d.shadow = nil
		return
	}
	// sel is ascending, unique and in range, so SelectRows cannot fail.
	arr, _ := d.m.CSC().SelectRows(sel)
	d.shadow = &Shadow{Selection: sel, Array: arr}
}
