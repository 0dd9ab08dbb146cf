// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the layouts.
// Entry is the nonzero coordinate triple; Vector is the sparse factor type
// used for bicluster memberships and weights.

package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is a single stored (row, col, value) triple.
type Entry struct {
	Row int     // row index in the original index space
	Col int     // column index in the original index space
	Val float64 // stored value (never exactly zero in a CSC)
}

// Vector is a sparse vector of dense length n.
// Indices are strictly ascending and every stored value is nonzero.
// A Vector is a value type: methods never mutate it and accessors return copies.
type Vector struct {
	n    int       // dense length
	idx  []int     // strictly ascending indices
	vals []float64 // values aligned with idx
}

// NewVector builds a sparse vector of length n from (idx, vals) pairs.
// Pairs may be given in any order; zero values are dropped.
//
// Errors: ErrInvalidDimensions (n < 0), ErrDimensionMismatch (len(idx) != len(vals)),
// ErrOutOfRange, ErrDuplicateIndex, ErrNaNInf.
// Complexity: O(k log k) for k pairs.
func NewVector(n int, idx []int, vals []float64) (Vector, error) {
	if n < 0 {
		return Vector{}, sparseErrorf("NewVector", ErrInvalidDimensions)
	}
	if len(idx) != len(vals) {
		return Vector{}, sparseErrorf("NewVector", ErrDimensionMismatch)
	}
	if err := ValidateIndices(idx, n); err != nil {
		return Vector{}, sparseErrorf("NewVector", err)
	}

	order := make([]int, len(idx))
	for k := range order {
		if isNonFinite(vals[k]) {
			return Vector{}, sparseErrorf("NewVector", ErrNaNInf)
		}
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool { return idx[order[a]] < idx[order[b]] })

	out := Vector{n: n, idx: make([]int, 0, len(idx)), vals: make([]float64, 0, len(idx))}
	for k, o := range order {
		if k > 0 && idx[o] == idx[order[k-1]] {
			return Vector{}, sparseErrorf("NewVector", ErrDuplicateIndex)
		}
		if vals[o] == 0 {
			continue
		}
		out.idx = append(out.idx, idx[o])
		out.vals = append(out.vals, vals[o])
	}

	return out, nil
}

// BooleanVector builds a membership vector of length n with ones at idx.
func BooleanVector(n int, idx []int) (Vector, error) {
	ones := make([]float64, len(idx))
	for k := range ones {
		ones[k] = 1
	}

	return NewVector(n, idx, ones)
}

// ZeroVector returns the empty vector of length n (n < 0 is treated as 0).
func ZeroVector(n int) Vector {
	if n < 0 {
		n = 0
	}

	return Vector{n: n}
}

// Len returns the dense length.
func (v Vector) Len() int { return v.n }

// NNZ returns the number of stored nonzeros.
func (v Vector) NNZ() int { return len(v.idx) }

// Indices returns a copy of the nonzero support, ascending.
func (v Vector) Indices() []int {
	out := make([]int, len(v.idx))
	copy(out, v.idx)

	return out
}

// Values returns a copy of the stored values aligned with Indices.
func (v Vector) Values() []float64 {
	out := make([]float64, len(v.vals))
	copy(out, v.vals)

	return out
}

// At returns v[i]; zero when i is not stored.
// Returns ErrOutOfRange if i is outside [0, Len()).
// Complexity: O(log nnz).
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= v.n {
		return 0, sparseErrorf("Vector.At", ErrOutOfRange)
	}
	k := sort.SearchInts(v.idx, i)
	if k < len(v.idx) && v.idx[k] == i {
		return v.vals[k], nil
	}

	return 0, nil
}

// Dense expands v into a freshly allocated slice of length Len().
func (v Vector) Dense() []float64 {
	out := make([]float64, v.n)
	for k, i := range v.idx {
		out[i] = v.vals[k]
	}

	return out
}

// IsBoolean reports whether every stored value equals 1.
func (v Vector) IsBoolean() bool {
	for _, x := range v.vals {
		if x != 1 {
			return false
		}
	}

	return true
}

// Boolean returns the membership mask of v (same support, all values 1).
func (v Vector) Boolean() Vector {
	out := Vector{n: v.n, idx: v.Indices(), vals: make([]float64, len(v.idx))}
	for k := range out.vals {
		out.vals[k] = 1
	}

	return out
}

// Mask returns a dense boolean membership slice of length Len().
func (v Vector) Mask() []bool {
	out := make([]bool, v.n)
	for _, i := range v.idx {
		out[i] = true
	}

	return out
}

// String renders v as "n:[i:val ...]".
func (v Vector) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:[", v.n)
	for k, i := range v.idx {
		if k > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d:%g", i, v.vals[k])
	}
	sb.WriteString("]")

	return sb.String()
}
