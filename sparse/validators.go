// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Provide a single source of truth for index and value checks.
//   - Every mutating operation validates ALL of its inputs before touching
//     state, so a failed call never leaves a Matrix half-updated.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing.

package sparse

import "math"

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateIndices ensures every index lies in [0, n).
// Complexity: O(len(idx)).
func ValidateIndices(idx []int, n int) error {
	for _, i := range idx {
		if i < 0 || i >= n {
			return ErrOutOfRange
		}
	}

	return nil
}

// ValidateVectorLen ensures v has exactly n entries (dense length).
// Complexity: O(1).
func ValidateVectorLen(v Vector, n int) error {
	if v.n != n {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateNonNegative ensures every stored value of a is >= 0.
//
// Errors: ErrNilMatrix, ErrNegativeValue.
// Complexity: O(nnz).
func ValidateNonNegative(a *CSC) error {
	if a == nil {
		return ErrNilMatrix
	}
	for _, v := range a.vals {
		if v < 0 {
			return ErrNegativeValue
		}
	}

	return nil
}
