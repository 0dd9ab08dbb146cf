// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with a
// call-site tag via fmt.Errorf("...: %w")); callers match them with errors.Is.
// No operation panics on user-triggered error conditions. Panics are reserved
// for option constructors receiving nonsensical values.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfRange indicates that a row, column or vector index is outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes or vector lengths.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrDuplicateIndex indicates that a sparse vector was given the same index twice.
	ErrDuplicateIndex = errors.New("sparse: duplicate index")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNegativeValue indicates a negative entry where a non-negative matrix is required.
	ErrNegativeValue = errors.New("sparse: negative value")
)

// sparseErrorf wraps err with a method tag, keeping the sentinel visible to errors.Is.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("sparse.%s: %w", tag, err)
}
