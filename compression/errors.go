// SPDX-License-Identifier: MIT
// Package compression: sentinel error set. Callers match with errors.Is.

package compression

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("compression: nil matrix")

	// ErrOutOfRange indicates a row or column index outside the mirrored matrix.
	ErrOutOfRange = errors.New("compression: index out of range")

	// ErrDimensionMismatch indicates factor lengths that do not match the mirrored matrix.
	ErrDimensionMismatch = errors.New("compression: dimension mismatch")

	// ErrBadSampleCount indicates a non-positive sample count for Online.
	ErrBadSampleCount = errors.New("compression: sample count must be > 0")
)
