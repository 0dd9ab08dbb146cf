// SPDX-License-Identifier: MIT
// Package nmf: sentinel error set. Callers match with errors.Is.

package nmf

import "errors"

var (
	// ErrEmptyInput indicates a nil matrix or a matrix with a zero dimension.
	ErrEmptyInput = errors.New("nmf: empty input matrix")

	// ErrNegativeInput indicates a negative entry in a matrix that must be non-negative.
	ErrNegativeInput = errors.New("nmf: negative input value")

	// ErrDimensionMismatch indicates an initial factor whose length does not
	// match the fixed side of the matrix.
	ErrDimensionMismatch = errors.New("nmf: dimension mismatch")

	// ErrUnsupportedRank indicates a factorisation rank other than 1.
	ErrUnsupportedRank = errors.New("nmf: only rank 1 is supported")

	// ErrBadTolerance indicates a tolerance that is not finite and positive.
	ErrBadTolerance = errors.New("nmf: tolerance must be finite and > 0")

	// ErrNumerical indicates that an iterate became NaN or ±Inf.
	ErrNumerical = errors.New("nmf: numerical breakdown (NaN/Inf)")
)
