// SPDX-License-Identifier: MIT
// Package mdl: sentinel error set. Callers match with errors.Is.

package mdl

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("mdl: nil matrix")

	// ErrDimensionMismatch indicates a residual or factor whose shape differs
	// from the matrix the estimator was built on.
	ErrDimensionMismatch = errors.New("mdl: dimension mismatch")
)
