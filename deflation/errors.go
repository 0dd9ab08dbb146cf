// SPDX-License-Identifier: MIT
// Package deflation: sentinel error set. Index and length failures surface
// the sparse package sentinels (sparse.ErrOutOfRange,
// sparse.ErrDimensionMismatch), wrapped with the failing operation.

package deflation

import "errors"

// ErrNilMatrix indicates that a nil matrix was passed to New.
var ErrNilMatrix = errors.New("deflation: nil matrix")
