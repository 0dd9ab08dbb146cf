// SPDX-License-Identifier: MIT

// Package bicluster: sentinel error set. Callers match with errors.Is.
//
// Collaborator failures are wrapped with the stage that failed (seed,
// update_right, update_left, deflate, mdl) and the shape of the matrix the
// stage was working on, e.g.
//
//	round 3: bicluster: update_right on 12x40: nmf: RobustADMM(right): iteration 17: nmf: numerical breakdown (NaN/Inf)

package bicluster

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("bicluster: nil matrix")

	// ErrNegativeEntry indicates an input matrix with a negative stored value.
	ErrNegativeEntry = errors.New("bicluster: matrix has a negative entry")

	// ErrInvalidIterations indicates a negative explicit iteration count.
	ErrInvalidIterations = errors.New("bicluster: iteration count must be >= 0")
)

// Stage names used in wrapped errors and log records.
const (
	stageSeed        = "seed"
	stageUpdateRight = "update_right"
	stageUpdateLeft  = "update_left"
	stageDeflate     = "deflate"
	stageMDL         = "mdl"
)
