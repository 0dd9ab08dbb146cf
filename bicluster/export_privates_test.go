// SPDX-License-Identifier: MIT

package bicluster

import "github.com/katalvlaran/bicluster/sparse"

// White-box bridge for package bicluster_test. Compiled only with the tests.

// WithRawADMMTolerance sets the refinement tolerance without validation so
// that collaborator failures can be provoked.
func WithRawADMMTolerance(tol float64) Option {
	return func(o *options) { o.admmTol = tol }
}

// UpdateRight exposes the update_right stage.
func UpdateRight(a *sparse.CSC, u sparse.Vector, opts ...Option) (sparse.Vector, error) {
	return updateRight(a, u, gatherOptions(opts...))
}

// UpdateLeft exposes the update_left stage.
func UpdateLeft(a *sparse.CSC, v sparse.Vector, opts ...Option) (sparse.Vector, error) {
	return updateLeft(a, v, gatherOptions(opts...))
}
