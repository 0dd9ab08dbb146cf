// SPDX-License-Identifier: MIT
package compression_test

import (
	"testing"

	"github.com/katalvlaran/bicluster/sparse"
	"github.com/stretchr/testify/require"
)

// fixture returns
//
//	[3 0 0]
//	[1 1 0]
//	[0 0 5]
//	[0 2 0]
//
// with row masses 3,2,5,2 and column masses 4,3,5.
func fixture(t *testing.T) *sparse.CSC {
	t.Helper()
	m, err := sparse.FromDense(4, 3, []float64{
		3, 0, 0,
		1, 1, 0,
		0, 0, 5,
		0, 2, 0,
	})
	require.NoError(t, err)

	return m
}
