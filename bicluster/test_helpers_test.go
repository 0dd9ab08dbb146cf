// SPDX-License-Identifier: MIT
package bicluster_test

import (
	"testing"

	"github.com/katalvlaran/bicluster/sparse"
	"github.com/stretchr/testify/require"
)

// block is a planted constant submatrix.
type block struct {
	rows, cols []int
	val        float64
}

func span(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}

	return out
}

// planted builds a rows×cols matrix holding the given blocks; later blocks
// overwrite earlier ones where they overlap.
func planted(t *testing.T, rows, cols int, blocks ...block) *sparse.CSC {
	t.Helper()
	data := make([]float64, rows*cols)
	for _, b := range blocks {
		for _, i := range b.rows {
			for _, j := range b.cols {
				data[i*cols+j] = b.val
			}
		}
	}
	m, err := sparse.FromDense(rows, cols, data)
	require.NoError(t, err)

	return m
}

// twoBlocks: 6×5 ones at rows 0-5/cols 0-4 and 4×3 ones at rows 6-9/cols 5-7.
func twoBlocks(t *testing.T) *sparse.CSC {
	return planted(t, 10, 8,
		block{span(0, 6), span(0, 5), 1},
		block{span(6, 10), span(5, 8), 1},
	)
}

// heavySmall: a heavy 2×2 block that is found first and a light 5×4 block
// that covers more cells.
func heavySmall(t *testing.T) *sparse.CSC {
	return planted(t, 10, 8,
		block{span(0, 2), span(0, 2), 10},
		block{span(3, 8), span(3, 7), 1},
	)
}

// sharedRows: two blocks sharing rows 3 and 4; the 5×4 block of threes is
// found first.
func sharedRows(t *testing.T) *sparse.CSC {
	return planted(t, 10, 10,
		block{span(0, 5), span(0, 4), 1},
		block{span(3, 8), span(4, 8), 3},
	)
}

// staircase: two blocks sharing rows 4 and 5 plus a small 2×2 block; the
// second candidate does not pay for itself.
func staircase(t *testing.T) *sparse.CSC {
	return planted(t, 10, 10,
		block{span(0, 6), span(0, 4), 1},
		block{span(4, 9), span(4, 8), 1},
		block{span(8, 10), span(8, 10), 1},
	)
}
