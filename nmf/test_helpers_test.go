package nmf_test

import (
	"testing"

	"github.com/katalvlaran/bicluster/sparse"
	"github.com/stretchr/testify/require"
)

// blockMatrix returns a 7×6 matrix holding a dominant 4×3 block of ones
// (rows 0-3, cols 0-2) and a weaker 2×2 block (rows 5-6, cols 4-5).
func blockMatrix(t *testing.T) *sparse.CSC {
	t.Helper()
	var entries []sparse.Entry
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			entries = append(entries, sparse.Entry{Row: i, Col: j, Val: 1})
		}
	}
	for _, i := range []int{5, 6} {
		for _, j := range []int{4, 5} {
			entries = append(entries, sparse.Entry{Row: i, Col: j, Val: 1})
		}
	}
	m, err := sparse.NewCSC(7, 6, entries)
	require.NoError(t, err)

	return m
}
