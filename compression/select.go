// SPDX-License-Identifier: MIT

package compression

import (
	"sort"

	"github.com/katalvlaran/bicluster/sparse"
)

// SelectColumns returns up to level column indices of a with the largest L1
// mass, ascending, or nil when compression is not beneficial.
// Complexity: O(nnz + c log c).
func SelectColumns(a *sparse.CSC, level int) []int {
	if a == nil {
		return nil
	}
	counts := make([]int, a.Cols())
	for j := range counts {
		counts[j] = a.ColNNZ(j)
	}

	return topByMass(a.ColumnL1Norms(), counts, level)
}

// SelectRows returns up to level row indices of a with the largest L1 mass,
// ascending, or nil when compression is not beneficial.
// Complexity: O(nnz + r log r).
func SelectRows(a *sparse.CSC, level int) []int {
	if a == nil {
		return nil
	}

	return topByMass(a.RowL1Norms(), a.RowNNZ(), level)
}

// topByMass keeps the level heaviest candidates (count > 0).
// Stored-entry counts decide candidacy so that float residue never turns an
// emptied line into a candidate.
func topByMass(mass []float64, counts []int, level int) []int {
	if level <= 0 {
		return nil
	}
	candidates := make([]int, 0, len(mass))
	for k, n := range counts {
		if n > 0 {
			candidates = append(candidates, k)
		}
	}
	if len(candidates) <= level {
		return nil
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return mass[candidates[a]] > mass[candidates[b]]
	})
	out := candidates[:level]
	sort.Ints(out)

	return out
}
