// SPDX-License-Identifier: MIT

package bicluster

import (
	"fmt"

	"github.com/katalvlaran/bicluster/sparse"
)

// Candidate is one bicluster: U marks its rows and V its columns, both as
// boolean membership vectors indexed against the input matrix.
type Candidate struct {
	U sparse.Vector
	V sparse.Vector
}

// Size returns nnz(U)·nnz(V), the number of cells the bicluster covers.
func (c Candidate) Size() int { return c.U.NNZ() * c.V.NNZ() }

// String renders the candidate as "rows×cols [rows] [cols]".
func (c Candidate) String() string {
	return fmt.Sprintf("%d×%d %v %v", c.U.NNZ(), c.V.NNZ(), c.U.Indices(), c.V.Indices())
}

// Result is the outcome of BiclusterTrace.
type Result struct {
	// Biclusters holds the accepted candidates, largest first.
	Biclusters []Candidate

	// Codelengths holds the cumulative MDL codelength after each accepted
	// candidate, in discovery order. Empty unless the run was automatic.
	Codelengths []float64

	// CutPoint is the index of the minimum of Codelengths, or -1.
	CutPoint int
}
