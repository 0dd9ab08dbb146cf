// Package compression selects small, representative index subsets of a
// sparse matrix so that rank-1 subproblems can be solved on fewer rows or
// columns.
//
// Selection policy: keep the `level` rows (or columns) carrying the largest
// L1 mass; ties go to the lower index and the result is returned ascending.
// A nil selection means "compression is not beneficial" (level <= 0, or no
// more than `level` candidates carry any mass) and callers must fall back to
// the full matrix. Compression is an accelerant, never a correctness
// requirement.
//
// Online is the incremental variant: it mirrors a matrix under row/column
// removal and rank-1 downdates and recomputes its row selection on demand.
package compression
