// Package bicluster finds biclusters (row subsets × column subsets whose
// submatrix is well explained by a rank-1 non-negative factor) in a sparse
// non-negative matrix.
//
// What:
//
//   - SingleBicluster: one candidate by alternating refinement. A robust
//     multiplicative NMF seeds the row factor u, an L1 ADMM solve restricted
//     to supp(u) gives the column factor v, and a second ADMM solve
//     restricted to supp(v) sharpens u. Both factors come back as boolean
//     membership vectors.
//   - Bicluster / BiclusterTrace: the outer loop. Each accepted candidate has
//     its columns (and, without element sharing, its rows) zeroed in a
//     residual owned by a deflation.Deflator, so later rounds look at what is
//     left. Without an explicit iteration count an online MDL estimator picks
//     how many candidates to keep.
//
// Why:
//
//   - Each refinement stage works on the support found by the previous one,
//     so solver cost stays bounded by the bicluster size rather than the
//     matrix size.
//   - Retired rows and columns are zeroed, never deleted: indices in every
//     result refer to the input matrix.
//
// Acceleration:
//
//   - WithCompressionLevel(k): every stage whose subproblem has more than k
//     rows/columns runs on the k heaviest ones when that selection is useful.
//   - WithRowSampling(k): seeding runs on the k heaviest residual rows,
//     tracked incrementally across rounds.
//
// Both are optional. When no useful selection exists the full subproblem is
// used, so results never depend on compression being available.
//
// Determinism: with default options every run is deterministic. Random NMF
// initialization is opt-in through WithNMFOptions(nmf.WithSeed(...)).
//
// Concurrency: a call owns all of its state; independent calls may run in
// parallel.
package bicluster
