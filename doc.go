// Package bicluster is the root of a sparse biclustering toolkit: it finds
// groups of rows and columns of a non-negative sparse matrix whose
// submatrix is well explained by a single rank-1 factor.
//
// 🚀 What is inside?
//
//	• sparse/      — CSC read layout, LIL write buffer, a dirty-tracked
//	                 two-representation Matrix, sparse vectors, Sparsify
//	• nmf/         — robust rank-1 NMF: multiplicative seed and L1 ADMM refinement
//	• compression/ — heaviest-row/column selection, incremental row compressor
//	• mdl/         — online minimum-description-length codelength estimator
//	• deflation/   — the residual owner with an optional compressed shadow
//	• bicluster/   — SingleBicluster and the Bicluster engine
//
// ✨ Why this layout?
//
//   - Leaf-first: every package depends only on the ones listed above it.
//   - Deterministic by default: randomness is opt-in and seeded.
//   - Errors are sentinels matched with errors.Is; options panic only on
//     programmer error.
//
// Quick ASCII example (two planted blocks, rows × cols):
//
//	    c0 c1 c2 c3
//	r0 [ 1  1  .  . ]
//	r1 [ 1  1  .  . ]     Bicluster → {r0,r1}×{c0,c1}, {r2,r3}×{c2,c3}
//	r2 [ .  .  1  1 ]
//	r3 [ .  .  1  1 ]
//
// See examples/ for a runnable demo.
//
//	go get github.com/katalvlaran/bicluster
package bicluster
