// Package mdl scores a growing list of boolean rank-1 biclusters by the
// number of bits needed to transmit the original support pattern with them.
//
// The model is the union of the biclusters; the data is the set of cells on
// which the model and the matrix disagree. With Lset(N, k) the cost of naming
// a k-subset of N items,
//
//	L = Σ_k [Lset(m, |u_k|) + Lset(n, |v_k|)] + Lset(m·n, errors)
//	Lset(N, k) = log2(N+1) + log2 C(N, k)
//
// where errors counts the covered cells absent from the matrix (holes), the
// entries still present in the residual, and the entries that were removed
// from the residual without being covered by any bicluster.
//
// Online keeps the coverage and model cost between calls, so each
// AddRank1Approximation costs O(nnz + |u|·|v|).
package mdl
