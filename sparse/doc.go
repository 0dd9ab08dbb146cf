// Package sparse provides the sparse storage used by the biclustering engine.
//
// The sparse package provides:
//
//   - CSC, an immutable compressed-sparse-column matrix tuned for column and
//     row slicing, L1 marginals and sparse matrix-vector products.
//   - LIL, a row-wise list-of-lists write buffer tuned for scattered zeroing
//     and rank-1 subtraction.
//   - Matrix, an explicit two-representation cache (write buffer + read buffer)
//     that keeps the residual matrix of a biclustering run consistent across
//     thousands of incremental updates without ever changing its shape.
//   - Vector, a sparse vector used for bicluster factors (u, v).
//   - Find and Sparsify, the coordinate-extraction and thresholding utilities.
//
// Reconciliation rule (Matrix):
//
//	write  → goes to the LIL buffer (materialized from CSC on first write), dirty=true
//	read   → if dirty, rebuild CSC from LIL, dirty=false; return CSC
//
// Index spaces are stable: rows and columns are zeroed, never deleted, so
// indices returned by Find or stored in a Vector always refer to the
// original matrix.
//
// Interop with gonum is provided by FromMatrix and (*CSC).Dense.
package sparse
