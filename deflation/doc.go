// Package deflation owns the residual matrix of a biclustering run.
//
// A Deflator retires rows and columns by zeroing them (the shape never
// changes, so indices stay valid against the original input) and can
// subtract a rank-1 term. Writes go through a sparse.Matrix, which buffers
// them in a row-wise write layout and rebuilds the column layout on read.
//
// With WithCompression the Deflator also keeps a compressed shadow: a
// selection of the heaviest rows and the matching row slice of the residual.
// The shadow is maintained incrementally by a compression.Online mirror and
// disappears while no useful selection exists; Shadow reports whether one is
// present. The shadow is a cache derived from the residual, never a source of
// truth.
//
// Every index and vector length is validated before anything is modified.
package deflation
