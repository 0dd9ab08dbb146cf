// Package nmf implements the robust rank-1 non-negative matrix factorisations
// used to seed and refine biclusters.
//
// Two solvers are provided:
//
//   - RobustMultiplicative: alternating multiplicative updates on A − R, where
//     R ≥ 0 is an outlier term living on the support of A and recomputed each
//     iteration by soft thresholding. It works directly on a sparse.CSC and is
//     used to produce a cheap, possibly noisy, initial left factor.
//   - RobustADMM: given one fixed factor, solves min_{x ≥ 0} ||A − u xᵀ||₁ for
//     the other one with ADMM (error shrinkage, projected least squares,
//     dual ascent) until the primal and dual residuals fall below a tolerance.
//     It works on a small gonum *mat.Dense subproblem.
//
// Randomness is explicit: solvers are deterministic unless WithSeed or
// WithRand is supplied.
package nmf
