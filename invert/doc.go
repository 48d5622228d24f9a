// Package invert computes dense matrix inverses over the matcache/matrix
// primitives, with an explicit numeric policy carried by functional options.
//
// 🚀 What is invert?
//
//	The inversion collaborator of the memoization layer: a stateless set of
//	kernels that turn a square, non-singular Matrix into its inverse.
//	Two algorithm variants are provided:
//	  • LU (default)  — Doolittle factorization without pivoting, then
//	    forward/backward substitution per identity column. Deterministic:
//	    fixed loop orders, identical results for identical inputs.
//	  • GaussJordan   — augmented elimination with partial pivoting (row
//	    swaps by largest absolute pivot), trading bit-for-bit determinism
//	    of the no-pivot scheme for better numerical robustness.
//
// ⚙️ Usage:
//
//	inv, err := invert.Inverse(m,
//	  invert.WithPivotTolerance(1e-12), // |pivot| ≤ tol ⇒ ErrSingular
//	  invert.WithAlgorithm(invert.GaussJordan),
//	)
//
// Errors (matched via errors.Is, sentinels live in matcache/matrix):
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare — shape violations
//   - matrix.ErrSingular — pivot within tolerance of zero
//
// Performance: O(n³) time, O(n²) memory for both variants.
package invert
