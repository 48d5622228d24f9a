// Package matrix provides the dense linear-algebra primitives used across
// matcache: the Matrix interface, its row-major Dense implementation, a
// unified sentinel error set, canonical validators, and thin API facades.
//
// The matrix package provides:
//
//   - Matrix: a two-dimensional mutable array of float64 with bounds-checked
//     accessors that return errors instead of panicking.
//   - Dense: a flat, row-major implementation tuned for cache friendliness.
//   - Constructors (NewDense, NewZeros, NewIdentity, FromRows) and small
//     facades (Mul, CloneMatrix, AllClose) that downstream kernels build on.
//
// All user-triggered failure modes map to package-level sentinels and are
// matched with errors.Is; panics are reserved for programmer errors.
//
// See the examples in this package and in memo for usage patterns.
package matrix
