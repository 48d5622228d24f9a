// Package matcache is a small, deterministic toolkit for memoized
// matrix inversion — compute an inverse once, serve every repeat
// request from cache until the matrix changes.
//
// 🚀 What is matcache?
//
//	A pure-Go library that brings together:
//		• Dense matrices: bounds-checked, row-major float64 storage
//		• Inversion kernels: Doolittle LU and Gauss–Jordan, no hidden state
//		• Memoization: a Holder binding one matrix to its cached inverse,
//		  invalidated atomically on every replacement
//
// ✨ Why choose matcache?
//
//   - Deterministic – fixed loop orders, no pivoting surprises, identical
//     results for identical inputs
//   - Error-transparent – sentinel errors checked via errors.Is; the cache
//     layer never invents error kinds of its own
//   - Observable – cache hits and misses surface through pluggable hooks
//     (debug log notices by default)
//   - Pure Go – no cgo, a minimal dependency surface
//
// Everything is organized under three subpackages:
//
//	matrix/ — Matrix interface, Dense implementation, validators & facades
//	invert/ — dense inversion kernels (LU, Gauss–Jordan) with numeric options
//	memo/   — Holder + resolver: the memoization core
//
// Quick sketch:
//
//	h := memo.NewHolder(m)          // bind a matrix
//	inv, err := memo.Inverse(h)     // miss: computes, caches, returns
//	inv, err = memo.Inverse(h)      // hit: served from cache
//	h.SetMatrix(m2)                 // replacement clears the cache
//
// Dive into the package docs and example_test.go files for full usage.
//
//	go get github.com/katalvlaran/matcache
package matcache
