// SPDX-License-Identifier: MIT
// Package memo: the resolver — cache-first inverse lookup.
package memo

import (
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
)

// Inverse resolves the inverse of the matrix held by h, serving from the
// holder's cache when possible.
//
// Blueprint:
//
//	Stage 1 (Validate): h non-nil.
//	Stage 2 (Hit):  cached inverse present ⇒ notify hit hook, return it.
//	Stage 3 (Miss): notify miss hook, invoke the inverter with the held
//	  matrix and the pass-through options, store the result via
//	  SetCachedInverse, return it.
//
// Error policy (error-transparent):
//   - Inversion failures (matrix.ErrNonSquare, matrix.ErrSingular, or
//     whatever an injected Inverter raises) propagate to the caller behind
//     an operation tag; errors.Is matching is preserved.
//   - A failed computation leaves the cache untouched (still absent), so a
//     subsequent call retries from scratch. No retries here.
//
// Concurrency: the hit/miss check-then-act sequence is not atomic; use
// SyncHolder when h is shared across goroutines.
//
// Complexity: O(1) on a hit; the inverter's cost (O(n³) for the default
// kernels) on a miss.
func Inverse(h *Holder, opts ...Option) (matrix.Matrix, error) {
	// Stage 1: resolver usage guard.
	if h == nil {
		return nil, ErrNilHolder
	}
	o := gatherOptions(opts...)

	// Stage 2: serve from cache when a valid inverse is present.
	if inv, ok := h.CachedInverse(); ok {
		o.onHit(h.Matrix()) // advisory notice; never alters the result

		return inv, nil
	}

	// Stage 3: compute, cache, return.
	m := h.Matrix()
	o.onMiss(m)
	inv, err := o.inverter(m, o.invertOpts...)
	if err != nil {
		// Propagate unmodified apart from the operation tag; the cache
		// stays absent so the next call recomputes.
		return nil, fmt.Errorf("memo.Inverse: %w", err)
	}
	h.SetCachedInverse(inv)

	return inv, nil
}
