// SPDX-License-Identifier: MIT
// Package memo: Holder — one matrix, at most one cached inverse.
package memo

import (
	"math"

	"github.com/katalvlaran/matcache/matrix"
)

// Holder owns exactly one Matrix value and at most one cached inverse.
//
// Invariant: whenever the held matrix is replaced, the cached inverse is
// cleared in the same step — a cached inverse is valid if and only if it
// was computed from the currently held matrix. SetCachedInverse trusts the
// caller (the resolver) to maintain that invariant; no cross-validation is
// performed.
//
// A Holder is an independent, exclusively owned unit: no shared global
// state, nothing to release on disposal. It is NOT safe for concurrent
// use; see SyncHolder.
type Holder struct {
	m   matrix.Matrix // currently held matrix, never nil after construction
	inv matrix.Matrix // cached inverse of m, nil ⇒ absent
}

// NewHolder constructs a Holder around the initial matrix m.
// A nil m admits the degenerate placeholder — a 1×1 matrix holding NaN —
// which is never expected to be inverted before being replaced via
// SetMatrix. Initial cache state is absent (Invalid).
// Complexity: O(1).
func NewHolder(m matrix.Matrix) *Holder {
	if m == nil {
		m = placeholder()
	}

	return &Holder{m: m}
}

// placeholder builds the 1×1 NaN matrix used when no initial value is given.
func placeholder() matrix.Matrix {
	p, _ := matrix.NewDense(1, 1) // 1×1 shape can't fail validation
	_ = p.Set(0, 0, math.NaN())

	return p
}

// SetMatrix replaces the held matrix with m and unconditionally clears the
// cached inverse — even when m equals the previous value (no special-case
// skip). Accepts any matrix; shape/invertibility validation is the
// caller's responsibility. A nil m resets to the degenerate placeholder.
// Complexity: O(1).
func (h *Holder) SetMatrix(m matrix.Matrix) {
	if m == nil {
		m = placeholder()
	}
	h.m = m
	h.inv = nil // invalidation happens in the same step as replacement
}

// Matrix returns the currently held matrix, unchanged. No side effects.
// Complexity: O(1).
func (h *Holder) Matrix() matrix.Matrix {
	return h.m
}

// SetCachedInverse stores inv as the cached inverse, overwriting any
// previous value. No validation that inv corresponds to the held matrix —
// the resolver is trusted to maintain the invariant.
// Complexity: O(1).
func (h *Holder) SetCachedInverse(inv matrix.Matrix) {
	h.inv = inv
}

// CachedInverse returns the cached inverse and true when one is present,
// or (nil, false) when the cache is absent.
// Complexity: O(1).
func (h *Holder) CachedInverse() (matrix.Matrix, bool) {
	if h.inv == nil {
		return nil, false
	}

	return h.inv, true
}
