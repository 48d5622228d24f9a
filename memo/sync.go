// SPDX-License-Identifier: MIT
// Package memo: SyncHolder — the concurrency-safe holder variant.
package memo

import (
	"sync"

	"github.com/katalvlaran/matcache/matrix"
)

// SyncHolder wraps a Holder in a per-instance mutex so that a holder shared
// across goroutines keeps the memoization contract: the whole
// check-compute-store sequence in Inverse runs under the lock, guaranteeing
// at most one computation per matrix value under concurrent access.
//
// The lock is scoped to a single holder instance; independent holders never
// contend. Prefer the plain Holder for single-threaded use — it carries no
// locking overhead.
type SyncHolder struct {
	mu sync.Mutex
	h  Holder
}

// NewSyncHolder constructs a SyncHolder around the initial matrix m.
// Nil m admits the same degenerate placeholder as NewHolder.
// Complexity: O(1).
func NewSyncHolder(m matrix.Matrix) *SyncHolder {
	return &SyncHolder{h: *NewHolder(m)}
}

// SetMatrix replaces the held matrix and clears the cached inverse, both
// under the holder's lock. Complexity: O(1).
func (s *SyncHolder) SetMatrix(m matrix.Matrix) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.SetMatrix(m)
}

// Matrix returns the currently held matrix under the holder's lock.
// Complexity: O(1).
func (s *SyncHolder) Matrix() matrix.Matrix {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.h.Matrix()
}

// CachedInverse returns the cached inverse (comma-ok) under the holder's
// lock. Complexity: O(1).
func (s *SyncHolder) CachedInverse() (matrix.Matrix, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.h.CachedInverse()
}

// Inverse resolves the inverse through the cache while holding the lock for
// the entire hit/miss sequence. Concurrent callers observing a cache miss
// serialize: exactly one computes, the rest are served the cached value.
//
// Error policy matches the package-level Inverse: failures propagate and
// leave the cache absent.
//
// Complexity: O(1) on a hit; the inverter's cost on a miss, during which
// other callers of this holder block.
func (s *SyncHolder) Inverse(opts ...Option) (matrix.Matrix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Inverse(&s.h, opts...)
}
