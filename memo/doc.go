// Package memo is the memoization core of matcache: it binds one matrix to
// an optionally cached inverse and resolves inversion requests through that
// cache.
//
// 🚀 What is memo?
//
//	Two collaborating pieces:
//	  • Holder — a mutable container owning exactly one Matrix and at most
//	    one cached inverse. Replacing the matrix clears the cache in the
//	    same step, so a cached inverse is valid if and only if it was
//	    computed from the currently held matrix.
//	  • Inverse — a stateless resolver: served from cache when present,
//	    otherwise computed via the invert package (or an injected
//	    Inverter), stored back into the holder, and returned.
//
// Per-holder state machine:
//
//	Invalid ──resolve ok──▶ Valid
//	   ▲                      │
//	   └──────SetMatrix───────┘   (SetMatrix → Invalid from either state)
//
// Error policy: the cache layer is error-transparent. Shape and
// singularity failures surface from the inversion routine unmodified
// (matrix.ErrNonSquare, matrix.ErrSingular via errors.Is); a failed
// resolution leaves the cache absent, so the next call retries from
// scratch — no error state is ever cached.
//
// Concurrency: a plain Holder assumes single-threaded use — the hit/miss
// check-then-act sequence is not atomic. SyncHolder wraps the same state
// in a per-holder mutex and guarantees at most one computation per matrix
// value under concurrent access.
//
// ⚙️ Usage:
//
//	h := memo.NewHolder(m)
//	inv, err := memo.Inverse(h)                     // miss: compute + cache
//	inv, err = memo.Inverse(h)                      // hit: cached value
//	h.SetMatrix(m2)                                 // invalidate
//	inv, err = memo.Inverse(h,
//	  memo.WithInvertOptions(invert.WithAlgorithm(invert.GaussJordan)),
//	)
//
// Cache hits and misses emit debug-level log notices by default;
// override or silence them with WithHitFunc / WithMissFunc.
package memo
