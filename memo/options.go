// SPDX-License-Identifier: MIT

// Package memo: functional configuration for the resolver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state beyond the process logger.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package memo

import (
	"github.com/apex/log"

	"github.com/katalvlaran/matcache/invert"
	"github.com/katalvlaran/matcache/matrix"
)

// Inverter is the contract of the external dense-inversion routine:
// invert(matrix, options) → Matrix, failing on non-square or singular
// input. The default is invert.Inverse; tests inject counting stubs.
type Inverter func(m matrix.Matrix, opts ...invert.Option) (matrix.Matrix, error)

// NoticeFunc observes a cache event for the matrix m being resolved.
// Purely advisory: notices never alter control flow or results.
type NoticeFunc func(m matrix.Matrix)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicInverterNil   = "memo: WithInverter: inverter must be non-nil"
	panicHitNoticeNil  = "memo: WithHitFunc: notice func must be non-nil"
	panicMissNoticeNil = "memo: WithMissFunc: notice func must be non-nil"
)

// ---------- Defaults ----------

// defaultHitNotice emits the debug-level cache-hit notice.
func defaultHitNotice(m matrix.Matrix) {
	log.Debugf("memo: cache hit: %dx%d inverse served from cache", m.Rows(), m.Cols())
}

// defaultMissNotice emits the debug-level cache-miss notice.
func defaultMissNotice(m matrix.Matrix) {
	log.Debugf("memo: cache miss: computing %dx%d inverse", m.Rows(), m.Cols())
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective resolver configuration. Fields are
// unexported; public entry points accept ...Option and resolve them via
// gatherOptions.
type Options struct {
	inverter   Inverter        // computes a missing inverse; default invert.Inverse
	invertOpts []invert.Option // pass-through bag forwarded unmodified
	onHit      NoticeFunc      // advisory cache-hit hook
	onMiss     NoticeFunc      // advisory cache-miss hook
}

// Inverter reports the resolved inversion routine.
func (o Options) Inverter() Inverter { return o.inverter }

// InvertOptions reports the resolved pass-through bag.
func (o Options) InvertOptions() []invert.Option { return o.invertOpts }

// HitFunc reports the resolved cache-hit notice hook.
func (o Options) HitFunc() NoticeFunc { return o.onHit }

// MissFunc reports the resolved cache-miss notice hook.
func (o Options) MissFunc() NoticeFunc { return o.onMiss }

// ---------- Constructors (WithX) ----------

// WithInverter injects the inversion routine used on cache misses.
// The primary consumer is tests, which verify hit/miss behavior via call
// counters on a stub; it also admits alternative numeric backends.
//
// Errors:
//   - Panics with a stable message when fn is nil.
//
// Complexity: O(1).
func WithInverter(fn Inverter) Option {
	if fn == nil {
		panic(panicInverterNil)
	}

	return func(o *Options) { o.inverter = fn }
}

// WithInvertOptions sets the pass-through configuration bag handed to the
// inversion routine on a miss (tolerance, algorithm variant). Forwarded
// unmodified; ignored on cache hits since nothing is computed.
// Complexity: O(1).
func WithInvertOptions(opts ...invert.Option) Option {
	return func(o *Options) { o.invertOpts = opts }
}

// WithHitFunc replaces the cache-hit notice hook (default: debug log line).
// Use a no-op func to silence notices entirely.
//
// Errors:
//   - Panics with a stable message when fn is nil.
//
// Complexity: O(1).
func WithHitFunc(fn NoticeFunc) Option {
	if fn == nil {
		panic(panicHitNoticeNil)
	}

	return func(o *Options) { o.onHit = fn }
}

// WithMissFunc replaces the cache-miss notice hook (default: debug log line).
//
// Errors:
//   - Panics with a stable message when fn is nil.
//
// Complexity: O(1).
func WithMissFunc(fn NoticeFunc) Option {
	if fn == nil {
		panic(panicMissNoticeNil)
	}

	return func(o *Options) { o.onMiss = fn }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Pure function; stable for a given sequence of opts (last-writer-wins).
// Complexity: O(k) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins; stable for a given sequence of setters.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		inverter: invert.Inverse,
		onHit:    defaultHitNotice,
		onMiss:   defaultMissNotice,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
