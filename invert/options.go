// SPDX-License-Identifier: MIT

// Package invert: functional configuration for the inversion kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package invert

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the threshold below which a pivot's absolute
	// value is treated as zero (singular). Zero means an exact-zero check,
	// matching the deterministic no-pivot LU scheme.
	DefaultPivotTolerance = 0.0

	// DefaultAlgorithm selects the Doolittle LU kernel.
	DefaultAlgorithm = LU
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotTolInvalid  = "invert: WithPivotTolerance: tol must be finite, non-negative"
	panicAlgorithmUnknown = "invert: WithAlgorithm: unknown algorithm variant"
)

// ---------- Algorithm variants ----------

// Algorithm enumerates the supported inversion kernels.
type Algorithm uint8

const (
	// LU inverts via Doolittle factorization without pivoting, then solves
	// L·y=eᵢ / U·x=y per identity column. Fully deterministic.
	LU Algorithm = iota

	// GaussJordan inverts via augmented elimination with partial pivoting.
	GaussJordan
)

// String implements fmt.Stringer for diagnostics and log notices.
func (a Algorithm) String() string {
	switch a {
	case LU:
		return "lu"
	case GaussJordan:
		return "gauss-jordan"
	default:
		return "unknown"
	}
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept ...Option and resolve them via gatherOptions.
type Options struct {
	pivotTol  float64   // >= 0; DefaultPivotTolerance
	algorithm Algorithm // DefaultAlgorithm
}

// PivotTolerance reports the resolved singularity threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// Algorithm reports the resolved kernel variant.
func (o Options) Algorithm() Algorithm { return o.algorithm }

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the threshold under which |pivot| counts as zero.
//
// Inputs:
//   - tol: non-negative finite tolerance; 0 requests an exact-zero check.
//
// Errors:
//   - Panics with a stable message when tol is NaN, ±Inf or negative.
//
// Complexity: O(1).
//
// Notes:
//   - Larger tolerances reject more nearly-singular inputs; pick a value
//     proportional to the expected magnitude of your matrix entries.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithAlgorithm selects the inversion kernel variant.
//
// Errors:
//   - Panics with a stable message on an unrecognized variant.
//
// Complexity: O(1).
func WithAlgorithm(a Algorithm) Option {
	if a != LU && a != GaussJordan {
		panic(panicAlgorithmUnknown)
	}

	return func(o *Options) { o.algorithm = a }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Pure function; stable for a given sequence of opts (last-writer-wins).
// Complexity: O(k) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for the kernels.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol:  DefaultPivotTolerance,
		algorithm: DefaultAlgorithm,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
