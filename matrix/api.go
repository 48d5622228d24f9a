// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"fmt"
	"math"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols) zero-init by the runtime.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		_ = I.Set(i, i, 1.0) // bounds-safe after shape validation
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ---------- Kernels needed by the memoization layer and its tests ----------

// Mul computes the matrix product a·b.
// Blueprint:
//
//	Stage 1 (Validate): both non-nil; a.Cols == b.Rows.
//	Stage 2 (Prepare): allocate Dense(a.Rows × b.Cols).
//	Stage 3 (Execute): triple loop in fixed i→j→k order; *Dense inputs take
//	  the flat-slice fast path, anything else falls back to At/Set.
//
// Errors:
//   - ErrNilMatrix on nil operands.
//   - ErrDimensionMismatch when inner dimensions disagree.
//
// Complexity: O(a.Rows * b.Cols * a.Cols) time, O(a.Rows * b.Cols) memory.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate operands before touching shapes.
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	n, inner, cols := a.Rows(), a.Cols(), b.Cols()
	if inner != b.Rows() {
		return nil, fmt.Errorf("Mul: %dx%d · %dx%d: %w", n, inner, b.Rows(), cols, ErrDimensionMismatch)
	}

	out, err := NewDense(n, cols)
	if err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}

	// Fast path: both operands are *Dense, so index the flat slices directly.
	ad, okA := a.(*Dense)
	bd, okB := b.(*Dense)
	if okA && okB {
		var sum float64
		for i := 0; i < n; i++ {
			for j := 0; j < cols; j++ {
				sum = 0
				for k := 0; k < inner; k++ {
					sum += ad.cells[i*inner+k] * bd.cells[k*cols+j]
				}
				out.cells[i*cols+j] = sum
			}
		}

		return out, nil
	}

	// Generic fallback through the interface.
	var av, bv, sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			sum = 0
			for k := 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, fmt.Errorf("Mul: At(%d,%d): %w", i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, fmt.Errorf("Mul: At(%d,%d): %w", k, j, err)
				}
				sum += av * bv
			}
			if err = out.Set(i, j, sum); err != nil {
				return nil, fmt.Errorf("Mul: Set(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}

// AllClose reports whether a and b share a shape and agree element-wise
// within the non-negative tolerance eps. NaN never compares close.
//
// Returns ErrDimensionMismatch (via ValidateSameShape) on shape disagreement,
// so "different shape" is distinguishable from "numerically different".
// Complexity: O(r*c).
func AllClose(a, b Matrix, eps float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, fmt.Errorf("AllClose: At(%d,%d): %w", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, fmt.Errorf("AllClose: At(%d,%d): %w", i, j, err)
			}
			if math.IsNaN(av) || math.IsNaN(bv) || math.Abs(av-bv) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}
