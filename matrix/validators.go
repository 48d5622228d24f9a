// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures the matrix has equal row and column counts.
// Assumes m is non-nil; compose with ValidateNotNil first.
//
// Returns ErrNonSquare with the observed shape embedded for diagnostics.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if r, c := m.Rows(), m.Cols(); r != c {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", r, c, ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures two matrices share dimensions (e.g. before
// element-wise comparison). Assumes both are non-nil.
//
// Returns ErrDimensionMismatch on any shape disagreement.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("ValidateSameShape: %dx%d vs %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil composes ValidateNotNil and ValidateSquare in the
// canonical order. Inversion kernels use this as their single entry guard.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}
