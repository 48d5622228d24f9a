// SPDX-License-Identifier: MIT
// Package memo: sentinel error set.
// The cache layer is error-transparent for inversion failures — those
// surface from the invert package (matrix.ErrNonSquare, matrix.ErrSingular)
// unmodified. The only sentinel introduced here guards resolver usage.

package memo

import "errors"

// ErrNilHolder indicates that a nil *Holder was passed to the resolver.
// Matched via errors.Is; never wraps an inversion failure.
var ErrNilHolder = errors.New("memo: holder is nil")
